package highlight

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// ErrUnknownLanguage is returned when no grammar is registered for a
// language tag.
var ErrUnknownLanguage = errors.New("highlight: no grammar for language")

// TreeSitterEngine tokenizes source text by parsing it with tree-sitter
// grammars. Grammars are registered per language tag; tags are matched
// case-insensitively. An engine with no registered grammars rejects every
// input, which the package-level Tokenize turns into the plain-text
// fallback.
type TreeSitterEngine struct {
	mu        sync.RWMutex
	languages map[string]*sitter.Language
}

// NewTreeSitterEngine creates an engine with no registered grammars
func NewTreeSitterEngine() *TreeSitterEngine {
	return &TreeSitterEngine{
		languages: make(map[string]*sitter.Language),
	}
}

// Register associates a grammar with a language tag, replacing any
// previous grammar for that tag.
func (e *TreeSitterEngine) Register(tag string, language *sitter.Language) {
	e.mu.Lock()
	e.languages[strings.ToLower(tag)] = language
	e.mu.Unlock()
}

// language returns the grammar registered for tag, or nil
func (e *TreeSitterEngine) language(tag string) *sitter.Language {
	e.mu.RLock()
	language := e.languages[strings.ToLower(tag)]
	e.mu.RUnlock()
	return language
}

// Tokenize parses src with the grammar registered for lang and returns the
// parse tree's leaves as classified tokens, with unparsed gaps emitted as
// plain tokens so the output concatenates to src.
func (e *TreeSitterEngine) Tokenize(ctx context.Context, src []byte, lang string) ([]Token, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	language := e.language(lang)
	if language == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, lang)
	}

	parser := sitter.NewParser()
	defer parser.Close()
	if err := parser.SetLanguage(language); err != nil {
		return nil, fmt.Errorf("set language %q: %w", lang, err)
	}

	tree := parser.ParseWithOptions(func(i int, _ sitter.Point) []byte {
		if i >= len(src) {
			return nil
		}
		return src[i:]
	}, nil, &sitter.ParseOptions{
		ProgressCallback: func(_ sitter.ParseState) bool {
			return ctx.Err() != nil
		},
	})
	if err := ctx.Err(); err != nil {
		if tree != nil {
			tree.Close()
		}
		return nil, err
	}
	if tree == nil {
		return nil, errors.New("highlight: tree-sitter returned nil tree")
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return nil, errors.New("highlight: tree-sitter returned nil root")
	}
	return leafTokens(root, src), nil
}

// leafTokens flattens the parse tree's leaves into contiguous tokens
func leafTokens(root *sitter.Node, src []byte) []Token {
	var tokens []Token
	pos := uint(0)

	var visit func(n *sitter.Node)
	visit = func(n *sitter.Node) {
		children := childNodes(n)
		if len(children) > 0 {
			for i := range children {
				visit(&children[i])
			}
			return
		}

		start, end := n.StartByte(), n.EndByte()
		if start > uint(len(src)) || end > uint(len(src)) || end <= start {
			return
		}
		if start > pos {
			tokens = append(tokens, Token{Content: string(src[pos:start]), Type: TokenPlain})
		}
		tokens = append(tokens, Token{
			Content: string(src[start:end]),
			Type:    classifyLeaf(n, string(src[start:end])),
		})
		pos = end
	}
	visit(root)

	if pos < uint(len(src)) {
		tokens = append(tokens, Token{Content: string(src[pos:]), Type: TokenPlain})
	}
	return tokens
}

// childNodes returns a node's children in source order
func childNodes(n *sitter.Node) []sitter.Node {
	cursor := n.Walk()
	defer cursor.Close()
	return n.Children(cursor)
}

// classifyLeaf maps a leaf node to a token type. Named leaves are
// classified by their grammar kind; anonymous leaves are keywords when
// alphabetic and operators or punctuation otherwise.
func classifyLeaf(n *sitter.Node, content string) TokenType {
	kind := strings.ToLower(n.Kind())
	switch {
	case strings.Contains(kind, "comment"):
		return TokenComment
	case strings.Contains(kind, "string") || strings.Contains(kind, "char"):
		return TokenString
	case strings.Contains(kind, "number") || strings.Contains(kind, "integer") || strings.Contains(kind, "float"):
		return TokenNumber
	}

	if !n.IsNamed() {
		if isAlphabetic(content) {
			return TokenKeyword
		}
		if isBracketing(content) {
			return TokenPunctuation
		}
		return TokenOperator
	}

	if strings.Contains(kind, "identifier") {
		return TokenIdentifier
	}
	return TokenPlain
}

// isAlphabetic reports whether s is non-empty and entirely letters
func isAlphabetic(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// isBracketing reports whether s is bracketing or separator punctuation
func isBracketing(s string) bool {
	switch s {
	case "(", ")", "[", "]", "{", "}", ",", ";", ":":
		return true
	}
	return false
}
