package highlight

import (
	"context"
	"errors"
	"sync"
)

// ErrNoTokens is recorded when an engine succeeds but produces no tokens
var ErrNoTokens = errors.New("highlight: engine produced no tokens")

// Engine tokenizes source text for a language tag. Implementations return
// an error rather than partial output; the package-level Tokenize converts
// any error into the plain-text fallback.
type Engine interface {
	Tokenize(ctx context.Context, src []byte, lang string) ([]Token, error)
}

// Result is the outcome of a tokenization request. Tokens is never empty:
// when the engine degrades, it holds exactly one plain token spanning the
// whole input and Err records the cause.
type Result struct {
	Tokens []Token

	// Err is the reason tokenization degraded to the fallback, or nil
	// when the engine produced real tokens. It is informational, never
	// fatal.
	Err error
}

// Degraded reports whether the result is the plain-text fallback
func (r Result) Degraded() bool {
	return r.Err != nil
}

var (
	engineMu      sync.RWMutex
	defaultEngine Engine = NewTreeSitterEngine()
)

// SetEngine replaces the engine used by Tokenize and returns a function
// restoring the previous one.
func SetEngine(e Engine) func() {
	engineMu.Lock()
	prev := defaultEngine
	defaultEngine = e
	engineMu.Unlock()

	return func() {
		engineMu.Lock()
		defaultEngine = prev
		engineMu.Unlock()
	}
}

// currentEngine returns the engine used by Tokenize
func currentEngine() Engine {
	engineMu.RLock()
	e := defaultEngine
	engineMu.RUnlock()
	return e
}

// Tokenize tokenizes src as lang with the configured engine. It never
// fails: on any engine error the result is the single-plain-token
// fallback with the cause recorded in Result.Err.
func Tokenize(src, lang string) Result {
	return TokenizeContext(context.Background(), src, lang)
}

// TokenizeContext is Tokenize with a caller-supplied context
func TokenizeContext(ctx context.Context, src, lang string) Result {
	tokens, err := currentEngine().Tokenize(ctx, []byte(src), lang)
	if err != nil {
		return fallback(src, err)
	}
	if len(tokens) == 0 {
		return fallback(src, ErrNoTokens)
	}
	return Result{Tokens: tokens}
}

// fallback builds the single-plain-token result
func fallback(src string, cause error) Result {
	return Result{
		Tokens: []Token{{Content: src, Type: TokenPlain}},
		Err:    cause,
	}
}
