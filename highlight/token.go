package highlight

// TokenType classifies a token for styling
type TokenType int

const (
	// TokenPlain is unstyled text; the fallback type
	TokenPlain TokenType = iota
	// TokenKeyword is a language keyword
	TokenKeyword
	// TokenIdentifier is a name
	TokenIdentifier
	// TokenString is a string or character literal
	TokenString
	// TokenNumber is a numeric literal
	TokenNumber
	// TokenComment is a comment
	TokenComment
	// TokenOperator is an operator
	TokenOperator
	// TokenPunctuation is bracketing or separator punctuation
	TokenPunctuation
)

// String returns a string representation of the token type
func (t TokenType) String() string {
	switch t {
	case TokenPlain:
		return "plain"
	case TokenKeyword:
		return "keyword"
	case TokenIdentifier:
		return "identifier"
	case TokenString:
		return "string"
	case TokenNumber:
		return "number"
	case TokenComment:
		return "comment"
	case TokenOperator:
		return "operator"
	case TokenPunctuation:
		return "punctuation"
	default:
		return "unknown"
	}
}

// Token is one classified span of source text. Tokens are contiguous: the
// contents of a tokenization concatenate to the original input.
type Token struct {
	Content string
	Type    TokenType
}
