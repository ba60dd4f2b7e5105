// Package highlight tokenizes code-block contents for styling.
//
// Tokenization is delegated to an [Engine]; the default engine parses with
// tree-sitter grammars registered per language tag. The package-level
// [Tokenize] wraps whichever engine is configured with the fallback
// contract that downstream styling depends on: on any failure (no engine,
// unknown language, parse error, empty output) the result is exactly one
// token spanning the entire input, typed [TokenPlain]. Callers can always
// assume at least one token is present and that token contents concatenate
// to the input.
package highlight
