// Package token defines the lexical token kinds of the Jack language.
// Invariants:
//   - Token.Text is the exact lexeme; string constants carry their contents
//     without the surrounding quotes and without escape processing.
//   - Token.Value is set only for IntegerConstant and is always in [0, 32767].
//   - Every symbol is a single byte; there are no multi-character operators.
//   - EOF and Invalid never appear in rendered output.
package token
