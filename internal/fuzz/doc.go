// Package fuzztests holds Go fuzz harnesses for the source -> lexer ->
// parser -> emitter pipeline. They guard against panics, hangs and broken
// output invariants on arbitrary input.
package fuzztests
