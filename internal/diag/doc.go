// Package diag defines the diagnostic model shared by the lexer, the parser
// and the driver.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity – Info, Warning or Error.
//   - Code – numeric identifier; the range selects the phase (LEX1xxx,
//     SYN2xxx, IO4xxx) and ID() gives the stable string form.
//   - Message – short human text naming what was expected and what was found.
//   - Primary – the source.Span of the offending token or character.
//   - Notes – optional secondary spans.
//
// # Fail-fast errors
//
// Analysis of a file stops at the first lexical or parse error. The lexer and
// parser return that failure as a *Error, which embeds the Diagnostic, so the
// caller chain can short-circuit with ordinary error returns. The driver
// recovers the Diagnostic with AsError and stores it in the file's Bag.
//
// # Reporting
//
// Reporter decouples emission from storage. BagReporter collects into a Bag,
// which supports sorting, deduplication and a limit. Package diag performs no
// formatting beyond FormatShortDiagnostics; colour and source context live in
// internal/diagfmt.
package diag
