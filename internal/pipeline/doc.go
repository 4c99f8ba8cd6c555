// Package pipeline orchestrates subtitle repair: decoding, parsing,
// script-aware text normalization, and timing reconciliation, plus the
// whole-file convenience wrapper the CLI uses.
package pipeline
