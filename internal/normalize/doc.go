// Package normalize rewrites cue text conservatively: whitespace collapse,
// punctuation spacing, and sentence-leading capitalization for Latin script;
// punctuation spacing and script-boundary separation for CJK. Edits are
// meant to look reversible; nothing here guarantees semantic correctness.
package normalize
