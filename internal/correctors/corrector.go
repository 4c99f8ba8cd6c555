package correctors

import "context"

// Corrector is an optional text-correction capability. Correct returns the
// corrected text and whether it differs from the input. The contextText
// argument carries neighboring cue text for correctors that can use it;
// context-free correctors ignore it.
//
// Correction is best effort: callers treat any error as "no change".
type Corrector interface {
	Name() string
	Correct(ctx context.Context, text, contextText string) (string, bool, error)
}

// Set bundles the capabilities a pipeline run may carry. Nil members mean
// the stage is skipped.
type Set struct {
	Dictionary Corrector
	Spelling   Corrector
	Grammar    Corrector
}

// Empty reports whether no capability is configured.
func (s Set) Empty() bool {
	return s.Dictionary == nil && s.Spelling == nil && s.Grammar == nil
}
