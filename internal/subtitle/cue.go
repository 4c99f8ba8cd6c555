package subtitle

import "time"

// Cue is one timed caption unit. Start and End are interval bounds in
// milliseconds; End >= Start is only guaranteed after reconciliation.
type Cue struct {
	Index int
	Start int64
	End   int64
	Text  string
}

// Duration returns the interval length. It can be negative for corrupt input
// that has not been reconciled yet.
func (c Cue) Duration() time.Duration {
	return time.Duration(c.End-c.Start) * time.Millisecond
}
