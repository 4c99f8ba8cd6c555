// Package subtitle provides the cue model and SRT/WebVTT codec used by the
// repair pipeline.
//
// A Cue carries millisecond-integer interval bounds so the timing reconciler
// can mutate them without floating drift. The timestamp codec accepts either
// separator style (comma for SRT, period for VTT) with the sibling style as a
// fallback, because files in the wild routinely mix them.
//
// Parsing is recovering: blocks with unparsable timestamps or a missing
// time-range line are dropped and counted, never fatal. Only a file that
// yields no cues at all is an error.
package subtitle
