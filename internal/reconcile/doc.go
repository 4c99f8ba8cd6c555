// Package reconcile repairs subtitle cue timing. It fixes broken durations,
// resolves overlaps between neighboring cues, and merges fragments that are
// too short to read on their own.
package reconcile
