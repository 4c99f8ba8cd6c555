// Command subfix repairs subtitle files: it fixes cue timing, merges
// fragments, normalizes text per script, converts between SRT and WebVTT,
// and keeps a journal of what it changed.
package main
