// Package audioanalysis inspects PCM WAV files and reports level statistics
// used to judge a recording's audio quality: peak and mean levels in dBFS
// plus the share of chunks that hit the clipping ceiling.
package audioanalysis
