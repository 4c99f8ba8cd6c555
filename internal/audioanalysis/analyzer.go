package audioanalysis

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
)

// framesPerChunk is the granularity of the RMS and clipping scan.
const framesPerChunk = 64 * 1024

// Result is the quality report for one WAV file. Field names follow the
// JSON output contract of the analyze command.
type Result struct {
	Channels          int      `json:"channels"`
	SampleWidthBytes  int      `json:"sample_width_bytes"`
	SampleRate        int      `json:"sample_rate"`
	Frames            int64    `json:"nframes"`
	DurationSeconds   float64  `json:"duration_seconds"`
	MaxSampleValue    int64    `json:"max_sample_value"`
	MaxDBFS           *float64 `json:"max_dbfs"`
	MeanRMS           float64  `json:"mean_rms"`
	MeanDBFS          *float64 `json:"mean_dbfs"`
	TotalChunks       int      `json:"total_chunks"`
	ClippedChunks     int      `json:"clipped_chunks"`
	ClippedChunkRatio float64  `json:"clipped_chunk_ratio"`
}

// Analyze opens a WAV file and reports signal statistics.
func Analyze(path string) (Result, error) {
	file, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("open wav file: %w", err)
	}
	defer file.Close()
	return AnalyzeReader(bufio.NewReader(file))
}

// AnalyzeReader scans PCM audio chunk by chunk, tracking the peak sample,
// the mean of per-chunk RMS values, and the share of chunks that touch the
// clipping ceiling.
func AnalyzeReader(r io.Reader) (Result, error) {
	format, err := readWAVHeader(r)
	if err != nil {
		return Result{}, err
	}

	maxPossible := int64(1)<<(8*format.sampleWidth-1) - 1
	result := Result{
		Channels:         format.channels,
		SampleWidthBytes: format.sampleWidth,
		SampleRate:       format.sampleRate,
	}

	var (
		rmsAcc    float64
		maxSeen   int64
		remaining = format.dataSize
	)
	buf := make([]byte, framesPerChunk*format.blockAlign)
	for remaining > 0 {
		want := int64(len(buf))
		if want > remaining {
			want = remaining
		}
		n, err := io.ReadFull(r, buf[:want])
		if n == 0 {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				break
			}
			return Result{}, fmt.Errorf("read audio data: %w", err)
		}
		remaining -= int64(n)

		samples := decodeSamples(buf[:n], format.sampleWidth)
		if len(samples) == 0 {
			continue
		}
		result.TotalChunks++
		result.Frames += int64(n / format.blockAlign)

		var sumSquares float64
		var chunkMax int64
		for _, s := range samples {
			if s < 0 {
				s = -s
			}
			if s > chunkMax {
				chunkMax = s
			}
			sumSquares += float64(s) * float64(s)
		}
		rmsAcc += math.Sqrt(sumSquares / float64(len(samples)))
		if chunkMax > maxSeen {
			maxSeen = chunkMax
		}
		if chunkMax >= maxPossible-1 {
			result.ClippedChunks++
		}

		if err == io.EOF || err == io.ErrUnexpectedEOF {
			break
		}
	}

	if result.SampleRate > 0 {
		result.DurationSeconds = round(float64(result.Frames)/float64(result.SampleRate), 3)
	}
	result.MaxSampleValue = maxSeen
	if result.TotalChunks > 0 {
		result.MeanRMS = round(rmsAcc/float64(result.TotalChunks), 2)
		result.ClippedChunkRatio = round(float64(result.ClippedChunks)/float64(result.TotalChunks), 4)
	}
	if maxSeen > 0 {
		result.MaxDBFS = dbfsPtr(float64(maxSeen), maxPossible)
	}
	if result.MeanRMS > 0 {
		result.MeanDBFS = dbfsPtr(result.MeanRMS, maxPossible)
	}
	return result, nil
}

func dbfsPtr(value float64, maxPossible int64) *float64 {
	db := round(20*math.Log10(value/float64(maxPossible)), 2)
	return &db
}

func round(v float64, places int) float64 {
	scale := math.Pow10(places)
	return math.Round(v*scale) / scale
}
