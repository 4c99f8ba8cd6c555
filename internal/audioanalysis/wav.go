package audioanalysis

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ErrNotWAV indicates input that is not a RIFF/WAVE container.
var ErrNotWAV = errors.New("not a RIFF/WAVE file")

// wavFormat holds the fields of the fmt chunk the analyzer needs.
type wavFormat struct {
	channels    int
	sampleRate  int
	sampleWidth int
	blockAlign  int
	dataSize    int64
}

const pcmFormatTag = 1

// readWAVHeader parses RIFF chunks up to the start of the data chunk and
// leaves the reader positioned at the first audio frame.
func readWAVHeader(r io.Reader) (wavFormat, error) {
	var riff [12]byte
	if _, err := io.ReadFull(r, riff[:]); err != nil {
		return wavFormat{}, ErrNotWAV
	}
	if string(riff[0:4]) != "RIFF" || string(riff[8:12]) != "WAVE" {
		return wavFormat{}, ErrNotWAV
	}

	var format wavFormat
	haveFmt := false
	for {
		var header [8]byte
		if _, err := io.ReadFull(r, header[:]); err != nil {
			return wavFormat{}, fmt.Errorf("read chunk header: %w", err)
		}
		id := string(header[0:4])
		size := int64(binary.LittleEndian.Uint32(header[4:8]))

		switch id {
		case "fmt ":
			if size < 16 {
				return wavFormat{}, fmt.Errorf("fmt chunk too small: %d bytes", size)
			}
			buf := make([]byte, size)
			if _, err := io.ReadFull(r, buf); err != nil {
				return wavFormat{}, fmt.Errorf("read fmt chunk: %w", err)
			}
			if tag := binary.LittleEndian.Uint16(buf[0:2]); tag != pcmFormatTag {
				return wavFormat{}, fmt.Errorf("unsupported audio format tag %d, only PCM is supported", tag)
			}
			format.channels = int(binary.LittleEndian.Uint16(buf[2:4]))
			format.sampleRate = int(binary.LittleEndian.Uint32(buf[4:8]))
			format.blockAlign = int(binary.LittleEndian.Uint16(buf[12:14]))
			bits := int(binary.LittleEndian.Uint16(buf[14:16]))
			if bits%8 != 0 {
				return wavFormat{}, fmt.Errorf("unsupported bit depth %d", bits)
			}
			format.sampleWidth = bits / 8
			haveFmt = true
		case "data":
			if !haveFmt {
				return wavFormat{}, errors.New("data chunk before fmt chunk")
			}
			if format.channels <= 0 || format.sampleRate <= 0 || format.blockAlign <= 0 {
				return wavFormat{}, errors.New("invalid fmt chunk")
			}
			if format.sampleWidth < 1 || format.sampleWidth > 4 {
				return wavFormat{}, fmt.Errorf("unsupported sample width %d bytes", format.sampleWidth)
			}
			format.dataSize = size
			return format, nil
		default:
			// Chunks are word aligned; odd sizes carry a pad byte.
			skip := size
			if skip%2 == 1 {
				skip++
			}
			if _, err := io.CopyN(io.Discard, r, skip); err != nil {
				return wavFormat{}, fmt.Errorf("skip %q chunk: %w", id, err)
			}
		}
	}
}

// decodeSamples converts interleaved little-endian PCM bytes to signed
// sample values. 8-bit audio is unsigned and recentered around zero.
func decodeSamples(data []byte, width int) []int64 {
	samples := make([]int64, 0, len(data)/width)
	switch width {
	case 1:
		for _, b := range data {
			samples = append(samples, int64(b)-128)
		}
	case 2:
		for i := 0; i+2 <= len(data); i += 2 {
			samples = append(samples, int64(int16(binary.LittleEndian.Uint16(data[i:]))))
		}
	case 3:
		for i := 0; i+3 <= len(data); i += 3 {
			val := int64(data[i]) | int64(data[i+1])<<8 | int64(data[i+2])<<16
			if val&0x800000 != 0 {
				val -= 1 << 24
			}
			samples = append(samples, val)
		}
	case 4:
		for i := 0; i+4 <= len(data); i += 4 {
			samples = append(samples, int64(int32(binary.LittleEndian.Uint32(data[i:]))))
		}
	}
	return samples
}
