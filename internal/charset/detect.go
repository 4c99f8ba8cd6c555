// Package charset sniffs the byte encoding of subtitle files and decodes
// them to UTF-8. Detection failures are never fatal: unknown or unconfident
// results fall back to treating the bytes as UTF-8.
package charset

import (
	"bytes"
	"io"

	"github.com/dimchansky/utfbom"
	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// decoders maps chardet charset names to x/text encodings.
var decoders = map[string]encoding.Encoding{
	"GB-18030":     simplifiedchinese.GB18030,
	"GBK":          simplifiedchinese.GBK,
	"Big5":         traditionalchinese.Big5,
	"Shift_JIS":    japanese.ShiftJIS,
	"EUC-JP":       japanese.EUCJP,
	"EUC-KR":       korean.EUCKR,
	"ISO-8859-1":   charmap.ISO8859_1,
	"windows-1252": charmap.Windows1252,
	"UTF-16LE":     unicode.UTF16(unicode.LittleEndian, unicode.UseBOM),
	"UTF-16BE":     unicode.UTF16(unicode.BigEndian, unicode.UseBOM),
}

// Decode converts raw subtitle bytes to UTF-8, using chardet's best guess to
// pick a decoder. The returned name is the detected charset, or "UTF-8" when
// detection fails or no decoder is registered for the guess.
func Decode(raw []byte) ([]byte, string, error) {
	detector := chardet.NewTextDetector()
	result, err := detector.DetectBest(raw)
	if err != nil || result == nil {
		return stripBOM(raw), "UTF-8", nil
	}

	enc, ok := decoders[result.Charset]
	if !ok {
		return stripBOM(raw), "UTF-8", nil
	}

	decoded, err := decodeWith(raw, enc)
	if err != nil {
		// A wrong guess should not lose the file; keep the original bytes.
		return stripBOM(raw), "UTF-8", nil
	}
	return stripBOM(decoded), result.Charset, nil
}

func decodeWith(raw []byte, enc encoding.Encoding) ([]byte, error) {
	reader := transform.NewReader(bytes.NewReader(raw), enc.NewDecoder())
	return io.ReadAll(reader)
}

func stripBOM(raw []byte) []byte {
	cleaned, err := io.ReadAll(utfbom.SkipOnly(bytes.NewReader(raw)))
	if err != nil {
		return raw
	}
	return cleaned
}
