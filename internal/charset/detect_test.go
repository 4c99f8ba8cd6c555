package charset

import (
	"bytes"
	"strings"
	"testing"

	"golang.org/x/text/encoding/simplifiedchinese"
)

func TestDecodePlainUTF8(t *testing.T) {
	raw := []byte("1\n00:00:01,000 --> 00:00:02,000\nHello world\n")
	decoded, name, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !bytes.Equal(decoded, raw) {
		t.Fatalf("utf-8 input should pass through, got %q", decoded)
	}
	_ = name // detector may label pure ASCII in several ways
}

func TestDecodeStripsBOM(t *testing.T) {
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("WEBVTT\n")...)
	decoded, _, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !strings.HasPrefix(string(decoded), "WEBVTT") {
		t.Fatalf("BOM not stripped: %q", decoded)
	}
}

func TestDecodeGB18030(t *testing.T) {
	// Enough CJK text for the detector to land on a Chinese charset.
	text := "这是一个中文字幕文件，用来测试字符编码的自动检测。\n我们需要足够多的中文内容。\n"
	raw, err := simplifiedchinese.GB18030.NewEncoder().Bytes([]byte(text))
	if err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	decoded, _, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !strings.Contains(string(decoded), "中文字幕") {
		t.Fatalf("expected decoded CJK text, got %q", decoded)
	}
}
