package subtitle

import (
	"strconv"
	"strings"
)

// Render serializes cues in the target format. SRT output renumbers cues
// sequentially from 1 regardless of the stored indices; VTT output starts
// with the WEBVTT header and omits numeric identifiers.
func Render(cues []Cue, target Format) string {
	var b strings.Builder
	if target == FormatVTT {
		b.WriteString("WEBVTT\n\n")
	}
	for i, cue := range cues {
		if target == FormatSRT {
			b.WriteString(strconv.Itoa(i + 1))
			b.WriteByte('\n')
		}
		b.WriteString(FormatTimestamp(cue.Start, target))
		b.WriteString(" --> ")
		b.WriteString(FormatTimestamp(cue.End, target))
		b.WriteByte('\n')
		b.WriteString(cue.Text)
		b.WriteString("\n\n")
	}
	return b.String()
}
