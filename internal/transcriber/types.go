package transcriber

import (
	"strings"
	"time"
)

// Segment is a time-bounded unit of transcribed speech.
type Segment struct {
	Start time.Duration `json:"start"`
	End   time.Duration `json:"end"`
	Text  string        `json:"text"`
}

// Result is the transcription of one audio file, in chronological
// segment order.
type Result struct {
	Language string    `json:"language"`
	Segments []Segment `json:"segments"`
}

// FullText joins the segment texts into a single transcript string.
func (r *Result) FullText() string {
	parts := make([]string, 0, len(r.Segments))
	for _, seg := range r.Segments {
		t := strings.TrimSpace(seg.Text)
		if t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}
