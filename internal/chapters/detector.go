// Package chapters detects topic changes between adjacent transcript
// segments and emits chapter markers for them.
package chapters

import (
	"fmt"
	"strings"
	"time"
)

// Segment is one embedded transcript segment, in chronological order.
type Segment struct {
	Start  time.Duration
	Text   string
	Vector []float32
}

// Marker is one chapter timestamp in the output.
type Marker struct {
	Time  string `json:"time"`
	Label string `json:"label"`
}

// Detector groups segments by semantic similarity. Adjacent segments
// whose cosine similarity falls below the threshold start a new chapter.
type Detector struct {
	Threshold      float64
	MaxLabelLength int
}

// NewDetector creates a Detector with the given similarity threshold.
func NewDetector(threshold float64, maxLabelLength int) *Detector {
	return &Detector{
		Threshold:      threshold,
		MaxLabelLength: maxLabelLength,
	}
}

// Detect walks the segments left to right and emits one marker for the
// first segment plus one for every segment whose similarity to its
// predecessor is below the threshold. The result always holds between
// 1 and len(segments) markers.
func (d *Detector) Detect(segments []Segment) ([]Marker, error) {
	if len(segments) == 0 {
		return nil, fmt.Errorf("no segments to detect chapters in")
	}

	dim := len(segments[0].Vector)
	for i, seg := range segments {
		if len(seg.Vector) != dim {
			return nil, fmt.Errorf("segment %d: embedding dimension %d, want %d", i, len(seg.Vector), dim)
		}
	}

	markers := []Marker{d.marker(segments[0])}

	for i := 1; i < len(segments); i++ {
		sim := Cosine(segments[i].Vector, segments[i-1].Vector)
		if sim < d.Threshold {
			markers = append(markers, d.marker(segments[i]))
		}
	}

	return markers, nil
}

func (d *Detector) marker(seg Segment) Marker {
	return Marker{
		Time:  FormatTime(seg.Start),
		Label: d.label(seg.Text),
	}
}

// label keeps the first sentence, truncated to MaxLabelLength runes,
// with an ellipsis marker appended. Truncation counts runes so a
// multi-byte character is never split.
func (d *Detector) label(text string) string {
	text = strings.TrimSpace(text)
	if i := strings.Index(text, "."); i >= 0 {
		text = text[:i]
	}

	runes := []rune(text)
	if len(runes) > d.MaxLabelLength {
		runes = runes[:d.MaxLabelLength]
	}

	return string(runes) + "..."
}

// FormatTime renders an offset as zero-padded MM:SS. Offsets of an hour
// or more keep accumulating minutes.
func FormatTime(d time.Duration) string {
	total := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
