package chapters

import (
	"math"
	"reflect"
	"strings"
	"testing"
	"time"
	"unicode/utf8"
)

// unit returns a 2D unit vector at the given angle so tests can dial in
// exact cosine similarities between segments.
func unit(angle float64) []float32 {
	return []float32{float32(math.Cos(angle)), float32(math.Sin(angle))}
}

func TestDetectTopicChanges(t *testing.T) {
	d := NewDetector(0.65, 60)

	// sim(0,1) = cos(acos 0.9) = 0.9, sim(1,2) = 0.3
	a1 := math.Acos(0.9)
	a2 := a1 + math.Acos(0.3)

	segments := []Segment{
		{Start: 0, Text: "Intro to loops.", Vector: unit(0)},
		{Start: 12 * time.Second, Text: "Still on loops.", Vector: unit(a1)},
		{Start: 40 * time.Second, Text: "Now let's talk about files.", Vector: unit(a2)},
	}

	markers, err := d.Detect(segments)
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}

	want := []Marker{
		{Time: "00:00", Label: "Intro to loops..."},
		{Time: "00:40", Label: "Now let's talk about files..."},
	}
	if !reflect.DeepEqual(markers, want) {
		t.Errorf("Detect() = %v, want %v", markers, want)
	}
}

func TestDetectSingleSegment(t *testing.T) {
	d := NewDetector(0.65, 60)
	markers, err := d.Detect([]Segment{
		{Start: 0, Text: "Only one.", Vector: unit(0)},
	})
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	if len(markers) != 1 {
		t.Fatalf("got %d markers, want 1", len(markers))
	}
	if markers[0].Time != "00:00" {
		t.Errorf("marker time = %q, want 00:00", markers[0].Time)
	}
}

func TestDetectNoChangeAboveThreshold(t *testing.T) {
	d := NewDetector(0.65, 60)

	// All segments nearly identical: only the first marker
	segments := []Segment{
		{Start: 0, Text: "a", Vector: unit(0)},
		{Start: 10 * time.Second, Text: "b", Vector: unit(0.01)},
		{Start: 20 * time.Second, Text: "c", Vector: unit(0.02)},
	}

	markers, err := d.Detect(segments)
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	if len(markers) != 1 {
		t.Errorf("got %d markers, want 1", len(markers))
	}
}

func TestDetectMarkerCountBounds(t *testing.T) {
	d := NewDetector(0.99, 60)

	// Aggressive threshold: every segment becomes a marker, never more
	// than len(segments)
	segments := []Segment{
		{Start: 0, Text: "a", Vector: unit(0)},
		{Start: 10 * time.Second, Text: "b", Vector: unit(1.0)},
		{Start: 20 * time.Second, Text: "c", Vector: unit(2.0)},
	}

	markers, err := d.Detect(segments)
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	if len(markers) < 1 || len(markers) > len(segments) {
		t.Errorf("got %d markers, want between 1 and %d", len(markers), len(segments))
	}
	if len(markers) != 3 {
		t.Errorf("got %d markers, want 3 with threshold 0.99", len(markers))
	}
}

func TestDetectIdempotent(t *testing.T) {
	d := NewDetector(0.65, 60)
	segments := []Segment{
		{Start: 0, Text: "Intro.", Vector: unit(0)},
		{Start: 30 * time.Second, Text: "New topic.", Vector: unit(1.5)},
	}

	first, err := d.Detect(segments)
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	second, err := d.Detect(segments)
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Detect() not idempotent: %v vs %v", first, second)
	}
}

func TestDetectErrors(t *testing.T) {
	d := NewDetector(0.65, 60)

	if _, err := d.Detect(nil); err == nil {
		t.Error("Detect(nil) should fail")
	}

	mismatched := []Segment{
		{Start: 0, Text: "a", Vector: []float32{1, 0}},
		{Start: 10 * time.Second, Text: "b", Vector: []float32{1, 0, 0}},
	}
	if _, err := d.Detect(mismatched); err == nil {
		t.Error("Detect() with mismatched dimensions should fail")
	}
}

func TestLabelTruncation(t *testing.T) {
	d := NewDetector(0.65, 60)

	long := strings.Repeat("a", 70)
	got := d.label(long)
	if got != strings.Repeat("a", 60)+"..." {
		t.Errorf("label() = %q, want 60 chars plus ellipsis", got)
	}
}

func TestLabelMultibyteSafe(t *testing.T) {
	d := NewDetector(0.65, 60)

	got := d.label(strings.Repeat("é", 61))
	if !utf8.ValidString(got) {
		t.Errorf("label() produced invalid UTF-8: %q", got)
	}
	if got != strings.Repeat("é", 60)+"..." {
		t.Errorf("label() = %q, want 60 runes plus ellipsis", got)
	}
}

func TestLabelFirstSentenceAndEmpty(t *testing.T) {
	d := NewDetector(0.65, 60)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"first sentence only", "Intro to loops. More detail here.", "Intro to loops..."},
		{"trimmed", "  spaced out  ", "spaced out..."},
		{"empty text", "", "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.label(tt.in); got != tt.want {
				t.Errorf("label(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatTime(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "00:00"},
		{40 * time.Second, "00:40"},
		{125 * time.Second, "02:05"},
		{3700 * time.Second, "61:40"},
	}

	for _, tt := range tests {
		if got := FormatTime(tt.in); got != tt.want {
			t.Errorf("FormatTime(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCosine(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{"identical", []float32{1, 0}, []float32{1, 0}, 1},
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 0},
		{"opposite", []float32{1, 0}, []float32{-1, 0}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Cosine(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("Cosine() = %v, want %v", got, tt.want)
			}
		})
	}

	t.Run("zero vector", func(t *testing.T) {
		if got := Cosine([]float32{0, 0}, []float32{1, 0}); !math.IsNaN(got) {
			t.Errorf("Cosine() = %v, want NaN", got)
		}
	})
}

func TestDetectZeroVectorNoMarker(t *testing.T) {
	d := NewDetector(0.65, 60)

	// A zero embedding has undefined similarity; it must not register as
	// a topic change.
	segments := []Segment{
		{Start: 0, Text: "Intro.", Vector: unit(0)},
		{Start: 15 * time.Second, Text: "Silence.", Vector: []float32{0, 0}},
	}

	markers, err := d.Detect(segments)
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	if len(markers) != 1 {
		t.Errorf("got %d markers, want 1: %v", len(markers), markers)
	}
}
