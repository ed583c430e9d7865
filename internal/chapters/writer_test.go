package chapters

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "semantic_timestamps.json")

	markers := []Marker{
		{Time: "00:00", Label: "Intro to loops..."},
		{Time: "00:40", Label: "Now let's talk about files..."},
	}

	if err := WriteJSON(path, markers); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	got := string(data)
	if !strings.Contains(got, `"time": "00:40"`) {
		t.Errorf("output missing time field:\n%s", got)
	}
	if !strings.Contains(got, `"label": "Intro to loops..."`) {
		t.Errorf("output missing label field:\n%s", got)
	}
}
