package chapters

import (
	"encoding/json"
	"fmt"
	"os"
)

// WriteJSON saves markers as an indented JSON array of {time, label}
// objects.
func WriteJSON(path string, markers []Marker) error {
	data, err := json.MarshalIndent(markers, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal markers: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}
