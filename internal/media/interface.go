package media

import "context"

// Extractor pulls the audio track out of a video file into a WAV file
// suitable for speech recognition.
type Extractor interface {
	ExtractAudio(ctx context.Context, videoPath, destDir string) (string, error)
}
