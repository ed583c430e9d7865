package transcriber

import "context"

// Transcriber converts an audio file into timed transcript segments.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (*Result, error)
}
