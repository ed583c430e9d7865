package executor

import "context"

// Executor runs external commands (ffmpeg, whisper-cli) and returns
// their stdout. Stderr is folded into the returned error on failure.
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
}
