package processor

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"semascribe/internal/chapters"
	"semascribe/internal/config"
	"semascribe/internal/history"
	"semascribe/internal/logger"
	"semascribe/internal/summarizer"
	"semascribe/internal/transcriber"
)

type fakeExtractor struct{}

func (f *fakeExtractor) ExtractAudio(ctx context.Context, videoPath, destDir string) (string, error) {
	path := filepath.Join(destDir, "audio.wav")
	if err := os.WriteFile(path, []byte("wav"), 0644); err != nil {
		return "", err
	}
	return path, nil
}

type fakeTranscriber struct{ result *transcriber.Result }

func (f *fakeTranscriber) Transcribe(ctx context.Context, audioPath string) (*transcriber.Result, error) {
	return f.result, nil
}

type fakeSummarizer struct{ summary string }

func (f *fakeSummarizer) Summarize(ctx context.Context, text string, opts summarizer.Options) (string, error) {
	return f.summary, nil
}

func (f *fakeSummarizer) GenerateReport(ctx context.Context, text string) (*summarizer.Report, error) {
	return &summarizer.Report{}, nil
}

type fakeEmbedder struct{ vectors map[string][]float32 }

func (f *fakeEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	return f.vectors[text], nil
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	cfg.Paths.Output = t.TempDir()
	cfg.Paths.Temp = t.TempDir()
	return cfg
}

func TestSummarizePipeline(t *testing.T) {
	cfg := testConfig(t)

	deps := Deps{
		Extractor: &fakeExtractor{},
		Transcriber: &fakeTranscriber{result: &transcriber.Result{
			Segments: []transcriber.Segment{
				{Start: 0, Text: " i love PITON programming."},
				{Start: 10 * time.Second, Text: " it is is great."},
			},
		}},
		Summarizer: &fakeSummarizer{summary: "A tutorial about Python."},
	}

	p := New(cfg, deps, logger.New("error"))

	result, err := p.Summarize(context.Background(), "/videos/lesson.mp4")
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}

	// Corrections applied before the summary call: typo fix, dedup,
	// capitalization
	want := "I love Python programming. It is great."
	if result.Transcription != want {
		t.Errorf("Transcription = %q, want %q", result.Transcription, want)
	}
	if result.Summary != "A tutorial about Python." {
		t.Errorf("Summary = %q", result.Summary)
	}

	data, err := os.ReadFile(result.TranscriptionPath)
	if err != nil {
		t.Fatalf("transcription file not written: %v", err)
	}
	if string(data) != want {
		t.Errorf("transcription file = %q", string(data))
	}

	if !strings.HasPrefix(filepath.Base(result.SummaryPath), "summary_") {
		t.Errorf("summary path = %q, want summary_<ts>.txt", result.SummaryPath)
	}
	if _, err := os.ReadFile(result.SummaryPath); err != nil {
		t.Errorf("summary file not written: %v", err)
	}

	// Temp audio cleaned up
	if _, err := os.Stat(filepath.Join(cfg.Paths.Temp, "audio.wav")); !os.IsNotExist(err) {
		t.Error("temp audio file not cleaned up")
	}
}

func TestSummarizeRecordsRun(t *testing.T) {
	cfg := testConfig(t)
	cfg.Paths.History = filepath.Join(t.TempDir(), "history.db")

	store, err := history.Open(cfg.Paths.History)
	if err != nil {
		t.Fatalf("history.Open() error = %v", err)
	}
	defer store.Close()

	deps := Deps{
		Extractor: &fakeExtractor{},
		Transcriber: &fakeTranscriber{result: &transcriber.Result{
			Segments: []transcriber.Segment{
				{Start: 0, Text: "Hello world."},
			},
		}},
		Summarizer: &fakeSummarizer{summary: "Greeting."},
		History:    store,
	}

	p := New(cfg, deps, logger.New("error"))

	ctx := context.Background()
	if _, err := p.Summarize(ctx, "/videos/lesson.mp4"); err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}

	// The watcher relies on this record to skip already-handled videos,
	// so one-shot runs must leave it behind too.
	done, err := store.Processed(ctx, "/videos/lesson.mp4", "summarize")
	if err != nil {
		t.Fatalf("Processed() error = %v", err)
	}
	if !done {
		t.Error("run not recorded in history")
	}

	done, err = store.Processed(ctx, "/videos/lesson.mp4", "chapters")
	if err != nil {
		t.Fatalf("Processed() error = %v", err)
	}
	if done {
		t.Error("chapters run recorded by a summarize pipeline")
	}
}

func TestChaptersPipeline(t *testing.T) {
	cfg := testConfig(t)

	segments := []transcriber.Segment{
		{Start: 0, Text: "Intro to loops."},
		{Start: 12 * time.Second, Text: "Still on loops."},
		{Start: 40 * time.Second, Text: "Now let's talk about files."},
	}

	deps := Deps{
		Extractor:   &fakeExtractor{},
		Transcriber: &fakeTranscriber{result: &transcriber.Result{Segments: segments}},
		Embedder: &fakeEmbedder{vectors: map[string][]float32{
			"Intro to loops.":             {1, 0},
			"Still on loops.":             {0.95, 0.31},  // sim to prev well above 0.65
			"Now let's talk about files.": {0.31, -0.95}, // sim to prev below 0.65
		}},
	}

	p := New(cfg, deps, logger.New("error"))

	result, err := p.Chapters(context.Background(), "/videos/lesson.mp4")
	if err != nil {
		t.Fatalf("Chapters() error = %v", err)
	}

	want := []chapters.Marker{
		{Time: "00:00", Label: "Intro to loops..."},
		{Time: "00:40", Label: "Now let's talk about files..."},
	}
	if len(result.Markers) != len(want) {
		t.Fatalf("got %d markers, want %d: %v", len(result.Markers), len(want), result.Markers)
	}
	for i := range want {
		if result.Markers[i] != want[i] {
			t.Errorf("marker %d = %v, want %v", i, result.Markers[i], want[i])
		}
	}

	data, err := os.ReadFile(result.OutputPath)
	if err != nil {
		t.Fatalf("timestamps file not written: %v", err)
	}
	if !strings.Contains(string(data), `"time": "00:40"`) {
		t.Errorf("timestamps file content:\n%s", string(data))
	}
}
