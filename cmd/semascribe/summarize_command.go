package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"semascribe/internal/processor"
	"semascribe/internal/summarizer"
)

const transcriptPreviewLimit = 1000

func newSummarizeCommand(app *appContext) *cobra.Command {
	var docxFlag bool

	cmd := &cobra.Command{
		Use:   "summarize [video]",
		Short: "Transcribe a video, correct the transcript, and summarize it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := app.ensure()
			if err != nil {
				return err
			}
			if err := cfg.RequireWhisper(); err != nil {
				return err
			}
			if err := cfg.RequireAPIKeys(); err != nil {
				return err
			}

			videoPath, err := resolveVideoPath(args)
			if err != nil {
				return err
			}
			if err := ensureDirectories(cfg); err != nil {
				return fmt.Errorf("create directories: %w", err)
			}

			ctx := cmd.Context()
			deps, err := app.buildDeps(ctx, cfg, log, depOptions{history: true})
			if err != nil {
				return err
			}
			defer deps.History.Close()

			proc := processor.New(cfg, deps, log)
			result, err := proc.Summarize(ctx, videoPath)
			if err != nil {
				return err
			}

			fmt.Println("\n=== Cleaned Transcription ===")
			fmt.Println(previewText(result.Transcription, transcriptPreviewLimit))

			fmt.Println("\n=== Final Summary ===")
			fmt.Println(result.Summary)

			fmt.Printf("\nSaved: %s\n", result.TranscriptionPath)
			fmt.Printf("Saved: %s\n", result.SummaryPath)

			if docxFlag {
				docxPath := strings.TrimSuffix(result.SummaryPath, ".txt") + ".docx"
				title := strings.TrimSuffix(filepath.Base(videoPath), filepath.Ext(videoPath))
				if err := summarizer.SaveDocx(title, result.Summary, docxPath); err != nil {
					return fmt.Errorf("export docx: %w", err)
				}
				fmt.Printf("Saved: %s\n", docxPath)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&docxFlag, "docx", false, "Also export the summary as a .docx file")

	return cmd
}

// resolveVideoPath takes the path from args or prompts for it, then
// verifies the file exists.
func resolveVideoPath(args []string) (string, error) {
	var path string
	if len(args) == 1 {
		path = args[0]
	} else {
		fmt.Print("Enter path to local video file: ")
		scanner := bufio.NewScanner(os.Stdin)
		if scanner.Scan() {
			path = strings.TrimSpace(scanner.Text())
		}
	}

	if path == "" {
		return "", fmt.Errorf("no video path given")
	}
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("file not found: %s", path)
	}
	return path, nil
}

// previewText truncates long text for terminal display, rune-safe.
func previewText(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}
