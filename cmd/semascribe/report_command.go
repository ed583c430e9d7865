package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"semascribe/internal/summarizer"
)

func newReportCommand(app *appContext) *cobra.Command {
	var outputFlag string

	cmd := &cobra.Command{
		Use:   "report [transcript]",
		Short: "Generate the full battery of controllable summaries for a transcript",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := app.ensure()
			if err != nil {
				return err
			}
			if err := cfg.RequireAPIKeys(); err != nil {
				return err
			}

			transcriptPath := "transcript.txt"
			if len(args) == 1 {
				transcriptPath = args[0]
			}

			content, err := os.ReadFile(transcriptPath)
			if err != nil {
				return fmt.Errorf("read transcript: %w", err)
			}

			s := summarizer.New(cfg.Gemini.APIKeys, cfg.Gemini.Model, log)

			report, err := s.GenerateReport(cmd.Context(), string(content))
			if err != nil {
				return err
			}

			fmt.Println(report.Render())

			if err := report.Save(outputFlag); err != nil {
				return err
			}
			fmt.Printf("All summaries saved to %s\n", outputFlag)

			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "summary_results.txt", "Report output file")

	return cmd
}
