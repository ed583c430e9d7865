package summarizer

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// Entry is one generated summary in a report, under its section
// heading.
type Entry struct {
	Section string
	Variant string
	Text    string
}

// Report is the full battery of controllable summaries for one
// transcript, in generation order.
type Report struct {
	Entries []Entry
}

// variant pairs a label with the options that produce it. The battery
// order is fixed so reports are reproducible.
type variant struct {
	section string
	label   string
	opts    Options
}

func (s *implSummarizer) variants() []variant {
	v := []variant{
		{"DEFAULT SUMMARY", "", Options{}},
	}
	for _, q := range s.queries {
		v = append(v, variant{"QUERY-BASED SUMMARIES", q, Options{Query: q}})
	}
	v = append(v,
		variant{"LENGTH-CONTROLLED SUMMARIES", "Short (50 words)", Options{MaxWords: 50}},
		variant{"LENGTH-CONTROLLED SUMMARIES", "Medium (100 words)", Options{MaxWords: 100}},
		variant{"LENGTH-CONTROLLED SUMMARIES", "Long (150 words)", Options{MaxWords: 150}},
		variant{"DOMAIN-SPECIFIC SUMMARIES", "Research Style", Options{Mode: "paper"}},
		variant{"DOMAIN-SPECIFIC SUMMARIES", "News Style", Options{Mode: "news"}},
		variant{"EXTRACTIVE VS ABSTRACTIVE", "Extractive (Key Sentences)", Options{Style: "extractive"}},
		variant{"EXTRACTIVE VS ABSTRACTIVE", "Abstractive (Paraphrased)", Options{Style: "abstractive"}},
		variant{"CONTROLLED SUMMARY", s.control, Options{Control: s.control}},
	)
	return v
}

// GenerateReport runs every variant against the transcript. A failed
// variant is recorded in place so the report keeps its fixed shape.
func (s *implSummarizer) GenerateReport(ctx context.Context, text string) (*Report, error) {
	variants := s.variants()
	report := &Report{Entries: make([]Entry, 0, len(variants))}

	for i, v := range variants {
		s.logger.Info(ctx, "[%d/%d] Generating %s", i+1, len(variants), v.section)

		summary, err := s.Summarize(ctx, text, v.opts)
		if err != nil {
			s.logger.Error(ctx, "Variant %q failed: %v", v.section, err)
			summary = fmt.Sprintf("(generation failed: %v)", err)
		}

		report.Entries = append(report.Entries, Entry{
			Section: v.section,
			Variant: v.label,
			Text:    summary,
		})
	}

	return report, nil
}

// Render formats the report as the plain-text layout used for
// summary_results.txt.
func (r *Report) Render() string {
	var b strings.Builder
	rule := strings.Repeat("=", 50)

	b.WriteString(rule + "\n")
	b.WriteString("SUMMARY RESULTS\n")
	b.WriteString(rule + "\n")

	lastSection := ""
	for _, e := range r.Entries {
		if e.Section != lastSection {
			fmt.Fprintf(&b, "\n%s:\n", e.Section)
			lastSection = e.Section
		}
		if e.Variant != "" {
			fmt.Fprintf(&b, "\n%s:\n", e.Variant)
		}
		b.WriteString(e.Text + "\n")
	}

	return b.String()
}

// Save writes the rendered report to a file.
func (r *Report) Save(path string) error {
	if err := os.WriteFile(path, []byte(r.Render()), 0644); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}
	return nil
}
