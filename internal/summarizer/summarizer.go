package summarizer

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"semascribe/internal/textproc"
)

const minInputWords = 50

// Summarize produces one summary. Very short inputs are returned
// unchanged, and a local extractive fallback covers model failures so a
// transcript never ends up with no summary at all.
func (s *implSummarizer) Summarize(ctx context.Context, text string, opts Options) (string, error) {
	words := textproc.WordCount(text)
	if opts == (Options{}) && words < minInputWords {
		return text, nil
	}

	maxWords, minWords := lengthBounds(words, opts.MaxWords)
	prompt := buildPrompt(text, opts, maxWords, minWords)

	summary, err := s.callGemini(ctx, prompt)
	if err != nil {
		s.logger.Warn(ctx, "Summarization failed, using extractive fallback: %v", err)
		return FallbackSummary(text), nil
	}

	return textproc.CleanSummary(summary), nil
}

// lengthBounds derives the word budget from the input size: a quarter
// of the input, clamped to [50, 130], with the floor at most 30.
func lengthBounds(inputWords, maxOverride int) (maxWords, minWords int) {
	if maxOverride > 0 {
		maxWords = maxOverride
	} else {
		maxWords = inputWords / 4
		if maxWords < 50 {
			maxWords = 50
		}
		if maxWords > 130 {
			maxWords = 130
		}
	}

	minWords = maxWords / 2
	if minWords > 30 {
		minWords = 30
	}
	return maxWords, minWords
}

func buildPrompt(text string, opts Options, maxWords, minWords int) string {
	var b strings.Builder

	b.WriteString("You are an expert at summarizing tutorial transcripts.\n")
	fmt.Fprintf(&b, "Summarize the transcript below in %d to %d words.\n", minWords, maxWords)

	if opts.Query != "" {
		fmt.Fprintf(&b, "Focus the summary on answering: %s\n", opts.Query)
	}
	switch opts.Mode {
	case "paper":
		b.WriteString("Write in the register of a research paper abstract.\n")
	case "news":
		b.WriteString("Write in the register of a news article lede.\n")
	}
	switch opts.Style {
	case "extractive":
		b.WriteString("Use only sentences taken verbatim from the transcript.\n")
	case "abstractive":
		b.WriteString("Paraphrase the content in your own words.\n")
	}
	if opts.Control != "" {
		fmt.Fprintf(&b, "Constraint: %s\n", opts.Control)
	}

	b.WriteString("Return only the summary text, no preamble.\n")
	b.WriteString("\nTranscript:\n---\n")
	b.WriteString(text)
	b.WriteString("\n---")

	return b.String()
}

// callGemini sends the prompt to Gemini and returns the response text,
// rotating API keys on rate-limit errors.
func (s *implSummarizer) callGemini(ctx context.Context, prompt string) (string, error) {
	attempts := len(s.apiKeys)
	if attempts == 0 {
		return "", fmt.Errorf("no API keys configured")
	}

	var lastErr error

	for range attempts {
		key, keyIndex := s.activeKey()

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			s.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
		if err != nil {
			if isRateLimited(err) {
				s.logger.Warn(ctx, "Key %d rate limited, rotating...", keyIndex+1)
				s.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					text += part.Text
				}
			}
			return text, nil
		}

		return "", fmt.Errorf("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func isRateLimited(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "quota") ||
		strings.Contains(msg, "RESOURCE_EXHAUSTED")
}

// activeKey returns the key to try and its index under the lock.
func (s *implSummarizer) activeKey() (string, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apiKeys[s.currentKey], s.currentKey
}

func (s *implSummarizer) rotateKey() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentKey = (s.currentKey + 1) % len(s.apiKeys)
}

// FallbackSummary builds a simple extractive summary: the first three
// sentences that carry more than five words.
func FallbackSummary(text string) string {
	var key []string
	for _, sentence := range textproc.Sentences(text) {
		if textproc.WordCount(sentence) > 5 {
			key = append(key, sentence)
		}
		if len(key) == 3 {
			break
		}
	}
	return strings.Join(key, " ")
}
