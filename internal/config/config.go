package config

import (
	"fmt"
	"os"
	"strings"
)

type Config struct {
	Whisper     WhisperConfig     `yaml:"whisper"`
	FFmpeg      FFmpegConfig      `yaml:"ffmpeg"`
	Gemini      GeminiConfig      `yaml:"gemini"`
	Chapters    ChaptersConfig    `yaml:"chapters"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type WhisperConfig struct {
	ModelPath  string `yaml:"model_path"`
	BinaryPath string `yaml:"binary_path"`
	Language   string `yaml:"language"`
	Prompt     string `yaml:"prompt"`
	Threads    int    `yaml:"threads"`
	UseGPU     bool   `yaml:"use_gpu"`
}

type FFmpegConfig struct {
	BinaryPath string `yaml:"binary_path"`
	SampleRate int    `yaml:"sample_rate"`
}

type GeminiConfig struct {
	Model          string   `yaml:"model"`
	EmbeddingModel string   `yaml:"embedding_model"`
	APIKeys        []string `yaml:"api_keys"`
}

type ChaptersConfig struct {
	SimilarityThreshold float64 `yaml:"similarity_threshold"`
	MaxLabelLength      int     `yaml:"max_label_length"`
}

type PathsConfig struct {
	Input   string `yaml:"input"`
	Output  string `yaml:"output"`
	Temp    string `yaml:"temp"`
	History string `yaml:"history"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

func (c *Config) Validate() error {
	if c.Whisper.BinaryPath == "" {
		c.Whisper.BinaryPath = "whisper-cli"
	}
	if c.Whisper.Language == "" {
		c.Whisper.Language = "en"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 4
	}

	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}
	if c.FFmpeg.SampleRate == 0 {
		c.FFmpeg.SampleRate = 16000
	}

	if len(c.Gemini.APIKeys) == 0 {
		if key := os.Getenv("GEMINI_API_KEY"); key != "" {
			c.Gemini.APIKeys = []string{key}
		}
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Gemini.EmbeddingModel == "" {
		c.Gemini.EmbeddingModel = "gemini-embedding-001"
	}

	if c.Chapters.SimilarityThreshold == 0 {
		c.Chapters.SimilarityThreshold = 0.65
	}
	if c.Chapters.SimilarityThreshold < -1 || c.Chapters.SimilarityThreshold > 1 {
		return fmt.Errorf("chapters.similarity_threshold must be in [-1, 1]")
	}
	if c.Chapters.MaxLabelLength == 0 {
		c.Chapters.MaxLabelLength = 60
	}

	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "."
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = os.TempDir()
	}
	if c.Paths.History == "" {
		c.Paths.History = "data/history.db"
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}

	return nil
}

// RequireWhisper checks the fields only transcription needs, so commands
// that never touch audio can run without a Whisper model on disk.
func (c *Config) RequireWhisper() error {
	if c.Whisper.ModelPath == "" {
		return fmt.Errorf("whisper.model_path is required for transcription")
	}
	return nil
}

// RequireAPIKeys reports a usable error when no Gemini key is configured,
// naming both the config field and the environment fallback.
func (c *Config) RequireAPIKeys() error {
	if len(c.Gemini.APIKeys) == 0 {
		return fmt.Errorf("no Gemini API key: set gemini.api_keys in the config file or the GEMINI_API_KEY environment variable")
	}
	for _, k := range c.Gemini.APIKeys {
		if strings.TrimSpace(k) == "" {
			return fmt.Errorf("gemini.api_keys contains an empty key")
		}
	}
	return nil
}
