package llm

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of LLM task being performed.
type TaskType string

const (
	TaskClassify TaskType = "classify"
	TaskIntent   TaskType = "intent"
	TaskReply    TaskType = "reply"
)

// TaskConfig holds per-task generation parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// Config holds all configuration for the LLM subsystem.
type Config struct {
	Enabled    bool
	LogCalls   bool
	Endpoint   string
	Model      string
	TimeoutMs  int
	MaxRetries int
	Tasks      map[TaskType]TaskConfig
}

// DefaultConfig returns a Config with sensible defaults. The model path is
// disabled by default; every classification then runs rule-based.
func DefaultConfig() Config {
	return Config{
		Enabled:    false,
		LogCalls:   false,
		Endpoint:   "http://localhost:11434",
		Model:      "llama3.2",
		TimeoutMs:  9000,
		MaxRetries: 1,
		Tasks: map[TaskType]TaskConfig{
			TaskClassify: {Temperature: 0.1, MaxTokens: 512, TimeoutMs: 9000},
			TaskIntent:   {Temperature: 0.1, MaxTokens: 256, TimeoutMs: 9000},
			TaskReply:    {Temperature: 0.7, MaxTokens: 1024, TimeoutMs: 20000},
		},
	}
}

// LoadConfig reads LLM configuration from environment variables, falling
// back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("ATARAXIA_LLM_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("ATARAXIA_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("ATARAXIA_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("ATARAXIA_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("ATARAXIA_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("ATARAXIA_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}

	applyTaskTimeoutEnv(&cfg, TaskClassify, "ATARAXIA_LLM_CLASSIFY_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskIntent, "ATARAXIA_LLM_INTENT_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskReply, "ATARAXIA_LLM_REPLY_TIMEOUT_MS")

	return cfg
}

// TaskTimeout returns the effective timeout for a given task type.
func (c Config) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

func applyTaskTimeoutEnv(cfg *Config, task TaskType, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	tc := cfg.Tasks[task]
	tc.TimeoutMs = n
	cfg.Tasks[task] = tc
}
