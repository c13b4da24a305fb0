package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Generation defaults, used when the corresponding environment variable is
// unset or unparsable.
const (
	DefaultModel           = "gemini-2.5-flash"
	DefaultTopK            = 40
	DefaultTopP            = 0.95
	DefaultTemperature     = 0.7
	DefaultMaxOutputTokens = 20000
	DefaultResponseType    = "application/json"
	DefaultMaxHistory      = 20
)

// LLM holds the generation parameters for the language model and the history
// window applied to chat sessions.
type LLM struct {
	Model           string
	TopK            int
	TopP            float64
	Temperature     float64
	MaxOutputTokens int
	ResponseType    string
	MaxHistory      int
}

// Load reads the LLM configuration from the environment. A .env file in the
// working directory is loaded first when present; real environment variables
// take precedence over it.
func Load() LLM {
	_ = godotenv.Load()
	return LLM{
		Model:           envString("LLM_MODEL", DefaultModel),
		TopK:            envInt("LLM_TOP_K", DefaultTopK),
		TopP:            envFloat("LLM_TOP_P", DefaultTopP),
		Temperature:     envFloat("LLM_TEMPERATURE", DefaultTemperature),
		MaxOutputTokens: envInt("LLM_MAX_OUTPUT_TOKENS", DefaultMaxOutputTokens),
		ResponseType:    envString("LLM_RESPONSE_TYPE", DefaultResponseType),
		MaxHistory:      envInt("LLM_MAX_HISTORY", DefaultMaxHistory),
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}
