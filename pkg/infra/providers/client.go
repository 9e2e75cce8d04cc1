package providers

import (
	"context"
)

type Config struct {
	Credentials  Credentials            `json:"credentials"`
	Model        string                 `json:"model"`
	MaxTokens    int                    `json:"max_tokens,omitempty"`
	Temperature  float64                `json:"temperature,omitempty"`
	SystemPrompt string                 `json:"system_prompt,omitempty"`
	Options      map[string]interface{} `json:"options,omitempty"`
}

type Credentials struct {
	ApiKey  string `json:"api_key"`
	BaseURL string `json:"base_url,omitempty"`
}

// CompletionResponse carries the provider's textual reply. Response is the
// raw payload the normalizer parses; nothing in it is trusted.
type CompletionResponse struct {
	ID       string `json:"id"`
	Model    string `json:"model"`
	Response string `json:"response"`
	Usage    Usage  `json:"usage"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

//go:generate mockery --name=Client --dir=. --output=./mocks --filename=client_mock.go --case=underscore --with-expecter

type Client interface {
	Classify(ctx context.Context, config *Config, content string) (*CompletionResponse, error)
}
