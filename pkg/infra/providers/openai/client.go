package openai

import (
	"context"
	"fmt"
	"sync"

	"github.com/flagwise/flagwise/pkg/infra/providers"
	"github.com/mitchellh/mapstructure"
	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"github.com/openai/openai-go/v2/shared"
	"golang.org/x/sync/singleflight"
)

const responseFormatJSONObject = "json_object"

type openaiOptions struct {
	ResponseFormat string `mapstructure:"response_format"`
}

type client struct {
	clientPool *sync.Map
	sf         singleflight.Group
}

func NewOpenaiClient() providers.Client {
	return &client{
		clientPool: &sync.Map{},
	}
}

func (c *client) Classify(
	ctx context.Context,
	config *providers.Config,
	content string,
) (*providers.CompletionResponse, error) {
	if config.Credentials.ApiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if config.Model == "" {
		return nil, fmt.Errorf("model is required")
	}

	options := openaiOptions{ResponseFormat: responseFormatJSONObject}
	if len(config.Options) > 0 {
		if err := mapstructure.Decode(config.Options, &options); err != nil {
			options = openaiOptions{ResponseFormat: responseFormatJSONObject}
		}
	}

	openaiClient := c.getOrCreateClient(config.Credentials)

	var messages []openai.ChatCompletionMessageParamUnion
	if config.SystemPrompt != "" {
		messages = append(messages, openai.SystemMessage(config.SystemPrompt))
	}
	messages = append(messages, openai.UserMessage(content))

	params := openai.ChatCompletionNewParams{
		Model:    config.Model,
		Messages: messages,
	}

	if options.ResponseFormat == responseFormatJSONObject {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		}
	}

	if config.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(config.MaxTokens))
	}

	if config.Temperature > 0 {
		params.Temperature = openai.Float(config.Temperature)
	}

	resp, err := openaiClient.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("openAI request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no completions returned")
	}

	return &providers.CompletionResponse{
		ID:       resp.ID,
		Model:    resp.Model,
		Response: resp.Choices[0].Message.Content,
		Usage: providers.Usage{
			PromptTokens:     int(resp.Usage.PromptTokens),
			CompletionTokens: int(resp.Usage.CompletionTokens),
			TotalTokens:      int(resp.Usage.TotalTokens),
		},
	}, nil
}

func (c *client) getOrCreateClient(creds providers.Credentials) *openai.Client {
	poolKey := creds.ApiKey + "|" + creds.BaseURL
	if v, ok := c.clientPool.Load(poolKey); ok {
		if cli, ok := v.(*openai.Client); ok {
			return cli
		}
	}
	v, err, _ := c.sf.Do(poolKey, func() (any, error) {
		if v2, ok := c.clientPool.Load(poolKey); ok {
			return v2, nil
		}
		cli := newSDKClient(creds)
		c.clientPool.Store(poolKey, cli)
		return cli, nil
	})
	if err == nil {
		if cli, ok := v.(*openai.Client); ok {
			return cli
		}
	}
	return newSDKClient(creds)
}

func newSDKClient(creds providers.Credentials) *openai.Client {
	opts := []option.RequestOption{option.WithAPIKey(creds.ApiKey)}
	if creds.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(creds.BaseURL))
	}
	cli := openai.NewClient(opts...)
	return &cli
}
