package mocks

import (
	"context"

	"github.com/flagwise/flagwise/pkg/infra/providers"
	"github.com/stretchr/testify/mock"
)

type Client struct {
	mock.Mock
}

func (m *Client) Classify(
	ctx context.Context,
	config *providers.Config,
	content string,
) (*providers.CompletionResponse, error) {
	args := m.Called(ctx, config, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	resp, _ := args.Get(0).(*providers.CompletionResponse)
	return resp, args.Error(1)
}
