package mocks

import (
	"context"

	domain "github.com/flagwise/flagwise/pkg/domain/apikey"
	"github.com/stretchr/testify/mock"
)

type Finder struct {
	mock.Mock
}

func (m *Finder) Find(ctx context.Context, key string) (*domain.APIKey, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	entity, _ := args.Get(0).(*domain.APIKey)
	return entity, args.Error(1)
}
