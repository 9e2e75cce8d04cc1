package mocks

import (
	"context"

	domain "github.com/flagwise/flagwise/pkg/domain/moderation"
	"github.com/stretchr/testify/mock"
)

type Repository struct {
	mock.Mock
}

func (m *Repository) Create(ctx context.Context, result *domain.Result) error {
	args := m.Called(ctx, result)
	return args.Error(0)
}
