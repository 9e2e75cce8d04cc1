package mocks

import (
	"context"

	"github.com/flagwise/flagwise/pkg/domain/flag"
	"github.com/stretchr/testify/mock"
)

type Service struct {
	mock.Mock
}

func (m *Service) Moderate(ctx context.Context, content string) []flag.Record {
	args := m.Called(ctx, content)
	records, _ := args.Get(0).([]flag.Record)
	return records
}
