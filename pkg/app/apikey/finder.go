package apikey

import (
	"context"

	domain "github.com/flagwise/flagwise/pkg/domain/apikey"
	"github.com/sirupsen/logrus"
)

//go:generate mockery --name=Finder --dir=. --output=./mocks --filename=apikey_finder_mock.go --case=underscore --with-expecter
type Finder interface {
	Find(ctx context.Context, key string) (*domain.APIKey, error)
}

// finder looks keys up fresh on every request. There is deliberately no
// cache in front of the repository: revocation must take effect immediately.
type finder struct {
	repo   domain.Repository
	logger *logrus.Logger
}

func NewFinder(repository domain.Repository, logger *logrus.Logger) Finder {
	return &finder{
		repo:   repository,
		logger: logger,
	}
}

func (f *finder) Find(ctx context.Context, key string) (*domain.APIKey, error) {
	entity, err := f.repo.GetByKey(ctx, key)
	if err != nil {
		f.logger.WithError(err).Debug("apikey lookup failed")
		return nil, err
	}
	return entity, nil
}
