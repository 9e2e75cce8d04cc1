package apikey

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned when no key row matches the submitted value.
var ErrKeyNotFound = errors.New("api key not found")

//go:generate mockery --name=Repository --dir=. --output=./mocks --filename=apikey_repository_mock.go --case=underscore --with-expecter
type Repository interface {
	GetByKey(ctx context.Context, key string) (*APIKey, error)
}
