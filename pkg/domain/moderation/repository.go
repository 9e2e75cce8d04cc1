package moderation

import "context"

//go:generate mockery --name=Repository --dir=. --output=./mocks --filename=result_repository_mock.go --case=underscore --with-expecter
type Repository interface {
	Create(ctx context.Context, result *Result) error
}
