package apikey

import (
	"context"
	"testing"

	domain "github.com/flagwise/flagwise/pkg/domain/apikey"
	repoMocks "github.com/flagwise/flagwise/pkg/domain/apikey/mocks"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFinder_Find(t *testing.T) {
	repo := new(repoMocks.Repository)
	finder := NewFinder(repo, logrus.New())

	entity := &domain.APIKey{ID: uuid.New(), Key: "k1", Active: true}
	repo.On("GetByKey", mock.Anything, "k1").Return(entity, nil)

	found, err := finder.Find(context.Background(), "k1")

	require.NoError(t, err)
	assert.Equal(t, entity, found)
}

func TestFinder_FindNotFound(t *testing.T) {
	repo := new(repoMocks.Repository)
	finder := NewFinder(repo, logrus.New())

	repo.On("GetByKey", mock.Anything, "missing").Return(nil, domain.ErrKeyNotFound)

	found, err := finder.Find(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)
	assert.Nil(t, found)
}

// Every call must reach the repository; keys are never cached.
func TestFinder_LooksUpFreshEveryCall(t *testing.T) {
	repo := new(repoMocks.Repository)
	finder := NewFinder(repo, logrus.New())

	entity := &domain.APIKey{ID: uuid.New(), Key: "k1", Active: true}
	repo.On("GetByKey", mock.Anything, "k1").Return(entity, nil)

	for i := 0; i < 3; i++ {
		_, err := finder.Find(context.Background(), "k1")
		require.NoError(t, err)
	}

	repo.AssertNumberOfCalls(t, "GetByKey", 3)
}
