package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/flagwise/flagwise/pkg/domain/apikey"
	"gorm.io/gorm"
)

type ApiKeyRepository struct {
	db *gorm.DB
}

func NewApiKeyRepository(db *gorm.DB) apikey.Repository {
	return &ApiKeyRepository{
		db: db,
	}
}

func (r *ApiKeyRepository) GetByKey(ctx context.Context, key string) (*apikey.APIKey, error) {
	entity := new(apikey.APIKey)
	if err := r.db.WithContext(ctx).
		Where("key = ?", key).
		First(entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apikey.ErrKeyNotFound
		}
		return nil, fmt.Errorf("apikey lookup failed: %w", err)
	}
	return entity, nil
}
