package repository

import (
	"context"
	"fmt"

	"github.com/flagwise/flagwise/pkg/domain/moderation"
	"gorm.io/gorm"
)

type ModerationResultRepository struct {
	db *gorm.DB
}

func NewModerationResultRepository(db *gorm.DB) moderation.Repository {
	return &ModerationResultRepository{
		db: db,
	}
}

func (r *ModerationResultRepository) Create(ctx context.Context, result *moderation.Result) error {
	if err := r.db.WithContext(ctx).Create(result).Error; err != nil {
		return fmt.Errorf("failed to store moderation result: %w", err)
	}
	return nil
}
