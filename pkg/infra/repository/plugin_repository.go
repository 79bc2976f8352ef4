package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/NeuralTrust/InstallGate/pkg/domain"
	"github.com/NeuralTrust/InstallGate/pkg/domain/plugin"
	"gorm.io/gorm"
)

type pluginRepository struct {
	db *gorm.DB
}

func NewPluginRepository(db *gorm.DB) plugin.Repository {
	return &pluginRepository{
		db: db,
	}
}

func (r *pluginRepository) FindByCode(ctx context.Context, code string) (*plugin.Plugin, error) {
	var entity plugin.Plugin
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("plugin", code)
		}
		return nil, fmt.Errorf("failed to find plugin %s: %w", code, err)
	}
	return &entity, nil
}

func (r *pluginRepository) List(ctx context.Context) ([]plugin.Plugin, error) {
	var entities []plugin.Plugin
	if err := r.db.WithContext(ctx).Order("code ASC").Find(&entities).Error; err != nil {
		return nil, fmt.Errorf("failed to list plugins: %w", err)
	}
	return entities, nil
}

func (r *pluginRepository) Save(ctx context.Context, entity *plugin.Plugin) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

func (r *pluginRepository) Update(ctx context.Context, entity *plugin.Plugin) error {
	result := r.db.WithContext(ctx).Model(entity).Select("*").Omit("created_at").Updates(entity)
	if result.Error != nil {
		return fmt.Errorf("failed to update plugin %s: %w", entity.Code, result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("plugin", entity.Code)
	}
	return nil
}

func (r *pluginRepository) Transaction(
	ctx context.Context,
	fn func(ctx context.Context, repo plugin.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &pluginRepository{db: tx})
	})
}
