//go:generate mockery --name ChildRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_5_milestone_keep/internal/middleware"
	"go_5_milestone_keep/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChildRepository interface {
	Create(ctx context.Context, tx *gorm.DB, child *model.Child) error
	FindByID(ctx context.Context, db *gorm.DB, tenantID, childID uuid.UUID) (*model.Child, error)
	FindByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) ([]*model.Child, error)
	Update(ctx context.Context, tx *gorm.DB, tenantID, childID uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, tenantID, childID uuid.UUID) error
}

type gormChildRepository struct{}

func NewGormChildRepository() ChildRepository {
	return &gormChildRepository{}
}

func (r *gormChildRepository) Create(ctx context.Context, tx *gorm.DB, child *model.Child) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(child)
	if result.Error != nil {
		logger.Error("Error creating child in DB",
			"error", result.Error,
			"tenant_id", child.TenantID.String(),
		)
		return fmt.Errorf("gormChildRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormChildRepository) FindByID(ctx context.Context, db *gorm.DB, tenantID, childID uuid.UUID) (*model.Child, error) {
	var child model.Child
	result := db.WithContext(ctx).Where("tenant_id = ? AND child_id = ?", tenantID, childID).First(&child)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormChildRepository.FindByID: %w", result.Error)
	}
	return &child, nil
}

func (r *gormChildRepository) FindByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) ([]*model.Child, error) {
	var children []*model.Child
	result := db.WithContext(ctx).Where("tenant_id = ?", tenantID).Order("created_at ASC").Find(&children)
	if result.Error != nil {
		return nil, fmt.Errorf("gormChildRepository.FindByTenant: %w", result.Error)
	}
	return children, nil
}

func (r *gormChildRepository) Update(ctx context.Context, tx *gorm.DB, tenantID, childID uuid.UUID, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.Child{}).Where("tenant_id = ? AND child_id = ?", tenantID, childID).Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("gormChildRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormChildRepository) Delete(ctx context.Context, tx *gorm.DB, tenantID, childID uuid.UUID) error {
	result := tx.WithContext(ctx).Where("tenant_id = ?", tenantID).Delete(&model.Child{}, childID)
	if result.Error != nil {
		return fmt.Errorf("gormChildRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
