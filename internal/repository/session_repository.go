//go:generate mockery --name SessionRepository --output ./mocks --outpkg mocks --case=underscore
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

type SessionRepository interface {
	Create(ctx context.Context, tx *gorm.DB, session *model.Session) error
	FindByID(ctx context.Context, db *gorm.DB, tenantID, sessionID uuid.UUID) (*model.Session, error)
	// FindActiveByChild は子どものアクティブなセッションを返します (高々1件)
	FindActiveByChild(ctx context.Context, db *gorm.DB, tenantID, childID uuid.UUID) (*model.Session, error)
	Update(ctx context.Context, tx *gorm.DB, session *model.Session) error
}

type gormSessionRepository struct{}

func NewGormSessionRepository() SessionRepository {
	return &gormSessionRepository{}
}

func (r *gormSessionRepository) Create(ctx context.Context, tx *gorm.DB, session *model.Session) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(session)
	if result.Error != nil {
		logger.Error("Error creating session in DB",
			"error", result.Error,
			"child_id", session.ChildID.String(),
		)
		// 部分ユニークインデックス違反 (同時startの競合) もここを通る
		return fmt.Errorf("gormSessionRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormSessionRepository) FindByID(ctx context.Context, db *gorm.DB, tenantID, sessionID uuid.UUID) (*model.Session, error) {
	var session model.Session
	result := db.WithContext(ctx).Where("tenant_id = ? AND session_id = ?", tenantID, sessionID).First(&session)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormSessionRepository.FindByID: %w", result.Error)
	}
	return &session, nil
}

func (r *gormSessionRepository) FindActiveByChild(ctx context.Context, db *gorm.DB, tenantID, childID uuid.UUID) (*model.Session, error) {
	var session model.Session
	result := db.WithContext(ctx).
		Where("tenant_id = ? AND child_id = ? AND status = ?", tenantID, childID, model.SessionActive).
		First(&session)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormSessionRepository.FindActiveByChild: %w", result.Error)
	}
	return &session, nil
}

func (r *gormSessionRepository) Update(ctx context.Context, tx *gorm.DB, session *model.Session) error {
	// オブジェクト全体を渡して更新。呼び出し元(Service)で存在確認済みの想定。
	result := tx.WithContext(ctx).Save(session)
	if result.Error != nil {
		return fmt.Errorf("gormSessionRepository.Update: %w", result.Error)
	}
	return nil
}
