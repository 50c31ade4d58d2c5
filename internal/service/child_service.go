//go:generate mockery --name ChildService --output ./mocks --outpkg mocks --case=underscore --structname MockChildService --filename mock_child_service.go
package service

import (
	"context"
	"errors"
	"time"

	"go_5_milestone_keep/internal/middleware"
	"go_5_milestone_keep/internal/model"
	"go_5_milestone_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const birthDateLayout = "2006-01-02"

type ChildService interface {
	PostChild(ctx context.Context, tenantID uuid.UUID, req *model.PostChildRequest) (*model.Child, error)
	GetChild(ctx context.Context, tenantID, childID uuid.UUID) (*model.Child, error)
	GetChildren(ctx context.Context, tenantID uuid.UUID) ([]*model.Child, error)
	PatchChild(ctx context.Context, tenantID, childID uuid.UUID, req *model.PatchChildRequest) (*model.Child, error)
	DeleteChild(ctx context.Context, tenantID, childID uuid.UUID) error
}

type childService struct {
	db        *gorm.DB
	childRepo repository.ChildRepository
	respRepo  repository.ResponseRepository
}

func NewChildService(db *gorm.DB, childRepo repository.ChildRepository, respRepo repository.ResponseRepository) ChildService {
	return &childService{
		db:        db,
		childRepo: childRepo,
		respRepo:  respRepo,
	}
}

func (s *childService) PostChild(ctx context.Context, tenantID uuid.UUID, req *model.PostChildRequest) (*model.Child, error) {
	logger := middleware.GetLogger(ctx).With("tenant_id", tenantID)

	birthDate, err := time.Parse(birthDateLayout, req.BirthDate)
	if err != nil {
		return nil, model.NewAppError("VALIDATION_ERROR", "生年月日はYYYY-MM-DD形式で入力してください。", "birth_date", model.ErrInvalidInput)
	}
	if birthDate.After(time.Now()) {
		return nil, model.NewAppError("VALIDATION_ERROR", "生年月日に未来の日付は指定できません。", "birth_date", model.ErrInvalidInput)
	}

	child := &model.Child{
		ChildID:   uuid.New(),
		TenantID:  tenantID,
		Name:      req.Name,
		BirthDate: birthDate,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.childRepo.Create(ctx, tx, child); err != nil {
			logger.Error("Error creating child in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "子どもの登録に失敗しました。", "", err)
		}
		return nil // コミット
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Child registered", "child_id", child.ChildID)
	return child, nil
}

func (s *childService) GetChild(ctx context.Context, tenantID, childID uuid.UUID) (*model.Child, error) {
	child, err := s.childRepo.FindByID(ctx, s.db, tenantID, childID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("CHILD_NOT_FOUND", "対象の子どもが見つかりません。", "child_id", model.ErrNotFound)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "子どもの取得に失敗しました。", "", err)
	}
	return child, nil
}

func (s *childService) GetChildren(ctx context.Context, tenantID uuid.UUID) ([]*model.Child, error) {
	children, err := s.childRepo.FindByTenant(ctx, s.db, tenantID)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "子ども一覧の取得に失敗しました。", "", err)
	}
	return children, nil
}

func (s *childService) PatchChild(ctx context.Context, tenantID, childID uuid.UUID, req *model.PatchChildRequest) (*model.Child, error) {
	logger := middleware.GetLogger(ctx).With("tenant_id", tenantID, "child_id", childID)

	var updatedChild *model.Child

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.childRepo.FindByID(ctx, tx, tenantID, childID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("CHILD_NOT_FOUND", "対象の子どもが見つかりません。", "child_id", model.ErrNotFound)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "子どもの更新に失敗しました。", "", err)
		}

		updates := make(map[string]interface{})
		if req.Name != nil {
			updates["name"] = *req.Name
		}
		if req.BirthDate != nil {
			birthDate, err := time.Parse(birthDateLayout, *req.BirthDate)
			if err != nil {
				return model.NewAppError("VALIDATION_ERROR", "生年月日はYYYY-MM-DD形式で入力してください。", "birth_date", model.ErrInvalidInput)
			}
			if birthDate.After(time.Now()) {
				return model.NewAppError("VALIDATION_ERROR", "生年月日に未来の日付は指定できません。", "birth_date", model.ErrInvalidInput)
			}
			updates["birth_date"] = birthDate
		}

		if len(updates) > 0 {
			if err := s.childRepo.Update(ctx, tx, tenantID, childID, updates); err != nil {
				if errors.Is(err, model.ErrNotFound) {
					return model.NewAppError("CHILD_NOT_FOUND", "対象の子どもが見つかりません。", "child_id", model.ErrNotFound)
				}
				logger.Error("Error updating child in transaction", "error", err)
				return model.NewAppError("INTERNAL_SERVER_ERROR", "子どもの更新に失敗しました。", "", err)
			}
		}

		var err error
		updatedChild, err = s.childRepo.FindByID(ctx, tx, tenantID, childID)
		if err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "更新後の子どもの取得に失敗しました。", "", err)
		}
		return nil // コミット
	})
	if err != nil {
		return nil, err
	}

	return updatedChild, nil
}

func (s *childService) DeleteChild(ctx context.Context, tenantID, childID uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("tenant_id", tenantID, "child_id", childID)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.childRepo.FindByID(ctx, tx, tenantID, childID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("CHILD_NOT_FOUND", "対象の子どもが見つかりません。", "child_id", model.ErrNotFound)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "子どもの削除に失敗しました。", "", err)
		}

		// 回答は子どもの削除にカスケードする
		if err := s.respRepo.DeleteByChild(ctx, tx, childID); err != nil {
			logger.Error("Error cascading response deletion", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "子どもの削除に失敗しました。", "", err)
		}

		if err := s.childRepo.Delete(ctx, tx, tenantID, childID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("CHILD_NOT_FOUND", "対象の子どもが見つかりません。", "child_id", model.ErrNotFound)
			}
			logger.Error("Error deleting child in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "子どもの削除に失敗しました。", "", err)
		}

		logger.Info("Child deleted")
		return nil // コミット
	})
}
