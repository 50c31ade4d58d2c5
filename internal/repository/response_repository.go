//go:generate mockery --name ResponseRepository --output ./mocks --outpkg mocks --case=underscore
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

// ResponseRepository は (子ども, 設問) ごとの回答へのアクセスを提供します
type ResponseRepository interface {
	Create(ctx context.Context, tx *gorm.DB, response *model.Response) error
	Update(ctx context.Context, tx *gorm.DB, response *model.Response) error
	FindByChildAndQuestion(ctx context.Context, db *gorm.DB, childID, questionID uuid.UUID) (*model.Response, error)
	FindByChild(ctx context.Context, db *gorm.DB, tenantID, childID uuid.UUID) ([]*model.Response, error)
	// ListAnsweredQuestionIDs は回答済みの設問IDの集合を返します (該当設問との差集合計算用)
	ListAnsweredQuestionIDs(ctx context.Context, db *gorm.DB, childID uuid.UUID) ([]uuid.UUID, error)
	ExistsForQuestion(ctx context.Context, db *gorm.DB, questionID uuid.UUID) (bool, error)
	DeleteByChild(ctx context.Context, tx *gorm.DB, childID uuid.UUID) error
}

type gormResponseRepository struct{}

func NewGormResponseRepository() ResponseRepository {
	return &gormResponseRepository{}
}

func (r *gormResponseRepository) Create(ctx context.Context, tx *gorm.DB, response *model.Response) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(response)
	if result.Error != nil {
		logger.Error("Error creating response in DB",
			"error", result.Error,
			"child_id", response.ChildID.String(),
			"question_id", response.QuestionID.String(),
		)
		return fmt.Errorf("gormResponseRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormResponseRepository) Update(ctx context.Context, tx *gorm.DB, response *model.Response) error {
	// オブジェクト全体を渡して上書き。呼び出し元(Service)で存在確認済みの想定。
	result := tx.WithContext(ctx).Save(response)
	if result.Error != nil {
		return fmt.Errorf("gormResponseRepository.Update: %w", result.Error)
	}
	return nil
}

func (r *gormResponseRepository) FindByChildAndQuestion(ctx context.Context, db *gorm.DB, childID, questionID uuid.UUID) (*model.Response, error) {
	var response model.Response
	result := db.WithContext(ctx).Where("child_id = ? AND question_id = ?", childID, questionID).First(&response)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormResponseRepository.FindByChildAndQuestion: %w", result.Error)
	}
	return &response, nil
}

func (r *gormResponseRepository) FindByChild(ctx context.Context, db *gorm.DB, tenantID, childID uuid.UUID) ([]*model.Response, error) {
	var responses []*model.Response
	result := db.WithContext(ctx).
		Where("tenant_id = ? AND child_id = ?", tenantID, childID).
		Order("answered_at DESC").
		Find(&responses)
	if result.Error != nil {
		return nil, fmt.Errorf("gormResponseRepository.FindByChild: %w", result.Error)
	}
	return responses, nil
}

func (r *gormResponseRepository) ListAnsweredQuestionIDs(ctx context.Context, db *gorm.DB, childID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	result := db.WithContext(ctx).
		Model(&model.Response{}).
		Where("child_id = ?", childID).
		Pluck("question_id", &ids)
	if result.Error != nil {
		return nil, fmt.Errorf("gormResponseRepository.ListAnsweredQuestionIDs: %w", result.Error)
	}
	return ids, nil
}

func (r *gormResponseRepository) ExistsForQuestion(ctx context.Context, db *gorm.DB, questionID uuid.UUID) (bool, error) {
	var count int64
	result := db.WithContext(ctx).Model(&model.Response{}).Where("question_id = ?", questionID).Count(&count)
	if result.Error != nil {
		return false, fmt.Errorf("gormResponseRepository.ExistsForQuestion: %w", result.Error)
	}
	return count > 0, nil
}

func (r *gormResponseRepository) DeleteByChild(ctx context.Context, tx *gorm.DB, childID uuid.UUID) error {
	// 子どもの削除に追従する物理削除 (カスケード)
	result := tx.WithContext(ctx).Where("child_id = ?", childID).Delete(&model.Response{})
	if result.Error != nil {
		return fmt.Errorf("gormResponseRepository.DeleteByChild: %w", result.Error)
	}
	return nil
}
