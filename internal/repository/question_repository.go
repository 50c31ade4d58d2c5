//go:generate mockery --name QuestionRepository --output ./mocks --outpkg mocks --case=underscore
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

// QuestionRepository は設問カタログへのアクセスを提供します
type QuestionRepository interface {
	Create(ctx context.Context, tx *gorm.DB, question *model.Question) error
	FindByID(ctx context.Context, db *gorm.DB, questionID uuid.UUID) (*model.Question, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]*model.Question, error)
	// FindApplicable は月齢がバンド [min_age_months, max_age_months] に含まれる
	// 有効な設問を (min_age_months, order_index, created_at) 順で返します
	FindApplicable(ctx context.Context, db *gorm.DB, ageMonths int, limit int) ([]*model.Question, error)
	Update(ctx context.Context, tx *gorm.DB, questionID uuid.UUID, updates map[string]interface{}) error
}

type gormQuestionRepository struct{}

func NewGormQuestionRepository() QuestionRepository {
	return &gormQuestionRepository{}
}

func (r *gormQuestionRepository) Create(ctx context.Context, tx *gorm.DB, question *model.Question) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(question)
	if result.Error != nil {
		logger.Error("Error creating question in DB",
			"error", result.Error,
			"domain", question.Domain,
		)
		return fmt.Errorf("gormQuestionRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormQuestionRepository) FindByID(ctx context.Context, db *gorm.DB, questionID uuid.UUID) (*model.Question, error) {
	var question model.Question
	result := db.WithContext(ctx).Where("question_id = ?", questionID).First(&question)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormQuestionRepository.FindByID: %w", result.Error)
	}
	return &question, nil
}

func (r *gormQuestionRepository) FindAll(ctx context.Context, db *gorm.DB) ([]*model.Question, error) {
	var questions []*model.Question
	result := db.WithContext(ctx).
		Order("min_age_months ASC, order_index ASC, created_at ASC").
		Find(&questions)
	if result.Error != nil {
		return nil, fmt.Errorf("gormQuestionRepository.FindAll: %w", result.Error)
	}
	return questions, nil
}

func (r *gormQuestionRepository) FindApplicable(ctx context.Context, db *gorm.DB, ageMonths int, limit int) ([]*model.Question, error) {
	var questions []*model.Question
	query := db.WithContext(ctx).
		Where("is_active = ? AND min_age_months <= ? AND max_age_months >= ?", true, ageMonths, ageMonths).
		Order("min_age_months ASC, order_index ASC, created_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	result := query.Find(&questions)
	if result.Error != nil {
		return nil, fmt.Errorf("gormQuestionRepository.FindApplicable: %w", result.Error)
	}
	// カタログが空でもエラーにはせず空リストを返す
	return questions, nil
}

func (r *gormQuestionRepository) Update(ctx context.Context, tx *gorm.DB, questionID uuid.UUID, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.Question{}).Where("question_id = ?", questionID).Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("gormQuestionRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
