//go:generate mockery --name QuestionService --output ./mocks --outpkg mocks --case=underscore --structname MockQuestionService --filename mock_question_service.go
package service

import (
	"context"
	"errors"

	"go_5_milestone_keep/internal/config"
	"go_5_milestone_keep/internal/middleware"
	"go_5_milestone_keep/internal/model"
	"go_5_milestone_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QuestionService は設問カタログの管理と該当設問の検索を提供します
// 月齢マッチング (バンド判定) はここに集約し、各呼び出し元で再実装しない
type QuestionService interface {
	PostQuestion(ctx context.Context, req *model.PostQuestionRequest) (*model.Question, error)
	GetQuestion(ctx context.Context, questionID uuid.UUID) (*model.Question, error)
	GetQuestions(ctx context.Context) ([]*model.Question, error)
	GetApplicableQuestions(ctx context.Context, ageMonths int) ([]*model.Question, error)
	PutQuestion(ctx context.Context, questionID uuid.UUID, req *model.PutQuestionRequest) (*model.Question, error)
}

type questionService struct {
	db           *gorm.DB
	questionRepo repository.QuestionRepository
	respRepo     repository.ResponseRepository
	cfg          *config.Config
}

func NewQuestionService(db *gorm.DB, questionRepo repository.QuestionRepository, respRepo repository.ResponseRepository, cfg *config.Config) QuestionService {
	return &questionService{
		db:           db,
		questionRepo: questionRepo,
		respRepo:     respRepo,
		cfg:          cfg,
	}
}

func (s *questionService) PostQuestion(ctx context.Context, req *model.PostQuestionRequest) (*model.Question, error) {
	logger := middleware.GetLogger(ctx)

	minAge := *req.MinAgeMonths
	maxAge := *req.MaxAgeMonths
	if minAge > maxAge {
		return nil, model.NewAppError("VALIDATION_ERROR", "対象月齢の下限が上限を超えています。", "min_age_months", model.ErrInvalidInput)
	}

	question := &model.Question{
		QuestionID:   uuid.New(),
		Domain:       req.Domain,
		Text:         req.Text,
		MinAgeMonths: minAge,
		MaxAgeMonths: maxAge,
		OrderIndex:   req.OrderIndex,
		IsActive:     true,
		Feedback:     req.Feedback,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.questionRepo.Create(ctx, tx, question); err != nil {
			logger.Error("Error creating question in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "設問の作成に失敗しました。", "", model.ErrInternalServer)
		}
		return nil // コミット
	})
	if err != nil {
		return nil, err
	}

	return question, nil
}

func (s *questionService) GetQuestion(ctx context.Context, questionID uuid.UUID) (*model.Question, error) {
	question, err := s.questionRepo.FindByID(ctx, s.db, questionID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("QUESTION_NOT_FOUND", "設問が見つかりません。", "question_id", model.ErrNotFound)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "設問の取得に失敗しました。", "", err)
	}
	return question, nil
}

func (s *questionService) GetQuestions(ctx context.Context) ([]*model.Question, error) {
	questions, err := s.questionRepo.FindAll(ctx, s.db)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "設問一覧の取得に失敗しました。", "", err)
	}
	return questions, nil
}

func (s *questionService) GetApplicableQuestions(ctx context.Context, ageMonths int) ([]*model.Question, error) {
	logger := middleware.GetLogger(ctx).With("age_months", ageMonths)

	// 月齢0はバンド [0, n] を持つ設問にそのままマッチさせる。
	// (かつての「新生児は月齢1に読み替える」措置は廃止。0始まりのバンドを定義すること)
	if ageMonths < 0 {
		return nil, model.NewAppError("VALIDATION_ERROR", "月齢は0以上で指定してください。", "age_months", model.ErrInvalidInput)
	}

	questions, err := s.questionRepo.FindApplicable(ctx, s.db, ageMonths, s.cfg.App.ApplicableLimit)
	if err != nil {
		logger.Error("Failed to find applicable questions from repository", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "該当設問の取得に失敗しました。", "", err)
	}

	logger.Info("Successfully retrieved applicable questions", "count", len(questions))
	return questions, nil
}

func (s *questionService) PutQuestion(ctx context.Context, questionID uuid.UUID, req *model.PutQuestionRequest) (*model.Question, error) {
	logger := middleware.GetLogger(ctx).With("question_id", questionID)

	var updatedQuestion *model.Question

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		question, err := s.questionRepo.FindByID(ctx, tx, questionID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("QUESTION_NOT_FOUND", "設問が見つかりません。", "question_id", model.ErrNotFound)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "設問の取得に失敗しました。", "", err)
		}

		// 回答済みの設問は意味内容を変更できない (過去の回答の意味が変わってしまうため)。
		// is_active / order_index のみ変更可。
		contentEdit := req.Domain != nil || req.Text != nil || req.MinAgeMonths != nil || req.MaxAgeMonths != nil || req.Feedback != nil
		if contentEdit {
			answered, err := s.respRepo.ExistsForQuestion(ctx, tx, questionID)
			if err != nil {
				logger.Error("Error checking responses for question", "error", err)
				return model.NewAppError("INTERNAL_SERVER_ERROR", "設問の更新チェックに失敗しました。", "", err)
			}
			if answered {
				return model.NewAppError("QUESTION_LOCKED", "回答済みの設問は内容を変更できません。", "", model.ErrConflict)
			}
		}

		// 更新後のバンドが不正にならないか検査
		newMin := question.MinAgeMonths
		newMax := question.MaxAgeMonths
		if req.MinAgeMonths != nil {
			newMin = *req.MinAgeMonths
		}
		if req.MaxAgeMonths != nil {
			newMax = *req.MaxAgeMonths
		}
		if newMin > newMax {
			return model.NewAppError("VALIDATION_ERROR", "対象月齢の下限が上限を超えています。", "min_age_months", model.ErrInvalidInput)
		}

		updates := make(map[string]interface{})
		if req.Domain != nil {
			updates["domain"] = *req.Domain
		}
		if req.Text != nil {
			updates["text"] = *req.Text
		}
		if req.MinAgeMonths != nil {
			updates["min_age_months"] = newMin
		}
		if req.MaxAgeMonths != nil {
			updates["max_age_months"] = newMax
		}
		if req.OrderIndex != nil {
			updates["order_index"] = *req.OrderIndex
		}
		if req.IsActive != nil {
			updates["is_active"] = *req.IsActive
		}
		if req.Feedback != nil {
			updates["feedback_positive"] = req.Feedback.Positive
			updates["feedback_neutral"] = req.Feedback.Neutral
			updates["feedback_negative"] = req.Feedback.Negative
		}

		if len(updates) > 0 {
			if err := s.questionRepo.Update(ctx, tx, questionID, updates); err != nil {
				if errors.Is(err, model.ErrNotFound) {
					return model.NewAppError("QUESTION_NOT_FOUND", "設問が見つかりません。", "question_id", model.ErrNotFound)
				}
				logger.Error("Error updating question in transaction", "error", err)
				return model.NewAppError("INTERNAL_SERVER_ERROR", "設問の更新に失敗しました。", "", err)
			}
		}

		// 更新後のデータをトランザクション内で取得
		updatedQuestion, err = s.questionRepo.FindByID(ctx, tx, questionID)
		if err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "更新後の設問の取得に失敗しました。", "", err)
		}
		return nil // コミット
	})
	if err != nil {
		return nil, err
	}

	return updatedQuestion, nil
}
