//go:generate mockery --name ResponseService --output ./mocks --outpkg mocks --case=underscore --structname MockResponseService --filename mock_response_service.go
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

// ResponseService は回答のUPSERTと閲覧を提供します。
// 回答の保存とセッション進捗の再集計は同一トランザクションで行う
// (別書き込みにすると進捗が古くなる競合があるため)。
type ResponseService interface {
	PostResponse(ctx context.Context, tenantID uuid.UUID, req *model.PostResponseRequest) (*model.Response, error)
	GetResponses(ctx context.Context, tenantID, childID uuid.UUID) ([]*model.Response, error)
}

type responseService struct {
	db           *gorm.DB
	childRepo    repository.ChildRepository
	questionRepo repository.QuestionRepository
	respRepo     repository.ResponseRepository
	sessionRepo  repository.SessionRepository
}

func NewResponseService(db *gorm.DB, childRepo repository.ChildRepository, questionRepo repository.QuestionRepository, respRepo repository.ResponseRepository, sessionRepo repository.SessionRepository) ResponseService {
	return &responseService{
		db:           db,
		childRepo:    childRepo,
		questionRepo: questionRepo,
		respRepo:     respRepo,
		sessionRepo:  sessionRepo,
	}
}

func (s *responseService) PostResponse(ctx context.Context, tenantID uuid.UUID, req *model.PostResponseRequest) (*model.Response, error) {
	logger := middleware.GetLogger(ctx).With("tenant_id", tenantID, "child_id", req.ChildID, "question_id", req.QuestionID)

	var saved *model.Response

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. 所有確認 (子どもがこのテナントのものか)
		child, err := s.childRepo.FindByID(ctx, tx, tenantID, req.ChildID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("CHILD_NOT_FOUND", "対象の子どもが見つかりません。", "child_id", model.ErrNotFound)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "回答の保存に失敗しました。", "", err)
		}

		// 2. 設問の存在確認
		question, err := s.questionRepo.FindByID(ctx, tx, req.QuestionID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("QUESTION_NOT_FOUND", "設問が見つかりません。", "question_id", model.ErrNotFound)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "回答の保存に失敗しました。", "", err)
		}
		if !question.IsActive {
			return model.NewAppError("QUESTION_NOT_FOUND", "設問が見つかりません。", "question_id", model.ErrNotFound)
		}

		now := time.Now()
		answerValue := model.AnswerValue(*req.AnswerValue)

		// 3. UPSERT: 既存があれば上書き、なければ作成
		existing, err := s.respRepo.FindByChildAndQuestion(ctx, tx, req.ChildID, req.QuestionID)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			logger.Error("Error finding existing response in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "回答の保存に失敗しました。", "", err)
		}

		if existing == nil {
			saved = &model.Response{
				ResponseID:  uuid.New(),
				TenantID:    tenantID,
				ChildID:     req.ChildID,
				QuestionID:  req.QuestionID,
				AnswerValue: answerValue,
				AnswerText:  req.AnswerText,
				AnsweredAt:  now,
			}
			if createErr := s.respRepo.Create(ctx, tx, saved); createErr != nil {
				logger.Error("Error creating response", "error", createErr)
				if errors.Is(createErr, gorm.ErrDuplicatedKey) {
					return model.NewAppError("RESPONSE_CONFLICT", "回答の保存が競合しました。再度お試しください。", "", model.ErrConflict)
				}
				return model.NewAppError("INTERNAL_SERVER_ERROR", "回答の保存に失敗しました。", "", createErr)
			}
			logger.Info("Response created", "response_id", saved.ResponseID)
		} else {
			existing.AnswerValue = answerValue
			existing.AnswerText = req.AnswerText
			existing.AnsweredAt = now
			if updateErr := s.respRepo.Update(ctx, tx, existing); updateErr != nil {
				logger.Error("Error overwriting existing response", "error", updateErr)
				return model.NewAppError("INTERNAL_SERVER_ERROR", "回答の保存に失敗しました。", "", updateErr)
			}
			saved = existing
			logger.Info("Response overwritten", "response_id", saved.ResponseID)
		}

		// 4. アクティブなセッションの進捗を同期的に再集計
		if err := s.recountActiveSession(ctx, tx, tenantID, child); err != nil {
			return err
		}

		return nil // コミット
	})
	if err != nil {
		return nil, err
	}

	return saved, nil
}

// recountActiveSession は回答の真の集合から answered_count を数え直します。
// インクリメントではなく再集計にすることで、キャッシュが実態から乖離しない。
func (s *responseService) recountActiveSession(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID, child *model.Child) error {
	logger := middleware.GetLogger(ctx)

	session, err := s.sessionRepo.FindActiveByChild(ctx, tx, tenantID, child.ChildID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			// アクティブなセッションがなければ何もしない
			return nil
		}
		logger.Error("Error finding active session for recount", "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "セッション進捗の更新に失敗しました。", "", err)
	}

	ageMonths := model.AgeInMonths(child.BirthDate, time.Now())
	applicable, err := s.questionRepo.FindApplicable(ctx, tx, ageMonths, 0)
	if err != nil {
		logger.Error("Error finding applicable questions for recount", "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "セッション進捗の更新に失敗しました。", "", err)
	}
	answeredIDs, err := s.respRepo.ListAnsweredQuestionIDs(ctx, tx, child.ChildID)
	if err != nil {
		logger.Error("Error listing answered ids for recount", "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "セッション進捗の更新に失敗しました。", "", err)
	}

	answeredSet := make(map[uuid.UUID]struct{}, len(answeredIDs))
	for _, id := range answeredIDs {
		answeredSet[id] = struct{}{}
	}
	count := 0
	for _, q := range applicable {
		if _, ok := answeredSet[q.QuestionID]; ok {
			count++
		}
	}

	session.AnsweredCount = count
	if session.TotalQuestions > 0 && count >= session.TotalQuestions {
		now := time.Now()
		session.Status = model.SessionCompleted
		session.CompletedAt = &now
		logger.Info("Session completed by recount", "session_id", session.SessionID, "answered_count", count)
	}

	if err := s.sessionRepo.Update(ctx, tx, session); err != nil {
		logger.Error("Error updating session after recount", "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "セッション進捗の更新に失敗しました。", "", err)
	}
	return nil
}

func (s *responseService) GetResponses(ctx context.Context, tenantID, childID uuid.UUID) ([]*model.Response, error) {
	if _, err := s.childRepo.FindByID(ctx, s.db, tenantID, childID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("CHILD_NOT_FOUND", "対象の子どもが見つかりません。", "child_id", model.ErrNotFound)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "回答一覧の取得に失敗しました。", "", err)
	}

	responses, err := s.respRepo.FindByChild(ctx, s.db, tenantID, childID)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "回答一覧の取得に失敗しました。", "", err)
	}
	return responses, nil
}
