//go:generate mockery --name SessionService --output ./mocks --outpkg mocks --case=underscore --structname MockSessionService --filename mock_session_service.go
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

// SessionService は設問バッチの回答セッションを管理します。
// 状態遷移: active -> completed (閾値到達で自動) / active <-> paused (外部操作)。
// completed は終端で、以降の操作は競合として拒否する。
type SessionService interface {
	PostSession(ctx context.Context, tenantID uuid.UUID, req *model.PostSessionRequest) (*model.Session, error)
	GetSession(ctx context.Context, tenantID, sessionID uuid.UUID) (*model.Session, error)
	PutSession(ctx context.Context, tenantID, sessionID uuid.UUID, req *model.PutSessionRequest) (*model.Session, error)
	RecordAnswer(ctx context.Context, tenantID, sessionID uuid.UUID) (*model.Session, error)
}

type sessionService struct {
	db          *gorm.DB
	childRepo   repository.ChildRepository
	sessionRepo repository.SessionRepository
}

func NewSessionService(db *gorm.DB, childRepo repository.ChildRepository, sessionRepo repository.SessionRepository) SessionService {
	return &sessionService{
		db:          db,
		childRepo:   childRepo,
		sessionRepo: sessionRepo,
	}
}

func (s *sessionService) PostSession(ctx context.Context, tenantID uuid.UUID, req *model.PostSessionRequest) (*model.Session, error) {
	logger := middleware.GetLogger(ctx).With("tenant_id", tenantID, "child_id", req.ChildID)

	var created *model.Session

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. 所有確認
		if _, err := s.childRepo.FindByID(ctx, tx, tenantID, req.ChildID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("CHILD_NOT_FOUND", "対象の子どもが見つかりません。", "child_id", model.ErrNotFound)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "セッションの作成に失敗しました。", "", err)
		}

		// 2. アクティブなセッションの重複チェック
		// 同時作成の競合はDBの部分ユニークインデックスが最終的に防ぐ
		if _, err := s.sessionRepo.FindActiveByChild(ctx, tx, tenantID, req.ChildID); err == nil {
			return model.NewAppError("SESSION_CONFLICT", "この子どものアクティブなセッションが既に存在します。", "child_id", model.ErrConflict)
		} else if !errors.Is(err, model.ErrNotFound) {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "セッションの作成に失敗しました。", "", err)
		}

		session := &model.Session{
			SessionID:      uuid.New(),
			TenantID:       tenantID,
			ChildID:        req.ChildID,
			Status:         model.SessionActive,
			TotalQuestions: *req.TotalQuestions,
			AnsweredCount:  0,
			Payload:        req.Payload,
		}
		if err := s.sessionRepo.Create(ctx, tx, session); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// チェック後に別リクエストが先にコミットしたケース
				logger.Warn("Concurrent session start detected, rejecting", "error", err)
				return model.NewAppError("SESSION_CONFLICT", "この子どものアクティブなセッションが既に存在します。", "child_id", model.ErrConflict)
			}
			logger.Error("Error creating session in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "セッションの作成に失敗しました。", "", err)
		}

		created = session
		return nil // コミット
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Session started", "session_id", created.SessionID, "total_questions", created.TotalQuestions)
	return created, nil
}

func (s *sessionService) GetSession(ctx context.Context, tenantID, sessionID uuid.UUID) (*model.Session, error) {
	session, err := s.sessionRepo.FindByID(ctx, s.db, tenantID, sessionID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("SESSION_NOT_FOUND", "セッションが見つかりません。", "session_id", model.ErrNotFound)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "セッションの取得に失敗しました。", "", err)
	}
	return session, nil
}

func (s *sessionService) PutSession(ctx context.Context, tenantID, sessionID uuid.UUID, req *model.PutSessionRequest) (*model.Session, error) {
	logger := middleware.GetLogger(ctx).With("tenant_id", tenantID, "session_id", sessionID)

	var updated *model.Session

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		session, err := s.sessionRepo.FindByID(ctx, tx, tenantID, sessionID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("SESSION_NOT_FOUND", "セッションが見つかりません。", "session_id", model.ErrNotFound)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "セッションの更新に失敗しました。", "", err)
		}

		// completed は終端。新しいバンドの回答は新規セッションで行う。
		if session.IsTerminal() {
			return model.NewAppError("SESSION_COMPLETED", "完了済みのセッションは更新できません。", "", model.ErrConflict)
		}

		if req.Status != nil {
			switch model.SessionStatus(*req.Status) {
			case model.SessionPaused:
				session.Status = model.SessionPaused
			case model.SessionActive:
				session.Status = model.SessionActive
			default:
				// バリデーションで弾かれるはずだが念のため
				return model.NewAppError("VALIDATION_ERROR", "指定できないステータスです。", "status", model.ErrInvalidInput)
			}
		}

		if req.AnsweredQuestions != nil {
			if *req.AnsweredQuestions > session.TotalQuestions {
				return model.NewAppError("VALIDATION_ERROR", "回答済み数が設問総数を超えています。", "answered_questions", model.ErrInvalidInput)
			}
			session.AnsweredCount = *req.AnsweredQuestions
			if session.TotalQuestions > 0 && session.AnsweredCount >= session.TotalQuestions {
				now := time.Now()
				session.Status = model.SessionCompleted
				session.CompletedAt = &now
			}
		}

		if err := s.sessionRepo.Update(ctx, tx, session); err != nil {
			logger.Error("Error updating session in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "セッションの更新に失敗しました。", "", err)
		}

		updated = session
		return nil // コミット
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Session updated", "status", updated.Status, "answered_count", updated.AnsweredCount)
	return updated, nil
}

func (s *sessionService) RecordAnswer(ctx context.Context, tenantID, sessionID uuid.UUID) (*model.Session, error) {
	logger := middleware.GetLogger(ctx).With("tenant_id", tenantID, "session_id", sessionID)

	var updated *model.Session

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		session, err := s.sessionRepo.FindByID(ctx, tx, tenantID, sessionID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("SESSION_NOT_FOUND", "セッションが見つかりません。", "session_id", model.ErrNotFound)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "回答の記録に失敗しました。", "", err)
		}

		switch session.Status {
		case model.SessionCompleted:
			// 完了後の記録は黙殺せず明示的に拒否する
			return model.NewAppError("SESSION_COMPLETED", "完了済みのセッションには回答を記録できません。", "", model.ErrConflict)
		case model.SessionPaused:
			return model.NewAppError("SESSION_PAUSED", "一時停止中のセッションには回答を記録できません。再開してください。", "", model.ErrConflict)
		}

		session.AnsweredCount++
		if session.TotalQuestions > 0 && session.AnsweredCount >= session.TotalQuestions {
			now := time.Now()
			session.Status = model.SessionCompleted
			session.CompletedAt = &now
			logger.Info("Session completed", "answered_count", session.AnsweredCount)
		}

		if err := s.sessionRepo.Update(ctx, tx, session); err != nil {
			logger.Error("Error updating session after answer", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "回答の記録に失敗しました。", "", err)
		}

		updated = session
		return nil // コミット
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}
