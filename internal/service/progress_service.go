//go:generate mockery --name ProgressService --output ./mocks --outpkg mocks --case=underscore --structname MockProgressService --filename mock_progress_service.go
package service

import (
	"context"
	"errors"
	"math"
	"time"

	"go_5_milestone_keep/internal/middleware"
	"go_5_milestone_keep/internal/model"
	"go_5_milestone_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProgressService は子どもの現在月齢に対する進捗を導出します
// 進捗は毎回カタログと回答の状態から計算する純粋な読み取りで、保存はしない
type ProgressService interface {
	GetProgress(ctx context.Context, tenantID, childID uuid.UUID) (*model.ProgressResponse, error)
}

type progressService struct {
	db           *gorm.DB
	childRepo    repository.ChildRepository
	questionRepo repository.QuestionRepository
	respRepo     repository.ResponseRepository
}

func NewProgressService(db *gorm.DB, childRepo repository.ChildRepository, questionRepo repository.QuestionRepository, respRepo repository.ResponseRepository) ProgressService {
	return &progressService{
		db:           db,
		childRepo:    childRepo,
		questionRepo: questionRepo,
		respRepo:     respRepo,
	}
}

func (s *progressService) GetProgress(ctx context.Context, tenantID, childID uuid.UUID) (*model.ProgressResponse, error) {
	logger := middleware.GetLogger(ctx).With("tenant_id", tenantID, "child_id", childID)

	child, err := s.childRepo.FindByID(ctx, s.db, tenantID, childID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("CHILD_NOT_FOUND", "対象の子どもが見つかりません。", "child_id", model.ErrNotFound)
		}
		logger.Error("Error finding child for progress", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "進捗の取得に失敗しました。", "", err)
	}

	ageMonths := model.AgeInMonths(child.BirthDate, time.Now())

	// 進捗計算には件数上限をかけない (該当設問の全量が分母になる)
	applicable, err := s.questionRepo.FindApplicable(ctx, s.db, ageMonths, 0)
	if err != nil {
		logger.Error("Error finding applicable questions for progress", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "進捗の取得に失敗しました。", "", err)
	}

	answeredIDs, err := s.respRepo.ListAnsweredQuestionIDs(ctx, s.db, childID)
	if err != nil {
		logger.Error("Error listing answered question ids for progress", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "進捗の取得に失敗しました。", "", err)
	}

	progress := calculateProgress(applicable, answeredIDs)
	logger.Info("Progress calculated",
		"age_months", ageMonths,
		"total", progress.Total,
		"answered", progress.Answered,
		"percentage", progress.Percentage,
	)
	return progress, nil
}

// calculateProgress は該当設問と回答済みIDの集合から進捗を計算します。
// 分母0のときは0%を返す (ゼロ除算を起こさない)。百分率は[0,100]に収まる。
func calculateProgress(applicable []*model.Question, answeredIDs []uuid.UUID) *model.ProgressResponse {
	answeredSet := make(map[uuid.UUID]struct{}, len(answeredIDs))
	for _, id := range answeredIDs {
		answeredSet[id] = struct{}{}
	}

	total := len(applicable)
	answered := 0
	for _, q := range applicable {
		if _, ok := answeredSet[q.QuestionID]; ok {
			answered++
		}
	}

	percentage := 0
	if total > 0 {
		percentage = int(math.Round(float64(answered) * 100 / float64(total)))
	}
	if percentage < 0 {
		percentage = 0
	}
	if percentage > 100 {
		percentage = 100
	}

	status := model.ProgressInProgress
	if total > 0 && percentage == 100 {
		status = model.ProgressCompleted
	}

	return &model.ProgressResponse{
		Total:      total,
		Answered:   answered,
		Unanswered: total - answered,
		Percentage: percentage,
		Status:     status,
	}
}
