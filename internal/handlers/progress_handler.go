// internal/handlers/progress_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"go_5_milestone_keep/internal/middleware"
	"go_5_milestone_keep/internal/model"
	"go_5_milestone_keep/internal/service"
	"go_5_milestone_keep/internal/webutil"

	"github.com/google/uuid"
)

type ProgressHandler struct {
	service service.ProgressService
	logger  *slog.Logger
}

func NewProgressHandler(s service.ProgressService, logger *slog.Logger) *ProgressHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProgressHandler{
		service: s,
		logger:  logger,
	}
}

// GetProgress は子どもの現時点の進捗サマリを取得するハンドラ
// 進捗は保存値ではなく毎回導出される。クエリパラメータ child_id は必須。
func (h *ProgressHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetProgress"))

	tenantID, err := middleware.GetTenantIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("tenant_id", tenantID.String()))

	childIDStr := r.URL.Query().Get("child_id")
	if childIDStr == "" {
		logger.Warn("Missing required query parameter child_id")
		appErr := model.NewAppError("VALIDATION_ERROR", "child_idは必須項目です。", "child_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	childID, err := uuid.Parse(childIDStr)
	if err != nil {
		logger.Warn("Invalid child_id query parameter", slog.String("child_id_str", childIDStr), slog.String("error", err.Error()))
		appErr := model.NewAppError("VALIDATION_ERROR", "child_idの形式が正しくありません。", "child_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("child_id", childID.String()))

	progress, err := h.service.GetProgress(r.Context(), tenantID, childID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Child not found in service", slog.Any("error", err))
		} else {
			logger.Error("Error getting progress from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Progress retrieved successfully",
		slog.Int("total", progress.Total),
		slog.Int("answered", progress.Answered),
		slog.Int("percentage", progress.Percentage),
	)
	webutil.RespondWithJSON(w, http.StatusOK, progress, logger)
}
