// internal/handlers/child_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"go_5_milestone_keep/internal/middleware"
	"go_5_milestone_keep/internal/model"
	"go_5_milestone_keep/internal/service"
	"go_5_milestone_keep/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type ChildHandler struct {
	service service.ChildService
	logger  *slog.Logger
}

func NewChildHandler(s service.ChildService, logger *slog.Logger) *ChildHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ChildHandler{
		service: s,
		logger:  logger,
	}
}

// PostChild は子どもの記録を新規登録するハンドラ
func (h *ChildHandler) PostChild(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostChild"))

	tenantID, err := middleware.GetTenantIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("tenant_id", tenantID.String()))

	var req model.PostChildRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed", slog.String("errors", validationErrors.Error()))
			firstErr := validationErrors[0]
			appErr := model.NewAppError(
				"VALIDATION_ERROR",
				firstErr.Translate(webutil.Trans),
				firstErr.Field(),
				model.ErrInvalidInput,
			)
			webutil.HandleError(w, logger, appErr)
		} else {
			logger.Error("Unexpected error during validation", slog.Any("error", err))
			webutil.HandleError(w, logger, err)
		}
		return
	}

	child, err := h.service.PostChild(r.Context(), tenantID, &req)
	if err != nil {
		logger.Error("Error posting child in service", slog.Any("error", err), slog.Any("request", req))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Child posted successfully", slog.String("child_id", child.ChildID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, child, logger)
}

// GetChildren は子どもの記録の一覧を取得するハンドラ
func (h *ChildHandler) GetChildren(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetChildren"))

	tenantID, err := middleware.GetTenantIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("tenant_id", tenantID.String()))

	children, err := h.service.GetChildren(r.Context(), tenantID)
	if err != nil {
		logger.Error("Error listing children in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if children == nil {
		children = []*model.Child{}
	}
	logger.Info("Children listed successfully", slog.Int("count", len(children)))
	webutil.RespondWithJSON(w, http.StatusOK, children, logger)
}

// GetChild は特定の子どもの記録を取得するハンドラ
func (h *ChildHandler) GetChild(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetChild"))

	tenantID, err := middleware.GetTenantIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("tenant_id", tenantID.String()))

	childIDStr := chi.URLParam(r, "child_id")
	childID, err := uuid.Parse(childIDStr)
	if err != nil {
		logger.Warn("Invalid child ID format in URL", slog.String("child_id_str", childIDStr), slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_URL_PARAM", "child_idの形式が正しくありません。", "child_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("child_id", childID.String()))

	child, err := h.service.GetChild(r.Context(), tenantID, childID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Child not found in service", slog.Any("error", err))
		} else {
			logger.Error("Error getting child from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Child retrieved successfully")
	webutil.RespondWithJSON(w, http.StatusOK, child, logger)
}

// PatchChild は特定の子どもの記録の一部を更新するハンドラ
func (h *ChildHandler) PatchChild(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PatchChild"))

	tenantID, err := middleware.GetTenantIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt for PatchChild", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("tenant_id", tenantID.String()))

	childIDStr := chi.URLParam(r, "child_id")
	childID, err := uuid.Parse(childIDStr)
	if err != nil {
		logger.Warn("Invalid child ID format in URL for PatchChild", slog.String("child_id_str", childIDStr), slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_URL_PARAM", "child_idの形式が正しくありません。", "child_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("child_id", childID.String()))

	var req model.PatchChildRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode PatchChild request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if req.Name == nil && req.BirthDate == nil {
		logger.Warn("PatchChild called with no fields provided for update")
		appErr := model.NewAppError("VALIDATION_ERROR", "更新するフィールドが指定されていません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			firstErr := validationErrors[0]
			appErr := model.NewAppError("VALIDATION_ERROR", firstErr.Translate(webutil.Trans), firstErr.Field(), model.ErrInvalidInput)
			webutil.HandleError(w, logger, appErr)
		} else {
			webutil.HandleError(w, logger, err)
		}
		return
	}

	child, err := h.service.PatchChild(r.Context(), tenantID, childID, &req)
	if err != nil {
		logger.Error("Error patching child in service", slog.Any("error", err), slog.Any("request", req))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Child patched successfully")
	webutil.RespondWithJSON(w, http.StatusOK, child, logger)
}

// DeleteChild は特定の子どもの記録を削除するハンドラ (回答もあわせて削除される)
func (h *ChildHandler) DeleteChild(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteChild"))

	tenantID, err := middleware.GetTenantIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt for DeleteChild", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("tenant_id", tenantID.String()))

	childIDStr := chi.URLParam(r, "child_id")
	childID, err := uuid.Parse(childIDStr)
	if err != nil {
		logger.Warn("Invalid child ID format in URL for DeleteChild", slog.String("child_id_str", childIDStr), slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_URL_PARAM", "child_idの形式が正しくありません。", "child_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("child_id", childID.String()))

	if err := h.service.DeleteChild(r.Context(), tenantID, childID); err != nil {
		logger.Error("Error deleting child in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Child deleted successfully")
	w.WriteHeader(http.StatusNoContent)
}
