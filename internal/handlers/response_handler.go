// internal/handlers/response_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"go_5_milestone_keep/internal/middleware"
	"go_5_milestone_keep/internal/model"
	"go_5_milestone_keep/internal/service"
	"go_5_milestone_keep/internal/webutil"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type ResponseHandler struct {
	service service.ResponseService
	logger  *slog.Logger
}

func NewResponseHandler(s service.ResponseService, logger *slog.Logger) *ResponseHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ResponseHandler{
		service: s,
		logger:  logger,
	}
}

// PostResponse は設問への回答を送信するハンドラ
// 同じ (child_id, question_id) への再送信は上書きになる
func (h *ResponseHandler) PostResponse(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostResponse"))

	tenantID, err := middleware.GetTenantIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("tenant_id", tenantID.String()))

	var req model.PostResponseRequest
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

	response, err := h.service.PostResponse(r.Context(), tenantID, &req)
	if err != nil {
		logger.Error("Error posting response in service", slog.Any("error", err), slog.Any("request", req))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Response posted successfully",
		slog.String("response_id", response.ResponseID.String()),
		slog.String("child_id", response.ChildID.String()),
		slog.String("question_id", response.QuestionID.String()),
	)
	webutil.RespondWithJSON(w, http.StatusCreated, response, logger)
}

// GetResponses は子ども1人分の回答一覧を取得するハンドラ
// クエリパラメータ child_id は必須
func (h *ResponseHandler) GetResponses(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetResponses"))

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

	responses, err := h.service.GetResponses(r.Context(), tenantID, childID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Child not found in service", slog.Any("error", err))
		} else {
			logger.Error("Error listing responses in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	if responses == nil {
		responses = []*model.Response{}
	}
	logger.Info("Responses listed successfully", slog.Int("count", len(responses)))
	webutil.RespondWithJSON(w, http.StatusOK, responses, logger)
}
