// internal/handlers/question_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"go_5_milestone_keep/internal/model"
	"go_5_milestone_keep/internal/service"
	"go_5_milestone_keep/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type QuestionHandler struct {
	service service.QuestionService
	logger  *slog.Logger
}

func NewQuestionHandler(s service.QuestionService, logger *slog.Logger) *QuestionHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &QuestionHandler{
		service: s,
		logger:  logger,
	}
}

// PostQuestion は設問を新規作成するハンドラ (コンテンツ管理者用)
func (h *QuestionHandler) PostQuestion(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostQuestion"))

	var req model.PostQuestionRequest
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

	question, err := h.service.PostQuestion(r.Context(), &req)
	if err != nil {
		logger.Error("Error posting question in service", slog.Any("error", err), slog.Any("request", req))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Question posted successfully", slog.String("question_id", question.QuestionID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, question, logger)
}

// GetQuestions は設問の一覧を取得するハンドラ
func (h *QuestionHandler) GetQuestions(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetQuestions"))

	questions, err := h.service.GetQuestions(r.Context())
	if err != nil {
		logger.Error("Error listing questions in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if questions == nil {
		questions = []*model.Question{}
	}
	logger.Info("Questions listed successfully", slog.Int("count", len(questions)))
	webutil.RespondWithJSON(w, http.StatusOK, questions, logger)
}

// GetApplicableQuestions は指定した月齢に該当する設問の一覧を取得するハンドラ
// クエリパラメータ age_months は必須
func (h *QuestionHandler) GetApplicableQuestions(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetApplicableQuestions"))

	ageStr := r.URL.Query().Get("age_months")
	if ageStr == "" {
		logger.Warn("Missing required query parameter age_months")
		appErr := model.NewAppError("VALIDATION_ERROR", "age_monthsは必須項目です。", "age_months", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	ageMonths, err := strconv.Atoi(ageStr)
	if err != nil || ageMonths < 0 {
		logger.Warn("Invalid age_months query parameter", slog.String("age_months", ageStr))
		appErr := model.NewAppError("VALIDATION_ERROR", "age_monthsは0以上の整数で指定してください。", "age_months", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.Int("age_months", ageMonths))

	questions, err := h.service.GetApplicableQuestions(r.Context(), ageMonths)
	if err != nil {
		logger.Error("Error listing applicable questions in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if questions == nil {
		questions = []*model.Question{}
	}
	logger.Info("Applicable questions listed successfully", slog.Int("count", len(questions)))
	webutil.RespondWithJSON(w, http.StatusOK, questions, logger)
}

// GetQuestion は特定の設問を取得するハンドラ
func (h *QuestionHandler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetQuestion"))

	questionIDStr := chi.URLParam(r, "question_id")
	questionID, err := uuid.Parse(questionIDStr)
	if err != nil {
		logger.Warn("Invalid question ID format in URL", slog.String("question_id_str", questionIDStr), slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_URL_PARAM", "question_idの形式が正しくありません。", "question_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("question_id", questionID.String()))

	question, err := h.service.GetQuestion(r.Context(), questionID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Question not found in service", slog.Any("error", err))
		} else {
			logger.Error("Error getting question from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Question retrieved successfully")
	webutil.RespondWithJSON(w, http.StatusOK, question, logger)
}

// PutQuestion は特定の設問を更新するハンドラ (コンテンツ管理者用)
// 回答が存在する設問のバンド・本文は変更できない
func (h *QuestionHandler) PutQuestion(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PutQuestion"))

	questionIDStr := chi.URLParam(r, "question_id")
	questionID, err := uuid.Parse(questionIDStr)
	if err != nil {
		logger.Warn("Invalid question ID format in URL for PutQuestion", slog.String("question_id_str", questionIDStr), slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_URL_PARAM", "question_idの形式が正しくありません。", "question_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("question_id", questionID.String()))

	var req model.PutQuestionRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode PutQuestion request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
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

	question, err := h.service.PutQuestion(r.Context(), questionID, &req)
	if err != nil {
		logger.Error("Error putting question in service", slog.Any("error", err), slog.Any("request", req))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Question put successfully")
	webutil.RespondWithJSON(w, http.StatusOK, question, logger)
}
