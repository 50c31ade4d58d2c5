// internal/handlers/auth_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"go_5_milestone_keep/internal/model"
	"go_5_milestone_keep/internal/service"
	"go_5_milestone_keep/internal/webutil"

	"github.com/go-playground/validator/v10"
)

type AuthHandler struct {
	service service.AuthService
	logger  *slog.Logger
}

func NewAuthHandler(s service.AuthService, logger *slog.Logger) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{
		service: s,
		logger:  logger,
	}
}

// PostTenant は保護者アカウントを新規登録するハンドラ (認証不要)
func (h *AuthHandler) PostTenant(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostTenant"))

	var req model.RegisterRequest
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
			appErr := model.NewAppError("VALIDATION_ERROR", firstErr.Translate(webutil.Trans), firstErr.Field(), model.ErrInvalidInput)
			webutil.HandleError(w, logger, appErr)
		} else {
			logger.Error("Unexpected error during validation", slog.Any("error", err))
			webutil.HandleError(w, logger, err)
		}
		return
	}

	tenant, err := h.service.RegisterTenant(r.Context(), &req)
	if err != nil {
		logger.Error("Error registering tenant in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	resp := model.TenantResponse{
		TenantID:  tenant.TenantID,
		Name:      tenant.Name,
		Email:     tenant.Email,
		IsActive:  tenant.IsActive,
		CreatedAt: tenant.CreatedAt,
	}
	logger.Info("Tenant registered successfully", slog.String("tenant_id", tenant.TenantID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, resp, logger)
}

// PostLogin はログインしてJWTを返すハンドラ (認証不要)
func (h *AuthHandler) PostLogin(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostLogin"))

	var req model.LoginRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
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

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		// 認証失敗の詳細はWarnに留める
		logger.Warn("Login failed", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Login succeeded", slog.String("tenant_id", resp.TenantID.String()))
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}
