package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go_5_milestone_keep/internal/config"
	"go_5_milestone_keep/internal/middleware"
	"go_5_milestone_keep/internal/model"
	"go_5_milestone_keep/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService は保護者アカウントの登録とログインを提供します
type AuthService interface {
	RegisterTenant(ctx context.Context, req *model.RegisterRequest) (*model.Tenant, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
}

type authService struct {
	db         *gorm.DB
	tenantRepo repository.TenantRepository
	mailer     Mailer
	cfg        *config.Config
}

func NewAuthService(db *gorm.DB, tenantRepo repository.TenantRepository, mailer Mailer, cfg *config.Config) AuthService {
	return &authService{
		db:         db,
		tenantRepo: tenantRepo,
		mailer:     mailer,
		cfg:        cfg,
	}
}

// RegisterTenant は新しい保護者アカウントを登録し、ウェルカムメールを送信します
func (s *authService) RegisterTenant(ctx context.Context, req *model.RegisterRequest) (*model.Tenant, error) {
	logger := middleware.GetLogger(ctx)
	var newTenant *model.Tenant

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Emailでの重複チェック
		_, err := s.tenantRepo.FindByEmail(ctx, tx, req.Email)
		if err == nil {
			return model.NewAppError("EMAIL_TAKEN", "このメールアドレスは既に使用されています。", "email", model.ErrConflict)
		}
		if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Error checking email existence", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "アカウント登録に失敗しました。", "", err)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			logger.Error("Error hashing password", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "アカウント登録に失敗しました。", "", err)
		}

		tenant := &model.Tenant{
			TenantID:     uuid.New(),
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: string(hash),
			IsActive:     true,
		}
		if err := s.tenantRepo.Create(ctx, tx, tenant); err != nil {
			logger.Error("Error creating tenant in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "アカウント登録に失敗しました。", "", err)
		}

		newTenant = tenant
		return nil // コミット
	})
	if err != nil {
		return nil, err
	}

	// メール送信の失敗で登録自体は失敗させない (ログのみ)
	body := fmt.Sprintf("%s様\n\n%sへのご登録ありがとうございます。\nお子さまの発達記録をはじめましょう。", newTenant.Name, config.AppName)
	if err := s.mailer.Send(ctx, newTenant.Email, "ご登録ありがとうございます", body); err != nil {
		logger.Warn("Failed to send welcome email", "email", newTenant.Email, "error", err)
	}

	logger.Info("Tenant registered", "tenant_id", newTenant.TenantID)
	return newTenant, nil
}

// Login はメールアドレスとパスワードを検証し、JWTを発行します
func (s *authService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	logger := middleware.GetLogger(ctx)

	tenant, err := s.tenantRepo.FindByEmail(ctx, s.db, req.Email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			// ユーザーの存在有無を漏らさないよう同一メッセージにする
			return nil, model.NewAppError("LOGIN_FAILED", "メールアドレスまたはパスワードが正しくありません。", "", model.ErrForbidden)
		}
		logger.Error("Error finding tenant for login", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "ログインに失敗しました。", "", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(tenant.PasswordHash), []byte(req.Password)); err != nil {
		return nil, model.NewAppError("LOGIN_FAILED", "メールアドレスまたはパスワードが正しくありません。", "", model.ErrForbidden)
	}

	if !tenant.IsActive {
		return nil, model.NewAppError("ACCOUNT_INACTIVE", "このアカウントは無効化されています。", "", model.ErrForbidden)
	}

	now := time.Now()
	expiresAt := now.Add(time.Duration(s.cfg.JWT.ExpiryMinutes) * time.Minute)
	claims := jwt.RegisteredClaims{
		Subject:   tenant.TenantID.String(),
		Issuer:    config.AppName,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWT.SecretKey))
	if err != nil {
		logger.Error("Error signing JWT", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "ログインに失敗しました。", "", err)
	}

	logger.Info("Tenant logged in", "tenant_id", tenant.TenantID)
	return &model.LoginResponse{
		Token:     signed,
		ExpiresAt: expiresAt,
		TenantID:  tenant.TenantID,
	}, nil
}
