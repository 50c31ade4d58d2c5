// internal/service/auth_service_test.go
package service

import (
	"context"
	"testing"

	"go_5_milestone_keep/internal/config"
	"go_5_milestone_keep/internal/model"
	"go_5_milestone_keep/internal/repository/mocks"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDBAuth() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect database for testing: " + err.Error())
	}
	return db
}

func authTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.SecretKey = "test-secret-key"
	cfg.JWT.ExpiryMinutes = 60
	return cfg
}

// --- Test RegisterTenant ---
func Test_authService_RegisterTenant(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBAuth()
	cfg := authTestConfig()

	tests := []struct {
		name      string
		req       *model.RegisterRequest
		setupMock func(tenantRepo *mocks.TenantRepository)
		wantCode  string
	}{
		{
			name: "正常系: アカウント登録成功",
			req: &model.RegisterRequest{
				Name:     "テスト保護者",
				Email:    "parent@example.com",
				Password: "password123",
			},
			setupMock: func(tenantRepo *mocks.TenantRepository) {
				tenantRepo.On("FindByEmail", ctx, mock.AnythingOfType("*gorm.DB"), "parent@example.com").
					Return(nil, model.ErrNotFound).Once()
				tenantRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Tenant")).
					Run(func(args mock.Arguments) {
						tenant := args.Get(2).(*model.Tenant)
						assert.NotEqual(t, uuid.Nil, tenant.TenantID)
						assert.Equal(t, "parent@example.com", tenant.Email)
						assert.True(t, tenant.IsActive)
						// 平文では保存されない
						assert.NotEqual(t, "password123", tenant.PasswordHash)
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(tenant.PasswordHash), []byte("password123")))
					}).Return(nil).Once()
			},
		},
		{
			name: "異常系: メールアドレスが既に使用されている",
			req: &model.RegisterRequest{
				Name:     "テスト保護者",
				Email:    "taken@example.com",
				Password: "password123",
			},
			setupMock: func(tenantRepo *mocks.TenantRepository) {
				existing := &model.Tenant{TenantID: uuid.New(), Email: "taken@example.com"}
				tenantRepo.On("FindByEmail", ctx, mock.AnythingOfType("*gorm.DB"), "taken@example.com").
					Return(existing, nil).Once()
			},
			wantCode: "EMAIL_TAKEN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTenantRepo := new(mocks.TenantRepository)
			tt.setupMock(mockTenantRepo)
			authService := NewAuthService(db, mockTenantRepo, NewLogMailer(), cfg)

			tenant, err := authService.RegisterTenant(ctx, tt.req)

			if tt.wantCode != "" {
				require.Error(t, err)
				var appErr *model.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, tt.wantCode, appErr.Detail.Code)
				assert.Nil(t, tenant)
			} else {
				require.NoError(t, err)
				require.NotNil(t, tenant)
				assert.Equal(t, tt.req.Email, tenant.Email)
			}
			mockTenantRepo.AssertExpectations(t)
		})
	}
}

// --- Test Login ---
func Test_authService_Login(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBAuth()
	cfg := authTestConfig()

	tenantID := uuid.New()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	require.NoError(t, err)

	activeTenant := &model.Tenant{
		TenantID:     tenantID,
		Name:         "テスト保護者",
		Email:        "parent@example.com",
		PasswordHash: string(hash),
		IsActive:     true,
	}
	inactiveTenant := &model.Tenant{
		TenantID:     uuid.New(),
		Name:         "無効な保護者",
		Email:        "inactive@example.com",
		PasswordHash: string(hash),
		IsActive:     false,
	}

	tests := []struct {
		name      string
		req       *model.LoginRequest
		setupMock func(tenantRepo *mocks.TenantRepository)
		wantCode  string
	}{
		{
			name: "正常系: ログイン成功",
			req:  &model.LoginRequest{Email: "parent@example.com", Password: "correct-password"},
			setupMock: func(tenantRepo *mocks.TenantRepository) {
				tenantRepo.On("FindByEmail", ctx, mock.AnythingOfType("*gorm.DB"), "parent@example.com").
					Return(activeTenant, nil).Once()
			},
		},
		{
			name: "異常系: パスワード不一致",
			req:  &model.LoginRequest{Email: "parent@example.com", Password: "wrong-password"},
			setupMock: func(tenantRepo *mocks.TenantRepository) {
				tenantRepo.On("FindByEmail", ctx, mock.AnythingOfType("*gorm.DB"), "parent@example.com").
					Return(activeTenant, nil).Once()
			},
			wantCode: "LOGIN_FAILED",
		},
		{
			name: "異常系: 存在しないメールアドレスでも同じエラー",
			req:  &model.LoginRequest{Email: "unknown@example.com", Password: "correct-password"},
			setupMock: func(tenantRepo *mocks.TenantRepository) {
				tenantRepo.On("FindByEmail", ctx, mock.AnythingOfType("*gorm.DB"), "unknown@example.com").
					Return(nil, model.ErrNotFound).Once()
			},
			wantCode: "LOGIN_FAILED",
		},
		{
			name: "異常系: 無効化されたアカウント",
			req:  &model.LoginRequest{Email: "inactive@example.com", Password: "correct-password"},
			setupMock: func(tenantRepo *mocks.TenantRepository) {
				tenantRepo.On("FindByEmail", ctx, mock.AnythingOfType("*gorm.DB"), "inactive@example.com").
					Return(inactiveTenant, nil).Once()
			},
			wantCode: "ACCOUNT_INACTIVE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTenantRepo := new(mocks.TenantRepository)
			tt.setupMock(mockTenantRepo)
			authService := NewAuthService(db, mockTenantRepo, NewLogMailer(), cfg)

			res, err := authService.Login(ctx, tt.req)

			if tt.wantCode != "" {
				require.Error(t, err)
				var appErr *model.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, tt.wantCode, appErr.Detail.Code)
				assert.ErrorIs(t, err, model.ErrForbidden)
				assert.Nil(t, res)
			} else {
				require.NoError(t, err)
				require.NotNil(t, res)
				assert.Equal(t, tenantID, res.TenantID)

				// 発行されたトークンが検証できること
				parsed, err := jwt.ParseWithClaims(res.Token, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
					return []byte(cfg.JWT.SecretKey), nil
				})
				require.NoError(t, err)
				claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
				require.True(t, ok)
				assert.Equal(t, tenantID.String(), claims.Subject)
			}
			mockTenantRepo.AssertExpectations(t)
		})
	}
}
