// internal/service/child_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"go_5_milestone_keep/internal/model"
	"go_5_milestone_keep/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDBChild() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect database for testing: " + err.Error())
	}
	return db
}

// --- Test PostChild ---
func Test_childService_PostChild(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBChild()
	tenantID := uuid.New()

	tests := []struct {
		name      string
		req       *model.PostChildRequest
		setupMock func(childRepo *mocks.ChildRepository)
		wantCode  string
	}{
		{
			name: "正常系: 子どもの登録成功",
			req: &model.PostChildRequest{
				Name:      "テスト太郎",
				BirthDate: "2025-06-15",
			},
			setupMock: func(childRepo *mocks.ChildRepository) {
				childRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Child")).
					Run(func(args mock.Arguments) {
						c := args.Get(2).(*model.Child)
						assert.Equal(t, tenantID, c.TenantID)
						assert.Equal(t, "テスト太郎", c.Name)
						assert.Equal(t, 2025, c.BirthDate.Year())
						assert.Equal(t, time.June, c.BirthDate.Month())
						assert.NotEqual(t, uuid.Nil, c.ChildID)
					}).Return(nil).Once()
			},
		},
		{
			name: "異常系: 未来の生年月日",
			req: &model.PostChildRequest{
				Name:      "テスト太郎",
				BirthDate: "2999-01-01",
			},
			setupMock: func(childRepo *mocks.ChildRepository) {
				// Createは呼ばれない
			},
			wantCode: "VALIDATION_ERROR",
		},
		{
			name: "異常系: 生年月日の形式が不正",
			req: &model.PostChildRequest{
				Name:      "テスト太郎",
				BirthDate: "15/06/2025",
			},
			setupMock: func(childRepo *mocks.ChildRepository) {
				// Createは呼ばれない
			},
			wantCode: "VALIDATION_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockChildRepo := new(mocks.ChildRepository)
			mockRespRepo := new(mocks.ResponseRepository)
			tt.setupMock(mockChildRepo)
			childService := NewChildService(db, mockChildRepo, mockRespRepo)

			child, err := childService.PostChild(ctx, tenantID, tt.req)

			if tt.wantCode != "" {
				require.Error(t, err)
				var appErr *model.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, tt.wantCode, appErr.Detail.Code)
				assert.Nil(t, child)
			} else {
				require.NoError(t, err)
				require.NotNil(t, child)
			}
			mockChildRepo.AssertExpectations(t)
		})
	}
}

// --- Test DeleteChild ---
func Test_childService_DeleteChild(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBChild()

	tenantID := uuid.New()
	childID := uuid.New()
	testChild := &model.Child{
		ChildID:   childID,
		TenantID:  tenantID,
		Name:      "テスト太郎",
		BirthDate: time.Now().AddDate(-1, 0, 0),
	}

	t.Run("正常系: 回答もカスケードで削除される", func(t *testing.T) {
		mockChildRepo := new(mocks.ChildRepository)
		mockRespRepo := new(mocks.ResponseRepository)

		mockChildRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, childID).
			Return(testChild, nil).Once()
		// 子どもの削除前に回答が消される
		mockRespRepo.On("DeleteByChild", ctx, mock.AnythingOfType("*gorm.DB"), childID).
			Return(nil).Once()
		mockChildRepo.On("Delete", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, childID).
			Return(nil).Once()

		childService := NewChildService(db, mockChildRepo, mockRespRepo)
		err := childService.DeleteChild(ctx, tenantID, childID)

		require.NoError(t, err)
		mockChildRepo.AssertExpectations(t)
		mockRespRepo.AssertExpectations(t)
	})

	t.Run("異常系: 他テナントの子どもは削除できない", func(t *testing.T) {
		mockChildRepo := new(mocks.ChildRepository)
		mockRespRepo := new(mocks.ResponseRepository)

		mockChildRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, childID).
			Return(nil, model.ErrNotFound).Once()

		childService := NewChildService(db, mockChildRepo, mockRespRepo)
		err := childService.DeleteChild(ctx, tenantID, childID)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
		mockChildRepo.AssertExpectations(t)
		mockRespRepo.AssertNotCalled(t, "DeleteByChild", mock.Anything, mock.Anything, mock.Anything)
	})
}

// --- Test AgeInMonths (月齢計算) ---
func Test_AgeInMonths(t *testing.T) {
	tests := []struct {
		name      string
		birthDate time.Time
		at        time.Time
		want      int
	}{
		{
			name:      "ちょうど2ヶ月",
			birthDate: time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC),
			at:        time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
			want:      2,
		},
		{
			name:      "日未達の月は切り捨て",
			birthDate: time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC),
			at:        time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
			want:      1,
		},
		{
			name:      "生後1ヶ月未満は0",
			birthDate: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
			at:        time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
			want:      0,
		},
		{
			name:      "年をまたぐ",
			birthDate: time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC),
			at:        time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
			want:      3,
		},
		{
			name:      "基準日が誕生日より前でも負にならない",
			birthDate: time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
			at:        time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
			want:      0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.AgeInMonths(tt.birthDate, tt.at))
		})
	}
}
