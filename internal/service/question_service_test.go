// internal/service/question_service_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"go_5_milestone_keep/internal/config"
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

// --- テストヘルパー関数 ---
func setupTestDBQuestion() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect database for testing: " + err.Error())
	}
	return db
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.ApplicableLimit = 50
	return cfg
}

func intPtr(i int) *int { return &i }

// --- Test PostQuestion ---
func Test_questionService_PostQuestion(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBQuestion()
	cfg := testConfig()

	tests := []struct {
		name      string
		req       *model.PostQuestionRequest
		setupMock func(questionRepo *mocks.QuestionRepository)
		wantErr   error
	}{
		{
			name: "正常系: 設問の作成成功",
			req: &model.PostQuestionRequest{
				Domain:       "motor",
				Text:         "はいはいで移動できますか",
				MinAgeMonths: intPtr(6),
				MaxAgeMonths: intPtr(10),
				OrderIndex:   1,
			},
			setupMock: func(questionRepo *mocks.QuestionRepository) {
				questionRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Question")).
					Run(func(args mock.Arguments) {
						q := args.Get(2).(*model.Question)
						assert.Equal(t, "motor", q.Domain)
						assert.Equal(t, 6, q.MinAgeMonths)
						assert.Equal(t, 10, q.MaxAgeMonths)
						assert.True(t, q.IsActive)
						assert.NotEqual(t, uuid.Nil, q.QuestionID)
					}).Return(nil).Once()
			},
			wantErr: nil,
		},
		{
			name: "正常系: 月齢0始まりのバンド",
			req: &model.PostQuestionRequest{
				Domain:       "social",
				Text:         "あやすと笑いますか",
				MinAgeMonths: intPtr(0),
				MaxAgeMonths: intPtr(3),
			},
			setupMock: func(questionRepo *mocks.QuestionRepository) {
				questionRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Question")).
					Run(func(args mock.Arguments) {
						q := args.Get(2).(*model.Question)
						assert.Equal(t, 0, q.MinAgeMonths)
					}).Return(nil).Once()
			},
			wantErr: nil,
		},
		{
			name: "異常系: 下限が上限を超えている",
			req: &model.PostQuestionRequest{
				Domain:       "motor",
				Text:         "逆バンドの設問",
				MinAgeMonths: intPtr(12),
				MaxAgeMonths: intPtr(6),
			},
			setupMock: func(questionRepo *mocks.QuestionRepository) {
				// Createは呼ばれない
			},
			wantErr: model.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQuestionRepo := new(mocks.QuestionRepository)
			mockRespRepo := new(mocks.ResponseRepository)
			tt.setupMock(mockQuestionRepo)
			questionService := NewQuestionService(db, mockQuestionRepo, mockRespRepo, cfg)

			question, err := questionService.PostQuestion(ctx, tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, question)
			} else {
				require.NoError(t, err)
				require.NotNil(t, question)
			}
			mockQuestionRepo.AssertExpectations(t)
		})
	}
}

// --- Test GetApplicableQuestions ---
func Test_questionService_GetApplicableQuestions(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBQuestion()
	cfg := testConfig()

	bandQuestion := &model.Question{
		QuestionID:   uuid.New(),
		Domain:       "motor",
		Text:         "ひとりで座れますか",
		MinAgeMonths: 1,
		MaxAgeMonths: 3,
		IsActive:     true,
	}

	tests := []struct {
		name      string
		ageMonths int
		setupMock func(questionRepo *mocks.QuestionRepository)
		wantCode  string
		wantCount int
	}{
		{
			name:      "正常系: バンド内の月齢で設問を取得",
			ageMonths: 2,
			setupMock: func(questionRepo *mocks.QuestionRepository) {
				questionRepo.On("FindApplicable", ctx, mock.AnythingOfType("*gorm.DB"), 2, cfg.App.ApplicableLimit).
					Return([]*model.Question{bandQuestion}, nil).Once()
			},
			wantCode:  "",
			wantCount: 1,
		},
		{
			name:      "正常系: 月齢0はそのままマッチングに使う",
			ageMonths: 0,
			setupMock: func(questionRepo *mocks.QuestionRepository) {
				// 月齢1への読み替えは行われず、0のまま渡る
				questionRepo.On("FindApplicable", ctx, mock.AnythingOfType("*gorm.DB"), 0, cfg.App.ApplicableLimit).
					Return([]*model.Question{}, nil).Once()
			},
			wantCode:  "",
			wantCount: 0,
		},
		{
			name:      "正常系: 該当設問なしでも空リストを返す",
			ageMonths: 99,
			setupMock: func(questionRepo *mocks.QuestionRepository) {
				questionRepo.On("FindApplicable", ctx, mock.AnythingOfType("*gorm.DB"), 99, cfg.App.ApplicableLimit).
					Return([]*model.Question{}, nil).Once()
			},
			wantCode:  "",
			wantCount: 0,
		},
		{
			name:      "異常系: 負の月齢",
			ageMonths: -1,
			setupMock: func(questionRepo *mocks.QuestionRepository) {
				// リポジトリは呼ばれない
			},
			wantCode: "VALIDATION_ERROR",
		},
		{
			name:      "異常系: リポジトリエラー",
			ageMonths: 2,
			setupMock: func(questionRepo *mocks.QuestionRepository) {
				questionRepo.On("FindApplicable", ctx, mock.AnythingOfType("*gorm.DB"), 2, cfg.App.ApplicableLimit).
					Return(nil, errors.New("db error")).Once()
			},
			wantCode: "INTERNAL_SERVER_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQuestionRepo := new(mocks.QuestionRepository)
			mockRespRepo := new(mocks.ResponseRepository)
			tt.setupMock(mockQuestionRepo)
			questionService := NewQuestionService(db, mockQuestionRepo, mockRespRepo, cfg)

			questions, err := questionService.GetApplicableQuestions(ctx, tt.ageMonths)

			if tt.wantCode != "" {
				require.Error(t, err)
				var appErr *model.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, tt.wantCode, appErr.Detail.Code)
			} else {
				require.NoError(t, err)
				assert.Len(t, questions, tt.wantCount)
			}
			mockQuestionRepo.AssertExpectations(t)
		})
	}
}

// --- Test PutQuestion ---
func Test_questionService_PutQuestion(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBQuestion()
	cfg := testConfig()

	questionID := uuid.New()
	existing := func() *model.Question {
		return &model.Question{
			QuestionID:   questionID,
			Domain:       "motor",
			Text:         "ひとりで座れますか",
			MinAgeMonths: 4,
			MaxAgeMonths: 8,
			IsActive:     true,
		}
	}

	tests := []struct {
		name      string
		req       *model.PutQuestionRequest
		setupMock func(questionRepo *mocks.QuestionRepository, respRepo *mocks.ResponseRepository)
		wantErr   error
	}{
		{
			name: "正常系: 未回答の設問の本文を変更",
			req: &model.PutQuestionRequest{
				Text: strPtr("つかまり立ちができますか"),
			},
			setupMock: func(questionRepo *mocks.QuestionRepository, respRepo *mocks.ResponseRepository) {
				questionRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), questionID).
					Return(existing(), nil).Once()
				respRepo.On("ExistsForQuestion", ctx, mock.AnythingOfType("*gorm.DB"), questionID).
					Return(false, nil).Once()
				questionRepo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), questionID, mock.AnythingOfType("map[string]interface {}")).
					Run(func(args mock.Arguments) {
						updates := args.Get(3).(map[string]interface{})
						assert.Equal(t, "つかまり立ちができますか", updates["text"])
					}).Return(nil).Once()
				updated := existing()
				updated.Text = "つかまり立ちができますか"
				questionRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), questionID).
					Return(updated, nil).Once()
			},
			wantErr: nil,
		},
		{
			name: "正常系: 回答済みでも is_active の切り替えは可能",
			req: &model.PutQuestionRequest{
				IsActive: boolPtr(false),
			},
			setupMock: func(questionRepo *mocks.QuestionRepository, respRepo *mocks.ResponseRepository) {
				questionRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), questionID).
					Return(existing(), nil).Once()
				// 内容変更ではないため ExistsForQuestion は呼ばれない
				questionRepo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), questionID, mock.AnythingOfType("map[string]interface {}")).
					Return(nil).Once()
				deactivated := existing()
				deactivated.IsActive = false
				questionRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), questionID).
					Return(deactivated, nil).Once()
			},
			wantErr: nil,
		},
		{
			name: "異常系: 回答済みの設問の内容変更は競合",
			req: &model.PutQuestionRequest{
				MinAgeMonths: intPtr(6),
			},
			setupMock: func(questionRepo *mocks.QuestionRepository, respRepo *mocks.ResponseRepository) {
				questionRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), questionID).
					Return(existing(), nil).Once()
				respRepo.On("ExistsForQuestion", ctx, mock.AnythingOfType("*gorm.DB"), questionID).
					Return(true, nil).Once()
			},
			wantErr: model.ErrConflict,
		},
		{
			name: "異常系: 更新後のバンドが逆転する",
			req: &model.PutQuestionRequest{
				MinAgeMonths: intPtr(12), // 既存の上限は8
			},
			setupMock: func(questionRepo *mocks.QuestionRepository, respRepo *mocks.ResponseRepository) {
				questionRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), questionID).
					Return(existing(), nil).Once()
				respRepo.On("ExistsForQuestion", ctx, mock.AnythingOfType("*gorm.DB"), questionID).
					Return(false, nil).Once()
			},
			wantErr: model.ErrInvalidInput,
		},
		{
			name: "異常系: 設問が存在しない",
			req: &model.PutQuestionRequest{
				Text: strPtr("変更後の本文"),
			},
			setupMock: func(questionRepo *mocks.QuestionRepository, respRepo *mocks.ResponseRepository) {
				questionRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), questionID).
					Return(nil, model.ErrNotFound).Once()
			},
			wantErr: model.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQuestionRepo := new(mocks.QuestionRepository)
			mockRespRepo := new(mocks.ResponseRepository)
			tt.setupMock(mockQuestionRepo, mockRespRepo)
			questionService := NewQuestionService(db, mockQuestionRepo, mockRespRepo, cfg)

			question, err := questionService.PutQuestion(ctx, questionID, tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, question)
			} else {
				require.NoError(t, err)
				require.NotNil(t, question)
			}
			mockQuestionRepo.AssertExpectations(t)
			mockRespRepo.AssertExpectations(t)
		})
	}
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
