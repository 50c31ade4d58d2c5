// internal/service/response_service_test.go
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

func setupTestDBResponse() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect database for testing: " + err.Error())
	}
	return db
}

// --- Test PostResponse ---
func Test_responseService_PostResponse(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBResponse()

	tenantID := uuid.New()
	childID := uuid.New()
	questionID := uuid.New()

	testChild := &model.Child{
		ChildID:   childID,
		TenantID:  tenantID,
		Name:      "テスト花子",
		BirthDate: time.Now().AddDate(0, -2, 0),
	}
	activeQuestion := &model.Question{
		QuestionID:   questionID,
		Domain:       "language",
		Text:         "喃語を話しますか",
		MinAgeMonths: 1,
		MaxAgeMonths: 3,
		IsActive:     true,
	}
	inactiveQuestion := &model.Question{
		QuestionID:   questionID,
		Domain:       "language",
		Text:         "無効化された設問",
		MinAgeMonths: 1,
		MaxAgeMonths: 3,
		IsActive:     false,
	}

	validReq := &model.PostResponseRequest{
		ChildID:     childID,
		QuestionID:  questionID,
		AnswerValue: intPtr(int(model.AnswerPositive)),
		AnswerText:  "できます",
	}

	tests := []struct {
		name      string
		req       *model.PostResponseRequest
		setupMock func(childRepo *mocks.ChildRepository, questionRepo *mocks.QuestionRepository, respRepo *mocks.ResponseRepository, sessionRepo *mocks.SessionRepository)
		wantCode  string
		check     func(t *testing.T, resp *model.Response)
	}{
		{
			name: "正常系: 初回回答の新規作成",
			req:  validReq,
			setupMock: func(childRepo *mocks.ChildRepository, questionRepo *mocks.QuestionRepository, respRepo *mocks.ResponseRepository, sessionRepo *mocks.SessionRepository) {
				childRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, childID).
					Return(testChild, nil).Once()
				questionRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), questionID).
					Return(activeQuestion, nil).Once()
				respRepo.On("FindByChildAndQuestion", ctx, mock.AnythingOfType("*gorm.DB"), childID, questionID).
					Return(nil, model.ErrNotFound).Once()
				respRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Response")).
					Run(func(args mock.Arguments) {
						r := args.Get(2).(*model.Response)
						assert.Equal(t, tenantID, r.TenantID)
						assert.Equal(t, model.AnswerPositive, r.AnswerValue)
						assert.NotEqual(t, uuid.Nil, r.ResponseID)
						assert.False(t, r.AnsweredAt.IsZero())
					}).Return(nil).Once()
				// アクティブなセッションなし -> 再集計はスキップ
				sessionRepo.On("FindActiveByChild", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, childID).
					Return(nil, model.ErrNotFound).Once()
			},
			check: func(t *testing.T, resp *model.Response) {
				assert.Equal(t, model.AnswerPositive, resp.AnswerValue)
				assert.Equal(t, "できます", resp.AnswerText)
			},
		},
		{
			name: "正常系: 再送信は追記ではなく上書き",
			req: &model.PostResponseRequest{
				ChildID:     childID,
				QuestionID:  questionID,
				AnswerValue: intPtr(int(model.AnswerNegative)),
				AnswerText:  "まだできません",
			},
			setupMock: func(childRepo *mocks.ChildRepository, questionRepo *mocks.QuestionRepository, respRepo *mocks.ResponseRepository, sessionRepo *mocks.SessionRepository) {
				existingID := uuid.New()
				existing := &model.Response{
					ResponseID:  existingID,
					TenantID:    tenantID,
					ChildID:     childID,
					QuestionID:  questionID,
					AnswerValue: model.AnswerPositive,
					AnswerText:  "できます",
					AnsweredAt:  time.Now().Add(-time.Hour),
				}
				childRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, childID).
					Return(testChild, nil).Once()
				questionRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), questionID).
					Return(activeQuestion, nil).Once()
				respRepo.On("FindByChildAndQuestion", ctx, mock.AnythingOfType("*gorm.DB"), childID, questionID).
					Return(existing, nil).Once()
				// Createではなく既存行のUpdateが呼ばれる
				respRepo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Response")).
					Run(func(args mock.Arguments) {
						r := args.Get(2).(*model.Response)
						assert.Equal(t, existingID, r.ResponseID) // 行は1件のまま
						assert.Equal(t, model.AnswerNegative, r.AnswerValue)
						assert.Equal(t, "まだできません", r.AnswerText)
					}).Return(nil).Once()
				sessionRepo.On("FindActiveByChild", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, childID).
					Return(nil, model.ErrNotFound).Once()
			},
			check: func(t *testing.T, resp *model.Response) {
				// 最新の値が反映されている
				assert.Equal(t, model.AnswerNegative, resp.AnswerValue)
			},
		},
		{
			name: "正常系: 回答保存と同一トランザクションでセッションを再集計・完了",
			req:  validReq,
			setupMock: func(childRepo *mocks.ChildRepository, questionRepo *mocks.QuestionRepository, respRepo *mocks.ResponseRepository, sessionRepo *mocks.SessionRepository) {
				otherQuestionID := uuid.New()
				session := &model.Session{
					SessionID:      uuid.New(),
					TenantID:       tenantID,
					ChildID:        childID,
					Status:         model.SessionActive,
					TotalQuestions: 2,
					AnsweredCount:  1,
				}
				childRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, childID).
					Return(testChild, nil).Once()
				questionRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), questionID).
					Return(activeQuestion, nil).Once()
				respRepo.On("FindByChildAndQuestion", ctx, mock.AnythingOfType("*gorm.DB"), childID, questionID).
					Return(nil, model.ErrNotFound).Once()
				respRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Response")).
					Return(nil).Once()
				sessionRepo.On("FindActiveByChild", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, childID).
					Return(session, nil).Once()
				// 再集計: 該当2問とも回答済み
				questionRepo.On("FindApplicable", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("int"), 0).
					Return([]*model.Question{activeQuestion, {QuestionID: otherQuestionID, IsActive: true, MinAgeMonths: 1, MaxAgeMonths: 3}}, nil).Once()
				respRepo.On("ListAnsweredQuestionIDs", ctx, mock.AnythingOfType("*gorm.DB"), childID).
					Return([]uuid.UUID{questionID, otherQuestionID}, nil).Once()
				sessionRepo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Session")).
					Run(func(args mock.Arguments) {
						s := args.Get(2).(*model.Session)
						// インクリメントではなく真の集合からの再集計
						assert.Equal(t, 2, s.AnsweredCount)
						assert.Equal(t, model.SessionCompleted, s.Status)
						require.NotNil(t, s.CompletedAt)
					}).Return(nil).Once()
			},
			check: func(t *testing.T, resp *model.Response) {
				assert.Equal(t, model.AnswerPositive, resp.AnswerValue)
			},
		},
		{
			name: "異常系: 他テナントの子どもには回答できない",
			req:  validReq,
			setupMock: func(childRepo *mocks.ChildRepository, questionRepo *mocks.QuestionRepository, respRepo *mocks.ResponseRepository, sessionRepo *mocks.SessionRepository) {
				childRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, childID).
					Return(nil, model.ErrNotFound).Once()
			},
			wantCode: "CHILD_NOT_FOUND",
		},
		{
			name: "異常系: 無効化された設問への回答",
			req:  validReq,
			setupMock: func(childRepo *mocks.ChildRepository, questionRepo *mocks.QuestionRepository, respRepo *mocks.ResponseRepository, sessionRepo *mocks.SessionRepository) {
				childRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, childID).
					Return(testChild, nil).Once()
				questionRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), questionID).
					Return(inactiveQuestion, nil).Once()
			},
			wantCode: "QUESTION_NOT_FOUND",
		},
		{
			name: "異常系: 存在しない設問への回答",
			req:  validReq,
			setupMock: func(childRepo *mocks.ChildRepository, questionRepo *mocks.QuestionRepository, respRepo *mocks.ResponseRepository, sessionRepo *mocks.SessionRepository) {
				childRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, childID).
					Return(testChild, nil).Once()
				questionRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), questionID).
					Return(nil, model.ErrNotFound).Once()
			},
			wantCode: "QUESTION_NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockChildRepo := new(mocks.ChildRepository)
			mockQuestionRepo := new(mocks.QuestionRepository)
			mockRespRepo := new(mocks.ResponseRepository)
			mockSessionRepo := new(mocks.SessionRepository)
			tt.setupMock(mockChildRepo, mockQuestionRepo, mockRespRepo, mockSessionRepo)
			responseService := NewResponseService(db, mockChildRepo, mockQuestionRepo, mockRespRepo, mockSessionRepo)

			resp, err := responseService.PostResponse(ctx, tenantID, tt.req)

			if tt.wantCode != "" {
				require.Error(t, err)
				var appErr *model.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, tt.wantCode, appErr.Detail.Code)
				assert.Nil(t, resp)
			} else {
				require.NoError(t, err)
				require.NotNil(t, resp)
				tt.check(t, resp)
			}
			mockChildRepo.AssertExpectations(t)
			mockQuestionRepo.AssertExpectations(t)
			mockRespRepo.AssertExpectations(t)
			mockSessionRepo.AssertExpectations(t)
		})
	}
}

// --- Test GetResponses ---
func Test_responseService_GetResponses(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBResponse()

	tenantID := uuid.New()
	childID := uuid.New()
	testChild := &model.Child{
		ChildID:   childID,
		TenantID:  tenantID,
		Name:      "テスト花子",
		BirthDate: time.Now().AddDate(-1, 0, 0),
	}

	t.Run("正常系: 子どもの回答一覧を取得", func(t *testing.T) {
		mockChildRepo := new(mocks.ChildRepository)
		mockQuestionRepo := new(mocks.QuestionRepository)
		mockRespRepo := new(mocks.ResponseRepository)
		mockSessionRepo := new(mocks.SessionRepository)

		responses := []*model.Response{
			{ResponseID: uuid.New(), TenantID: tenantID, ChildID: childID, QuestionID: uuid.New(), AnswerValue: model.AnswerNeutral},
		}
		mockChildRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, childID).
			Return(testChild, nil).Once()
		mockRespRepo.On("FindByChild", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, childID).
			Return(responses, nil).Once()

		responseService := NewResponseService(db, mockChildRepo, mockQuestionRepo, mockRespRepo, mockSessionRepo)
		got, err := responseService.GetResponses(ctx, tenantID, childID)

		require.NoError(t, err)
		assert.Len(t, got, 1)
		mockChildRepo.AssertExpectations(t)
		mockRespRepo.AssertExpectations(t)
	})

	t.Run("異常系: 子どもが見つからない", func(t *testing.T) {
		mockChildRepo := new(mocks.ChildRepository)
		mockQuestionRepo := new(mocks.QuestionRepository)
		mockRespRepo := new(mocks.ResponseRepository)
		mockSessionRepo := new(mocks.SessionRepository)

		mockChildRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, childID).
			Return(nil, model.ErrNotFound).Once()

		responseService := NewResponseService(db, mockChildRepo, mockQuestionRepo, mockRespRepo, mockSessionRepo)
		got, err := responseService.GetResponses(ctx, tenantID, childID)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
		assert.Nil(t, got)
		mockChildRepo.AssertExpectations(t)
	})
}
