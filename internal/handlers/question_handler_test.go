// internal/handlers/question_handler_test.go
package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"go_5_milestone_keep/internal/handlers"
	"go_5_milestone_keep/internal/middleware"
	"go_5_milestone_keep/internal/model"
	"go_5_milestone_keep/internal/service/mocks"
)

func TestQuestionHandler_PostQuestion(t *testing.T) {
	// --- セットアップ ---
	clearTables(t)
	testTenant := createTestTenant(t)
	currentTestTenantID := testTenant.TenantID

	mockQuestionService := mocks.NewMockQuestionService(t)
	questionHandler := handlers.NewQuestionHandler(mockQuestionService, nil)
	router := chi.NewRouter()
	router.Use(middleware.DevTenantContextMiddleware)
	router.Post("/api/v1/questions", questionHandler.PostQuestion)
	// ------------------

	minAge := 12
	maxAge := 24
	validReqBody := model.PostQuestionRequest{
		Domain:       "language",
		Text:         "意味のある単語を2つ以上話しますか？",
		MinAgeMonths: &minAge,
		MaxAgeMonths: &maxAge,
	}
	expectedQuestion := &model.Question{
		QuestionID:   uuid.New(),
		Domain:       validReqBody.Domain,
		Text:         validReqBody.Text,
		MinAgeMonths: minAge,
		MaxAgeMonths: maxAge,
		IsActive:     true,
	}

	tests := []struct {
		name           string
		tenantID       *uuid.UUID
		body           interface{}
		setupMock      func()
		expectedStatus int
	}{
		{
			name:     "Success - Valid request",
			tenantID: &currentTestTenantID,
			body:     validReqBody,
			setupMock: func() {
				mockQuestionService.On("PostQuestion", mock.AnythingOfType("*context.valueCtx"), &validReqBody).
					Return(expectedQuestion, nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:     "Fail - Inverted age band",
			tenantID: &currentTestTenantID,
			body: model.PostQuestionRequest{
				Domain:       "language",
				Text:         "test",
				MinAgeMonths: &maxAge,
				MaxAgeMonths: &minAge,
			},
			setupMock: func() {
				mockQuestionService.On("PostQuestion", mock.AnythingOfType("*context.valueCtx"), mock.AnythingOfType("*model.PostQuestionRequest")).
					Return(nil, model.NewAppError("VALIDATION_ERROR", "min_age_monthsはmax_age_months以下である必要があります。", "min_age_months", model.ErrInvalidInput)).Once()
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Fail - Missing text",
			tenantID:       &currentTestTenantID,
			body:           model.PostQuestionRequest{Domain: "language", MinAgeMonths: &minAge, MaxAgeMonths: &maxAge},
			setupMock:      func() { /* Serviceは呼ばれない */ },
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Fail - Missing tenant ID",
			tenantID:       nil,
			body:           validReqBody,
			setupMock:      func() { /* Serviceは呼ばれない */ },
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMock()
			req := createRequest(t, "POST", "/api/v1/questions", tc.body, tc.tenantID)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedStatus == http.StatusCreated {
				var respQuestion model.Question
				err := json.Unmarshal(rr.Body.Bytes(), &respQuestion)
				assert.NoError(t, err)
				assert.Equal(t, expectedQuestion.QuestionID, respQuestion.QuestionID)
				assert.Equal(t, minAge, respQuestion.MinAgeMonths)
				assert.Equal(t, maxAge, respQuestion.MaxAgeMonths)
			}
			mockQuestionService.AssertExpectations(t)
		})
	}
}

func TestQuestionHandler_GetApplicableQuestions(t *testing.T) {
	// --- セットアップ ---
	clearTables(t)
	testTenant := createTestTenant(t)
	currentTestTenantID := testTenant.TenantID

	mockQuestionService := mocks.NewMockQuestionService(t)
	questionHandler := handlers.NewQuestionHandler(mockQuestionService, nil)
	router := chi.NewRouter()
	router.Use(middleware.DevTenantContextMiddleware)
	router.Get("/api/v1/questions/applicable", questionHandler.GetApplicableQuestions)
	// ------------------

	expectedQuestions := []*model.Question{
		{QuestionID: uuid.New(), Domain: "motor", Text: "首がすわっていますか？", MinAgeMonths: 3, MaxAgeMonths: 6, IsActive: true},
		{QuestionID: uuid.New(), Domain: "social", Text: "あやすと笑いますか？", MinAgeMonths: 2, MaxAgeMonths: 5, IsActive: true},
	}

	tests := []struct {
		name           string
		tenantID       *uuid.UUID
		query          string
		setupMock      func()
		expectedStatus int
		expectedCount  int
	}{
		{
			name:     "Success - Questions for age in band",
			tenantID: &currentTestTenantID,
			query:    "?age_months=4",
			setupMock: func() {
				mockQuestionService.On("GetApplicableQuestions", mock.AnythingOfType("*context.valueCtx"), 4).
					Return(expectedQuestions, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedCount:  2,
		},
		{
			name:     "Success - Age zero is a valid age",
			tenantID: &currentTestTenantID,
			query:    "?age_months=0",
			setupMock: func() {
				mockQuestionService.On("GetApplicableQuestions", mock.AnythingOfType("*context.valueCtx"), 0).
					Return([]*model.Question{}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedCount:  0,
		},
		{
			name:           "Fail - Missing age_months query parameter",
			tenantID:       &currentTestTenantID,
			query:          "",
			setupMock:      func() { /* Serviceは呼ばれない */ },
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Fail - Negative age_months",
			tenantID:       &currentTestTenantID,
			query:          "?age_months=-1",
			setupMock:      func() { /* Serviceは呼ばれない */ },
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Fail - Non-numeric age_months",
			tenantID:       &currentTestTenantID,
			query:          "?age_months=abc",
			setupMock:      func() { /* Serviceは呼ばれない */ },
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Fail - Missing tenant ID",
			tenantID:       nil,
			query:          "?age_months=4",
			setupMock:      func() { /* Serviceは呼ばれない */ },
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMock()
			req := createRequest(t, "GET", "/api/v1/questions/applicable"+tc.query, nil, tc.tenantID)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedStatus == http.StatusOK {
				var respQuestions []model.Question
				err := json.Unmarshal(rr.Body.Bytes(), &respQuestions)
				assert.NoError(t, err)
				assert.Len(t, respQuestions, tc.expectedCount)
			}
			mockQuestionService.AssertExpectations(t)
		})
	}
}

func TestQuestionHandler_GetQuestion(t *testing.T) {
	// --- セットアップ ---
	clearTables(t)
	testTenant := createTestTenant(t)
	currentTestTenantID := testTenant.TenantID

	mockQuestionService := mocks.NewMockQuestionService(t)
	questionHandler := handlers.NewQuestionHandler(mockQuestionService, nil)
	router := chi.NewRouter()
	router.Use(middleware.DevTenantContextMiddleware)
	router.Get("/api/v1/questions/{question_id}", questionHandler.GetQuestion)
	// ------------------

	questionToGet := &model.Question{
		QuestionID:   uuid.New(),
		Domain:       "motor",
		Text:         "ひとりで歩けますか？",
		MinAgeMonths: 12,
		MaxAgeMonths: 18,
		IsActive:     true,
	}

	tests := []struct {
		name            string
		tenantID        *uuid.UUID
		questionIDParam string
		setupMock       func()
		expectedStatus  int
	}{
		{
			name:            "Success - Get existing question",
			tenantID:        &currentTestTenantID,
			questionIDParam: questionToGet.QuestionID.String(),
			setupMock: func() {
				mockQuestionService.On("GetQuestion", mock.AnythingOfType("*context.valueCtx"), questionToGet.QuestionID).
					Return(questionToGet, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:            "Fail - Question not found",
			tenantID:        &currentTestTenantID,
			questionIDParam: uuid.New().String(),
			setupMock: func() {
				mockQuestionService.On("GetQuestion", mock.AnythingOfType("*context.valueCtx"), mock.AnythingOfType("uuid.UUID")).
					Return(nil, model.NewAppError("QUESTION_NOT_FOUND", "対象の設問が見つかりません。", "question_id", model.ErrNotFound)).Once()
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:            "Fail - Invalid UUID format",
			tenantID:        &currentTestTenantID,
			questionIDParam: "not-a-uuid",
			setupMock:       func() { /* Serviceは呼ばれない */ },
			expectedStatus:  http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMock()
			url := fmt.Sprintf("/api/v1/questions/%s", tc.questionIDParam)
			req := createRequest(t, "GET", url, nil, tc.tenantID)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedStatus == http.StatusOK {
				var respQuestion model.Question
				err := json.Unmarshal(rr.Body.Bytes(), &respQuestion)
				assert.NoError(t, err)
				assert.Equal(t, questionToGet.QuestionID, respQuestion.QuestionID)
				assert.Equal(t, questionToGet.Text, respQuestion.Text)
			}
			mockQuestionService.AssertExpectations(t)
		})
	}
}
