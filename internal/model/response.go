// internal/model/response.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Response は (子ども, 設問) ごとに1件の回答を表します
// 再送信は追記ではなく上書き (自然キー (child_id, question_id) でUPSERT)
type Response struct {
	ResponseID  uuid.UUID   `gorm:"type:uuid;primaryKey" json:"response_id"`
	TenantID    uuid.UUID   `gorm:"type:uuid;not null;index" json:"-"`
	ChildID     uuid.UUID   `gorm:"type:uuid;not null;index:idx_child_question,unique" json:"child_id"`
	QuestionID  uuid.UUID   `gorm:"type:uuid;not null;index:idx_child_question,unique" json:"question_id"`
	AnswerValue AnswerValue `gorm:"not null" json:"answer_value"`
	AnswerText  string      `json:"answer_text"`
	AnsweredAt  time.Time   `gorm:"not null" json:"answered_at"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`

	// 関連 (Preload用)
	Question *Question `gorm:"foreignKey:QuestionID;references:QuestionID" json:"-"`
}

func (Response) TableName() string {
	return "responses"
}

// 回答送信リクエストDTO
// answer_value はポインタにして 0 を required で弾かないようにする
type PostResponseRequest struct {
	ChildID     uuid.UUID `json:"child_id" validate:"required"`
	QuestionID  uuid.UUID `json:"question_id" validate:"required"`
	AnswerValue *int      `json:"answer_value" validate:"required,min=0,max=2"`
	AnswerText  string    `json:"answer_text" validate:"max=1000"`
}
