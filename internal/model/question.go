// internal/model/question.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AnswerValue は回答値の列挙 (0:できない / 1:ときどき / 2:できる)
type AnswerValue int

const (
	AnswerNegative AnswerValue = iota // 0
	AnswerNeutral                     // 1
	AnswerPositive                    // 2
)

// FeedbackSet は回答値ごとのフィードバック文を持つレコード
// 自由形式のJSONではなく明示的な型として保持する
type FeedbackSet struct {
	Positive string `json:"positive"`
	Neutral  string `json:"neutral"`
	Negative string `json:"negative"`
}

// For は回答値に対応するフィードバック文を返します
func (f FeedbackSet) For(value AnswerValue) string {
	switch value {
	case AnswerPositive:
		return f.Positive
	case AnswerNeutral:
		return f.Neutral
	default:
		return f.Negative
	}
}

// Question は月齢バンド付きの発達チェック設問を表します
// バンドは [MinAgeMonths, MaxAgeMonths] の両端を含む
type Question struct {
	QuestionID   uuid.UUID      `gorm:"type:uuid;primaryKey" json:"question_id"`
	Domain       string         `gorm:"not null;index" json:"domain"` // 発達領域 (motor, language など)
	Text         string         `gorm:"not null" json:"text"`
	MinAgeMonths int            `gorm:"not null;index" json:"min_age_months"`
	MaxAgeMonths int            `gorm:"not null" json:"max_age_months"`
	OrderIndex   int            `gorm:"not null;default:0" json:"order_index"` // バンド内の表示順
	IsActive     bool           `gorm:"not null;default:true" json:"is_active"`
	Feedback     FeedbackSet    `gorm:"embedded;embeddedPrefix:feedback_" json:"feedback"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Question) TableName() string {
	return "questions"
}

// AppliesTo は月齢がこの設問のバンドに含まれるかを返します
func (q *Question) AppliesTo(ageMonths int) bool {
	return q.MinAgeMonths <= ageMonths && ageMonths <= q.MaxAgeMonths
}

// 設問作成リクエストDTO (コンテンツ管理者用)
type PostQuestionRequest struct {
	Domain       string      `json:"domain" validate:"required,min=1,max=50"`
	Text         string      `json:"text" validate:"required,min=1"`
	MinAgeMonths *int        `json:"min_age_months" validate:"required,min=0"`
	MaxAgeMonths *int        `json:"max_age_months" validate:"required,min=0"`
	OrderIndex   int         `json:"order_index" validate:"min=0"`
	Feedback     FeedbackSet `json:"feedback"`
}

// 設問更新リクエストDTO
// 回答済みの設問は is_active / order_index 以外変更不可 (サービス層で検査)
type PutQuestionRequest struct {
	Domain       *string      `json:"domain,omitempty" validate:"omitempty,min=1,max=50"`
	Text         *string      `json:"text,omitempty" validate:"omitempty,min=1"`
	MinAgeMonths *int         `json:"min_age_months,omitempty" validate:"omitempty,min=0"`
	MaxAgeMonths *int         `json:"max_age_months,omitempty" validate:"omitempty,min=0"`
	OrderIndex   *int         `json:"order_index,omitempty" validate:"omitempty,min=0"`
	IsActive     *bool        `json:"is_active,omitempty"`
	Feedback     *FeedbackSet `json:"feedback,omitempty"`
}
