// internal/model/session.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// SessionStatus はセッションの状態
// active -> completed (回答数が総数に到達したら自動)
// active <-> paused (外部操作)
// completed は終端。新しいバンドの回答は新規セッションで行う。
type SessionStatus string

const (
	SessionActive    SessionStatus = "active"
	SessionPaused    SessionStatus = "paused"
	SessionCompleted SessionStatus = "completed"
)

// Session は子ども1人分の設問バッチの回答活動を表します
// 「子どもごとにアクティブなセッションは高々1つ」を部分ユニークインデックスで保証する
type Session struct {
	SessionID      uuid.UUID     `gorm:"type:uuid;primaryKey" json:"session_id"`
	TenantID       uuid.UUID     `gorm:"type:uuid;not null;index" json:"-"`
	ChildID        uuid.UUID     `gorm:"type:uuid;not null;index:idx_child_active_session,unique,where:status = 'active'" json:"child_id"`
	Status         SessionStatus `gorm:"not null;default:'active'" json:"status"`
	TotalQuestions int           `gorm:"not null" json:"total_questions"` // 作成時点の該当設問数
	AnsweredCount  int           `gorm:"not null;default:0" json:"answered_count"`
	Payload        string        `gorm:"type:text" json:"payload,omitempty"` // 自由形式のセッションデータ
	CompletedAt    *time.Time    `json:"completed_at,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

func (Session) TableName() string {
	return "sessions"
}

// IsTerminal は終端状態 (completed) かどうかを返します
func (s *Session) IsTerminal() bool {
	return s.Status == SessionCompleted
}

// セッション作成リクエストDTO
type PostSessionRequest struct {
	ChildID        uuid.UUID `json:"child_id" validate:"required"`
	TotalQuestions *int      `json:"total_questions" validate:"required,min=0"`
	Payload        string    `json:"payload" validate:"max=4000"`
}

// セッション更新リクエストDTO
// status は paused / active への外部遷移のみ許可 (completed は自動遷移専用)
type PutSessionRequest struct {
	Status            *string `json:"status,omitempty" validate:"omitempty,oneof=active paused"`
	AnsweredQuestions *int    `json:"answered_questions,omitempty" validate:"omitempty,min=0"`
}
