// internal/model/child.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Child は保護者アカウントに属する子どもの記録を表します
type Child struct {
	ChildID   uuid.UUID      `gorm:"type:uuid;primaryKey" json:"child_id"`
	TenantID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"-"`
	Name      string         `gorm:"not null" json:"name"`
	BirthDate time.Time      `gorm:"not null" json:"birth_date"` // 月齢計算の基準
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"` // 論理削除用

	// 関連 (Preload用)
	Responses []Response `gorm:"foreignKey:ChildID;references:ChildID" json:"-"`
}

func (Child) TableName() string {
	return "children"
}

// AgeInMonths は基準日時点の月齢を返します。
// 暦上の月単位で数え、日未達の月は切り捨てる。負にはならない。
func AgeInMonths(birthDate, at time.Time) int {
	months := (at.Year()-birthDate.Year())*12 + int(at.Month()) - int(birthDate.Month())
	if at.Day() < birthDate.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

// 子ども登録リクエストDTO
// birth_date は "YYYY-MM-DD" 形式
type PostChildRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=100"`
	BirthDate string `json:"birth_date" validate:"required,datetime=2006-01-02"`
}

// 子ども更新（部分）リクエストDTO
type PatchChildRequest struct {
	Name      *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	BirthDate *string `json:"birth_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}
