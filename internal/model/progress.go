// internal/model/progress.go
package model

// ProgressStatus は進捗ステータス (completed / in_progress)
const (
	ProgressCompleted  = "completed"
	ProgressInProgress = "in_progress"
)

// ProgressResponse は進捗取得APIのレスポンスDTO
// 保存せず毎回導出する (セッションの answered_count は表示用キャッシュ扱い)
type ProgressResponse struct {
	Total      int    `json:"total"`
	Answered   int    `json:"answered"`
	Unanswered int    `json:"unanswered"`
	Percentage int    `json:"percentage"`
	Status     string `json:"status"`
}
