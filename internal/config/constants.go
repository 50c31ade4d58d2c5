// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "go_5_milestone_keep"
	AppVersion = "0.3.1"
)

// デフォルト設定値
const (
	DefaultServerPort       = ":8080"
	DefaultLogLevel         = "info"
	DefaultApplicableLimit  = 50 // 1回に返す該当設問数の上限
	DefaultJWTExpiryMinutes = 60 * 24
)
