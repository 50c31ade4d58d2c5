// internal/service/mailer.go
package service

import (
	"context"

	"go_5_milestone_keep/internal/middleware"
)

// Mailer はメール送信の抽象です (本番はSES、開発はログ出力)
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// logMailer は送信せずログに出すだけの開発用実装です
type logMailer struct{}

func NewLogMailer() Mailer {
	return &logMailer{}
}

func (m *logMailer) Send(ctx context.Context, to, subject, body string) error {
	logger := middleware.GetLogger(ctx)
	logger.Info("Mail (log driver, not sent)",
		"to", to,
		"subject", subject,
		"body", body,
	)
	return nil
}
