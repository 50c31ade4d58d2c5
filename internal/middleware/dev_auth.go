// internal/middleware/dev_auth.go
package middleware

import (
	"context"
	"net/http"

	"go_5_milestone_keep/internal/model"
	"go_5_milestone_keep/internal/webutil"

	"github.com/google/uuid"
)

// DevTenantContextMiddleware は開発・テスト時用ミドルウェアです。
// X-Tenant-ID ヘッダーからUUIDを抽出し、コンテキストに設定します。
// DBでのテナント存在チェックは行いません。
func DevTenantContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLogger(r.Context())

		tenantIDStr := r.Header.Get("X-Tenant-ID")
		if tenantIDStr == "" {
			// 開発時でも Tenant ID は必須とする (API利用のために)
			appErr := model.NewAppError("UNAUTHORIZED", "X-Tenant-IDヘッダーが必要です。", "", model.ErrForbidden)
			webutil.HandleError(w, logger, appErr)
			return
		}

		tenantID, err := uuid.Parse(tenantIDStr)
		if err != nil {
			appErr := model.NewAppError("UNAUTHORIZED", "X-Tenant-IDの形式が正しくありません。", "", model.ErrForbidden)
			webutil.HandleError(w, logger, appErr)
			return
		}

		// DB検証はスキップしてコンテキストにテナントIDをセット
		ctx := context.WithValue(r.Context(), model.TenantIDKey, tenantID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
