// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"go_5_milestone_keep/internal/config"
	"go_5_milestone_keep/internal/handlers"
	"go_5_milestone_keep/internal/middleware"
	"go_5_milestone_keep/internal/model"
	"go_5_milestone_keep/internal/repository"
	"go_5_milestone_keep/internal/service"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	// 設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)
	log.Println("Log Config Loading...")

	// Configを読み込み
	if err := config.LoadConfig("../configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// === 設定に基づいて slog ロガーを初期化 ===
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(config.Cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", config.Cfg.Log.Level))
	}

	// APP_ENV=dev のときは人間が読みやすい tint、それ以外は JSON
	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		tintOpts := &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		}
		handler = tint.NewHandler(os.Stderr, tintOpts)
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		jsonOpts := &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		}
		handler = slog.NewJSONHandler(os.Stderr, jsonOpts)
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	logger := slog.New(handler)
	log.Println("Log Config Loaded...")

	slog.SetDefault(logger)
	slog.Info("Application starting...")

	// 2. Initialize Database Connection (GORM)
	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	// スキーマを同期 (部分ユニークインデックスもここで作成される)
	if err := db.AutoMigrate(
		&model.Tenant{},
		&model.Child{},
		&model.Question{},
		&model.Response{},
		&model.Session{},
	); err != nil {
		slog.Error("Error migrating database schema", slog.Any("error", err))
		os.Exit(1)
	}

	// 3. Dependency Injection
	tenantRepo := repository.NewGormTenantRepository()
	childRepo := repository.NewGormChildRepository()
	questionRepo := repository.NewGormQuestionRepository()
	responseRepo := repository.NewGormResponseRepository()
	sessionRepo := repository.NewGormSessionRepository()

	// メール送信は設定で切り替え (dev は送信せずログ出力のみ)
	var mailer service.Mailer
	if strings.ToLower(config.Cfg.Mail.Driver) == "ses" {
		mailer = service.NewSESMailer(&config.Cfg)
	} else {
		mailer = service.NewLogMailer()
	}

	authService := service.NewAuthService(db, tenantRepo, mailer, &config.Cfg)
	childService := service.NewChildService(db, childRepo, responseRepo)
	questionService := service.NewQuestionService(db, questionRepo, responseRepo, &config.Cfg)
	responseService := service.NewResponseService(db, childRepo, questionRepo, responseRepo, sessionRepo)
	progressService := service.NewProgressService(db, childRepo, questionRepo, responseRepo)
	sessionService := service.NewSessionService(db, childRepo, sessionRepo)

	authHandler := handlers.NewAuthHandler(authService, logger)
	childHandler := handlers.NewChildHandler(childService, logger)
	questionHandler := handlers.NewQuestionHandler(questionService, logger)
	responseHandler := handlers.NewResponseHandler(responseService, logger)
	progressHandler := handlers.NewProgressHandler(progressService, logger)
	sessionHandler := handlers.NewSessionHandler(sessionService, logger)

	// 4. Setup Router
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewStructuredLogger(logger))

	// CORS 設定と適用 (設定ファイルから読み込んだ値を使用)
	corsOptions := cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
		Debug:            false,
	}
	corsHandler := cors.New(corsOptions)
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// API Routes
	r.Route("/api/v1", func(r chi.Router) {
		// --- Public routes ---
		r.Post("/tenants", authHandler.PostTenant) // 保護者アカウント登録 (認証不要)
		r.Post("/login", authHandler.PostLogin)

		// --- Protected routes (require JWT) ---
		r.Group(func(r chi.Router) {
			if config.Cfg.Auth.Enabled {
				slog.Info("Applying JWT authentication middleware")
				r.Use(middleware.JWTAuthMiddleware(&config.Cfg))
			} else {
				// ローカル開発用。X-Tenant-IDヘッダーでテナントを指定する。
				slog.Warn("Auth disabled: using X-Tenant-ID header middleware")
				r.Use(middleware.DevTenantContextMiddleware)
			}

			// Child routes
			r.Route("/children", func(r chi.Router) {
				r.Post("/", childHandler.PostChild)
				r.Get("/", childHandler.GetChildren)
				r.Get("/{child_id}", childHandler.GetChild)
				r.Patch("/{child_id}", childHandler.PatchChild)
				r.Delete("/{child_id}", childHandler.DeleteChild)
			})

			// Question routes (作成・更新はコンテンツ管理者向け)
			r.Route("/questions", func(r chi.Router) {
				r.Post("/", questionHandler.PostQuestion)
				r.Get("/", questionHandler.GetQuestions)
				r.Get("/applicable", questionHandler.GetApplicableQuestions)
				r.Get("/{question_id}", questionHandler.GetQuestion)
				r.Put("/{question_id}", questionHandler.PutQuestion)
			})

			// Response routes
			r.Route("/responses", func(r chi.Router) {
				r.Post("/", responseHandler.PostResponse)
				r.Get("/", responseHandler.GetResponses)
			})

			// Progress routes
			r.Get("/progress", progressHandler.GetProgress)

			// Session routes
			r.Route("/sessions", func(r chi.Router) {
				r.Post("/", sessionHandler.PostSession)
				r.Get("/{session_id}", sessionHandler.GetSession)
				r.Put("/{session_id}", sessionHandler.PutSession)
				r.Post("/{session_id}/answers", sessionHandler.PostSessionAnswer)
			})
		})
	})

	// Health Check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sqlDB, err := db.DB()
		if err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not get DB object", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// 5. Start Server
	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}
