package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/galaxia-edu/galaxia-backend/internal/config"
	"github.com/galaxia-edu/galaxia-backend/internal/handler"
	"github.com/galaxia-edu/galaxia-backend/internal/middleware"
	"github.com/galaxia-edu/galaxia-backend/internal/response"
	"github.com/galaxia-edu/galaxia-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth     *handler.AuthHandler
	Quiz     *handler.QuizHandler
	Exercise *handler.ExerciseHandler
	Progress *handler.ProgressHandler
	Admin    *handler.AdminHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Apply brotli middleware globally.
	router.Use(middleware.Brotli())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for auth routes (30 requests per minute per IP).
	authLimiter := middleware.NewRateLimiter(30, time.Minute)

	// ─── 1. Auth Group (Public, Rate Limited) ──────────────────────────
	auth := router.Group("/api/v1/auth")
	auth.Use(authLimiter.Middleware())
	{
		auth.POST("/register", handlers.Auth.Register)
		auth.POST("/login", handlers.Auth.Login)

		// Authenticated profile routes
		auth.GET("/me",
			middleware.RequireStudentJWT(authService),
			middleware.CheckSingleDeviceSession(authService),
			handlers.Auth.GetProfile,
		)
		auth.GET("/token-info", middleware.RequireAnyJWT(authService), handlers.Auth.TokenInfo)
		auth.POST("/logout", middleware.RequireStudentJWT(authService), handlers.Auth.Logout)
	}

	// ─── 2. Public Track Registry ──────────────────────────────────────
	// Phase lists are static configuration; cache for an hour.
	tracks := router.Group("/api/v1/tracks")
	tracks.Use(middleware.CacheControl(3600))
	{
		tracks.GET("/:game/phases", handlers.Progress.GetPhases)
	}

	// ─── 3. Student Group (JWT + Single Device) ────────────────────────
	studentAPI := router.Group("/api/v1")
	studentAPI.Use(
		middleware.RequireStudentJWT(authService),
		middleware.CheckSingleDeviceSession(authService),
	)
	{
		studentAPI.GET("/vialactea/questions", handlers.Quiz.GenerateQuiz)
		studentAPI.POST("/vialactea/review", handlers.Quiz.ReviewAnswer)

		studentAPI.GET("/andromeda/exercise", handlers.Exercise.GenerateExercise)
		studentAPI.POST("/andromeda/correction", handlers.Exercise.ReviewCorrection)

		studentAPI.GET("/progress/:game", handlers.Progress.GetProgress)
		studentAPI.POST("/progress/:game/score", handlers.Progress.ScorePhase)
	}

	// ─── 4. Admin Group (JWT) ──────────────────────────────────────────
	adminAPI := router.Group("/api/v1/admin")
	adminAPI.Use(middleware.RequireAdminJWT(authService))
	{
		adminAPI.GET("/students", handlers.Admin.ListStudents)
		adminAPI.PUT("/students/:id/status", handlers.Admin.SetStudentStatus)
		adminAPI.PUT("/students/:id/email", handlers.Admin.UpdateStudentEmail)
		adminAPI.PUT("/students/:id/name", handlers.Admin.UpdateStudentName)
		adminAPI.DELETE("/students/:id", handlers.Admin.DeleteStudent)
		adminAPI.POST("/students/:id/reset-session", handlers.Admin.ResetStudentSession)
	}

	return router
}
