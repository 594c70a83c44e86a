package handler

import (
	"net/http"
	"time"

	"newscheck/internal/config"
	"newscheck/internal/middleware"
	"newscheck/internal/models"
	"newscheck/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Handlers bundles every endpoint group for route registration.
type Handlers struct {
	Auth    *AuthHandler
	News    *NewsHandler
	Vote    *VoteHandler
	Comment *CommentHandler
	User    *UserHandler
	Upload  *UploadHandler
}

// NewRouter builds the gin engine with global middleware and all routes.
// Writes go through strict authentication; reads use the lenient variant so
// an invalid token degrades to anonymous instead of failing the request.
func NewRouter(cfg *config.Config, authService service.AuthService, h Handlers) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.SecurityHeaders())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	limiter := middleware.NewIPRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	limiter.StartCleanup(10 * time.Minute)
	limit := middleware.RateLimit(limiter)

	authRequired := middleware.Authenticate(authService)
	authOptional := middleware.OptionalAuthenticate(authService)
	adminOnly := middleware.RequireRole(models.RoleAdmin)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "newscheck API"})
	})
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := r.Group("/auth")
	{
		auth.POST("/register", limit, h.Auth.Register)
		auth.POST("/login", limit, h.Auth.Login)
		auth.GET("/me", authRequired, h.Auth.Me)
	}

	news := r.Group("/news")
	{
		news.GET("", authOptional, h.News.List)
		news.GET("/:id", authOptional, h.News.Get)
		news.POST("", limit, authRequired, middleware.RequireRole(models.RoleMember, models.RoleAdmin), h.News.Create)
		news.PATCH("/:id", authRequired, adminOnly, h.News.UpdateStatus)
		news.PATCH("/:id/visibility", authRequired, adminOnly, h.News.SetVisibility)

		news.GET("/:id/comments", h.Comment.ListByNews)
		news.POST("/:id/comments", limit, authRequired, h.Comment.Create)
		news.POST("/:id/vote", limit, authRequired, h.Vote.Cast)
	}

	comments := r.Group("/comments")
	{
		comments.DELETE("/:id", authRequired, adminOnly, h.Comment.Delete)
	}

	users := r.Group("/users")
	{
		users.GET("", authRequired, adminOnly, h.User.List)
		users.PATCH("/me", authRequired, h.User.UpdateProfile)
		users.PATCH("/:id/role", authRequired, adminOnly, h.User.UpdateRole)
	}

	// Anonymous upload is deliberate: avatar uploads happen before registration.
	r.POST("/upload", limit, h.Upload.Upload)

	return r
}
