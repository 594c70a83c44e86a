package service_test

import (
	"testing"

	"newscheck/internal/config"
	"newscheck/internal/models"
	"newscheck/internal/repository"
	"newscheck/internal/service"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testEnv wires real services over an in-memory database so the scenarios
// exercise the full service+repository stack.
type testEnv struct {
	db       *gorm.DB
	auth     service.AuthService
	news     service.NewsService
	votes    service.VoteService
	comments service.CommentService
	users    service.UserService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvWithSecret(t, "test-secret-test-secret-test-secret!")
}

func newTestEnvWithSecret(t *testing.T, jwtSecret string) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.News{},
		&models.Vote{},
		&models.Comment{},
	))

	userRepo := repository.NewUserRepository(db)
	newsRepo := repository.NewNewsRepository(db)
	voteRepo := repository.NewVoteRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	cfg := &config.Config{JWTSecret: jwtSecret}

	return &testEnv{
		db:       db,
		auth:     service.NewAuthService(userRepo, cfg),
		news:     service.NewNewsService(newsRepo, voteRepo, commentRepo),
		votes:    service.NewVoteService(voteRepo, newsRepo),
		comments: service.NewCommentService(commentRepo, newsRepo),
		users:    service.NewUserService(userRepo),
	}
}

func (e *testEnv) seedUser(t *testing.T, email string, role models.Role) *models.User {
	t.Helper()

	user := &models.User{
		Email:     email,
		Password:  "not-a-real-hash",
		FirstName: "Seed",
		LastName:  "User",
		Role:      role,
	}
	require.NoError(t, e.db.Create(user).Error)
	return user
}

func (e *testEnv) identity(user *models.User) service.Identity {
	return service.Identity{UserID: user.ID, Role: user.Role, Authenticated: true}
}
