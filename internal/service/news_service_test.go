package service_test

import (
	"testing"

	"newscheck/internal/dto"
	"newscheck/internal/models"
	"newscheck/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func TestNewsService_CreateStartsUnknownAndActive(t *testing.T) {
	env := newTestEnv(t)
	member := env.seedUser(t, "member@example.com", models.RoleMember)

	news, err := env.news.Create(member.ID, dto.CreateNewsRequest{
		Topic:       "breaking claim",
		ShortDetail: "short",
		FullDetail:  "full",
	})
	require.NoError(t, err)

	assert.Equal(t, models.StatusUnknown, news.Status)
	assert.False(t, news.IsDeleted)
	assert.Equal(t, member.ID, news.ReporterID)
	assert.Equal(t, member.ID, news.Reporter.ID)
	assert.Equal(t, int64(0), news.VoteCounts.Total)
}

func TestNewsService_HiddenNewsVisibilitySymmetry(t *testing.T) {
	env := newTestEnv(t)
	member := env.seedUser(t, "member@example.com", models.RoleMember)
	reader := env.seedUser(t, "reader@example.com", models.RoleReader)
	admin := env.seedUser(t, "admin@example.com", models.RoleAdmin)

	news, err := env.news.Create(member.ID, dto.CreateNewsRequest{
		Topic:       "to be hidden",
		ShortDetail: "short",
		FullDetail:  "full",
	})
	require.NoError(t, err)

	_, err = env.news.SetVisibility(news.ID, true)
	require.NoError(t, err)

	// Hidden is indistinguishable from absent for anonymous and non-admin callers.
	_, err = env.news.GetByID(news.ID, service.Anonymous())
	assert.ErrorIs(t, err, service.ErrNewsNotFound)
	_, err = env.news.GetByID(news.ID, env.identity(reader))
	assert.ErrorIs(t, err, service.ErrNewsNotFound)
	_, err = env.news.GetByID(news.ID, env.identity(member))
	assert.ErrorIs(t, err, service.ErrNewsNotFound)

	// Admins see the full record by direct access.
	detail, err := env.news.GetByID(news.ID, env.identity(admin))
	require.NoError(t, err)
	assert.True(t, detail.IsDeleted)

	// Listing excludes hidden rows for non-admins unconditionally.
	page, err := env.news.List(dto.NewsListQuery{IncludeDeleted: true}, env.identity(reader))
	require.NoError(t, err)
	assert.Empty(t, page.Data)

	// Admin without includeDeleted does not see hidden rows either: both
	// conditions are required.
	page, err = env.news.List(dto.NewsListQuery{}, env.identity(admin))
	require.NoError(t, err)
	assert.Empty(t, page.Data)

	page, err = env.news.List(dto.NewsListQuery{IncludeDeleted: true}, env.identity(admin))
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.True(t, page.Data[0].IsDeleted)

	// Restoring brings it back for everyone.
	_, err = env.news.SetVisibility(news.ID, false)
	require.NoError(t, err)
	_, err = env.news.GetByID(news.ID, service.Anonymous())
	assert.NoError(t, err)
}

func TestNewsService_DetailAggregatesAndUserVote(t *testing.T) {
	env := newTestEnv(t)
	member := env.seedUser(t, "member@example.com", models.RoleMember)
	voterA := env.seedUser(t, "a@example.com", models.RoleReader)
	voterB := env.seedUser(t, "b@example.com", models.RoleReader)

	news, err := env.news.Create(member.ID, dto.CreateNewsRequest{
		Topic:       "tallied",
		ShortDetail: "short",
		FullDetail:  "full",
	})
	require.NoError(t, err)

	_, err = env.votes.Cast(news.ID, voterA.ID, models.VoteFake)
	require.NoError(t, err)
	_, err = env.votes.Cast(news.ID, voterB.ID, models.VoteNotFake)
	require.NoError(t, err)

	_, err = env.comments.Create(news.ID, voterA.ID, dto.CreateCommentRequest{Content: "evidence"})
	require.NoError(t, err)

	detail, err := env.news.GetByID(news.ID, env.identity(voterA))
	require.NoError(t, err)
	assert.Equal(t, int64(1), detail.VoteCounts.Fake)
	assert.Equal(t, int64(1), detail.VoteCounts.NotFake)
	assert.Equal(t, int64(2), detail.VoteCounts.Total)
	assert.Equal(t, int64(1), detail.CommentCount)
	require.NotNil(t, detail.UserVote)
	assert.Equal(t, models.VoteFake, *detail.UserVote)

	// Anonymous callers get a null userVote.
	detail, err = env.news.GetByID(news.ID, service.Anonymous())
	require.NoError(t, err)
	assert.Nil(t, detail.UserVote)

	// Authenticated but unvoted callers too.
	detail, err = env.news.GetByID(news.ID, env.identity(member))
	require.NoError(t, err)
	assert.Nil(t, detail.UserVote)
}

func TestNewsService_ListPaginationEnvelope(t *testing.T) {
	env := newTestEnv(t)
	member := env.seedUser(t, "member@example.com", models.RoleMember)

	for i := 0; i < 23; i++ {
		_, err := env.news.Create(member.ID, dto.CreateNewsRequest{
			Topic:       "item",
			ShortDetail: "short",
			FullDetail:  "full",
		})
		require.NoError(t, err)
	}

	page, err := env.news.List(dto.NewsListQuery{
		PageQuery: dto.PageQuery{Page: intPtr(3), PageSize: intPtr(10)},
	}, service.Anonymous())
	require.NoError(t, err)
	assert.Len(t, page.Data, 3)
	assert.Equal(t, int64(23), page.Pagination.Total)
	assert.Equal(t, 3, page.Pagination.TotalPages)

	page, err = env.news.List(dto.NewsListQuery{
		PageQuery: dto.PageQuery{Page: intPtr(4), PageSize: intPtr(10)},
	}, service.Anonymous())
	require.NoError(t, err)
	assert.Empty(t, page.Data)
	assert.Equal(t, int64(23), page.Pagination.Total)
}

func TestNewsService_StatusIsModeratorAsserted(t *testing.T) {
	env := newTestEnv(t)
	member := env.seedUser(t, "member@example.com", models.RoleMember)
	voter := env.seedUser(t, "voter@example.com", models.RoleReader)

	news, err := env.news.Create(member.ID, dto.CreateNewsRequest{
		Topic:       "claim",
		ShortDetail: "short",
		FullDetail:  "full",
	})
	require.NoError(t, err)

	// A community vote does not move the status.
	_, err = env.votes.Cast(news.ID, voter.ID, models.VoteFake)
	require.NoError(t, err)
	detail, err := env.news.GetByID(news.ID, service.Anonymous())
	require.NoError(t, err)
	assert.Equal(t, models.StatusUnknown, detail.Status)

	updated, err := env.news.UpdateStatus(news.ID, models.StatusNotFake)
	require.NoError(t, err)
	assert.Equal(t, models.StatusNotFake, updated.Status)

	_, err = env.news.UpdateStatus("00000000-0000-0000-0000-000000000000", models.StatusFake)
	assert.ErrorIs(t, err, service.ErrNewsNotFound)
}
