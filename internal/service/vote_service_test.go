package service_test

import (
	"testing"

	"newscheck/internal/dto"
	"newscheck/internal/models"
	"newscheck/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVoteService_CastOncePerUser(t *testing.T) {
	env := newTestEnv(t)
	reporter := env.seedUser(t, "reporter@example.com", models.RoleMember)
	voter := env.seedUser(t, "voter@example.com", models.RoleReader)

	news, err := env.news.Create(reporter.ID, dto.CreateNewsRequest{
		Topic:       "disputed claim",
		ShortDetail: "short",
		FullDetail:  "full",
	})
	require.NoError(t, err)

	vote, err := env.votes.Cast(news.ID, voter.ID, models.VoteFake)
	require.NoError(t, err)
	assert.Equal(t, models.VoteFake, vote.Vote)

	// A second vote is rejected even when the value differs.
	_, err = env.votes.Cast(news.ID, voter.ID, models.VoteNotFake)
	assert.ErrorIs(t, err, service.ErrAlreadyVoted)

	// The original verdict is untouched.
	detail, err := env.news.GetByID(news.ID, env.identity(voter))
	require.NoError(t, err)
	assert.Equal(t, int64(1), detail.VoteCounts.Fake)
	assert.Equal(t, int64(0), detail.VoteCounts.NotFake)
	require.NotNil(t, detail.UserVote)
	assert.Equal(t, models.VoteFake, *detail.UserVote)
}

func TestVoteService_HiddenOrMissingNewsRejectsVotes(t *testing.T) {
	env := newTestEnv(t)
	reporter := env.seedUser(t, "reporter@example.com", models.RoleMember)
	voter := env.seedUser(t, "voter@example.com", models.RoleReader)

	news, err := env.news.Create(reporter.ID, dto.CreateNewsRequest{
		Topic:       "hidden later",
		ShortDetail: "short",
		FullDetail:  "full",
	})
	require.NoError(t, err)

	_, err = env.news.SetVisibility(news.ID, true)
	require.NoError(t, err)

	_, err = env.votes.Cast(news.ID, voter.ID, models.VoteFake)
	assert.ErrorIs(t, err, service.ErrNewsNotFound)

	_, err = env.votes.Cast("00000000-0000-0000-0000-000000000000", voter.ID, models.VoteFake)
	assert.ErrorIs(t, err, service.ErrNewsNotFound)
}
