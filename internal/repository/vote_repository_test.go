package repository_test

import (
	"testing"

	"newscheck/internal/models"
	"newscheck/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVoteRepository_UniqueIndexIsTheArbiter(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewVoteRepository(db)

	reporter := createUser(t, db, "reporter@example.com", models.RoleMember)
	voter := createUser(t, db, "voter@example.com", models.RoleReader)
	news := createNews(t, db, reporter.ID, "suspicious claim")

	require.NoError(t, repo.Create(&models.Vote{
		NewsID: news.ID,
		UserID: voter.ID,
		Vote:   models.VoteFake,
	}))

	// Second insert for the same (news, user) pair must lose at the index,
	// even though no pre-check ran.
	err := repo.Create(&models.Vote{
		NewsID: news.ID,
		UserID: voter.ID,
		Vote:   models.VoteNotFake,
	})
	assert.ErrorIs(t, err, repository.ErrDuplicateVote)

	var count int64
	require.NoError(t, db.Model(&models.Vote{}).Where("news_id = ?", news.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestVoteRepository_SameUserDifferentNews(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewVoteRepository(db)

	reporter := createUser(t, db, "reporter@example.com", models.RoleMember)
	voter := createUser(t, db, "voter@example.com", models.RoleReader)
	first := createNews(t, db, reporter.ID, "first")
	second := createNews(t, db, reporter.ID, "second")

	require.NoError(t, repo.Create(&models.Vote{NewsID: first.ID, UserID: voter.ID, Vote: models.VoteFake}))
	require.NoError(t, repo.Create(&models.Vote{NewsID: second.ID, UserID: voter.ID, Vote: models.VoteFake}))
}

func TestVoteRepository_CountsByNews(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewVoteRepository(db)

	reporter := createUser(t, db, "reporter@example.com", models.RoleMember)
	news := createNews(t, db, reporter.ID, "tallied claim")
	unvoted := createNews(t, db, reporter.ID, "ignored claim")

	for i, value := range []models.VoteValue{models.VoteFake, models.VoteFake, models.VoteNotFake} {
		voter := createUser(t, db, string(rune('a'+i))+"@example.com", models.RoleReader)
		require.NoError(t, repo.Create(&models.Vote{NewsID: news.ID, UserID: voter.ID, Vote: value}))
	}

	counts, err := repo.CountsByNews([]string{news.ID, unvoted.ID})
	require.NoError(t, err)

	assert.Equal(t, int64(2), counts[news.ID].Fake)
	assert.Equal(t, int64(1), counts[news.ID].NotFake)
	assert.Equal(t, int64(3), counts[news.ID].Total)
	assert.Equal(t, counts[news.ID].Total, counts[news.ID].Fake+counts[news.ID].NotFake)

	// Unvoted ids are present with zero counts.
	assert.Equal(t, models.VoteCounts{}, counts[unvoted.ID])
}

func TestVoteRepository_FindByNewsAndUser(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewVoteRepository(db)

	reporter := createUser(t, db, "reporter@example.com", models.RoleMember)
	voter := createUser(t, db, "voter@example.com", models.RoleReader)
	news := createNews(t, db, reporter.ID, "claim")

	require.NoError(t, repo.Create(&models.Vote{NewsID: news.ID, UserID: voter.ID, Vote: models.VoteNotFake}))

	vote, err := repo.FindByNewsAndUser(news.ID, voter.ID)
	require.NoError(t, err)
	assert.Equal(t, models.VoteNotFake, vote.Vote)

	_, err = repo.FindByNewsAndUser(news.ID, reporter.ID)
	assert.Error(t, err)
}
