package repository

import (
	"errors"
	"strings"

	"newscheck/internal/models"

	"gorm.io/gorm"
)

// ErrDuplicateVote is returned when the (news, user) unique index rejects an
// insert. The index, not the application pre-check, is the final arbiter for
// the at-most-one-vote rule under concurrent requests.
var ErrDuplicateVote = errors.New("vote already exists for this news and user")

type VoteRepository interface {
	Create(vote *models.Vote) error
	FindByNewsAndUser(newsID, userID string) (*models.Vote, error)
	CountsByNews(newsIDs []string) (map[string]models.VoteCounts, error)
}

type voteRepository struct {
	db *gorm.DB
}

func NewVoteRepository(db *gorm.DB) VoteRepository {
	return &voteRepository{db: db}
}

func (r *voteRepository) Create(vote *models.Vote) error {
	err := r.db.Create(vote).Error
	if err != nil && isDuplicateKey(err) {
		return ErrDuplicateVote
	}
	return err
}

func (r *voteRepository) FindByNewsAndUser(newsID, userID string) (*models.Vote, error) {
	var vote models.Vote
	err := r.db.Where("news_id = ? AND user_id = ?", newsID, userID).
		First(&vote).Error
	if err != nil {
		return nil, err
	}
	return &vote, nil
}

// CountsByNews tallies votes per value for the given news ids in one grouped
// query. News ids without votes are present in the result with zero counts.
func (r *voteRepository) CountsByNews(newsIDs []string) (map[string]models.VoteCounts, error) {
	counts := make(map[string]models.VoteCounts, len(newsIDs))
	for _, id := range newsIDs {
		counts[id] = models.VoteCounts{}
	}
	if len(newsIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		NewsID string
		Vote   models.VoteValue
		N      int64
	}
	err := r.db.Model(&models.Vote{}).
		Select("news_id, vote, COUNT(*) as n").
		Where("news_id IN ?", newsIDs).
		Group("news_id").
		Group("vote").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		c := counts[row.NewsID]
		switch row.Vote {
		case models.VoteFake:
			c.Fake = row.N
		case models.VoteNotFake:
			c.NotFake = row.N
		}
		c.Total = c.Fake + c.NotFake
		counts[row.NewsID] = c
	}
	return counts, nil
}

// isDuplicateKey matches unique violations across both supported dialects.
// gorm's TranslateError covers postgres; the sqlite driver still surfaces the
// raw constraint message.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint") || strings.Contains(msg, "duplicate key")
}
