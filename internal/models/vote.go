package models

import "time"

type VoteValue string

const (
	VoteFake    VoteValue = "FAKE"
	VoteNotFake VoteValue = "NOT_FAKE"
)

// ValidVoteValue reports whether s names a castable vote.
func ValidVoteValue(s string) bool {
	switch VoteValue(s) {
	case VoteFake, VoteNotFake:
		return true
	}
	return false
}

// Vote records one user's verdict on one news item. The composite unique
// index is the final arbiter for the at-most-one-vote rule: concurrent
// duplicate inserts lose at the constraint, not at the application pre-check.
type Vote struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	NewsID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_votes_news_user" json:"newsId"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_votes_news_user" json:"userId"`
	Vote      VoteValue `gorm:"not null" json:"vote"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`

	// Associations
	News News `gorm:"foreignKey:NewsID;constraint:OnDelete:CASCADE;" json:"-"`
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"-"`
}

func (Vote) TableName() string {
	return "votes"
}

// VoteCounts is the per-news tally computed on read, never stored.
type VoteCounts struct {
	Fake    int64 `json:"fake"`
	NotFake int64 `json:"notFake"`
	Total   int64 `json:"total"`
}
