package service

import (
	"errors"

	"newscheck/internal/dto"
	"newscheck/internal/models"
	"newscheck/internal/repository"

	"gorm.io/gorm"
)

// ErrAlreadyVoted surfaces the one-vote-per-user-per-news rule.
var ErrAlreadyVoted = errors.New("you have already voted on this news")

type VoteService interface {
	Cast(newsID, userID string, value models.VoteValue) (*dto.VoteResponse, error)
}

type voteService struct {
	voteRepo repository.VoteRepository
	newsRepo repository.NewsRepository
}

func NewVoteService(voteRepo repository.VoteRepository, newsRepo repository.NewsRepository) VoteService {
	return &voteService{
		voteRepo: voteRepo,
		newsRepo: newsRepo,
	}
}

// Cast records a verdict on an active news item. The duplicate pre-check
// keeps the common path friendly; the unique index decides races, so a
// concurrent double-submit still loses with ErrAlreadyVoted.
func (s *voteService) Cast(newsID, userID string, value models.VoteValue) (*dto.VoteResponse, error) {
	news, err := s.newsRepo.GetByID(newsID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNewsNotFound
		}
		return nil, err
	}
	if news.Visibility.Hidden() {
		return nil, ErrNewsNotFound
	}

	if _, err := s.voteRepo.FindByNewsAndUser(newsID, userID); err == nil {
		return nil, ErrAlreadyVoted
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	vote := &models.Vote{
		NewsID: newsID,
		UserID: userID,
		Vote:   value,
	}
	if err := s.voteRepo.Create(vote); err != nil {
		if errors.Is(err, repository.ErrDuplicateVote) {
			return nil, ErrAlreadyVoted
		}
		return nil, err
	}

	resp := dto.FromModelToVoteResponse(vote)
	return &resp, nil
}
