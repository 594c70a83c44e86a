package service

import (
	"errors"

	"newscheck/internal/dto"
	"newscheck/internal/models"
	"newscheck/internal/repository"

	"gorm.io/gorm"
)

// ErrNewsNotFound covers both truly-absent records and records hidden from
// the caller: non-admins cannot distinguish deleted news from missing news.
var ErrNewsNotFound = errors.New("news not found")

type NewsService interface {
	List(query dto.NewsListQuery, caller Identity) (dto.Page[dto.NewsResponse], error)
	GetByID(id string, caller Identity) (*dto.NewsDetailResponse, error)
	Create(reporterID string, req dto.CreateNewsRequest) (*dto.NewsResponse, error)
	UpdateStatus(id string, status models.NewsStatus) (*dto.NewsResponse, error)
	SetVisibility(id string, deleted bool) (*dto.NewsResponse, error)
}

type newsService struct {
	newsRepo    repository.NewsRepository
	voteRepo    repository.VoteRepository
	commentRepo repository.CommentRepository
}

func NewNewsService(
	newsRepo repository.NewsRepository,
	voteRepo repository.VoteRepository,
	commentRepo repository.CommentRepository,
) NewsService {
	return &newsService{
		newsRepo:    newsRepo,
		voteRepo:    voteRepo,
		commentRepo: commentRepo,
	}
}

// List returns one page of news with read-time aggregates. Hidden rows are
// shown only when the caller is an admin AND asked for them; both conditions
// are required.
func (s *newsService) List(query dto.NewsListQuery, caller Identity) (dto.Page[dto.NewsResponse], error) {
	page, pageSize := query.Resolve()

	filter := repository.NewsFilter{
		Status:        models.NewsStatus(query.Status),
		Query:         query.Q,
		IncludeHidden: caller.IsAdmin() && query.IncludeDeleted,
	}

	items, total, err := s.newsRepo.List(filter, page, pageSize)
	if err != nil {
		return dto.Page[dto.NewsResponse]{}, err
	}

	ids := make([]string, 0, len(items))
	for i := range items {
		ids = append(ids, items[i].ID)
	}

	voteCounts, err := s.voteRepo.CountsByNews(ids)
	if err != nil {
		return dto.Page[dto.NewsResponse]{}, err
	}
	commentCounts, err := s.commentRepo.CountActiveByNews(ids)
	if err != nil {
		return dto.Page[dto.NewsResponse]{}, err
	}

	responses := make([]dto.NewsResponse, 0, len(items))
	for i := range items {
		item := &items[i]
		responses = append(responses, dto.FromModelToNewsResponse(item, voteCounts[item.ID], commentCounts[item.ID]))
	}

	return dto.NewPage(responses, total, page, pageSize), nil
}

// GetByID returns the detail view including the caller's own vote. A hidden
// item is NotFound for everyone but admins.
func (s *newsService) GetByID(id string, caller Identity) (*dto.NewsDetailResponse, error) {
	news, err := s.newsRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNewsNotFound
		}
		return nil, err
	}

	if news.Visibility.Hidden() && !caller.IsAdmin() {
		return nil, ErrNewsNotFound
	}

	voteCounts, err := s.voteRepo.CountsByNews([]string{news.ID})
	if err != nil {
		return nil, err
	}
	commentCounts, err := s.commentRepo.CountActiveByNews([]string{news.ID})
	if err != nil {
		return nil, err
	}

	var userVote *models.VoteValue
	if caller.Authenticated {
		vote, err := s.voteRepo.FindByNewsAndUser(news.ID, caller.UserID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if vote != nil {
			userVote = &vote.Vote
		}
	}

	detail := &dto.NewsDetailResponse{
		NewsResponse: dto.FromModelToNewsResponse(news, voteCounts[news.ID], commentCounts[news.ID]),
		UserVote:     userVote,
	}
	return detail, nil
}

// Create submits a news item. Status always starts at UNKNOWN and the row is active.
func (s *newsService) Create(reporterID string, req dto.CreateNewsRequest) (*dto.NewsResponse, error) {
	news := &models.News{
		Topic:       req.Topic,
		ShortDetail: req.ShortDetail,
		FullDetail:  req.FullDetail,
		ImageURL:    req.ImageURL,
		Status:      models.StatusUnknown,
		Visibility:  models.VisibilityActive,
		ReporterID:  reporterID,
	}
	if err := s.newsRepo.Create(news); err != nil {
		return nil, err
	}

	// Reload with reporter data
	created, err := s.newsRepo.GetByID(news.ID)
	if err != nil {
		return nil, err
	}
	resp := dto.FromModelToNewsResponse(created, models.VoteCounts{}, 0)
	return &resp, nil
}

// UpdateStatus records the moderator-asserted classification. It never reads
// the community tally.
func (s *newsService) UpdateStatus(id string, status models.NewsStatus) (*dto.NewsResponse, error) {
	news, err := s.newsRepo.UpdateStatus(id, status)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNewsNotFound
		}
		return nil, err
	}
	return s.respond(news)
}

// SetVisibility hides or restores a news item. Votes and comments already
// recorded stay untouched.
func (s *newsService) SetVisibility(id string, deleted bool) (*dto.NewsResponse, error) {
	news, err := s.newsRepo.SetVisibility(id, models.VisibilityFromDeleted(deleted))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNewsNotFound
		}
		return nil, err
	}
	return s.respond(news)
}

func (s *newsService) respond(news *models.News) (*dto.NewsResponse, error) {
	voteCounts, err := s.voteRepo.CountsByNews([]string{news.ID})
	if err != nil {
		return nil, err
	}
	commentCounts, err := s.commentRepo.CountActiveByNews([]string{news.ID})
	if err != nil {
		return nil, err
	}
	resp := dto.FromModelToNewsResponse(news, voteCounts[news.ID], commentCounts[news.ID])
	return &resp, nil
}
