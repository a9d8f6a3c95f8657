package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "portfolioai/internal/errors"
	"portfolioai/internal/model"
	"portfolioai/internal/repository"
)

// PortfolioService stores and reads portfolios on behalf of their owner.
type PortfolioService interface {
	Save(ctx context.Context, ownerID uint, portfolio model.Portfolio) (*model.Portfolio, error)
	List(ctx context.Context, ownerID uint) ([]model.PortfolioSummary, error)
	Get(ctx context.Context, ownerID, id uint) (*model.Portfolio, error)
}

type portfolioService struct {
	repo repository.PortfolioRepository
}

// NewPortfolioService creates a new portfolio service.
func NewPortfolioService(repo repository.PortfolioRepository) PortfolioService {
	return &portfolioService{repo: repo}
}

// Save inserts a new portfolio owned by ownerID. Client supplied ids are ignored.
func (s *portfolioService) Save(ctx context.Context, ownerID uint, portfolio model.Portfolio) (*model.Portfolio, error) {
	stored := portfolio.Clone()
	stored.ID = 0
	stored.OwnerID = ownerID
	stored.Owner = nil
	if stored.Projects == nil {
		stored.Projects = model.Projects{}
	}

	if err := s.repo.Create(ctx, &stored); err != nil {
		return nil, fmt.Errorf("create portfolio: %w", err)
	}
	return &stored, nil
}

// List returns summaries of the owner's portfolios, oldest first.
func (s *portfolioService) List(ctx context.Context, ownerID uint) ([]model.PortfolioSummary, error) {
	summaries, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list portfolios: %w", err)
	}
	return summaries, nil
}

// Get returns one portfolio, or ErrNotFound when it is absent or owned by someone else.
func (s *portfolioService) Get(ctx context.Context, ownerID, id uint) (*model.Portfolio, error) {
	portfolio, err := s.repo.FindByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("get portfolio: %w", err)
	}
	return portfolio, nil
}
