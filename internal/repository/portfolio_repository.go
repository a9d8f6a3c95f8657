package repository

import (
	"context"

	"gorm.io/gorm"

	"portfolioai/internal/model"
)

// PortfolioRepository defines portfolio persistence operations. Every read is owner scoped.
type PortfolioRepository interface {
	Create(ctx context.Context, portfolio *model.Portfolio) error
	ListByOwner(ctx context.Context, ownerID uint) ([]model.PortfolioSummary, error)
	FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*model.Portfolio, error)
}

type portfolioRepository struct {
	db *gorm.DB
}

// NewPortfolioRepository creates a new portfolio repository.
func NewPortfolioRepository(db *gorm.DB) PortfolioRepository {
	return &portfolioRepository{db: db}
}

// Create inserts a portfolio row. The project list is written as one JSON column.
func (r *portfolioRepository) Create(ctx context.Context, portfolio *model.Portfolio) error {
	return r.db.WithContext(ctx).Omit("Owner").Create(portfolio).Error
}

// ListByOwner returns id and full name of the owner's portfolios, oldest first.
func (r *portfolioRepository) ListByOwner(ctx context.Context, ownerID uint) ([]model.PortfolioSummary, error) {
	summaries := make([]model.PortfolioSummary, 0)
	if err := r.db.WithContext(ctx).Model(&model.Portfolio{}).
		Select("id", "full_name").
		Where("owner_id = ?", ownerID).
		Order("id").
		Find(&summaries).Error; err != nil {
		return nil, err
	}
	return summaries, nil
}

// FindByIDAndOwner finds a portfolio by ID, only when ownerID owns it.
func (r *portfolioRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*model.Portfolio, error) {
	var portfolio model.Portfolio
	if err := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&portfolio).Error; err != nil {
		return nil, err
	}
	return &portfolio, nil
}
