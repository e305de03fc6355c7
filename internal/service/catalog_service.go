package service

import (
	"context"
	"fmt"

	"mini-orders/internal/model"
	"mini-orders/internal/repository"

	"github.com/rs/zerolog"
)

// catalogService implements CatalogService.
type catalogService struct {
	itemRepo repository.ItemRepository
	validate *requestValidator
	logger   zerolog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(itemRepo repository.ItemRepository, logger zerolog.Logger) CatalogService {
	return &catalogService{
		itemRepo: itemRepo,
		validate: newRequestValidator(),
		logger:   logger.With().Str("service", "catalog").Logger(),
	}
}

// CreateItem validates and stores a new catalog item.
func (s *catalogService) CreateItem(ctx context.Context, req *model.CreateItemRequest) (*model.Item, error) {
	if err := s.validate.Struct(req); err != nil {
		s.logger.Debug().Err(err).Msg("invalid item request")
		return nil, err
	}

	if req.Price.IsNegative() {
		s.logger.Debug().Str("price", req.Price.String()).Msg("negative item price")
		return nil, model.NewValidationError("price must not be negative")
	}

	item := &model.Item{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
	}

	if err := s.itemRepo.Create(ctx, item); err != nil {
		s.logger.Error().Err(err).Str("name", req.Name).Msg("failed to create item")
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	s.logger.Info().
		Int64("item_id", item.ID).
		Str("name", item.Name).
		Msg("item created successfully")

	return item, nil
}

// ListItems retrieves every catalog item.
func (s *catalogService) ListItems(ctx context.Context) ([]model.Item, error) {
	items, err := s.itemRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list items")
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	s.logger.Debug().Int("count", len(items)).Msg("retrieved items")
	return items, nil
}

// CountItems returns the number of catalog items.
func (s *catalogService) CountItems(ctx context.Context) (int, error) {
	count, err := s.itemRepo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count items: %w", err)
	}
	return count, nil
}
