package seed

import (
	"context"
	"errors"
	"fmt"

	"mini-orders/internal/model"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Catalog is the part of the catalog service the seeder writes through.
type Catalog interface {
	CreateItem(ctx context.Context, req *model.CreateItemRequest) (*model.Item, error)
	CountItems(ctx context.Context) (int, error)
}

// Result summarises a seeding run.
type Result struct {
	Created int
	Skipped int
}

// Seeder loads seed files and adds their items to an empty catalog.
type Seeder struct {
	catalog Catalog
	loader  Loader
	files   []string
	logger  zerolog.Logger
}

// NewSeeder creates a seeder for the given files.
func NewSeeder(catalog Catalog, loader Loader, files []string, logger zerolog.Logger) *Seeder {
	return &Seeder{
		catalog: catalog,
		loader:  loader,
		files:   files,
		logger:  logger.With().Str("component", "seeder").Logger(),
	}
}

// Run seeds the catalog when it has no items. Files are loaded concurrently
// and their items created in file order. Records the catalog rejects as
// invalid are skipped.
func (s *Seeder) Run(ctx context.Context) (Result, error) {
	count, err := s.catalog.CountItems(ctx)
	if err != nil {
		return Result{}, err
	}
	if count > 0 {
		s.logger.Info().Int("items", count).Msg("catalog already populated, skipping seed")
		return Result{}, nil
	}

	loaded := make([][]Record, len(s.files))
	g, gctx := errgroup.WithContext(ctx)
	for i, path := range s.files {
		i, path := i, path
		g.Go(func() error {
			records, err := s.loader.Load(gctx, path)
			if err != nil {
				return fmt.Errorf("failed to load seed file %s: %w", path, err)
			}
			loaded[i] = records
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	var res Result
	for i, records := range loaded {
		for _, rec := range records {
			_, err := s.catalog.CreateItem(ctx, rec.Request())
			if err == nil {
				res.Created++
				continue
			}

			var domainErr *model.DomainError
			if errors.As(err, &domainErr) && domainErr.Code == model.ErrCodeValidation {
				s.logger.Warn().
					Err(err).
					Str("file", s.files[i]).
					Str("name", rec.Name).
					Msg("skipping invalid seed record")
				res.Skipped++
				continue
			}
			return res, fmt.Errorf("failed to seed item %q: %w", rec.Name, err)
		}
	}

	s.logger.Info().
		Int("files", len(s.files)).
		Int("created", res.Created).
		Int("skipped", res.Skipped).
		Msg("catalog seeded")

	return res, nil
}
