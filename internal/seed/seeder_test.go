package seed

import (
	"context"
	"errors"
	"testing"

	"mini-orders/internal/model"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) CreateItem(ctx context.Context, req *model.CreateItemRequest) (*model.Item, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Item), args.Error(1)
}

func (m *MockCatalog) CountItems(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func price(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func staticLoader(files map[string][]Record) Loader {
	return &mockLoader{
		loadFunc: func(ctx context.Context, path string) ([]Record, error) {
			records, ok := files[path]
			if !ok {
				return nil, errors.New("no such file")
			}
			return records, nil
		},
	}
}

func named(name string) interface{} {
	return mock.MatchedBy(func(req *model.CreateItemRequest) bool { return req.Name == name })
}

func TestSeeder_Run_SeedsEmptyCatalogInFileOrder(t *testing.T) {
	ctx := context.Background()
	catalog := new(MockCatalog)

	loader := staticLoader(map[string][]Record{
		"a.gz": {{Name: "A1", Price: price("1")}, {Name: "A2", Price: price("2")}},
		"b.gz": {{Name: "B1", Price: price("3")}},
	})

	var created []string
	catalog.On("CountItems", ctx).Return(0, nil)
	catalog.On("CreateItem", ctx, mock.Anything).
		Run(func(args mock.Arguments) {
			created = append(created, args.Get(1).(*model.CreateItemRequest).Name)
		}).
		Return(&model.Item{}, nil)

	res, err := NewSeeder(catalog, loader, []string{"a.gz", "b.gz"}, zerolog.Nop()).Run(ctx)

	require.NoError(t, err)
	assert.Equal(t, Result{Created: 3}, res)
	assert.Equal(t, []string{"A1", "A2", "B1"}, created)
	catalog.AssertExpectations(t)
}

func TestSeeder_Run_SkipsPopulatedCatalog(t *testing.T) {
	ctx := context.Background()
	catalog := new(MockCatalog)
	catalog.On("CountItems", ctx).Return(4, nil)

	loader := &mockLoader{
		loadFunc: func(ctx context.Context, path string) ([]Record, error) {
			t.Error("files should not be loaded for a populated catalog")
			return nil, nil
		},
	}

	res, err := NewSeeder(catalog, loader, []string{"a.gz"}, zerolog.Nop()).Run(ctx)

	require.NoError(t, err)
	assert.Equal(t, Result{}, res)
	catalog.AssertNotCalled(t, "CreateItem", mock.Anything, mock.Anything)
}

func TestSeeder_Run_SkipsInvalidRecords(t *testing.T) {
	ctx := context.Background()
	catalog := new(MockCatalog)

	loader := staticLoader(map[string][]Record{
		"a.gz": {{Name: "Good", Price: price("1")}, {Name: "Bad", Price: price("-1")}},
	})

	catalog.On("CountItems", ctx).Return(0, nil)
	catalog.On("CreateItem", ctx, named("Good")).Return(&model.Item{ID: 1}, nil)
	catalog.On("CreateItem", ctx, named("Bad")).Return(nil, model.NewValidationError("price must not be negative"))

	res, err := NewSeeder(catalog, loader, []string{"a.gz"}, zerolog.Nop()).Run(ctx)

	require.NoError(t, err)
	assert.Equal(t, Result{Created: 1, Skipped: 1}, res)
}

func TestSeeder_Run_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("Load failure aborts before any insert", func(t *testing.T) {
		catalog := new(MockCatalog)
		catalog.On("CountItems", ctx).Return(0, nil)

		loader := staticLoader(map[string][]Record{"a.gz": {{Name: "A", Price: price("1")}}})

		_, err := NewSeeder(catalog, loader, []string{"a.gz", "missing.gz"}, zerolog.Nop()).Run(ctx)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing.gz")
		catalog.AssertNotCalled(t, "CreateItem", mock.Anything, mock.Anything)
	})

	t.Run("Storage failure stops seeding", func(t *testing.T) {
		catalog := new(MockCatalog)
		catalog.On("CountItems", ctx).Return(0, nil)
		catalog.On("CreateItem", ctx, mock.Anything).Return(nil, errors.New("database error")).Once()

		loader := staticLoader(map[string][]Record{
			"a.gz": {{Name: "A", Price: price("1")}, {Name: "B", Price: price("2")}},
		})

		res, err := NewSeeder(catalog, loader, []string{"a.gz"}, zerolog.Nop()).Run(ctx)

		require.Error(t, err)
		assert.Zero(t, res.Created)
		catalog.AssertNumberOfCalls(t, "CreateItem", 1)
	})

	t.Run("Count failure", func(t *testing.T) {
		catalog := new(MockCatalog)
		catalog.On("CountItems", ctx).Return(0, errors.New("database error"))

		_, err := NewSeeder(catalog, staticLoader(nil), []string{"a.gz"}, zerolog.Nop()).Run(ctx)

		require.Error(t, err)
	})
}
