package menu

import (
	"context"
	"fmt"
	"strings"

	"quanngon-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	ListCategories(ctx context.Context) ([]*Category, error)
	CreateCategory(ctx context.Context, input CategoryInput) (*Category, error)
	UpdateCategory(ctx context.Context, id string, input CategoryInput) (*Category, error)
	DeleteCategory(ctx context.Context, id string) error

	ListItems(ctx context.Context, filter ItemFilter) ([]*Item, error)
	GetItem(ctx context.Context, id string) (*Item, error)
	CreateItem(ctx context.Context, input ItemInput) (*Item, error)
	UpdateItem(ctx context.Context, id string, input ItemInput) (*Item, error)
	DeleteItem(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListCategories(ctx context.Context) ([]*Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *service) CreateCategory(ctx context.Context, input CategoryInput) (*Category, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: category name is required", ErrValidation)
	}

	c := &Category{
		Name:          strings.TrimSpace(input.Name),
		Subcategories: input.Subcategories,
	}
	created, err := s.repo.CreateCategory(ctx, c)
	if err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("category created", zap.String("name", created.Name))
	return created, nil
}

func (s *service) UpdateCategory(ctx context.Context, id string, input CategoryInput) (*Category, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: category name is required", ErrValidation)
	}

	return s.repo.UpdateCategory(ctx, id, &Category{
		Name:          strings.TrimSpace(input.Name),
		Subcategories: input.Subcategories,
	})
}

func (s *service) DeleteCategory(ctx context.Context, id string) error {
	return s.repo.DeleteCategory(ctx, id)
}

func (s *service) ListItems(ctx context.Context, filter ItemFilter) ([]*Item, error) {
	return s.repo.ListItems(ctx, filter)
}

func (s *service) GetItem(ctx context.Context, id string) (*Item, error) {
	return s.repo.GetItem(ctx, id)
}

func (s *service) CreateItem(ctx context.Context, input ItemInput) (*Item, error) {
	item, err := itemFromInput(input)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.CreateItem(ctx, item)
	if err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("menu item created",
		zap.String("name", created.Name),
		zap.String("category", created.Category),
	)
	return created, nil
}

func (s *service) UpdateItem(ctx context.Context, id string, input ItemInput) (*Item, error) {
	item, err := itemFromInput(input)
	if err != nil {
		return nil, err
	}
	return s.repo.UpdateItem(ctx, id, item)
}

func (s *service) DeleteItem(ctx context.Context, id string) error {
	return s.repo.DeleteItem(ctx, id)
}

func itemFromInput(input ItemInput) (*Item, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: item name is required", ErrValidation)
	}
	if input.Price < 0 {
		return nil, fmt.Errorf("%w: item price must not be negative", ErrValidation)
	}
	if strings.TrimSpace(input.Category) == "" {
		return nil, fmt.Errorf("%w: item category is required", ErrValidation)
	}

	// New items default to available unless explicitly hidden.
	available := true
	if input.Available != nil {
		available = *input.Available
	}

	return &Item{
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Price:       input.Price,
		Sizes:       input.Sizes,
		Toppings:    input.Toppings,
		Category:    input.Category,
		Subcategory: input.Subcategory,
		ImageURL:    input.ImageURL,
		Available:   available,
	}, nil
}
