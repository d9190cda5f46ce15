package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-pass-owl/internal/adapter"
	"github.com/MKhiriev/go-pass-owl/internal/logger"
	"github.com/MKhiriev/go-pass-owl/models"
)

// DefaultCategoryColor is used when a category is created without a color.
const DefaultCategoryColor = "#6B7280"

var colorHex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

type clientCategoryService struct {
	adapter adapter.VaultAdapter
	logger  *logger.Logger
}

func NewClientCategoryService(vault adapter.VaultAdapter, log *logger.Logger) ClientCategoryService {
	return &clientCategoryService{adapter: vault, logger: log.Component("categories")}
}

func (c *clientCategoryService) List(ctx context.Context) ([]models.Category, error) {
	categories, err := c.adapter.ListCategories(ctx)
	if err != nil {
		return nil, mapAdapterError(err, nil)
	}
	return categories, nil
}

func (c *clientCategoryService) Create(ctx context.Context, name, color string) (models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Category{}, fmt.Errorf("%w: category name is required", ErrInvalidDataProvided)
	}
	if color == "" {
		color = DefaultCategoryColor
	}
	if !colorHex.MatchString(color) {
		return models.Category{}, fmt.Errorf("%w: color must look like #RRGGBB", ErrInvalidDataProvided)
	}

	created, err := c.adapter.CreateCategory(ctx, models.CategoryWrite{Name: &name, ColorHex: &color})
	if err != nil {
		return models.Category{}, mapAdapterError(err, nil)
	}

	c.logger.Debug().Int64("category_id", created.ID).Msg("category created")
	return created, nil
}

func (c *clientCategoryService) Update(ctx context.Context, id int64, changes models.CategoryWrite) (models.Category, error) {
	if changes.Name == nil && changes.ColorHex == nil {
		return models.Category{}, fmt.Errorf("%w: nothing to update", ErrInvalidDataProvided)
	}
	if changes.Name != nil {
		name := strings.TrimSpace(*changes.Name)
		if name == "" {
			return models.Category{}, fmt.Errorf("%w: category name is required", ErrInvalidDataProvided)
		}
		changes.Name = &name
	}
	if changes.ColorHex != nil && !colorHex.MatchString(*changes.ColorHex) {
		return models.Category{}, fmt.Errorf("%w: color must look like #RRGGBB", ErrInvalidDataProvided)
	}

	updated, err := c.adapter.UpdateCategory(ctx, id, changes)
	if err != nil {
		return models.Category{}, mapAdapterError(err, nil)
	}
	return updated, nil
}

func (c *clientCategoryService) Delete(ctx context.Context, id int64) error {
	if err := c.adapter.DeleteCategory(ctx, id); err != nil {
		return mapAdapterError(err, nil)
	}
	c.logger.Debug().Int64("category_id", id).Msg("category deleted")
	return nil
}
