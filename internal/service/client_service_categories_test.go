package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-pass-owl/internal/adapter"
	"github.com/MKhiriev/go-pass-owl/internal/logger"
	"github.com/MKhiriev/go-pass-owl/internal/mock"
	"github.com/MKhiriev/go-pass-owl/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newCategoryFixture(t *testing.T) (ClientCategoryService, *mock.MockVaultAdapter) {
	t.Helper()
	vault := mock.NewMockVaultAdapter(gomock.NewController(t))
	return NewClientCategoryService(vault, logger.Nop()), vault
}

func strPtr(s string) *string { return &s }

func TestClientCategoryService_Create(t *testing.T) {
	tests := []struct {
		name      string
		inName    string
		inColor   string
		wantName  string
		wantColor string
	}{
		{name: "explicit color", inName: " Work ", inColor: "#3B82F6", wantName: "Work", wantColor: "#3B82F6"},
		{name: "default color", inName: "Home", inColor: "", wantName: "Home", wantColor: DefaultCategoryColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, vault := newCategoryFixture(t)
			ctx := context.Background()

			vault.EXPECT().CreateCategory(ctx, gomock.Any()).DoAndReturn(
				func(_ context.Context, req models.CategoryWrite) (models.Category, error) {
					require.NotNil(t, req.Name)
					require.NotNil(t, req.ColorHex)
					return models.Category{ID: 4, Name: *req.Name, ColorHex: req.ColorHex}, nil
				},
			)

			got, err := svc.Create(ctx, tt.inName, tt.inColor)
			require.NoError(t, err)
			assert.Equal(t, int64(4), got.ID)
			assert.Equal(t, tt.wantName, got.Name)
			assert.Equal(t, tt.wantColor, *got.ColorHex)
		})
	}
}

func TestClientCategoryService_Create_Invalid(t *testing.T) {
	svc, _ := newCategoryFixture(t)
	ctx := context.Background()

	for _, tc := range []struct{ name, color string }{
		{"  ", "#3B82F6"},
		{"Work", "blue"},
		{"Work", "#3B82F"},
		{"Work", "#GGGGGG"},
	} {
		_, err := svc.Create(ctx, tc.name, tc.color)
		assert.ErrorIs(t, err, ErrInvalidDataProvided, "name %q color %q", tc.name, tc.color)
	}
}

func TestClientCategoryService_Update(t *testing.T) {
	svc, vault := newCategoryFixture(t)
	ctx := context.Background()

	vault.EXPECT().UpdateCategory(ctx, int64(4), models.CategoryWrite{Name: strPtr("Personal")}).
		Return(models.Category{ID: 4, Name: "Personal"}, nil)

	got, err := svc.Update(ctx, 4, models.CategoryWrite{Name: strPtr(" Personal ")})
	require.NoError(t, err)
	assert.Equal(t, "Personal", got.Name)

	_, err = svc.Update(ctx, 4, models.CategoryWrite{})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Update(ctx, 4, models.CategoryWrite{Name: strPtr(" ")})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Update(ctx, 4, models.CategoryWrite{ColorHex: strPtr("red")})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestClientCategoryService_ListAndDelete(t *testing.T) {
	svc, vault := newCategoryFixture(t)
	ctx := context.Background()
	notFound := fmt.Errorf("%w: %s", adapter.ErrNotFound, "Category not found")

	vault.EXPECT().ListCategories(ctx).Return([]models.Category{{ID: 1, Name: "Work"}}, nil)
	vault.EXPECT().DeleteCategory(ctx, int64(1)).Return(nil)
	vault.EXPECT().DeleteCategory(ctx, int64(9)).Return(notFound)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, svc.Delete(ctx, 1))
	assert.ErrorIs(t, svc.Delete(ctx, 9), ErrRecordNotFound)
}

func TestClientAuthService_Stats(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	want := models.UserStats{OwnCredentials: 3, SharedCredentials: 1, SecureNotes: 2, Categories: 4}

	f.adapter.EXPECT().UserStats(ctx).Return(want, nil)
	got, err := f.svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	f.adapter.EXPECT().UserStats(ctx).Return(models.UserStats{}, fmt.Errorf("%w: %s", adapter.ErrUnauthorized, adapter.DetailCouldNotValidate))
	_, err = f.svc.Stats(ctx)
	assert.ErrorIs(t, err, ErrSessionExpired)
}
