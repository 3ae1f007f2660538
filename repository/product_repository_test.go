package repository_test

import (
	"context"
	"testing"

	"deliverus/entity"
	"deliverus/pkg/testdb"
	"deliverus/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountFlaggedProducts(t *testing.T) {
	db := testdb.New(t)
	f := testdb.Seed(t, db)
	other := entity.Restaurant{Name: "Other", UserID: f.Other.ID}
	require.NoError(t, db.Create(&other).Error)

	promoted := testdb.Product(t, db, f.Restaurant.ID, f.Category.ID, true, true)
	testdb.Product(t, db, f.Restaurant.ID, f.Category.ID, false, true)
	testdb.Product(t, db, f.Restaurant.ID, f.Category.ID, false, false)
	testdb.Product(t, db, other.ID, f.Category.ID, true, true)

	repo := repository.NewProductRepository(db)
	ctx := context.Background()

	n, err := repo.CountPromoted(ctx, f.Restaurant.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = repo.CountPromoted(ctx, f.Restaurant.ID, promoted.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	n, err = repo.CountHighlighted(ctx, f.Restaurant.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = repo.CountHighlighted(ctx, f.Restaurant.ID, promoted.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = repo.CountHighlighted(ctx, 999, 0)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestCountIgnoresDeletedProducts(t *testing.T) {
	db := testdb.New(t)
	f := testdb.Seed(t, db)
	p := testdb.Product(t, db, f.Restaurant.ID, f.Category.ID, true, false)

	repo := repository.NewProductRepository(db)
	ctx := context.Background()
	require.NoError(t, repo.Delete(ctx, p.ID))

	n, err := repo.CountPromoted(ctx, f.Restaurant.ID, 0)
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = repo.FindByID(ctx, p.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, p.ID), repository.ErrNotFound)
}

func TestProductUpdateKeepsImageAndRestaurant(t *testing.T) {
	db := testdb.New(t)
	f := testdb.Seed(t, db)
	repo := repository.NewProductRepository(db)
	ctx := context.Background()

	p := entity.Product{
		Name: "Tortilla", Price: 5, Availability: true,
		Image: []byte{0xFF, 0xD8, 0xFF}, ImageType: "image/jpeg", ImageSize: 3,
		ProductCategoryID: f.Category.ID, RestaurantID: f.Restaurant.ID,
	}
	require.NoError(t, repo.Create(ctx, &p))

	loaded, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, loaded.Image)

	loaded.Name = "Tortilla de patatas"
	loaded.Availability = false
	loaded.RestaurantID = 12345
	require.NoError(t, repo.Update(ctx, loaded))

	img, err := repo.FindImage(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xFF, 0xD8, 0xFF}, img.Image)

	got, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tortilla de patatas", got.Name)
	assert.False(t, got.Availability)
	assert.Equal(t, f.Restaurant.ID, got.RestaurantID)
}

func TestFindByRestaurant(t *testing.T) {
	db := testdb.New(t)
	f := testdb.Seed(t, db)
	a := testdb.Product(t, db, f.Restaurant.ID, f.Category.ID, false, false)
	b := testdb.Product(t, db, f.Restaurant.ID, f.Category.ID, false, false)

	products, err := repository.NewProductRepository(db).FindByRestaurant(context.Background(), f.Restaurant.ID)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, a.ID, products[0].ID)
	assert.Equal(t, b.ID, products[1].ID)
}

func TestRestaurantRepository(t *testing.T) {
	db := testdb.New(t)
	f := testdb.Seed(t, db)
	repo := repository.NewRestaurantRepository(db)
	ctx := context.Background()

	ok, err := repo.Exists(ctx, f.Restaurant.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Exists(ctx, f.Restaurant.ID+100)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = repo.FindByID(ctx, f.Restaurant.ID+100)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	assert.NoError(t, repo.Lock(ctx, f.Restaurant.ID))
	assert.ErrorIs(t, repo.Lock(ctx, f.Restaurant.ID+100), repository.ErrNotFound)
}
