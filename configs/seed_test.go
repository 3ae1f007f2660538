package configs_test

import (
	"testing"

	"deliverus/configs"
	"deliverus/entity"
	"deliverus/pkg/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSeedIsIdempotent(t *testing.T) {
	db := testdb.New(t)
	cfg := &configs.Config{
		AdminEmail: "Admin@deliverus.com", AdminPassword: "secret",
		OwnerEmail: "owner1@owner.com", OwnerPassword: "secret",
	}

	for range 2 {
		require.NoError(t, configs.SeedLookups(db))
		require.NoError(t, configs.SeedAdmin(db, cfg))
		require.NoError(t, configs.SeedOwner(db, cfg))
	}

	var users []entity.User
	require.NoError(t, db.Order("id").Find(&users).Error)
	require.Len(t, users, 2)
	assert.Equal(t, "admin@deliverus.com", users[0].Email)
	assert.Equal(t, entity.RoleAdmin, users[0].Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(users[1].Password), []byte("secret")))

	var restaurants, categories int64
	require.NoError(t, db.Model(&entity.Restaurant{}).Where("user_id = ?", users[1].ID).Count(&restaurants).Error)
	require.NoError(t, db.Model(&entity.ProductCategory{}).Count(&categories).Error)
	assert.EqualValues(t, 1, restaurants)
	assert.EqualValues(t, 4, categories)
}

func TestSeedSkipsWithoutCredentials(t *testing.T) {
	db := testdb.New(t)
	require.NoError(t, configs.SeedAdmin(db, &configs.Config{}))
	require.NoError(t, configs.SeedOwner(db, &configs.Config{}))

	var n int64
	require.NoError(t, db.Model(&entity.User{}).Count(&n).Error)
	assert.Zero(t, n)
}
