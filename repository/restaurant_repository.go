// repository/restaurant_repository.go
package repository

import (
	"context"

	"deliverus/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

// FindAll lists restaurants with category and owner, optionally filtered
// by restaurant category (0 lists all).
func (r *RestaurantRepository) FindAll(ctx context.Context, categoryID uint) ([]entity.Restaurant, error) {
	q := r.DB.WithContext(ctx).
		Preload("RestaurantCategory").
		Preload("User").
		Order("id")
	if categoryID != 0 {
		q = q.Where("restaurant_category_id = ?", categoryID)
	}

	var rests []entity.Restaurant
	err := q.Find(&rests).Error
	return rests, err
}

// FindByOwner lists the restaurants of one owner.
func (r *RestaurantRepository) FindByOwner(ctx context.Context, userID uint) ([]entity.Restaurant, error) {
	var rests []entity.Restaurant
	err := r.DB.WithContext(ctx).
		Preload("RestaurantCategory").
		Where("user_id = ?", userID).
		Order("id").
		Find(&rests).Error
	return rests, err
}

// FindDetail loads a restaurant with category, owner and products. Product
// images stay in the database.
func (r *RestaurantRepository) FindDetail(ctx context.Context, id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	err := r.DB.WithContext(ctx).
		Preload("RestaurantCategory").
		Preload("User").
		Preload("Products", func(db *gorm.DB) *gorm.DB {
			return db.Omit("image").Order("id")
		}).
		First(&rest, id).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &rest, nil
}

// restaurant by id
func (r *RestaurantRepository) FindByID(ctx context.Context, id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.WithContext(ctx).First(&rest, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &rest, nil
}

// Exists reports whether a restaurant with the primary key exists.
func (r *RestaurantRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&entity.Restaurant{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Lock takes a row lock on the restaurant for the rest of the current
// transaction. SQLite has no row locks; connections opened through
// configs.SQLiteDSN begin writer transactions IMMEDIATE, so there it only
// checks the row exists.
func (r *RestaurantRepository) Lock(ctx context.Context, id uint) error {
	q := r.DB.WithContext(ctx).Select("id")
	if r.DB.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var rest entity.Restaurant
	return notFound(q.First(&rest, id).Error)
}
