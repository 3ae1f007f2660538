// repository/product_repository.go
package repository

import (
	"context"

	"deliverus/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{DB: db}
}

// products of a restaurant, without image blobs
func (r *ProductRepository) FindByRestaurant(ctx context.Context, restID uint) ([]entity.Product, error) {
	var products []entity.Product
	err := r.DB.WithContext(ctx).
		Omit("image").
		Where("restaurant_id = ?", restID).
		Order("id").
		Find(&products).Error
	return products, err
}

// single product, without image blob
func (r *ProductRepository) FindByID(ctx context.Context, id uint) (*entity.Product, error) {
	var product entity.Product
	if err := r.DB.WithContext(ctx).Omit("image").First(&product, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &product, nil
}

// FindImage loads only the image columns of a product.
func (r *ProductRepository) FindImage(ctx context.Context, id uint) (*entity.Product, error) {
	var product entity.Product
	err := r.DB.WithContext(ctx).
		Select("id", "image", "image_type", "image_size").
		First(&product, id).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &product, nil
}

func (r *ProductRepository) Create(ctx context.Context, product *entity.Product) error {
	return r.DB.WithContext(ctx).Create(product).Error
}

// Update writes every column except the image ones, which are only
// written when a new image is set.
func (r *ProductRepository) Update(ctx context.Context, product *entity.Product) error {
	omit := []string{"created_at", "restaurant_id", clause.Associations}
	if product.Image == nil {
		omit = append(omit, "image", "image_type", "image_size")
	}
	return r.DB.WithContext(ctx).Model(product).Select("*").Omit(omit...).Updates(product).Error
}

func (r *ProductRepository) Delete(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&entity.Product{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// CountPromoted counts promoted products of a restaurant, skipping the
// product with id exclude when it is not 0.
func (r *ProductRepository) CountPromoted(ctx context.Context, restID, exclude uint) (int64, error) {
	return r.countFlagged(ctx, "promoted", restID, exclude)
}

// CountHighlighted counts highlighted products of a restaurant, skipping
// the product with id exclude when it is not 0.
func (r *ProductRepository) CountHighlighted(ctx context.Context, restID, exclude uint) (int64, error) {
	return r.countFlagged(ctx, "highlight", restID, exclude)
}

func (r *ProductRepository) countFlagged(ctx context.Context, column string, restID, exclude uint) (int64, error) {
	q := r.DB.WithContext(ctx).
		Model(&entity.Product{}).
		Where(map[string]any{"restaurant_id": restID, column: true})
	if exclude != 0 {
		q = q.Where("id <> ?", exclude)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
