// services/product_service.go
package services

import (
	"context"
	"errors"

	"deliverus/entity"
	"deliverus/repository"
	"deliverus/validation"

	"gorm.io/gorm"
)

var (
	ErrPromotedLimit  = errors.New("restaurant already has a promoted product")
	ErrHighlightLimit = errors.New("restaurant already has the maximum of highlighted products")
)

type ProductService struct {
	DB   *gorm.DB
	Repo *repository.ProductRepository
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{DB: db, Repo: repository.NewProductRepository(db)}
}

func (s *ProductService) ListByRestaurant(ctx context.Context, restID uint) ([]entity.Product, error) {
	return s.Repo.FindByRestaurant(ctx, restID)
}

func (s *ProductService) Get(ctx context.Context, id uint) (*entity.Product, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *ProductService) Image(ctx context.Context, id uint) (*entity.Product, error) {
	return s.Repo.FindImage(ctx, id)
}

// Create stores a new product. The promoted/highlight limits are counted
// again inside the write transaction, with the restaurant row locked, so
// concurrent requests that both passed validation cannot exceed them.
func (s *ProductService) Create(ctx context.Context, product *entity.Product) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := repository.NewProductRepository(tx)
		if err := lockAndCheckLimits(ctx, tx, repo, product); err != nil {
			return err
		}
		return repo.Create(ctx, product)
	})
}

// Update writes product, which must carry its id and restaurant id.
func (s *ProductService) Update(ctx context.Context, product *entity.Product) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := repository.NewProductRepository(tx)
		if err := lockAndCheckLimits(ctx, tx, repo, product); err != nil {
			return err
		}
		return repo.Update(ctx, product)
	})
}

func (s *ProductService) Delete(ctx context.Context, id uint) error {
	return s.Repo.Delete(ctx, id)
}

func lockAndCheckLimits(ctx context.Context, tx *gorm.DB, repo *repository.ProductRepository, p *entity.Product) error {
	if !p.Promoted && !p.Highlight {
		return nil
	}
	if err := repository.NewRestaurantRepository(tx).Lock(ctx, p.RestaurantID); err != nil {
		return err
	}

	if p.Promoted {
		n, err := repo.CountPromoted(ctx, p.RestaurantID, p.ID)
		if err != nil {
			return err
		}
		if n >= validation.MaxPromotedProducts {
			return ErrPromotedLimit
		}
	}
	if p.Highlight {
		n, err := repo.CountHighlighted(ctx, p.RestaurantID, p.ID)
		if err != nil {
			return err
		}
		if n >= validation.MaxHighlightedProducts {
			return ErrHighlightLimit
		}
	}
	return nil
}
