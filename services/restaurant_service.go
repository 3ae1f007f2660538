package services

import (
	"context"

	"deliverus/entity"
	"deliverus/repository"
)

type RestaurantService struct {
	Repo *repository.RestaurantRepository
}

func NewRestaurantService(repo *repository.RestaurantRepository) *RestaurantService {
	return &RestaurantService{Repo: repo}
}

// List returns every restaurant, or only those of categoryID when non-zero.
func (s *RestaurantService) List(ctx context.Context, categoryID uint) ([]entity.Restaurant, error) {
	return s.Repo.FindAll(ctx, categoryID)
}

// Get returns a restaurant with its products.
func (s *RestaurantService) Get(ctx context.Context, id uint) (*entity.Restaurant, error) {
	return s.Repo.FindDetail(ctx, id)
}

// ListByOwner returns the restaurants owned by userID.
func (s *RestaurantService) ListByOwner(ctx context.Context, userID uint) ([]entity.Restaurant, error) {
	return s.Repo.FindByOwner(ctx, userID)
}
