package middlewares

import (
	"context"
	"errors"
	"strconv"

	"deliverus/entity"
	"deliverus/pkg/resp"
	"deliverus/repository"
	"deliverus/utils"

	"github.com/gin-gonic/gin"
)

const productKey = "product"

type ProductFinder interface {
	FindByID(ctx context.Context, id uint) (*entity.Product, error)
}

type RestaurantFinder interface {
	FindByID(ctx context.Context, id uint) (*entity.Restaurant, error)
}

// ProductExists loads the product named by :productId or answers 404.
func ProductExists(products ProductFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("productId"), 10, 0)
		if err != nil || id == 0 {
			resp.NotFound(c, "product not found")
			c.Abort()
			return
		}

		p, err := products.FindByID(c.Request.Context(), uint(id))
		if errors.Is(err, repository.ErrNotFound) {
			resp.NotFound(c, "product not found")
			c.Abort()
			return
		}
		if err != nil {
			resp.ServerError(c, err)
			c.Abort()
			return
		}

		c.Set(productKey, p)
		c.Next()
	}
}

// LoadedProduct returns the product stored by ProductExists.
func LoadedProduct(c *gin.Context) (*entity.Product, bool) {
	v, ok := c.Get(productKey)
	if !ok {
		return nil, false
	}
	p, ok := v.(*entity.Product)
	return p, ok
}

// RestaurantOwnership requires the logged-in user to own the restaurant
// the request acts on: the loaded product's restaurant, or the validated
// restaurantId of a new product.
func RestaurantOwnership(restaurants RestaurantFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		var restID uint
		if p, ok := LoadedProduct(c); ok {
			restID = p.RestaurantID
		} else if id, ok := ValidatedValues(c)["restaurantId"].(int64); ok {
			restID = uint(id)
		}

		rest, err := restaurants.FindByID(c.Request.Context(), restID)
		if errors.Is(err, repository.ErrNotFound) {
			resp.NotFound(c, "restaurant not found")
			c.Abort()
			return
		}
		if err != nil {
			resp.ServerError(c, err)
			c.Abort()
			return
		}

		if rest.UserID != utils.CurrentUserID(c) {
			resp.Forbidden(c, "Not enough privileges. This entity does not belong to you")
			c.Abort()
			return
		}
		c.Next()
	}
}
