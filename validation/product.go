package validation

import (
	"context"
	"errors"
	"fmt"
)

const (
	MaxImageSize           int64 = 2000000
	MaxPromotedProducts          = 1
	MaxHighlightedProducts       = 5
)

var (
	MsgImageFormat      = "Please upload an image with format (jpeg, png)."
	MsgImageSize        = fmt.Sprintf("Maximum file size of %gMB", float64(MaxImageSize)/1000000)
	MsgPromoted         = "You can only promote 1 products at a time"
	MsgHighlight        = "You can only highlight 5 products at a time"
	MsgRestaurantAbsent = "The restaurantId does not exist."
	MsgRestaurantFixed  = "restaurantId cannot be modified"
)

var errNoRestaurant = errors.New(MsgRestaurantAbsent)

// RestaurantFinder confirms a restaurant primary key.
type RestaurantFinder interface {
	Exists(ctx context.Context, id uint) (bool, error)
}

// ProductCounter counts flagged products of a restaurant, ignoring the
// product with id exclude (0 ignores none).
type ProductCounter interface {
	CountPromoted(ctx context.Context, restaurantID, exclude uint) (int64, error)
	CountHighlighted(ctx context.Context, restaurantID, exclude uint) (int64, error)
}

// ProductRules builds the create and update chains of the product
// endpoint.
type ProductRules struct {
	restaurants RestaurantFinder
	products    ProductCounter
}

func NewProductRules(restaurants RestaurantFinder, products ProductCounter) *ProductRules {
	return &ProductRules{restaurants: restaurants, products: products}
}

// Create is the chain for POST /products.
func (r *ProductRules) Create() Chain {
	return Chain{
		Field("name").Exists().IsString().Length(1, 255).Trim(),
		Field("description").Optional(OptionalOptions{Nullable: true, CheckFalsy: true}).IsString().Length(1, 0).Trim(),
		Field("price").Exists().IsFloat(0).ToFloat(),
		Field("order").Default(nil).Optional(OptionalOptions{Nullable: true}).IsAnyInt().ToInt(),
		Field("availability").Optional().IsBoolean().ToBoolean(),
		Field("productCategoryId").Exists().IsInt(1).ToInt(),
		Field("restaurantId").Exists().IsInt(1).ToInt(),
		Field("restaurantId").Custom(r.checkRestaurantExists),
		imageFormat(),
		imageSize(),
		promotedRule(r),
		highlightRule(r),
	}
}

// Update is the chain for PUT /products/:productId. restaurantId is
// immutable, so the business rules read it from Request.Locals.
func (r *ProductRules) Update() Chain {
	return Chain{
		Field("name").Exists().IsString().Length(1, 255).Trim(),
		Field("description").Optional(OptionalOptions{Nullable: true, CheckFalsy: true}).IsString().Length(1, 0).Trim(),
		Field("price").Exists().IsFloat(0).ToFloat(),
		Field("order").Default(nil).Optional(OptionalOptions{Nullable: true}).IsAnyInt().ToInt(),
		Field("availability").Optional().IsBoolean().ToBoolean(),
		Field("productCategoryId").Exists().IsInt(1).ToInt(),
		Field("restaurantId").NotExists().WithMessage(MsgRestaurantFixed),
		imageFormat(),
		imageSize(),
		promotedRule(r),
		highlightRule(r),
	}
}

// The flags accept any value: falsy ones ("", null, "false", 0) turn
// into false and skip the count, anything else counts as set.
func promotedRule(r *ProductRules) *Check {
	return Field("promoted").Optional().ToBoolean().
		Custom(r.checkOnePromoted).WithMessage(MsgPromoted)
}

func highlightRule(r *ProductRules) *Check {
	return Field("highlight").Optional().ToBoolean().
		Custom(r.checkFiveHighlighted).WithMessage(MsgHighlight)
}

func imageFormat() *Check {
	return Field("image").Custom(func(_ context.Context, _ any, req *Request) error {
		return CheckFileIsImage(req, "image")
	}).WithMessage(MsgImageFormat)
}

func imageSize() *Check {
	return Field("image").Custom(func(_ context.Context, _ any, req *Request) error {
		return CheckFileMaxSize(req, "image", MaxImageSize)
	}).WithMessage(MsgImageSize)
}

func (r *ProductRules) checkRestaurantExists(ctx context.Context, value any, _ *Request) error {
	id, ok := toInt(value)
	if !ok || id < 1 {
		// the format check of restaurantId reports this one
		return nil
	}
	found, err := r.restaurants.Exists(ctx, uint(id))
	if err != nil {
		return fmt.Errorf("looking up restaurant %d: %w", id, err)
	}
	if !found {
		return errNoRestaurant
	}
	return nil
}

func (r *ProductRules) checkOnePromoted(ctx context.Context, value any, req *Request) error {
	return r.checkFlagLimit(ctx, value, req, r.products.CountPromoted, MaxPromotedProducts)
}

func (r *ProductRules) checkFiveHighlighted(ctx context.Context, value any, req *Request) error {
	return r.checkFlagLimit(ctx, value, req, r.products.CountHighlighted, MaxHighlightedProducts)
}

type countFunc func(ctx context.Context, restaurantID, exclude uint) (int64, error)

func (r *ProductRules) checkFlagLimit(ctx context.Context, value any, req *Request, count countFunc, limit int64) error {
	if on, ok := value.(bool); !ok || !on {
		return nil
	}
	restaurantID, ok := restaurantIDOf(req)
	if !ok {
		// nothing to count against; restaurantId reports its own error
		return nil
	}
	exclude, _ := localUint(req, LocalProductID)

	n, err := count(ctx, restaurantID, exclude)
	if err != nil {
		return fmt.Errorf("counting products of restaurant %d: %w", restaurantID, err)
	}
	if n >= limit {
		return fmt.Errorf("restaurant %d already has %d flagged products", restaurantID, n)
	}
	return nil
}

// restaurantIDOf prefers the restaurant placed in Locals by the route
// (update) and falls back to the id sent in the body (create).
func restaurantIDOf(req *Request) (uint, bool) {
	if id, ok := localUint(req, LocalRestaurantID); ok {
		return id, true
	}
	v, ok := req.Lookup("restaurantId")
	if !ok {
		return 0, false
	}
	if id, ok := toInt(v); ok && id > 0 {
		return uint(id), true
	}
	return 0, false
}

func localUint(req *Request, key string) (uint, bool) {
	v, ok := req.Local(key)
	if !ok {
		return 0, false
	}
	switch t := v.(type) {
	case uint:
		return t, t > 0
	default:
		id, ok := toInt(v)
		return uint(id), ok && id > 0
	}
}
