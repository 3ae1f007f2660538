package controllers

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"deliverus/entity"
	"deliverus/middlewares"
	"deliverus/pkg/resp"
	"deliverus/repository"
	"deliverus/services"
	"deliverus/utils"
	"deliverus/validation"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
)

type ProductController struct {
	Service *services.ProductService
	Log     *slog.Logger
}

func NewProductController(s *services.ProductService, log *slog.Logger) *ProductController {
	return &ProductController{Service: s, Log: log}
}

// GET /restaurants/:restaurantId/products
func (ctl *ProductController) ListByRestaurant(c *gin.Context) {
	restID, err := strconv.ParseUint(c.Param("restaurantId"), 10, 0)
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}

	products, err := ctl.Service.ListByRestaurant(c.Request.Context(), uint(restID))
	if err != nil {
		ctl.Log.Error("failed to list products", "restaurant_id", restID, "error", err)
		resp.ServerError(c, err)
		return
	}
	for i := range products {
		products[i].ImageURL = utils.BuildProductImageURL(&products[i])
	}
	resp.OK(c, products)
}

// GET /products/:productId
func (ctl *ProductController) Show(c *gin.Context) {
	p, _ := middlewares.LoadedProduct(c)
	p.ImageURL = utils.BuildProductImageURL(p)
	resp.OK(c, p)
}

// GET /products/:productId/image
func (ctl *ProductController) Image(c *gin.Context) {
	p, _ := middlewares.LoadedProduct(c)
	img, err := ctl.Service.Image(c.Request.Context(), p.ID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if img.ImageSize == 0 {
		resp.NotFound(c, "product has no image")
		return
	}
	c.Data(http.StatusOK, img.ImageType, img.Image)
}

// POST /products
func (ctl *ProductController) Create(c *gin.Context) {
	values := middlewares.ValidatedValues(c)

	p := entity.Product{Availability: true}
	applyProductValues(&p, values)
	if id, ok := values["restaurantId"].(int64); ok {
		p.RestaurantID = uint(id)
	}
	if err := attachImage(c, &p); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ctl.Service.Create(c.Request.Context(), &p); err != nil {
		ctl.writeServiceError(c, "create", err)
		return
	}

	ctl.Log.Info("product created", "product_id", p.ID, "restaurant_id", p.RestaurantID)
	p.Image = nil
	p.ImageURL = utils.BuildProductImageURL(&p)
	resp.Created(c, p)
}

// PUT /products/:productId
func (ctl *ProductController) Update(c *gin.Context) {
	p, _ := middlewares.LoadedProduct(c)
	applyProductValues(p, middlewares.ValidatedValues(c))
	if err := attachImage(c, p); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ctl.Service.Update(c.Request.Context(), p); err != nil {
		ctl.writeServiceError(c, "update", err)
		return
	}

	updated, err := ctl.Service.Get(c.Request.Context(), p.ID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	updated.ImageURL = utils.BuildProductImageURL(updated)
	resp.OK(c, updated)
}

// DELETE /products/:productId
func (ctl *ProductController) Delete(c *gin.Context) {
	p, _ := middlewares.LoadedProduct(c)
	if err := ctl.Service.Delete(c.Request.Context(), p.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			resp.NotFound(c, "product not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": fmt.Sprintf("Successfully deleted product id %d.", p.ID)})
}

func (ctl *ProductController) writeServiceError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, services.ErrPromotedLimit):
		resp.UnprocessableEntity(c, validation.Errors{{Field: "promoted", Message: validation.MsgPromoted, Value: true}})
	case errors.Is(err, services.ErrHighlightLimit):
		resp.UnprocessableEntity(c, validation.Errors{{Field: "highlight", Message: validation.MsgHighlight, Value: true}})
	case errors.Is(err, repository.ErrNotFound):
		resp.NotFound(c, "restaurant not found")
	default:
		ctl.Log.Error("failed to "+op+" product", "error", err)
		resp.ServerError(c, err)
	}
}

// applyProductValues copies validated values onto p. Fields that were not
// sent keep their current value.
func applyProductValues(p *entity.Product, values map[string]any) {
	if v, ok := values["name"].(string); ok {
		p.Name = v
	}
	if v, ok := values["description"]; ok {
		s, _ := v.(string)
		p.Description = s
	}
	if v, ok := values["price"].(float64); ok {
		p.Price = v
	}
	if v, ok := values["order"]; ok {
		if n, ok := v.(int64); ok {
			p.Order = &n
		} else {
			p.Order = nil
		}
	}
	if v, ok := values["availability"].(bool); ok {
		p.Availability = v
	}
	if v, ok := values["productCategoryId"].(int64); ok {
		p.ProductCategoryID = uint(v)
	}
	if v, ok := values["promoted"].(bool); ok {
		p.Promoted = v
	}
	if v, ok := values["highlight"].(bool); ok {
		p.Highlight = v
	}
}

// attachImage reads the already validated "image" upload into p.
func attachImage(c *gin.Context, p *entity.Product) error {
	fh, err := c.FormFile("image")
	if err != nil {
		// no upload, or not a multipart request
		return nil
	}
	f, err := fh.Open()
	if err != nil {
		return fmt.Errorf("cannot read image: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, validation.MaxImageSize+1))
	if err != nil {
		return fmt.Errorf("cannot read image: %w", err)
	}
	p.Image = data
	p.ImageType = mimetype.Detect(data).String()
	p.ImageSize = int64(len(data))
	return nil
}
