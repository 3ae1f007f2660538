package controllers

import (
	"errors"
	"log/slog"
	"strconv"

	"deliverus/entity"
	"deliverus/pkg/resp"
	"deliverus/repository"
	"deliverus/services"
	"deliverus/utils"

	"github.com/gin-gonic/gin"
)

type RestaurantController struct {
	Service *services.RestaurantService
	Log     *slog.Logger
}

func NewRestaurantController(s *services.RestaurantService, log *slog.Logger) *RestaurantController {
	return &RestaurantController{Service: s, Log: log}
}

// ====== Response DTO ======
type RestaurantResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	Description string `json:"description"`

	Category struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	} `json:"category"`

	Owner struct {
		ID        uint   `json:"id"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Email     string `json:"email"`
	} `json:"owner"`

	Products []entity.Product `json:"products,omitempty"`
}

// GET /restaurants?restaurantCategoryId=
func (ctl *RestaurantController) List(c *gin.Context) {
	var categoryID uint64
	if v := c.Query("restaurantCategoryId"); v != "" {
		var err error
		if categoryID, err = strconv.ParseUint(v, 10, 0); err != nil {
			resp.BadRequest(c, "invalid restaurant category id")
			return
		}
	}

	rests, err := ctl.Service.List(c.Request.Context(), uint(categoryID))
	if err != nil {
		ctl.Log.Error("failed to list restaurants", "error", err)
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, mapRestaurants(rests))
}

// GET /restaurants/:restaurantId
func (ctl *RestaurantController) Show(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("restaurantId"), 10, 0)
	if err != nil {
		resp.NotFound(c, "restaurant not found")
		return
	}

	r, err := ctl.Service.Get(c.Request.Context(), uint(id))
	if errors.Is(err, repository.ErrNotFound) {
		resp.NotFound(c, "restaurant not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	out := mapToRestaurantResponse(r)
	out.Products = r.Products
	for i := range out.Products {
		out.Products[i].ImageURL = utils.BuildProductImageURL(&out.Products[i])
	}
	resp.OK(c, out)
}

// GET /users/myrestaurants
func (ctl *RestaurantController) Mine(c *gin.Context) {
	rests, err := ctl.Service.ListByOwner(c.Request.Context(), utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, mapRestaurants(rests))
}

// ====== Helper ======
func mapRestaurants(rests []entity.Restaurant) []RestaurantResponse {
	out := make([]RestaurantResponse, 0, len(rests))
	for i := range rests {
		out = append(out, mapToRestaurantResponse(&rests[i]))
	}
	return out
}

func mapToRestaurantResponse(r *entity.Restaurant) RestaurantResponse {
	item := RestaurantResponse{
		ID:          r.ID,
		Name:        r.Name,
		Address:     r.Address,
		Description: r.Description,
	}
	item.Category.ID = r.RestaurantCategory.ID
	item.Category.Name = r.RestaurantCategory.CategoryName
	item.Owner.ID = r.UserID
	item.Owner.FirstName = r.User.FirstName
	item.Owner.LastName = r.User.LastName
	item.Owner.Email = r.User.Email
	return item
}
