package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Address     string `json:"address"`
	Description string `json:"description"`

	RestaurantCategoryID uint               `json:"restaurantCategoryId"`
	RestaurantCategory   RestaurantCategory `json:"-"`

	UserID uint `gorm:"index" json:"userId"` // owner (users.id)
	User   User `json:"-"`

	Products []Product `json:"-"`
}
