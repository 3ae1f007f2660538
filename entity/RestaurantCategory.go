package entity

import (
	"gorm.io/gorm"
)

type RestaurantCategory struct {
	gorm.Model
	CategoryName string `gorm:"uniqueIndex;not null" json:"categoryName"`

	Restaurants []Restaurant `json:"-"`
}
