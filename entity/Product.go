package entity

import (
	"gorm.io/gorm"
)

type Product struct {
	gorm.Model
	Name         string  `gorm:"size:255;not null" json:"name"`
	Description  string  `json:"description"`
	Price        float64 `gorm:"not null" json:"price"`
	Order        *int64  `json:"order"`
	Availability bool    `json:"availability"`
	Promoted     bool    `gorm:"index" json:"promoted"`
	Highlight    bool    `gorm:"index" json:"highlight"`

	// image stored as blob, served by GET /products/:id/image
	Image     []byte `json:"-"`
	ImageType string `json:"-"` // e.g. "image/jpeg"
	ImageSize int64  `json:"-"`
	ImageURL  string `gorm:"-" json:"image,omitempty"`

	ProductCategoryID uint            `gorm:"not null" json:"productCategoryId"`
	ProductCategory   ProductCategory `json:"-"`

	RestaurantID uint       `gorm:"index;not null" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`
}
