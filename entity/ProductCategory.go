package entity

import (
	"gorm.io/gorm"
)

type ProductCategory struct {
	gorm.Model
	Name string `gorm:"uniqueIndex;not null" json:"name"`

	Products []Product `json:"-"`
}
