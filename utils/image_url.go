package utils

import (
	"fmt"

	"deliverus/entity"
)

// BuildProductImageURL returns the image endpoint of p, or "" when p has
// no image.
func BuildProductImageURL(p *entity.Product) string {
	if p.ImageSize > 0 {
		return fmt.Sprintf("/products/%d/image", p.ID)
	}
	return ""
}
