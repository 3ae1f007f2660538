package validation

import (
	"mime/multipart"
)

// Keys of Request.Locals filled by route middleware before a chain runs.
const (
	LocalRestaurantID = "restaurantId"
	LocalProductID    = "productId"
)

// Request is the read-only input of a chain run. Checks never mutate it;
// coerced values are returned in Result.Values instead.
type Request struct {
	Body   map[string]any
	Files  map[string]*multipart.FileHeader
	Locals map[string]any
}

// NewRequest returns a Request with non-nil maps.
func NewRequest(body map[string]any) *Request {
	if body == nil {
		body = map[string]any{}
	}
	return &Request{
		Body:   body,
		Files:  map[string]*multipart.FileHeader{},
		Locals: map[string]any{},
	}
}

// Lookup returns the raw body value of field and whether it was sent.
func (r *Request) Lookup(field string) (any, bool) {
	v, ok := r.Body[field]
	return v, ok
}

// File returns the uploaded file of field, or nil.
func (r *Request) File(field string) *multipart.FileHeader {
	if r.Files == nil {
		return nil
	}
	return r.Files[field]
}

// Local returns a value placed by earlier middleware.
func (r *Request) Local(key string) (any, bool) {
	if r.Locals == nil {
		return nil, false
	}
	v, ok := r.Locals[key]
	return v, ok
}
