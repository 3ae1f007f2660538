package middlewares

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"deliverus/pkg/resp"
	"deliverus/validation"

	"github.com/gin-gonic/gin"
)

const validatedKey = "validated"

// Validate runs chain against the request body and uploaded files. A
// failed chain ends the request with 422 and every field error; a passed
// one stores the coerced values for ValidatedValues.
func Validate(chain validation.Chain) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, err := requestFromGin(c)
		if err != nil {
			resp.BadRequest(c, err.Error())
			c.Abort()
			return
		}
		if p, ok := LoadedProduct(c); ok {
			req.Locals[validation.LocalProductID] = p.ID
			req.Locals[validation.LocalRestaurantID] = p.RestaurantID
		}

		res, err := chain.Run(c.Request.Context(), req)
		if err != nil {
			c.AbortWithStatus(http.StatusRequestTimeout)
			return
		}
		if !res.OK() {
			resp.UnprocessableEntity(c, res.Errors)
			c.Abort()
			return
		}

		c.Set(validatedKey, res.Values)
		c.Next()
	}
}

// ValidatedValues returns the coerced values stored by Validate.
func ValidatedValues(c *gin.Context) map[string]any {
	if v, ok := c.Get(validatedKey); ok {
		if m, ok := v.(map[string]any); ok {
			return m
		}
	}
	return map[string]any{}
}

func requestFromGin(c *gin.Context) (*validation.Request, error) {
	switch c.ContentType() {
	case gin.MIMEMultipartPOSTForm:
		form, err := c.MultipartForm()
		if err != nil {
			return nil, fmt.Errorf("invalid multipart body: %w", err)
		}
		req := validation.NewRequest(firstValues(form.Value))
		for field, files := range form.File {
			if len(files) > 0 {
				req.Files[field] = files[0]
			}
		}
		return req, nil

	case gin.MIMEPOSTForm:
		if err := c.Request.ParseForm(); err != nil {
			return nil, fmt.Errorf("invalid form body: %w", err)
		}
		return validation.NewRequest(firstValues(c.Request.PostForm)), nil

	default:
		body := map[string]any{}
		if c.Request.Body != nil {
			// a map target skips gin's struct validation
			err := c.ShouldBindJSON(&body)
			if err != nil && !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("invalid JSON body: %w", err)
			}
		}
		return validation.NewRequest(body), nil
	}
}

func firstValues(values map[string][]string) map[string]any {
	body := make(map[string]any, len(values))
	for k, vs := range values {
		if len(vs) > 0 {
			body[k] = vs[0]
		}
	}
	return body
}
