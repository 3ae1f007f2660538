package validation

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

var (
	errMissing = errors.New("missing")
	errPresent = errors.New("present")
	errInvalid = errors.New("invalid")
)

// CustomFunc is an application predicate. value is the field value after
// the preceding steps of the same check; req gives access to the rest of
// the request. A non-nil error fails the check.
type CustomFunc func(ctx context.Context, value any, req *Request) error

// OptionalOptions controls which values make a check skip its steps.
// Absent fields are always skipped by an optional check.
type OptionalOptions struct {
	Nullable   bool
	CheckFalsy bool
}

type step struct {
	message  string
	sanitize func(v any) any
	validate func(ctx context.Context, v any, present bool, req *Request) error
}

// Check is the ordered list of steps applied to one field. The first
// failing validator stops the check and reports one FieldError.
type Check struct {
	field      string
	hasDefault bool
	def        any
	optional   *OptionalOptions
	steps      []step
}

// Field starts a check for the named body field.
func Field(name string) *Check {
	return &Check{field: name}
}

// Name returns the field the check applies to.
func (c *Check) Name() string { return c.field }

func (c *Check) add(s step) *Check {
	c.steps = append(c.steps, s)
	return c
}

func (c *Check) validator(message string, fn func(ctx context.Context, v any, present bool, req *Request) error) *Check {
	return c.add(step{message: message, validate: fn})
}

func (c *Check) sanitizer(fn func(v any) any) *Check {
	return c.add(step{sanitize: fn})
}

// Default replaces an absent, null or empty value before any other step.
func (c *Check) Default(v any) *Check {
	c.hasDefault, c.def = true, v
	return c
}

// Optional skips every step when the value is absent, or matches opts.
func (c *Check) Optional(opts ...OptionalOptions) *Check {
	o := OptionalOptions{}
	if len(opts) > 0 {
		o = opts[0]
	}
	c.optional = &o
	return c
}

func (c *Check) Exists() *Check {
	return c.validator(c.field+" is required", func(_ context.Context, _ any, present bool, _ *Request) error {
		if !present {
			return errMissing
		}
		return nil
	})
}

// NotExists fails when the field was sent at all.
func (c *Check) NotExists() *Check {
	return c.validator(c.field+" must not be sent", func(_ context.Context, _ any, present bool, _ *Request) error {
		if present {
			return errPresent
		}
		return nil
	})
}

func (c *Check) IsString() *Check {
	return c.validator(c.field+" must be a string", func(_ context.Context, v any, present bool, _ *Request) error {
		if _, ok := v.(string); !present || !ok {
			return errInvalid
		}
		return nil
	})
}

// Length bounds the rune length of the value; max <= 0 means unbounded.
func (c *Check) Length(min, max int) *Check {
	tag := "min=" + strconv.Itoa(min)
	msg := fmt.Sprintf("%s must be at least %d characters long", c.field, min)
	if max > 0 {
		tag += ",max=" + strconv.Itoa(max)
		msg = fmt.Sprintf("%s must be between %d and %d characters long", c.field, min, max)
	}
	return c.validator(msg, func(_ context.Context, v any, _ bool, _ *Request) error {
		return validate.Var(toString(v), tag)
	})
}

func (c *Check) Trim() *Check {
	return c.sanitizer(func(v any) any {
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s)
		}
		return v
	})
}

// IsFloat requires a finite number greater than or equal to min.
func (c *Check) IsFloat(min float64) *Check {
	bound := strconv.FormatFloat(min, 'f', -1, 64)
	msg := fmt.Sprintf("%s must be a number greater than or equal to %s", c.field, bound)
	return c.validator(msg, func(_ context.Context, v any, _ bool, _ *Request) error {
		f, ok := toFloat(v)
		if !ok {
			return errInvalid
		}
		return validate.Var(f, "gte="+bound)
	})
}

func (c *Check) ToFloat() *Check {
	return c.sanitizer(func(v any) any {
		if f, ok := toFloat(v); ok {
			return f
		}
		return v
	})
}

// IsInt requires an integer greater than or equal to min.
func (c *Check) IsInt(min int64) *Check {
	bound := strconv.FormatInt(min, 10)
	msg := fmt.Sprintf("%s must be an integer greater than or equal to %s", c.field, bound)
	return c.validator(msg, func(_ context.Context, v any, _ bool, _ *Request) error {
		i, ok := toInt(v)
		if !ok {
			return errInvalid
		}
		return validate.Var(i, "gte="+bound)
	})
}

// IsAnyInt requires an integer without bounds.
func (c *Check) IsAnyInt() *Check {
	return c.validator(c.field+" must be an integer", func(_ context.Context, v any, _ bool, _ *Request) error {
		if _, ok := toInt(v); !ok {
			return errInvalid
		}
		return nil
	})
}

func (c *Check) ToInt() *Check {
	return c.sanitizer(func(v any) any {
		if i, ok := toInt(v); ok {
			return i
		}
		return v
	})
}

func (c *Check) IsBoolean() *Check {
	return c.validator(c.field+" must be a boolean", func(_ context.Context, v any, _ bool, _ *Request) error {
		if _, ok := toBool(v); !ok {
			return errInvalid
		}
		return nil
	})
}

func (c *Check) ToBoolean() *Check {
	return c.sanitizer(func(v any) any {
		return looseBool(v)
	})
}

// Custom adds an application predicate. It runs even when the field is
// absent unless the check is optional.
func (c *Check) Custom(fn CustomFunc) *Check {
	return c.validator("", func(ctx context.Context, v any, _ bool, req *Request) error {
		return fn(ctx, v, req)
	})
}

// WithMessage replaces the message of the previous validator.
func (c *Check) WithMessage(msg string) *Check {
	for i := len(c.steps) - 1; i >= 0; i-- {
		if c.steps[i].validate != nil {
			c.steps[i].message = msg
			break
		}
	}
	return c
}

func (c *Check) skip(v any, present bool) bool {
	if !present {
		return true
	}
	if c.optional.Nullable && v == nil {
		return true
	}
	return c.optional.CheckFalsy && falsy(v)
}

func (c *Check) run(ctx context.Context, req *Request, v any, present bool) (any, bool, *FieldError) {
	if c.hasDefault && (!present || v == nil || v == "") {
		v, present = c.def, true
	}
	if c.optional != nil && c.skip(v, present) {
		return v, present, nil
	}

	for _, s := range c.steps {
		if s.sanitize != nil {
			if present {
				v = s.sanitize(v)
			}
			continue
		}
		if err := s.validate(ctx, v, present, req); err != nil {
			msg := s.message
			if msg == "" {
				msg = err.Error()
			}
			return v, present, &FieldError{Field: c.field, Message: msg, Value: v}
		}
	}
	return v, present, nil
}
