package validation

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, chain Chain, body map[string]any) *Result {
	t.Helper()
	res, err := chain.Run(context.Background(), NewRequest(body))
	require.NoError(t, err)
	return res
}

func TestCheckBounds(t *testing.T) {
	name := Field("name").Exists().IsString().Length(1, 255).Trim()
	price := Field("price").Exists().IsFloat(0).ToFloat()

	tests := []struct {
		name  string
		check *Check
		body  map[string]any
		ok    bool
		want  any
	}{
		{"price zero string", price, map[string]any{"price": "0"}, true, 0.0},
		{"price zero number", price, map[string]any{"price": 0.0}, true, 0.0},
		{"price decimal", price, map[string]any{"price": "12.5"}, true, 12.5},
		{"price negative", price, map[string]any{"price": "-1"}, false, nil},
		{"price negative number", price, map[string]any{"price": -1.0}, false, nil},
		{"price text", price, map[string]any{"price": "cheap"}, false, nil},
		{"price infinity", price, map[string]any{"price": "Inf"}, false, nil},
		{"price missing", price, map[string]any{}, false, nil},
		{"name empty", name, map[string]any{"name": ""}, false, nil},
		{"name too long", name, map[string]any{"name": strings.Repeat("a", 256)}, false, nil},
		{"name max length", name, map[string]any{"name": strings.Repeat("a", 255)}, true, strings.Repeat("a", 255)},
		{"name counts runes", name, map[string]any{"name": strings.Repeat("ñ", 255)}, true, strings.Repeat("ñ", 255)},
		{"name trimmed", name, map[string]any{"name": "  Paella  "}, true, "Paella"},
		{"name not a string", name, map[string]any{"name": 12.0}, false, nil},
		{"name missing", name, map[string]any{}, false, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(t, Chain{tt.check}, tt.body)
			if !tt.ok {
				assert.False(t, res.OK())
				assert.Len(t, res.Errors, 1)
				assert.Nil(t, res.Values)
				return
			}
			require.True(t, res.OK(), "errors: %v", res.Errors)
			assert.Equal(t, tt.want, res.Values[tt.check.Name()])
		})
	}
}

func TestCheckIntegers(t *testing.T) {
	id := Field("productCategoryId").Exists().IsInt(1).ToInt()

	res := run(t, Chain{id}, map[string]any{"productCategoryId": "3"})
	require.True(t, res.OK())
	assert.Equal(t, int64(3), res.Values["productCategoryId"])

	res = run(t, Chain{id}, map[string]any{"productCategoryId": 4.0})
	require.True(t, res.OK())
	assert.Equal(t, int64(4), res.Values["productCategoryId"])

	for _, bad := range []any{"0", "-2", "1.5", 2.5, "one", nil} {
		res := run(t, Chain{id}, map[string]any{"productCategoryId": bad})
		assert.False(t, res.OK(), "value %v", bad)
	}
}

func TestOptionalAndDefault(t *testing.T) {
	order := func() *Check {
		return Field("order").Default(nil).Optional(OptionalOptions{Nullable: true}).IsAnyInt().ToInt()
	}
	description := func() *Check {
		return Field("description").Optional(OptionalOptions{Nullable: true, CheckFalsy: true}).IsString().Length(1, 0).Trim()
	}

	t.Run("absent order defaults to null", func(t *testing.T) {
		res := run(t, Chain{order()}, map[string]any{})
		require.True(t, res.OK())
		v, ok := res.Values["order"]
		assert.True(t, ok)
		assert.Nil(t, v)
	})
	t.Run("empty order defaults to null", func(t *testing.T) {
		res := run(t, Chain{order()}, map[string]any{"order": ""})
		require.True(t, res.OK())
		assert.Nil(t, res.Values["order"])
	})
	t.Run("order coerced", func(t *testing.T) {
		res := run(t, Chain{order()}, map[string]any{"order": "-3"})
		require.True(t, res.OK())
		assert.Equal(t, int64(-3), res.Values["order"])
	})
	t.Run("order not an integer", func(t *testing.T) {
		res := run(t, Chain{order()}, map[string]any{"order": "first"})
		assert.True(t, res.Errors.Has("order"))
	})
	t.Run("falsy description skipped", func(t *testing.T) {
		res := run(t, Chain{description()}, map[string]any{"description": ""})
		require.True(t, res.OK())
		assert.Equal(t, "", res.Values["description"])
	})
	t.Run("null description skipped", func(t *testing.T) {
		res := run(t, Chain{description()}, map[string]any{"description": nil})
		require.True(t, res.OK())
	})
	t.Run("absent description not published", func(t *testing.T) {
		res := run(t, Chain{description()}, map[string]any{})
		require.True(t, res.OK())
		_, ok := res.Values["description"]
		assert.False(t, ok)
	})
	t.Run("description must be a string", func(t *testing.T) {
		res := run(t, Chain{description()}, map[string]any{"description": true})
		assert.True(t, res.Errors.Has("description"))
	})
}

func TestBooleans(t *testing.T) {
	availability := Field("availability").Optional().IsBoolean().ToBoolean()

	for in, want := range map[any]bool{"true": true, "false": false, "1": true, "0": false, true: true, false: false} {
		res := run(t, Chain{availability}, map[string]any{"availability": in})
		require.True(t, res.OK(), "value %v", in)
		assert.Equal(t, want, res.Values["availability"], "value %v", in)
	}

	res := run(t, Chain{availability}, map[string]any{"availability": "yes"})
	assert.Equal(t, []string{"availability must be a boolean"}, res.Errors.Messages("availability"))
}

func TestNotExists(t *testing.T) {
	check := Field("restaurantId").NotExists().WithMessage("fixed")

	res := run(t, Chain{check}, map[string]any{"restaurantId": "1"})
	assert.Equal(t, []string{"fixed"}, res.Errors.Messages("restaurantId"))

	res = run(t, Chain{check}, map[string]any{"name": "x"})
	assert.True(t, res.OK())
}

func TestCustomMessages(t *testing.T) {
	failing := func(context.Context, any, *Request) error { return errors.New("from predicate") }

	res := run(t, Chain{Field("x").Custom(failing)}, map[string]any{})
	assert.Equal(t, []string{"from predicate"}, res.Errors.Messages("x"))

	res = run(t, Chain{Field("x").Custom(failing).WithMessage("overridden")}, map[string]any{})
	assert.Equal(t, []string{"overridden"}, res.Errors.Messages("x"))
}

func TestChecksOfOneFieldShareCoercedValue(t *testing.T) {
	var seen any
	chain := Chain{
		Field("restaurantId").Exists().IsInt(1).ToInt(),
		Field("restaurantId").Custom(func(_ context.Context, v any, _ *Request) error {
			seen = v
			return nil
		}),
	}

	res := run(t, chain, map[string]any{"restaurantId": "8"})
	require.True(t, res.OK())
	assert.Equal(t, int64(8), seen)
	assert.Equal(t, int64(8), res.Values["restaurantId"])
}

func TestChainReportsEveryField(t *testing.T) {
	chain := Chain{
		Field("name").Exists().IsString().Length(1, 255),
		Field("price").Exists().IsFloat(0),
		Field("productCategoryId").Exists().IsInt(1),
	}

	res := run(t, chain, map[string]any{"name": "", "price": "-1"})
	require.Len(t, res.Errors, 3)
	assert.Equal(t, "name", res.Errors[0].Field)
	assert.Equal(t, "price", res.Errors[1].Field)
	assert.Equal(t, "productCategoryId", res.Errors[2].Field)
	assert.Contains(t, res.Errors.Error(), "price must be a number greater than or equal to 0")
}

func TestChainCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Chain{Field("name").Exists()}.Run(ctx, NewRequest(nil))
	assert.ErrorIs(t, err, context.Canceled)
}
