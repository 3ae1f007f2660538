package validation

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Chain is an ordered list of checks applied to one request.
type Chain []*Check

// Result of a chain run. Values holds the coerced value of every field
// the chain names and the request carried; it is only filled when the
// whole chain passed.
type Result struct {
	Values map[string]any
	Errors Errors
}

// OK reports whether every check passed.
func (r *Result) OK() bool { return len(r.Errors) == 0 }

type fieldRun struct {
	field   string
	checks  []*Check
	value   any
	present bool
	errs    Errors
}

// Run applies the chain to req. Checks of one field run in declaration
// order and see the value left by the previous one; different fields run
// concurrently. The returned error is non-nil only if ctx ended.
func (ch Chain) Run(ctx context.Context, req *Request) (*Result, error) {
	if req == nil {
		req = NewRequest(nil)
	}

	var runs []*fieldRun
	byField := map[string]*fieldRun{}
	for _, c := range ch {
		fr, ok := byField[c.field]
		if !ok {
			fr = &fieldRun{field: c.field}
			byField[c.field] = fr
			runs = append(runs, fr)
		}
		fr.checks = append(fr.checks, c)
	}

	var g errgroup.Group
	for _, fr := range runs {
		g.Go(func() error {
			v, present := req.Lookup(fr.field)
			for _, c := range fr.checks {
				var fe *FieldError
				v, present, fe = c.run(ctx, req, v, present)
				if fe != nil {
					fr.errs = append(fr.errs, *fe)
				}
			}
			fr.value, fr.present = v, present
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := &Result{}
	for _, fr := range runs {
		res.Errors = append(res.Errors, fr.errs...)
	}
	if !res.OK() {
		return res, nil
	}

	res.Values = make(map[string]any, len(runs))
	for _, fr := range runs {
		if fr.present {
			res.Values[fr.field] = fr.value
		}
	}
	return res, nil
}
