package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/shopspring/decimal"

	domainagg "github.com/yungbote/brewery-backend/internal/domain/aggregates"
	"github.com/yungbote/brewery-backend/internal/platform/paging"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

// fieldErrors collects struct tag violations keyed by JSON path
// ("name", "lines[0].quantity").
func fieldErrors(s any) (map[string]string, error) {
	fields := map[string]string{}
	err := validate.Struct(s)
	if err == nil {
		return fields, nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return nil, err
	}
	for _, fe := range ves {
		path := fe.Namespace()
		if i := strings.IndexByte(path, '.'); i >= 0 {
			path = path[i+1:]
		}
		if _, seen := fields[path]; !seen {
			fields[path] = fieldMessage(fe)
		}
	}
	return fields, nil
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		if fe.Kind() == reflect.String {
			return "must not be blank"
		}
		return "must not be null"
	case "max":
		return fmt.Sprintf("size must be between 0 and %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "email":
		return "must be a well-formed email address"
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

// validateRequest runs tag validation, merges in extra checks that tags
// cannot express, and returns a classified validation error or nil.
func validateRequest(op string, s any, extra map[string]string) error {
	fields, err := fieldErrors(s)
	if err != nil {
		return domainagg.Wrap(domainagg.CodeInternal, op, err)
	}
	for k, v := range extra {
		if _, seen := fields[k]; !seen {
			fields[k] = v
		}
	}
	return domainagg.Validation(op, fields)
}

var maxMoney = decimal.New(1, 17)

// checkMoney validates a numeric(19,2) amount. positive selects >0, otherwise >=0.
func checkMoney(fields map[string]string, key string, d *decimal.Decimal, positive bool) {
	if d == nil {
		return
	}
	switch {
	case positive && !d.IsPositive():
		fields[key] = "must be greater than 0"
	case !positive && d.IsNegative():
		fields[key] = "must be greater than or equal to 0"
	case !d.Equal(d.Round(2)) || d.Abs().GreaterThanOrEqual(maxMoney):
		fields[key] = "numeric value out of bounds (<17 digits>.<2 digits> expected)"
	}
}

func pageRequest(op string, req paging.Request) (paging.Request, error) {
	out, err := req.Normalize()
	if err == nil {
		return out, nil
	}
	fields := map[string]string{}
	if req.Page < 0 {
		fields["page"] = "must be greater than or equal to 0"
	}
	if req.Size < 0 {
		fields["size"] = "must be greater than or equal to 0"
	}
	return req, domainagg.Validation(op, fields)
}

func blankToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
