package query

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var queryValidate *validator.Validate

func init() {
	queryValidate = validator.New()
	queryValidate.RegisterStructValidation(validateEndpoints, Query{})
}

// validateEndpoints reports every edge whose endpoints fall outside [1, Vertices].
func validateEndpoints(sl validator.StructLevel) {
	q := sl.Current().Interface().(Query)
	for i, e := range q.Edges {
		if e[0] < 1 || e[0] > q.Vertices || e[1] < 1 || e[1] > q.Vertices {
			sl.ReportError(e, fmt.Sprintf("Edges[%d]", i), "Edges", "endpoint", fmt.Sprint(q.Vertices))
		}
	}
}

// Validate checks q against its rules and returns an error wrapping
// ErrInvalidQuery that lists every failed field.
func (q Query) Validate() error {
	err := queryValidate.Struct(q)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidQuery, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}

	return fmt.Errorf("%w: %s", ErrInvalidQuery, strings.Join(msgs, "; "))
}

// describe renders one failed rule as "field=value: rule".
func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "endpoint":
		return fmt.Sprintf("%s=%v: endpoint not in [1,%s]", fe.Field(), fe.Value(), fe.Param())
	case "ltefield":
		return fmt.Sprintf("%s=%v: exceeds %s", fe.Field(), fe.Value(), fe.Param())
	default:
		return fmt.Sprintf("%s=%v: must be %s %s", fe.Field(), fe.Value(), fe.Tag(), fe.Param())
	}
}
