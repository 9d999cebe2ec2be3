package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/nikolayk812/orderdocs/internal/domain"
	"github.com/samber/lo"
)

var (
	registerTagNameOnce sync.Once

	// items[0] -> items.0
	indexPattern = regexp.MustCompile(`\[(\d+)\]`)
)

// useJSONFieldNames makes validation errors name fields by their json tags.
func useJSONFieldNames() {
	registerTagNameOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}

		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

// bindError turns a gin binding failure into a domain.ValidationError.
func bindError(err error) error {
	var (
		validationErrs validator.ValidationErrors
		typeErr        *json.UnmarshalTypeError
	)

	var fields []domain.FieldError

	switch {
	case errors.As(err, &validationErrs):
		for _, fe := range validationErrs {
			fields = append(fields, domain.FieldError{
				Field:   fieldPath(fe.Namespace()),
				Message: validationMessage(fe),
			})
		}
	case errors.As(err, &typeErr):
		// encoding/json reports the path of field names only, array indices are not included:
		// a bad quantity in items[0] comes back as "items.quantity".
		fields = append(fields, domain.FieldError{
			Field:   typeErr.Field,
			Message: fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value),
		})
	default:
		fields = append(fields, domain.FieldError{
			Message: "invalid JSON body: " + err.Error(),
		})
	}

	return &domain.ValidationError{Fields: fields}
}

// fieldPath drops the root struct name: "createOrderRequest.items[0].price" -> "items.0.price".
func fieldPath(namespace string) string {
	_, path, found := strings.Cut(namespace, ".")
	if !found {
		path = namespace
	}

	return indexPattern.ReplaceAllString(path, ".$1")
}

func validationMessage(fe validator.FieldError) string {
	if fe.Tag() == "required" {
		return "field required"
	}

	return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
}

// newFieldErrorResponses renders each field path as a loc list: ["body", "items", 0, "price"].
func newFieldErrorResponses(vErr *domain.ValidationError) []fieldErrorResponse {
	return lo.Map(vErr.Fields, func(f domain.FieldError, _ int) fieldErrorResponse {
		loc := []any{"body"}

		if f.Field != "" {
			for _, part := range strings.Split(f.Field, ".") {
				if idx, err := strconv.Atoi(part); err == nil {
					loc = append(loc, idx)
					continue
				}
				loc = append(loc, part)
			}
		}

		return fieldErrorResponse{Loc: loc, Msg: f.Message}
	})
}
