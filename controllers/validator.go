package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"customprint-api/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// FieldError describes a single validation failure on a named field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// RequestValidator handles all input validation.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	v := validator.New()

	// Report json tag names in field errors rather than Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &RequestValidator{validate: v}
}

// ParseEnquiryRequest binds and validates an enquiry submission. On failure
// it returns one entry per offending field, not just the first.
func (rv *RequestValidator) ParseEnquiryRequest(c *gin.Context) (models.EnquiryIn, []FieldError) {
	var req models.EnquiryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, []FieldError{bindError(err)}
	}

	if err := rv.validate.Struct(&req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fieldErrors := make([]FieldError, 0, len(verrs))
			for _, fe := range verrs {
				fieldErrors = append(fieldErrors, FieldError{
					Field:   fe.Field(),
					Message: validationMessage(fe),
				})
			}
			return req, fieldErrors
		}
		return req, []FieldError{{Field: "body", Message: err.Error()}}
	}

	return req, nil
}

// bindError names the offending field when the JSON body carried a wrong
// type (e.g. a non-integer quantity), otherwise reports a malformed body.
func bindError(err error) FieldError {
	var ute *json.UnmarshalTypeError
	if errors.As(err, &ute) && ute.Field != "" {
		return FieldError{
			Field:   ute.Field,
			Message: fmt.Sprintf("must be of type %s", ute.Type.String()),
		}
	}
	return FieldError{Field: "body", Message: "invalid JSON body"}
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.Join(models.ProductTypes, ", "))
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	default:
		return "is invalid"
	}
}
