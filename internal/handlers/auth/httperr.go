package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// fieldError is one entry of the published validation error shape.
type fieldError struct {
	Field    string   `json:"field"`
	Location string   `json:"location"`
	Messages []string `json:"messages"`
}

type errorResponse struct {
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Errors  []fieldError `json:"errors,omitempty"`
}

func respondError(c *gin.Context, code int, message string) {
	c.JSON(code, errorResponse{Code: code, Message: message})
}

func respondValidation(c *gin.Context, code int, errs []fieldError) {
	c.JSON(code, errorResponse{Code: code, Message: "Validation Error", Errors: errs})
}

func respondDuplicateEmail(c *gin.Context) {
	respondValidation(c, http.StatusConflict, []fieldError{{
		Field:    "email",
		Location: "body",
		Messages: []string{`"email" already exists`},
	}})
}

// bindJSON binds the request body into req and writes the 400 response
// itself on failure. Callers just return when it reports false.
func bindJSON(c *gin.Context, req interface{}) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]fieldError, 0, len(verrs))
		for _, fe := range verrs {
			field := jsonFieldName(req, fe.StructField())
			out = append(out, fieldError{
				Field:    field,
				Location: "body",
				Messages: []string{validationMessage(field, fe)},
			})
		}
		respondValidation(c, http.StatusBadRequest, out)
		return false
	}

	respondError(c, http.StatusBadRequest, "Invalid request body")
	return false
}

// jsonFieldName maps a struct field back to the name the client sent.
func jsonFieldName(req interface{}, structField string) string {
	t := reflect.TypeOf(req)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if f, ok := t.FieldByName(structField); ok {
		if tag := strings.Split(f.Tag.Get("json"), ",")[0]; tag != "" && tag != "-" {
			return tag
		}
	}
	return strings.ToLower(structField)
}

func validationMessage(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%q is required", field)
	case "email":
		return fmt.Sprintf("%q must be a valid email", field)
	case "min":
		return fmt.Sprintf("%q length must be at least %s characters long", field, fe.Param())
	case "max":
		return fmt.Sprintf("%q length must be less than or equal to %s characters long", field, fe.Param())
	default:
		return fmt.Sprintf("%q is invalid", field)
	}
}
