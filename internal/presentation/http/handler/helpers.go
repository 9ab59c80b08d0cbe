package handler

import (
	"errors"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/barpoint/barpoint-api/internal/domain/enum"
	"github.com/barpoint/barpoint-api/internal/presentation/http/dto/response"
	"github.com/barpoint/barpoint-api/pkg/apperror"
	"github.com/barpoint/barpoint-api/pkg/pagination"
	"github.com/barpoint/barpoint-api/pkg/utils"
)

// GetUserID retrieves the authenticated user ID set by the auth middleware
func GetUserID(c *gin.Context) uuid.UUID {
	val, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil
	}
	id, ok := val.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return id
}

// GetCompanyID retrieves the authenticated company ID. uuid.Nil for system
// admins.
func GetCompanyID(c *gin.Context) uuid.UUID {
	val, exists := c.Get("company_id")
	if !exists {
		return uuid.Nil
	}
	id, ok := val.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return id
}

// GetUserType retrieves the authenticated user type
func GetUserType(c *gin.Context) enum.UserType {
	val, exists := c.Get("user_type")
	if !exists {
		return ""
	}
	t, ok := val.(enum.UserType)
	if !ok {
		return ""
	}
	return t
}

// GetUserEmail retrieves the authenticated user's email
func GetUserEmail(c *gin.Context) string {
	val, exists := c.Get("user_email")
	if !exists {
		return ""
	}
	email, ok := val.(string)
	if !ok {
		return ""
	}
	return email
}

// paginationFromQuery builds pagination params from page/per_page values
func paginationFromQuery(page, perPage int) *pagination.PaginationParams {
	params := pagination.DefaultPagination()
	if page > 0 {
		params.Page = page
	}
	if perPage > 0 {
		params.PerPage = perPage
	}
	params.Validate()
	return params
}

// parseIDParam parses a UUID path parameter
func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := utils.ParseUUID(c.Param(name))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// bindError translates a request binding failure into the structured
// per-field validation payload. Malformed JSON falls back to a plain 400.
func bindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		response.BadRequest(c, "Invalid request body")
		return
	}

	fieldErrors := make([]apperror.FieldError, len(verrs))
	for i, fe := range verrs {
		fieldErrors[i] = apperror.FieldError{
			Field:   jsonFieldName(fe.Field()),
			Message: fieldMessage(fe),
		}
	}
	response.Error(c, apperror.NewValidationError(fieldErrors))
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Must be a valid email address"
	case "min":
		return "Must be at least " + fe.Param()
	case "max":
		return "Must be at most " + fe.Param()
	case "len":
		return "Must be exactly " + fe.Param() + " characters"
	case "gt":
		return "Must be greater than " + fe.Param()
	default:
		return "Invalid value"
	}
}

// jsonFieldName converts a Go struct field name to its snake_case JSON
// spelling, keeping acronym runs intact (CNPJ -> cnpj, ProductID -> product_id).
func jsonFieldName(name string) string {
	runes := []rune(name)
	var b strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && (unicode.IsLower(runes[i-1]) || (i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
