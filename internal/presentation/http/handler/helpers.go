package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/goapub/pos-api/internal/presentation/http/dto/response"
	"github.com/goapub/pos-api/pkg/apperror"
	"github.com/google/uuid"
)

// parseUUIDParam reads a UUID path parameter, answering 400 when it is malformed
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.BadRequest(c, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// bindJSON binds the request body. Struct tag violations answer 422 with one
// entry per field; malformed JSON answers 400.
func bindJSON(c *gin.Context, req interface{}) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fieldErrors := make([]apperror.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field:   fe.Field(),
				Message: "failed on the '" + fe.Tag() + "' rule",
			})
		}
		response.ValidationError(c, fieldErrors)
		return false
	}

	response.BadRequest(c, "Invalid request body")
	return false
}
