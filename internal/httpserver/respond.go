package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"partymenu/internal/domain"
	usersvc "partymenu/internal/service/user"
)

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// respondServiceError maps domain errors onto HTTP statuses. Unknown
// errors become a 500 without leaking their text to the client.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		respondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrItemNotFound):
		respondError(c, http.StatusNotFound, "menu item not found")
	case errors.Is(err, domain.ErrLineNotFound):
		respondError(c, http.StatusNotFound, "cart item not found")
	case errors.Is(err, domain.ErrNotFound):
		respondError(c, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrItemUnavailable):
		respondError(c, http.StatusConflict, "menu item is not available")
	case errors.Is(err, domain.ErrOwnershipMismatch):
		respondError(c, http.StatusForbidden, "cart item belongs to another cart")
	case errors.Is(err, domain.ErrAlreadyExists):
		respondError(c, http.StatusConflict, "already exists")
	case errors.Is(err, usersvc.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, usersvc.ErrInvalidToken):
		respondError(c, http.StatusUnauthorized, "invalid or expired token")
	case errors.Is(err, domain.ErrStorageUnavailable):
		respondError(c, http.StatusServiceUnavailable, "storage unavailable")
	default:
		respondError(c, http.StatusInternalServerError, "internal error")
	}
}
