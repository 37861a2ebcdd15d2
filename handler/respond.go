package handler

import (
	"errors"
	"net/http"

	"github.com/Master1941/foodgram-project-react/entity"
	"github.com/Master1941/foodgram-project-react/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError resolves a service/repository error at the request
// boundary. Validation failures carry per-field detail, conflicts and
// not-found map to their client statuses, anything unexpected is logged
// and hidden behind a generic 500.
func respondError(c *gin.Context, err error) {
	var verr *entity.ValidationError
	switch {
	case errors.As(err, &verr):
		field := verr.Field
		if field == "" {
			field = "errors"
		}
		c.JSON(http.StatusBadRequest, gin.H{field: verr.Message})
	case errors.Is(err, entity.ErrConflict):
		c.JSON(http.StatusBadRequest, gin.H{"errors": "already exists"})
	case errors.Is(err, entity.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"errors": "not found"})
	case errors.Is(err, entity.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"errors": "you do not have permission to perform this action"})
	case errors.Is(err, entity.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"errors": entity.ErrInvalidCredentials.Error()})
	default:
		logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"errors": "internal server error"})
	}
}
