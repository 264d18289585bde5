// Package api maps HTTP requests onto the repository layer and repository
// results and errors back onto status codes and JSON bodies.
package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saveurlabs/cookbook/internal/domain"
)

// respondError renders a repository failure. Missing rows and dangling
// references are 404; every validation-class error, and anything
// unclassified, is 400 with the raw message surfaced.
func respondError(c *gin.Context, err error) {
	status := http.StatusBadRequest
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrDanglingReference) {
		status = http.StatusNotFound
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
