package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// internalError reports an unclassified failure as a 500. The raw error
// message is echoed in the body, per the API contract.
func internalError(c *gin.Context, err error) {
	log.WithError(err).Error("Unhandled error")
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "Internal Server Error",
		"details": err.Error(),
	})
}
