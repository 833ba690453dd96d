package api

import (
	"context"  // Context for store calls
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"career_portal/internal/domain" // Domain models
	"career_portal/internal/store"  // Query and result types
	"career_portal/internal/utils"  // Cache helpers

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// ApplicationStore is the persistence the application handlers need
type ApplicationStore interface {
	Create(ctx context.Context, app *domain.JobApplication) error
	FindByID(ctx context.Context, id uint) (domain.JobApplication, error)
	List(ctx context.Context, q store.CandidateQuery) (store.CandidatePage, error)
	UpdateStatus(ctx context.Context, app *domain.JobApplication) error
	Delete(ctx context.Context, id uint) (domain.JobApplication, error)
	CountByStatus(ctx context.Context) (store.StatusCounts, error)
}

// UserStore is the persistence the auth handlers need
type UserStore interface {
	FindByID(ctx context.Context, id uint) (domain.User, error)
	FindAdminByEmail(ctx context.Context, email string) (domain.User, error)
}

// internalError logs err and answers with a generic 500
func internalError(c *gin.Context, msg string, err error, fields logrus.Fields) {
	if fields == nil {
		fields = logrus.Fields{}
	}
	fields["path"] = c.FullPath()
	fields["error"] = err.Error()
	logrus.WithFields(fields).Error(msg)
	c.JSON(http.StatusInternalServerError, gin.H{"statusCode": http.StatusInternalServerError, "message": "Internal Server Error"})
}

// badRequest answers with a 400 and a human readable message
func badRequest(c *gin.Context, msg string, err error) {
	body := gin.H{"statusCode": http.StatusBadRequest, "message": msg}
	if err != nil {
		body["error"] = err.Error()
	}
	c.JSON(http.StatusBadRequest, body)
}

// notFound answers with a 404
func notFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"statusCode": http.StatusNotFound, "message": msg})
}

// idParam parses the :id path parameter; ok is false for anything but a positive integer
func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// invalidate drops cached admin views after a mutation; failures only get logged
func invalidate(c *gin.Context, cache utils.Cache) {
	if err := utils.InvalidateAdminViews(c.Request.Context(), cache); err != nil {
		logrus.WithField("error", err.Error()).Warn("Failed to invalidate admin cache")
	}
}
