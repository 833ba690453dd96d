package api

import (
	"errors"   // Error matching
	"net/http" // HTTP status codes
	"strconv"  // String conversion
	"strings"  // String manipulation
	"time"     // Log timestamps

	"career_portal/internal/domain"  // Domain models
	"career_portal/internal/storage" // Resume storage
	"career_portal/internal/store"   // Query types and store errors
	"career_portal/internal/utils"   // Cache helpers

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// UpdateStatusRequest carries an admin review decision
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"` // shortlisted or rejected
}

// candidateQueryFromRequest reads list parameters from the query string
func candidateQueryFromRequest(c *gin.Context) store.CandidateQuery {
	page, _ := strconv.Atoi(c.Query("page"))   // Invalid values fall back to defaults
	limit, _ := strconv.Atoi(c.Query("limit")) // Invalid values fall back to defaults
	return store.CandidateQuery{
		Page:   page,
		Limit:  limit,
		SortBy: c.Query("sortBy"),
		Order:  strings.ToLower(c.Query("order")),
		Skill:  strings.TrimSpace(c.Query("skill")),
		Status: c.Query("status"),
		Now:    time.Now(),
	}.Normalize()
}

// candidatesCacheKey identifies one list response
func candidatesCacheKey(q store.CandidateQuery) string {
	return utils.CandidatesCachePrefix + strings.Join([]string{
		"page=" + strconv.Itoa(q.Page),
		"limit=" + strconv.Itoa(q.Limit),
		"sort=" + q.SortBy,
		"order=" + q.Order,
		"skill=" + q.Skill,
		"status=" + q.Status,
	}, ":")
}

// ListCandidatesHandler returns a filtered, sorted page of applications
func ListCandidatesHandler(apps ApplicationStore, cache utils.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		q := candidateQueryFromRequest(c)
		cacheKey := candidatesCacheKey(q)

		if cache != nil {
			var cached store.CandidatePage
			found, err := cache.Get(ctx, cacheKey, &cached)
			if err == nil && found {
				c.JSON(http.StatusOK, listResponse(cached, true))
				return
			}
		}

		page, err := apps.List(ctx, q)
		if err != nil {
			internalError(c, "Failed to fetch candidates", err, nil)
			return
		}
		if cache != nil {
			_ = cache.Set(ctx, cacheKey, page, utils.AdminCacheTTL)
		}
		c.JSON(http.StatusOK, listResponse(page, false))
	}
}

func listResponse(page store.CandidatePage, cached bool) gin.H {
	return gin.H{
		"statusCode": http.StatusOK,
		"message":    "Candidates fetched",
		"total":      page.Total,
		"page":       page.Page,
		"limit":      page.Limit,
		"totalPages": page.TotalPages,
		"data":       page.Data,
		"cached":     cached,
	}
}

// DashboardHandler returns application counts per status
func DashboardHandler(apps ApplicationStore, cache utils.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		if cache != nil {
			var cached store.StatusCounts
			found, err := cache.Get(ctx, utils.DashboardCacheKey, &cached)
			if err == nil && found {
				c.JSON(http.StatusOK, gin.H{"statusCode": http.StatusOK, "message": "Dashboard data", "data": cached, "cached": true})
				return
			}
		}
		counts, err := apps.CountByStatus(ctx)
		if err != nil {
			internalError(c, "Failed to count applications", err, nil)
			return
		}
		if cache != nil {
			_ = cache.Set(ctx, utils.DashboardCacheKey, counts, utils.AdminCacheTTL)
		}
		c.JSON(http.StatusOK, gin.H{"statusCode": http.StatusOK, "message": "Dashboard data", "data": counts, "cached": false})
	}
}

// GetCandidateHandler returns one application, marking it viewed unless already decided
func GetCandidateHandler(apps ApplicationStore, cache utils.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			notFound(c, "Candidate not found")
			return
		}
		ctx := c.Request.Context()
		app, err := apps.FindByID(ctx, id)
		if errors.Is(err, store.ErrNotFound) {
			notFound(c, "Candidate not found")
			return
		}
		if err != nil {
			internalError(c, "Failed to fetch candidate", err, logrus.Fields{"application_id": id})
			return
		}
		// Reading an undecided application records that an admin has seen it
		if app.MarkViewed() {
			if err := apps.UpdateStatus(ctx, &app); err != nil {
				internalError(c, "Failed to mark candidate viewed", err, logrus.Fields{"application_id": id})
				return
			}
			invalidate(c, cache)
		}
		c.JSON(http.StatusOK, gin.H{"statusCode": http.StatusOK, "message": "Candidate fetched", "data": app})
	}
}

// UpdateStatusHandler records an admin decision on an application
func UpdateStatusHandler(apps ApplicationStore, cache utils.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			notFound(c, "Candidate not found")
			return
		}
		var req UpdateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Invalid request", err)
			return
		}
		if !domain.IsTerminal(req.Status) {
			badRequest(c, domain.ErrInvalidStatus.Error(), nil)
			return
		}
		ctx := c.Request.Context()
		app, err := apps.FindByID(ctx, id)
		if errors.Is(err, store.ErrNotFound) {
			notFound(c, "Candidate not found")
			return
		}
		if err != nil {
			internalError(c, "Failed to fetch candidate", err, logrus.Fields{"application_id": id})
			return
		}
		previous := app.Status
		if err := app.ApplyReviewDecision(req.Status); err != nil {
			if errors.Is(err, domain.ErrTerminalStatus) {
				badRequest(c, "Candidate is already "+previous, nil)
				return
			}
			badRequest(c, err.Error(), nil)
			return
		}
		if err := apps.UpdateStatus(ctx, &app); err != nil {
			internalError(c, "Failed to update status", err, logrus.Fields{"application_id": id, "status": req.Status})
			return
		}
		invalidate(c, cache)
		logrus.WithFields(logrus.Fields{
			"application_id": id,
			"from":           previous,
			"to":             app.Status,
		}).Info("Application status updated")
		c.JSON(http.StatusOK, gin.H{"statusCode": http.StatusOK, "message": "Status updated", "data": app})
	}
}

// DeleteCandidateHandler removes an application and its stored resume
func DeleteCandidateHandler(apps ApplicationStore, resumes storage.ResumeStorage, cache utils.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			notFound(c, "Candidate not found")
			return
		}
		ctx := c.Request.Context()
		app, err := apps.Delete(ctx, id)
		if errors.Is(err, store.ErrNotFound) {
			notFound(c, "Candidate not found")
			return
		}
		if err != nil {
			internalError(c, "Failed to delete candidate", err, logrus.Fields{"application_id": id})
			return
		}
		if resumes != nil && app.Resume != "" {
			if err := resumes.Delete(ctx, app.Resume); err != nil {
				logrus.WithFields(logrus.Fields{"resume": app.Resume, "error": err.Error()}).Warn("Failed to remove resume")
			}
		}
		invalidate(c, cache)
		logrus.WithField("application_id", id).Info("Candidate deleted")
		c.JSON(http.StatusOK, gin.H{"statusCode": http.StatusOK, "message": "Candidate deleted"})
	}
}
