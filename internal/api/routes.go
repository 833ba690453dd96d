package api

import (
	"net/http" // HTTP status codes

	"career_portal/internal/domain"     // Roles
	"career_portal/internal/middleware" // Auth middleware
	"career_portal/internal/storage"    // Resume storage
	"career_portal/internal/utils"      // Cache helpers

	"github.com/gin-gonic/gin" // Gin web framework
)

// Deps groups the collaborators the routes are built from
type Deps struct {
	Users          UserStore             // Admin accounts
	Applications   ApplicationStore      // Job applications
	Resumes        storage.ResumeStorage // Uploaded resumes
	Cache          utils.Cache           // Optional admin response cache
	JWTSecret      string                // Session token signing key
	MaxUploadBytes int64                 // Resume size limit, 0 disables it
}

// RegisterRoutes mounts every endpoint on r
func RegisterRoutes(r *gin.Engine, d Deps) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public routes
	r.POST("/applyJob", ApplyJobHandler(d.Applications, d.Resumes, d.Cache, d.MaxUploadBytes))
	r.POST("/adminLogin", AdminLoginHandler(d.Users, d.JWTSecret))

	// Admin routes (protected by session token and Admin role)
	admin := r.Group("/")
	admin.Use(middleware.JWTAuthMiddleware(d.JWTSecret, d.Users), middleware.RequireRole(domain.RoleAdmin))
	admin.GET("/allCandidates", ListCandidatesHandler(d.Applications, d.Cache))
	admin.GET("/dashboardData", DashboardHandler(d.Applications, d.Cache))
	admin.GET("/getCandidateById/:id", GetCandidateHandler(d.Applications, d.Cache))
	admin.PATCH("/updateStatus/:id", UpdateStatusHandler(d.Applications, d.Cache))
	admin.DELETE("/deleteCandidate/:id", DeleteCandidateHandler(d.Applications, d.Resumes, d.Cache))
}
