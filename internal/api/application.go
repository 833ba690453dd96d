package api

import (
	"errors"   // Error matching
	"net/http" // HTTP status codes
	"time"     // Object key timestamps

	"career_portal/internal/domain"  // Domain models
	"career_portal/internal/storage" // Resume storage
	"career_portal/internal/utils"   // Cache helpers

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// ResumeField is the multipart field carrying the resume file
const ResumeField = "resume"

// ApplyJobRequest is the multipart form of a job application
type ApplyJobRequest struct {
	Name     string `form:"name" binding:"required"`                                           // Candidate name
	Email    string `form:"email" binding:"required,email"`                                    // Candidate email
	JobRole  string `form:"jobRole" binding:"required"`                                        // Role applied for
	Degree   string `form:"degree" binding:"required"`                                         // Highest degree
	Skills   string `form:"skills" binding:"required"`                                         // Comma separated skills
	Gender   string `form:"gender" binding:"required"`                                         // Candidate gender
	MobileNo int64  `form:"mobileNo" binding:"required,min=6000000000,max=9999999999"`         // 10 digit mobile number
	Status   string `form:"status" binding:"omitempty,oneof=shortlisted rejected view viewed"` // Optional initial status
}

// ApplyJobHandler accepts a public job application with a resume upload
func ApplyJobHandler(apps ApplicationStore, resumes storage.ResumeStorage, cache utils.Cache, maxUploadBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxUploadBytes > 0 {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)
		}
		// The resume is checked first so its absence is reported whatever the other fields hold
		file, err := c.FormFile(ResumeField)
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				badRequest(c, "Resume file is too large", nil)
				return
			}
			badRequest(c, "Resume PDF is required", nil)
			return
		}
		var req ApplyJobRequest
		if err := c.ShouldBind(&req); err != nil {
			badRequest(c, "Validation failed", err)
			return
		}

		ctx := c.Request.Context()
		src, err := file.Open()
		if err != nil {
			internalError(c, "Failed to open resume upload", err, logrus.Fields{"filename": file.Filename})
			return
		}
		defer src.Close()
		path, err := resumes.Put(ctx, storage.ResumeKey(file.Filename, time.Now()), src, file.Size, file.Header.Get("Content-Type"))
		if err != nil {
			internalError(c, "Failed to store resume", err, logrus.Fields{"filename": file.Filename})
			return
		}

		app := domain.JobApplication{
			Name:     req.Name,
			Email:    req.Email,
			JobRole:  req.JobRole,
			Degree:   req.Degree,
			Gender:   req.Gender,
			Skills:   domain.ParseSkills(req.Skills),
			MobileNo: req.MobileNo,
			Status:   req.Status,
			Resume:   path,
		}
		if app.Status == "" {
			app.Status = domain.StatusView // Default status
		}
		if err := apps.Create(ctx, &app); err != nil {
			if derr := resumes.Delete(ctx, path); derr != nil {
				logrus.WithFields(logrus.Fields{"resume": path, "error": derr.Error()}).Warn("Failed to remove orphaned resume")
			}
			internalError(c, "Failed to submit application", err, logrus.Fields{"email": req.Email})
			return
		}
		invalidate(c, cache)
		logrus.WithFields(logrus.Fields{
			"application_id": app.ID,
			"job_role":       app.JobRole,
			"timestamp":      time.Now().Format(time.RFC3339),
		}).Info("Application submitted")
		c.JSON(http.StatusCreated, gin.H{"statusCode": http.StatusCreated, "message": "Application submitted", "data": app})
	}
}
