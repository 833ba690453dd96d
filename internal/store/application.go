package store

import (
	"context" // Request scoped cancellation
	"math"    // Page count rounding
	"time"    // Recency window

	"career_portal/internal/domain" // Domain models

	"gorm.io/gorm" // ORM library
)

// Candidate list defaults
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// RecencyMonths is the lookback applied when a list query is filtered.
const RecencyMonths = 3

// sortColumns maps API sort field names to columns.
var sortColumns = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"name":      "name",
	"email":     "email",
	"jobRole":   "job_role",
	"degree":    "degree",
	"status":    "status",
	"mobileNo":  "mobile_no",
}

// CandidateQuery describes one page of the admin candidate list.
type CandidateQuery struct {
	Page   int
	Limit  int
	SortBy string
	Order  string
	Skill  string
	Status string
	Now    time.Time // Reference time for the recency window
}

// Normalize fills defaults and drops values that cannot take effect.
func (q CandidateQuery) Normalize() CandidateQuery {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
	if _, ok := sortColumns[q.SortBy]; !ok {
		q.SortBy = "createdAt"
	}
	if q.Order != "asc" {
		q.Order = "desc"
	}
	if !domain.IsValidStatus(q.Status) {
		q.Status = ""
	}
	if q.Now.IsZero() {
		q.Now = time.Now()
	}
	return q
}

// Filtered reports whether a skill or status filter narrows the list.
func (q CandidateQuery) Filtered() bool {
	return q.Skill != "" || q.Status != ""
}

// Since is the lower bound on created_at for filtered queries.
func (q CandidateQuery) Since() time.Time {
	return q.Now.AddDate(0, -RecencyMonths, 0)
}

// Offset is the number of records skipped before the page.
func (q CandidateQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// OrderClause is the ORDER BY expression for the query.
func (q CandidateQuery) OrderClause() string {
	return sortColumns[q.SortBy] + " " + q.Order
}

// filter restricts rows to those matching the query. Unfiltered queries see every record.
func (q CandidateQuery) filter(db *gorm.DB) *gorm.DB {
	if !q.Filtered() {
		return db
	}
	db = db.Where("created_at >= ?", q.Since())
	if q.Skill != "" {
		db = db.Where("JSON_CONTAINS(skills, JSON_QUOTE(?))", q.Skill)
	}
	if q.Status != "" {
		db = db.Where("status = ?", q.Status)
	}
	return db
}

// CandidatePage is one page of candidates plus paging totals.
type CandidatePage struct {
	Total      int64                   `json:"total"`
	Page       int                     `json:"page"`
	Limit      int                     `json:"limit"`
	TotalPages int                     `json:"totalPages"`
	Data       []domain.JobApplication `json:"data"`
}

// TotalPages returns ceil(total/limit).
func TotalPages(total int64, limit int) int {
	if limit < 1 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(limit)))
}

// StatusCounts holds the dashboard figures.
type StatusCounts struct {
	Total       int64 `json:"total"`
	View        int64 `json:"view"`
	Viewed      int64 `json:"viewed"`
	Shortlisted int64 `json:"shortlisted"`
	Rejected    int64 `json:"rejected"`
}

// ApplicationStore handles persistence for job applications.
type ApplicationStore struct {
	db *gorm.DB
}

func NewApplicationStore(db *gorm.DB) *ApplicationStore {
	return &ApplicationStore{db: db}
}

// Create inserts a new application.
func (s *ApplicationStore) Create(ctx context.Context, app *domain.JobApplication) error {
	return s.db.WithContext(ctx).Create(app).Error
}

// FindByID returns the application with the given primary key.
func (s *ApplicationStore) FindByID(ctx context.Context, id uint) (domain.JobApplication, error) {
	var app domain.JobApplication
	if err := s.db.WithContext(ctx).First(&app, id).Error; err != nil {
		return domain.JobApplication{}, translate(err)
	}
	return app, nil
}

// List returns one page of applications matching q.
func (s *ApplicationStore) List(ctx context.Context, q CandidateQuery) (CandidatePage, error) {
	q = q.Normalize()

	var total int64
	if err := q.filter(s.db.WithContext(ctx).Model(&domain.JobApplication{})).Count(&total).Error; err != nil {
		return CandidatePage{}, err
	}

	apps := []domain.JobApplication{}
	err := q.filter(s.db.WithContext(ctx)).
		Order(q.OrderClause()).
		Offset(q.Offset()).
		Limit(q.Limit).
		Find(&apps).Error
	if err != nil {
		return CandidatePage{}, err
	}

	return CandidatePage{
		Total:      total,
		Page:       q.Page,
		Limit:      q.Limit,
		TotalPages: TotalPages(total, q.Limit),
		Data:       apps,
	}, nil
}

// UpdateStatus persists the status of an existing application.
func (s *ApplicationStore) UpdateStatus(ctx context.Context, app *domain.JobApplication) error {
	return s.db.WithContext(ctx).Model(app).Update("status", app.Status).Error
}

// Delete removes the application and returns the deleted record.
func (s *ApplicationStore) Delete(ctx context.Context, id uint) (domain.JobApplication, error) {
	app, err := s.FindByID(ctx, id)
	if err != nil {
		return domain.JobApplication{}, err
	}
	res := s.db.WithContext(ctx).Delete(&domain.JobApplication{}, id)
	if res.Error != nil {
		return domain.JobApplication{}, res.Error
	}
	if res.RowsAffected == 0 {
		return domain.JobApplication{}, ErrNotFound // Removed concurrently
	}
	return app, nil
}

// CountByStatus counts all applications and each status independently.
func (s *ApplicationStore) CountByStatus(ctx context.Context) (StatusCounts, error) {
	var counts StatusCounts
	if err := s.db.WithContext(ctx).Model(&domain.JobApplication{}).Count(&counts.Total).Error; err != nil {
		return StatusCounts{}, err
	}
	targets := map[string]*int64{
		domain.StatusView:        &counts.View,
		domain.StatusViewed:      &counts.Viewed,
		domain.StatusShortlisted: &counts.Shortlisted,
		domain.StatusRejected:    &counts.Rejected,
	}
	for _, status := range domain.Statuses {
		err := s.db.WithContext(ctx).Model(&domain.JobApplication{}).
			Where("status = ?", status).
			Count(targets[status]).Error
		if err != nil {
			return StatusCounts{}, err
		}
	}
	return counts, nil
}
