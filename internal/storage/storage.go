package storage

import (
	"context"       // Request scoped cancellation
	"fmt"           // Key formatting
	"io"            // Upload streams
	"path/filepath" // Filename extraction
	"regexp"        // Filename sanitising
	"strings"       // String helpers
	"time"          // Key timestamps
)

// ResumeStorage persists uploaded resumes out of band.
type ResumeStorage interface {
	EnsureBucket(ctx context.Context) error
	// Put stores the object and returns the path recorded on the application.
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, path string) error
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// ResumeKey builds a unique object key for an uploaded file name.
func ResumeKey(filename string, now time.Time) string {
	name := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	name = unsafeChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	if name == "" {
		name = "resume"
	}
	return fmt.Sprintf("resumes/%d-%s", now.UnixNano(), name)
}
