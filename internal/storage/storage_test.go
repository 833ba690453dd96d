package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResumeKey(t *testing.T) {
	now := time.Unix(0, 12345)
	tests := []struct {
		filename string
		want     string
	}{
		{"cv.pdf", "resumes/12345-cv.pdf"},
		{"My Resume (final).pdf", "resumes/12345-My_Resume_final_.pdf"},
		{"../../etc/passwd", "resumes/12345-passwd"},
		{`C:\Users\ann\cv.pdf`, "resumes/12345-cv.pdf"},
		{"", "resumes/12345-resume"},
		{"..", "resumes/12345-resume"},
	}
	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.want, ResumeKey(tt.filename, now))
		})
	}
}

func TestLocalStorage_PutAndDelete(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStorage(dir)
	require.NoError(t, err)
	require.NoError(t, s.EnsureBucket(context.Background()))

	path, err := s.Put(context.Background(), "resumes/1-cv.pdf", strings.NewReader("%PDF-1.4"), 8, "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "resumes", "1-cv.pdf"), path)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(b))

	require.NoError(t, s.Delete(context.Background(), path))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Deleting twice is fine.
	require.NoError(t, s.Delete(context.Background(), path))
}

func TestLocalStorage_RejectsEscapes(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, err = s.Put(context.Background(), "../outside.pdf", strings.NewReader("x"), 1, "")
	require.Error(t, err)

	require.Error(t, s.Delete(context.Background(), "/etc/passwd"))
}

func TestNewLocalStorage_RequiresDir(t *testing.T) {
	_, err := NewLocalStorage(" ")
	require.Error(t, err)
}

func TestNewMinioStorage_Validation(t *testing.T) {
	_, err := NewMinioStorage(MinioConfig{})
	require.Error(t, err)

	_, err = NewMinioStorage(MinioConfig{Endpoint: "localhost:9000", Bucket: "resumes"})
	require.Error(t, err)

	_, err = NewMinioStorage(MinioConfig{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "b"})
	require.Error(t, err)

	s, err := NewMinioStorage(MinioConfig{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "b", Bucket: "resumes"})
	require.NoError(t, err)
	assert.NotNil(t, s)
}
