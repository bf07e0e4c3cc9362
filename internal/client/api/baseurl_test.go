package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", DefaultBaseURL},
		{"   ", DefaultBaseURL},
		{"http://localhost:8000", "http://localhost:8000/api/v1"},
		{"http://localhost:8000/", "http://localhost:8000/api/v1"},
		{"https://sr.example.org/api/v1", "https://sr.example.org/api/v1"},
		{"https://sr.example.org/api/v1/", "https://sr.example.org/api/v1"},
		{"https://sr.example.org/backend//", "https://sr.example.org/backend/api/v1"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := NormalizeBaseURL(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, NormalizeBaseURL(got), "must be idempotent")
		})
	}
}

func TestNew_NormalizesOnce(t *testing.T) {
	c := New("http://backend:8000/", nil)
	assert.Equal(t, "http://backend:8000/api/v1", c.BaseURL())
	assert.Equal(t, "http://backend:8000/api/v1/socios", c.url(Request{Path: "/socios"}))
	assert.Equal(t, "http://backend:8000/api/v1/socios", c.url(Request{Path: "socios"}))
}
