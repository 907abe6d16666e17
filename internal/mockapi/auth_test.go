package mockapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthorizer(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   bool
	}{
		{"classic PAT", "Bearer ghp_abc123", true},
		{"fine-grained PAT", "Bearer github_pat_11AABBCC", true},
		{"prefix only", "Bearer ghp_", true},
		{"empty", "", false},
		{"missing scheme", "ghp_abc123", false},
		{"wrong scheme", "token ghp_abc123", false},
		{"lowercase scheme", "bearer ghp_abc123", false},
		{"unknown token type", "Bearer gho_abc123", false},
		{"scheme only", "Bearer ", false},
		{"garbage", "Basic dXNlcjpwYXNz", false},
	}

	auth := Authorizer{Enabled: true}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, auth.Authorize(tt.header))
		})
	}
}

func TestAuthorizerDisabled(t *testing.T) {
	auth := Authorizer{Enabled: false}
	for _, header := range []string{"", "garbage", "Bearer ghp_abc"} {
		assert.True(t, auth.Authorize(header), "header %q", header)
	}
}
