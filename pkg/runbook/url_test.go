package runbook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertToRawURL(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "blob URL",
			input: "https://github.com/acme/runbooks/blob/main/docs/payment-api.md",
			want:  "https://raw.githubusercontent.com/acme/runbooks/refs/heads/main/docs/payment-api.md",
		},
		{
			name:  "tree URL",
			input: "https://github.com/acme/runbooks/tree/main/docs/payment-api.md",
			want:  "https://raw.githubusercontent.com/acme/runbooks/refs/heads/main/docs/payment-api.md",
		},
		{
			name:  "already raw",
			input: "https://raw.githubusercontent.com/acme/runbooks/refs/heads/main/docs/payment-api.md",
			want:  "https://raw.githubusercontent.com/acme/runbooks/refs/heads/main/docs/payment-api.md",
		},
		{
			name:  "non-github URL unchanged",
			input: "https://docs.internal/runbooks/payment-api.md",
			want:  "https://docs.internal/runbooks/payment-api.md",
		},
		{
			name:  "github URL without blob segment unchanged",
			input: "https://github.com/acme/runbooks",
			want:  "https://github.com/acme/runbooks",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConvertToRawURL(tt.input))
		})
	}
}

func TestParseRepoURL(t *testing.T) {
	parts, err := ParseRepoURL("https://github.com/acme/runbooks/tree/main/docs")
	require.NoError(t, err)
	assert.Equal(t, "acme", parts.Owner)
	assert.Equal(t, "runbooks", parts.Repo)
	assert.Equal(t, "main", parts.Ref)
	assert.Equal(t, "docs", parts.Path)
}

func TestParseRepoURL_Rejects(t *testing.T) {
	_, err := ParseRepoURL("https://gitlab.com/acme/runbooks/tree/main/docs")
	require.Error(t, err)

	_, err = ParseRepoURL("https://github.com/acme/runbooks")
	require.Error(t, err)
}
