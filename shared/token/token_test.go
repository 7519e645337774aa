package token_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termin/shared/token"
)

func TestIssue(t *testing.T) {
	raw, digest, err := token.Issue()
	require.NoError(t, err)

	// 32 bytes of entropy encode to 43 url-safe characters.
	assert.Len(t, raw, 43)
	assert.NotContains(t, raw, "=")
	assert.True(t, strings.HasPrefix(digest, "$2a$"))
	assert.NotEqual(t, raw, digest)
}

func TestIssue_Unique(t *testing.T) {
	seen := map[string]bool{}

	for range 16 {
		raw, _, err := token.Issue()
		require.NoError(t, err)
		assert.False(t, seen[raw], "token issued twice")
		seen[raw] = true
	}
}

func TestVerify(t *testing.T) {
	raw, digest, err := token.Issue()
	require.NoError(t, err)

	tests := []struct {
		name      string
		digest    string
		presented string
		wantErr   error
	}{
		{
			name:      "matching token",
			digest:    digest,
			presented: raw,
			wantErr:   nil,
		},
		{
			name:      "wrong token",
			digest:    digest,
			presented: "not-the-token",
			wantErr:   token.ErrTokenMismatch,
		},
		{
			name:      "empty digest",
			digest:    "",
			presented: raw,
			wantErr:   token.ErrTokenMismatch,
		},
		{
			name:      "empty token",
			digest:    digest,
			presented: "",
			wantErr:   token.ErrTokenMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := token.Verify(tt.digest, tt.presented)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
