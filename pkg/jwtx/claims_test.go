package jwtx_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/arith/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestNewAccessClaims(t *testing.T) {
	now := time.Date(2025, 1, 2, 3, 4, 5, 600, time.UTC)
	c := jwtx.NewAccessClaims("alice", "arith", 30*time.Minute, now)

	require.Equal(t, "alice", c.Subject)
	require.Equal(t, "arith", c.Issuer)
	require.NotEmpty(t, c.ID)
	require.Equal(t, now.Truncate(time.Second), c.IssuedAt.Time)
	require.Equal(t, now.Truncate(time.Second), c.NotBefore.Time)
	require.NotEqual(t, c.ID, jwtx.NewAccessClaims("alice", "arith", time.Minute, now).ID)
}

func TestNewAccessClaimsNeverShortensTTL(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{"whole second", time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC), time.Date(2025, 1, 2, 3, 34, 5, 0, time.UTC)},
		{"just past a second", time.Date(2025, 1, 2, 3, 4, 5, 600, time.UTC), time.Date(2025, 1, 2, 3, 34, 6, 0, time.UTC)},
		{"just before a second", time.Date(2025, 1, 2, 3, 4, 5, 999_999_999, time.UTC), time.Date(2025, 1, 2, 3, 34, 6, 0, time.UTC)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := jwtx.NewAccessClaims("alice", "arith", 30*time.Minute, tc.now)
			require.Equal(t, tc.want, c.ExpiresAt.Time)
			require.False(t, c.ExpiresAt.Time.Before(tc.now.Add(30*time.Minute)))
		})
	}
}
