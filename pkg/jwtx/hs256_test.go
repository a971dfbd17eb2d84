package jwtx_test

import (
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/arith/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func newPair(t *testing.T, opts jwtx.VerifyOptions) (*jwtx.HS256Signer, *jwtx.HS256Verifier) {
	t.Helper()
	s, err := jwtx.NewSignerHS256(testSecret)
	require.NoError(t, err)
	v, err := jwtx.NewVerifierHS256(testSecret, opts)
	require.NoError(t, err)
	return s, v
}

func TestHS256SignAndVerify(t *testing.T) {
	s, v := newPair(t, jwtx.VerifyOptions{Issuer: "arith"})
	require.Equal(t, "HS256", s.Alg())

	token, err := s.Sign(jwtx.NewAccessClaims("alice", "arith", time.Minute, time.Now()))
	require.NoError(t, err)
	require.Len(t, strings.Split(token, "."), 3)

	claims, err := v.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "alice", claims.Subject)
}

func TestHS256RejectsWeakSecret(t *testing.T) {
	_, err := jwtx.NewSignerHS256([]byte("short"))
	require.ErrorIs(t, err, jwtx.ErrWeakSecret)

	_, err = jwtx.NewVerifierHS256([]byte("short"), jwtx.VerifyOptions{})
	require.ErrorIs(t, err, jwtx.ErrWeakSecret)
}

func TestHS256VerifyFailures(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s, v := newPair(t, jwtx.VerifyOptions{Issuer: "arith", Now: func() time.Time { return now }})

	sign := func(c jwtx.Claims) string {
		tok, err := s.Sign(c)
		require.NoError(t, err)
		return tok
	}

	t.Run("expired", func(t *testing.T) {
		tok := sign(jwtx.NewAccessClaims("alice", "arith", time.Minute, now.Add(-2*time.Minute)))
		_, err := v.Verify(tok)
		require.ErrorIs(t, err, jwtx.ErrExpired)
	})

	t.Run("one second past expiry", func(t *testing.T) {
		tok := sign(jwtx.NewAccessClaims("alice", "arith", time.Minute, now.Add(-time.Minute-time.Second)))
		_, err := v.Verify(tok)
		require.ErrorIs(t, err, jwtx.ErrExpired)
	})

	t.Run("not yet valid", func(t *testing.T) {
		tok := sign(jwtx.NewAccessClaims("alice", "arith", time.Hour, now.Add(time.Minute)))
		_, err := v.Verify(tok)
		require.ErrorIs(t, err, jwtx.ErrNotYetValid)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		tok := sign(jwtx.NewAccessClaims("alice", "someone-else", time.Minute, now))
		_, err := v.Verify(tok)
		require.ErrorIs(t, err, jwtx.ErrIssuer)
	})

	t.Run("missing subject", func(t *testing.T) {
		tok := sign(jwtx.NewAccessClaims("", "arith", time.Minute, now))
		_, err := v.Verify(tok)
		require.ErrorIs(t, err, jwtx.ErrInvalidClaim)
	})

	t.Run("missing exp", func(t *testing.T) {
		c := jwtx.NewAccessClaims("alice", "arith", time.Minute, now)
		c.ExpiresAt = nil
		_, err := v.Verify(sign(c))
		require.ErrorIs(t, err, jwtx.ErrInvalidClaim)
	})

	t.Run("tampered signature", func(t *testing.T) {
		tok := sign(jwtx.NewAccessClaims("alice", "arith", time.Minute, now))
		parts := strings.Split(tok, ".")
		sig := []byte(parts[2])
		if sig[0] == 'A' {
			sig[0] = 'B'
		} else {
			sig[0] = 'A'
		}
		_, err := v.Verify(parts[0] + "." + parts[1] + "." + string(sig))
		require.ErrorIs(t, err, jwtx.ErrInvalidSig)
	})

	t.Run("different secret", func(t *testing.T) {
		other, err := jwtx.NewSignerHS256([]byte("fedcba9876543210fedcba9876543210"))
		require.NoError(t, err)
		tok, err := other.Sign(jwtx.NewAccessClaims("alice", "arith", time.Minute, now))
		require.NoError(t, err)

		_, err = v.Verify(tok)
		require.ErrorIs(t, err, jwtx.ErrInvalidSig)
	})

	t.Run("alg none", func(t *testing.T) {
		tok, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwtx.NewAccessClaims("alice", "arith", time.Minute, now)).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = v.Verify(tok)
		require.Error(t, err)
		require.NotErrorIs(t, err, jwtx.ErrExpired)
	})

	t.Run("garbage", func(t *testing.T) {
		for _, raw := range []string{"", "not-a-jwt", "a.b", "a.b.c"} {
			_, err := v.Verify(raw)
			require.ErrorIs(t, err, jwtx.ErrMalformed, raw)
		}
	})
}
