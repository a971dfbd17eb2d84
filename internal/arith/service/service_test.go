package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/arith/internal/arith/store"
	"github.com/aussiebroadwan/arith/internal/arith/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

// fastRetry keeps retry tests quick.
var fastRetry = RetryPolicy{MaxRetries: 3, InitialInterval: time.Millisecond, MaxElapsed: time.Second}

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	s, err := sqlite.NewStore(filepath.Join(t.TempDir(), "arith.db"), store.PoolOptions{MaxOpenConns: 4})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

type fixture struct {
	users   *UserService
	history *HistoryService
	calc    *CalculatorService
	tokens  *TokenService
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	st := newTestStore(t)
	history := &HistoryService{Store: st, Retry: fastRetry}
	tokens, err := NewTokenService(testSecret, "arith-test", 30*time.Minute, nil)
	require.NoError(t, err)

	return fixture{
		users:   &UserService{Store: st, Retry: fastRetry},
		history: history,
		calc:    &CalculatorService{History: history},
		tokens:  tokens,
	}
}

func (f fixture) register(t *testing.T, username string) {
	t.Helper()
	_, err := f.users.Register(context.Background(), RegisterInput{Username: username, Password: "correct-horse"})
	require.NoError(t, err)
}
