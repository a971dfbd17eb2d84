package sqlite

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/arith/internal/arith/calc"
	"github.com/aussiebroadwan/arith/internal/arith/domain"
	"github.com/aussiebroadwan/arith/internal/arith/store"
	"github.com/aussiebroadwan/arith/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(filepath.Join(t.TempDir(), "arith.db"), store.PoolOptions{MaxOpenConns: 4})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func newUser(username string) domain.User {
	return domain.User{
		ID:           idx.New().String(),
		Username:     username,
		PasswordHash: "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		CreatedAt:    time.Now().UTC().Truncate(time.Second),
	}
}

func TestApplyMigrationsIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.ApplyMigrations())
	require.NoError(t, s.Ping(context.Background()))
}

func TestUsers(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	email := "alice@example.com"
	alice := newUser("alice")
	alice.Email = &email
	require.NoError(t, s.Users().CreateUser(ctx, alice))

	t.Run("get by username", func(t *testing.T) {
		got, err := s.Users().GetUserByUsername(ctx, "alice")
		require.NoError(t, err)
		require.Equal(t, alice.ID, got.ID)
		require.Equal(t, alice.PasswordHash, got.PasswordHash)
		require.NotNil(t, got.Email)
		require.Equal(t, email, *got.Email)
		require.True(t, alice.CreatedAt.Equal(got.CreatedAt))
	})

	t.Run("unknown username", func(t *testing.T) {
		_, err := s.Users().GetUserByUsername(ctx, "nobody")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("duplicate username", func(t *testing.T) {
		err := s.Users().CreateUser(ctx, newUser("alice"))
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("duplicate email", func(t *testing.T) {
		bob := newUser("bob")
		bob.Email = &email
		require.ErrorIs(t, s.Users().CreateUser(ctx, bob), store.ErrAlreadyExists)
	})

	t.Run("many users without email", func(t *testing.T) {
		require.NoError(t, s.Users().CreateUser(ctx, newUser("carol")))
		require.NoError(t, s.Users().CreateUser(ctx, newUser("dave")))
	})
}

func TestConcurrentCreateUserSingleWinner(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	const n = 8
	var (
		wg   sync.WaitGroup
		errs = make(chan error, n)
	)
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- s.Users().CreateUser(ctx, newUser("racer"))
		}()
	}
	wg.Wait()
	close(errs)

	var ok, conflicts int
	for err := range errs {
		switch {
		case err == nil:
			ok++
		default:
			require.ErrorIs(t, err, store.ErrAlreadyExists)
			conflicts++
		}
	}
	require.Equal(t, 1, ok)
	require.Equal(t, n-1, conflicts)
}

func TestOperations(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.Users().CreateUser(ctx, newUser("alice")))
	require.NoError(t, s.Users().CreateUser(ctx, newUser("bob")))

	t.Run("empty history is an empty slice", func(t *testing.T) {
		got, err := s.Operations().ListOperationsByUsername(ctx, "alice")
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Empty(t, got)
	})

	now := time.Now().UTC().Truncate(time.Millisecond)
	first, err := s.Operations().RecordOperation(ctx, domain.OperationRecord{
		Username: "alice", Kind: calc.KindAdd, Operands: []float64{1, 1}, Result: 2, Timestamp: now,
	})
	require.NoError(t, err)
	require.NotZero(t, first.ID)

	second, err := s.Operations().RecordOperation(ctx, domain.OperationRecord{
		Username: "alice", Kind: calc.KindSqrt, Operands: []float64{16}, Result: 4, Timestamp: now,
	})
	require.NoError(t, err)
	require.Greater(t, second.ID, first.ID)

	_, err = s.Operations().RecordOperation(ctx, domain.OperationRecord{
		Username: "bob", Kind: calc.KindMultiply, Operands: []float64{2, 2}, Result: 4, Timestamp: now,
	})
	require.NoError(t, err)

	t.Run("ascending and isolated", func(t *testing.T) {
		got, err := s.Operations().ListOperationsByUsername(ctx, "alice")
		require.NoError(t, err)
		require.Len(t, got, 2)

		require.Equal(t, first.ID, got[0].ID)
		require.Equal(t, calc.KindAdd, got[0].Kind)
		require.Equal(t, []float64{1, 1}, got[0].Operands)
		require.Equal(t, 2.0, got[0].Result)
		require.True(t, now.Equal(got[0].Timestamp))

		require.Equal(t, calc.KindSqrt, got[1].Kind)
		require.Equal(t, []float64{16}, got[1].Operands)
	})

	t.Run("unknown user writes nothing", func(t *testing.T) {
		_, err := s.Operations().RecordOperation(ctx, domain.OperationRecord{
			Username: "ghost", Kind: calc.KindAdd, Operands: []float64{1, 2}, Result: 3, Timestamp: now,
		})
		require.ErrorIs(t, err, store.ErrNotFound)

		got, err := s.Operations().ListOperationsByUsername(ctx, "ghost")
		require.NoError(t, err)
		require.Empty(t, got)
	})

	t.Run("operand count must match kind", func(t *testing.T) {
		_, err := s.Operations().RecordOperation(ctx, domain.OperationRecord{
			Username: "alice", Kind: calc.KindSqrt, Operands: []float64{1, 2}, Result: 1, Timestamp: now,
		})
		require.ErrorIs(t, err, calc.ErrArity)
	})
}

func TestDSN(t *testing.T) {
	require.Equal(t, "file:already?mode=ro", DSN("file:already?mode=ro"))

	dsn := DSN("/var/lib/arith/arith.db")
	require.Contains(t, dsn, "file:/var/lib/arith/arith.db?")
	require.Contains(t, dsn, "_pragma=foreign_keys(1)")
	require.Contains(t, dsn, "_pragma=busy_timeout(5000)")
}
