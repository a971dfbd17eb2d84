package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/aussiebroadwan/arith/internal/arith/domain"
	"github.com/aussiebroadwan/arith/internal/arith/metrics"
	"github.com/aussiebroadwan/arith/internal/arith/store"
	"github.com/aussiebroadwan/arith/pkg/cryptox"
	"github.com/aussiebroadwan/arith/pkg/idx"
	"github.com/aussiebroadwan/arith/pkg/slogx"
	"github.com/go-playground/validator/v10"
)

type UserService struct {
	Store store.Store
	Retry RetryPolicy
	Now   func() time.Time
}

// RegisterInput is a registration request.
type RegisterInput struct {
	Username string  `validate:"required,min=3,max=50,username"`
	Password string  `validate:"required,min=8,max=128"`
	Email    *string `validate:"omitempty,email,max=254"`
}

var (
	validate      *validator.Validate
	usernameChars = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)
)

func init() {
	validate = validator.New()
	if err := validate.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernameChars.MatchString(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("register username validator: %v", err))
	}
}

// Validate reports the first field that fails its constraints, wrapped with
// ErrInvalidInput.
func (in RegisterInput) Validate() error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("%w: %s fails %q", ErrInvalidInput, strings.ToLower(fe.Field()), fe.Tag())
	}
	return fmt.Errorf("%w: %w", ErrInvalidInput, err)
}

// Register creates a user with an argon2id password hash. Concurrent
// registrations of one username resolve to a single success; the rest get
// ErrConflict.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (domain.User, error) {
	log := slogx.FromContext(ctx)

	if in.Email != nil && *in.Email == "" {
		in.Email = nil
	}
	if err := in.Validate(); err != nil {
		metrics.RecordRegistration(metrics.OutcomeRejected)
		return domain.User{}, err
	}

	hash, err := cryptox.HashPassword(in.Password)
	if err != nil {
		metrics.RecordRegistration(metrics.OutcomeError)
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.User{}, err
	}

	createdAt := s.now().UTC()
	u := domain.User{
		ID:           idx.NewAt(createdAt).String(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		CreatedAt:    createdAt,
	}

	_, err = withRetry(ctx, s.Retry, "create user", func() (struct{}, error) {
		return struct{}{}, s.Store.Users().CreateUser(ctx, u)
	})
	switch {
	case errors.Is(err, store.ErrAlreadyExists):
		metrics.RecordRegistration(metrics.OutcomeRejected)
		log.Info("registration rejected, username or email taken", slog.String("username", in.Username))
		return domain.User{}, ErrConflict
	case err != nil:
		metrics.RecordRegistration(metrics.OutcomeError)
		log.Error("failed to create user", slog.String("username", in.Username), slog.Any("error", err))
		return domain.User{}, err
	}

	metrics.RecordRegistration(metrics.OutcomeOK)
	log.Info("user registered", slog.String("user_id", u.ID), slog.String("username", u.Username))
	return u, nil
}

// Authenticate checks username and password. Unknown users and wrong
// passwords both return ErrInvalidCredentials.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	u, err := withRetry(ctx, s.Retry, "get user", func() (domain.User, error) {
		return s.Store.Users().GetUserByUsername(ctx, username)
	})
	if errors.Is(err, store.ErrNotFound) {
		cryptox.VerifyDummy(password)
		metrics.RecordLogin(metrics.OutcomeRejected)
		log.Info("login failed", slog.String("username", username), slog.String("reason", "unknown user"))
		return domain.User{}, ErrInvalidCredentials
	}
	if err != nil {
		metrics.RecordLogin(metrics.OutcomeError)
		log.Error("failed to load user", slog.String("username", username), slog.Any("error", err))
		return domain.User{}, err
	}

	if err := cryptox.VerifyPassword(password, u.PasswordHash); err != nil {
		metrics.RecordLogin(metrics.OutcomeRejected)
		if errors.Is(err, cryptox.ErrInvalidHash) {
			log.Error("stored password hash is unreadable", slog.String("user_id", u.ID))
		} else {
			log.Info("login failed", slog.String("username", username), slog.String("reason", "bad password"))
		}
		return domain.User{}, ErrInvalidCredentials
	}

	metrics.RecordLogin(metrics.OutcomeOK)
	log.Debug("login succeeded", slog.String("user_id", u.ID))
	return u, nil
}

func (s *UserService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
