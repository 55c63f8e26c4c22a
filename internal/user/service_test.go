package user_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/saulo-duarte/careerpilot-lambda/internal/auth"
	"github.com/saulo-duarte/careerpilot-lambda/internal/user"
)

type fakeRepo struct {
	u *user.User
}

func (r *fakeRepo) Create(*user.User) error                   { return nil }
func (r *fakeRepo) FindByID(uuid.UUID) (*user.User, error)    { return r.u, nil }
func (r *fakeRepo) FindByGoogleID(string) (*user.User, error) { return nil, nil }
func (r *fakeRepo) FindByEmail(string) (*user.User, error)    { return nil, nil }
func (r *fakeRepo) Update(*user.User) error                   { return nil }

type noopEnsurer struct{}

func (noopEnsurer) EnsureForIndustry(context.Context, string) error { return nil }

func TestGetProfile(t *testing.T) {
	userID := uuid.New()

	t.Run("Found", func(t *testing.T) {
		service := user.NewService(&fakeRepo{u: &user.User{ID: userID, Name: "Ana"}}, noopEnsurer{})
		ctx := auth.ContextWithClaims(t.Context(), &auth.Claims{UserID: userID.String(), Role: "user"})

		u, err := service.GetProfile(ctx)
		if err != nil {
			t.Fatalf("GetProfile failed: %v", err)
		}
		if u.Name != "Ana" {
			t.Errorf("Expected user 'Ana', got %q", u.Name)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		service := user.NewService(&fakeRepo{}, noopEnsurer{})
		ctx := auth.ContextWithClaims(t.Context(), &auth.Claims{UserID: userID.String(), Role: "user"})

		if _, err := service.GetProfile(ctx); !errors.Is(err, user.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("MissingClaims", func(t *testing.T) {
		service := user.NewService(&fakeRepo{}, noopEnsurer{})

		if _, err := service.GetProfile(t.Context()); !errors.Is(err, user.ErrUnauthorized) {
			t.Errorf("Expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("MalformedClaimsSubject", func(t *testing.T) {
		service := user.NewService(&fakeRepo{u: &user.User{ID: userID}}, noopEnsurer{})
		ctx := auth.ContextWithClaims(t.Context(), &auth.Claims{UserID: "not-a-uuid", Role: "user"})

		if _, err := service.GetProfile(ctx); !errors.Is(err, user.ErrUnauthorized) {
			t.Errorf("Expected ErrUnauthorized, got %v", err)
		}
	})
}
