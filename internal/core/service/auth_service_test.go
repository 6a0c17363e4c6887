package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/localbiz/directory-api/internal/core/domain"
)

type stubUserRepo struct {
	byEmail map[string]*domain.User
	nextID  int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byEmail: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.byEmail[user.Email]; exists {
		return nil, domain.ErrUserExists
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = fmt.Sprintf("user_%d", r.nextID)
	r.byEmail[created.Email] = cloneUser(created)
	return cloneUser(created), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func newAuthService(repo *stubUserRepo) *AuthService {
	return NewAuthService(repo, NewTokenService("secret", time.Hour), zerolog.Nop())
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	result, err := svc.Register(context.Background(), "Alice", "alice@example.com", "pass123", domain.RoleBusinessOwner)
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if result.Token == "" {
		t.Fatalf("expected token on registration")
	}
	if result.User.Role != domain.RoleBusinessOwner {
		t.Fatalf("unexpected role: %s", result.User.Role)
	}

	stored := repo.byEmail["alice@example.com"]
	if stored.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_RoleNormalization(t *testing.T) {
	cases := []struct {
		role string
		want string
	}{
		{"BUSINESSOWNER", domain.RoleBusinessOwner},
		{"businessowner", domain.RoleBusinessOwner},
		{"BusinessOwner", domain.RoleBusinessOwner},
		{"user", domain.RoleUser},
		{"", domain.RoleUser},
	}

	for _, tc := range cases {
		repo := newStubUserRepo()
		svc := newAuthService(repo)

		result, err := svc.Register(context.Background(), "Bob", "bob@example.com", "pass123", tc.role)
		if err != nil {
			t.Fatalf("role %q: Register returned error: %v", tc.role, err)
		}
		if result.User.Role != tc.want {
			t.Fatalf("role %q: expected %q, got %q", tc.role, tc.want, result.User.Role)
		}
	}
}

func TestAuthService_Register_InvalidRole(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	if _, err := svc.Register(context.Background(), "Eve", "eve@example.com", "pass123", "admin"); err != domain.ErrInvalidRole {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	if _, err := svc.Register(context.Background(), "", "a@example.com", "pass", ""); err != domain.ErrMissingFields {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "A", "", "pass", ""); err != domain.ErrMissingFields {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "A", "a@example.com", "", ""); err != domain.ErrMissingFields {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	first, err := svc.Register(context.Background(), "Bob", "bob@example.com", "pass123", "")
	if err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	if _, err := svc.Register(context.Background(), "Bobby", "bob@example.com", "other", ""); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}

	// First account is unaffected.
	stored := repo.byEmail["bob@example.com"]
	if stored.ID != first.User.ID || stored.Name != "Bob" {
		t.Fatalf("first account mutated: %+v", stored)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if _, err := svc.Register(context.Background(), "Carol", "carol@example.com", "s3cret", domain.RoleBusinessOwner); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	result, err := svc.Login(context.Background(), "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.Token == "" {
		t.Fatalf("expected token, got empty")
	}
	if result.User.Name != "Carol" {
		t.Fatalf("unexpected user: %+v", result.User)
	}

	identity, err := NewTokenService("secret", time.Hour).Verify(result.Token)
	if err != nil {
		t.Fatalf("token invalid: %v", err)
	}
	if identity.UserID != result.User.ID || identity.Role != domain.RoleBusinessOwner {
		t.Fatalf("unexpected claims: %+v", identity)
	}
}

func TestAuthService_Login_NoEnumeration(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if _, err := svc.Register(context.Background(), "Dave", "dave@example.com", "goodpass", ""); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, unknownErr := svc.Login(context.Background(), "ghost@example.com", "whatever")
	_, wrongErr := svc.Login(context.Background(), "dave@example.com", "badpass")

	if unknownErr != domain.ErrInvalidCredentials {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", unknownErr)
	}
	if wrongErr != domain.ErrInvalidCredentials {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongErr)
	}
	if unknownErr != wrongErr {
		t.Fatalf("errors must be indistinguishable: %v vs %v", unknownErr, wrongErr)
	}
}

func TestAuthService_Profile(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	created, err := svc.Register(context.Background(), "Frank", "frank@example.com", "pass123", "")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	user, err := svc.Profile(context.Background(), created.User.ID)
	if err != nil {
		t.Fatalf("profile failed: %v", err)
	}
	if user.Email != "frank@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}

	if _, err := svc.Profile(context.Background(), "missing"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
