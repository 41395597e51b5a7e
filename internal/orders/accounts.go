package orders

import (
	"context"
	"errors"
	"strings"

	"github.com/ariefcatur/go-seller-orders/internal/auth"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (in UserInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return invalid("name is required")
	}
	if !validEmail(in.Email) {
		return invalid("email %q is not valid", in.Email)
	}
	if len(in.Password) < 6 {
		return invalid("password must have at least 6 characters")
	}
	return nil
}

// RegisterUser creates a seller. A taken email fails with ErrAlreadyExists
// and leaves the existing record untouched.
func (s *Service) RegisterUser(ctx context.Context, in UserInput) (User, error) {
	in.Email = normalizeEmail(in.Email)
	if err := in.validate(); err != nil {
		return User{}, err
	}
	if _, err := s.Store.GetUserByEmail(ctx, in.Email); err == nil {
		return User{}, ErrAlreadyExists
	} else if !errors.Is(err, ErrNotFound) {
		return User{}, s.fail("register user", err)
	}

	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		return User{}, s.fail("hash password", err)
	}
	u := User{
		ID:           uuid.NewString(),
		Email:        in.Email,
		Name:         strings.TrimSpace(in.Name),
		LastName:     strings.TrimSpace(in.LastName),
		PasswordHash: hash,
		CreatedAt:    s.now(),
	}
	if err := s.Store.CreateUser(ctx, &u); err != nil {
		return User{}, s.fail("register user", err)
	}
	s.logger().Info("user registered", zap.String("user_id", u.ID))
	return u, nil
}

// Login returns a bearer token. Unknown email and wrong password fail the
// same way.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.Store.GetUserByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, ErrNotFound) {
		return "", ErrCredentialsInvalid
	}
	if err != nil {
		return "", s.fail("login", err)
	}
	if !s.Hasher.Compare(password, u.PasswordHash) {
		return "", ErrCredentialsInvalid
	}
	tok, err := s.Tokens.Issue(auth.Principal{ID: u.ID, Email: u.Email, Name: u.Name, LastName: u.LastName})
	if err != nil {
		return "", s.fail("issue token", err)
	}
	return tok, nil
}

func (s *Service) CurrentUser(ctx context.Context) (*auth.Principal, error) {
	return principal(ctx)
}
