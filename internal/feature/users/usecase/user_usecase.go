package usecase

import (
	"context"
	"errors"

	"blog_backend/internal/feature/users/domain/entity"
	"blog_backend/internal/httperr"
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention, the interface is defined by the consumer (usecase)
// rather than the provider (adapters).
type UserRepository interface {
	// Create persists a new user. It returns ErrUserAlreadyExists when the
	// storage layer rejects the insert on a unique index.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a user matching the specified email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a user matching the specified ID.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// FindByNameOrEmail retrieves a user whose name or email matches either
	// argument. It returns ErrUserNotFound when neither matches.
	FindByNameOrEmail(ctx context.Context, name, email string) (*entity.User, error)

	// List retrieves every user.
	List(ctx context.Context) ([]entity.User, error)

	// ListByType retrieves every user with the given role.
	ListByType(ctx context.Context, t entity.UserType) ([]entity.User, error)
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(hash, plaintext string) bool
}

// TokenIssuer creates signed bearer tokens for authenticated users.
type TokenIssuer interface {
	GenerateToken(userID uint) (string, error)
}

// userUsecase implements the user workflows: registration, admin-initiated
// creation, login, and listing.
type userUsecase struct {
	users     UserRepository
	passwords PasswordHasher
	tokens    TokenIssuer
	dummyHash string
}

// NewUserUsecase creates a new instance of userUsecase. dummyHash must be a
// valid password hash; login compares against it when the email matches no
// account so that verification cost does not reveal account existence.
func NewUserUsecase(users UserRepository, passwords PasswordHasher, tokens TokenIssuer, dummyHash string) *userUsecase {
	return &userUsecase{
		users:     users,
		passwords: passwords,
		tokens:    tokens,
		dummyHash: dummyHash,
	}
}

// Register creates a self-service account. The role is always the default
// blogger role regardless of what the client sent.
func (u *userUsecase) Register(ctx context.Context, name, email, password string) error {
	return u.create(ctx, entity.UserTypeBlogger, name, email, password)
}

// Create creates an account on behalf of an admin, with an explicit role.
// The admin gate itself is enforced by the routing middleware.
func (u *userUsecase) Create(ctx context.Context, userType entity.UserType, name, email, password string) error {
	if !userType.Valid() {
		return ErrInvalidUserType
	}
	return u.create(ctx, userType, name, email, password)
}

// create enforces name/email uniqueness and stores the user with a hashed
// password. Both creation paths go through here, so an admin-created account
// is hashed exactly like a self-registered one.
func (u *userUsecase) create(ctx context.Context, userType entity.UserType, name, email, password string) error {
	existing, err := u.users.FindByNameOrEmail(ctx, name, email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return httperr.Wrap(httperr.Internal, "failed to check uniqueness", err)
	}
	if existing != nil {
		// Name collision is reported before email collision when one
		// record matches both.
		if existing.Name == name {
			return ErrNameAlreadyUsed
		}
		return ErrEmailAlreadyUsed
	}

	hash, err := u.passwords.Hash(password)
	if err != nil {
		return httperr.Wrap(httperr.Internal, "failed to hash password", err)
	}

	user := &entity.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Type:         userType,
	}
	if err := u.users.Create(ctx, user); err != nil {
		var httpErr *httperr.Error
		if errors.As(err, &httpErr) {
			return err
		}
		return httperr.Wrap(httperr.Internal, "failed to create user", err)
	}
	return nil
}

// Login authenticates a user by email and password and returns a signed
// token on success. Unknown email and wrong password produce the same error.
func (u *userUsecase) Login(ctx context.Context, email, password string) (string, error) {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return "", httperr.Wrap(httperr.Internal, "failed to look up user", err)
	}

	// Verify against a dummy hash when the user does not exist so the
	// comparison always runs.
	hash := u.dummyHash
	if err == nil {
		hash = user.PasswordHash
	}
	ok := u.passwords.Verify(hash, password)

	if err != nil || !ok {
		return "", ErrInvalidCredentials
	}

	token, err := u.tokens.GenerateToken(user.ID)
	if err != nil {
		return "", httperr.Wrap(httperr.Internal, "failed to generate token", err)
	}
	return token, nil
}

// List returns the users visible to the requester. Admins see everyone;
// non-admins see only non-admin users, and the handler projects away the IDs.
func (u *userUsecase) List(ctx context.Context, requester entity.AuthUser) ([]entity.User, error) {
	if requester.IsAdmin() {
		users, err := u.users.List(ctx)
		if err != nil {
			return nil, httperr.Wrap(httperr.Internal, "failed to list users", err)
		}
		return users, nil
	}

	users, err := u.users.ListByType(ctx, entity.UserTypeBlogger)
	if err != nil {
		return nil, httperr.Wrap(httperr.Internal, "failed to list users", err)
	}
	return users, nil
}
