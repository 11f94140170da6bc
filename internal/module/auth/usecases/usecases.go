package usecases

import (
	"context"
	"database/sql"
	"net/http"

	"tourism-service/internal/module/auth/models/entity"
	"tourism-service/internal/module/auth/models/request"
	"tourism-service/internal/module/auth/models/response"
	"tourism-service/internal/module/auth/repositories"
	"tourism-service/internal/pkg/errors"
	"tourism-service/internal/pkg/idgen"
	"tourism-service/internal/pkg/log"
	"tourism-service/internal/pkg/policy"
	"tourism-service/internal/pkg/token"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

type usecase struct {
	repo   repositories.Repositories
	log    log.Logger
	tokens *token.Manager
	ids    idgen.Generator
}

type Usecase interface {
	Register(ctx context.Context, payload *request.Register) (response.Auth, error)
	Login(ctx context.Context, payload *request.Login) (response.Auth, error)
	GoogleAuthURL(state string) string
	GoogleLogin(ctx context.Context, code string) (response.Auth, error)
	ValidateToken(ctx context.Context, token string) (policy.Actor, error)
	Profile(ctx context.Context, actor policy.Actor) (response.User, error)
}

func New(repo repositories.Repositories, log log.Logger, tokens *token.Manager, ids idgen.Generator) Usecase {
	return &usecase{
		repo:   repo,
		log:    log,
		tokens: tokens,
		ids:    ids,
	}
}

func (u *usecase) Register(ctx context.Context, payload *request.Register) (response.Auth, error) {
	_, err := u.repo.FindUserByEmail(ctx, payload.Email)
	if err == nil {
		return response.Auth{}, errors.Conflict("user with this email already exists")
	}
	if !errors.Is(err, http.StatusNotFound) {
		return response.Auth{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcryptCost)
	if err != nil {
		return response.Auth{}, errors.InternalServerError("error hash password")
	}

	id, err := u.ids.Next(ctx, "users", u.repo.UserIDExists)
	if err != nil {
		return response.Auth{}, err
	}

	user, err := u.repo.CreateUser(ctx, entity.User{
		ID:       id,
		Email:    payload.Email,
		Name:     payload.Name,
		Password: sql.NullString{String: string(hash), Valid: true},
		Role:     policy.RoleUser,
		Provider: entity.ProviderLocal,
	})
	if err != nil {
		return response.Auth{}, err
	}

	u.log.Info(ctx, "user registered", user.ID)
	return u.issue(user)
}

func (u *usecase) Login(ctx context.Context, payload *request.Login) (response.Auth, error) {
	user, err := u.repo.FindUserByEmail(ctx, payload.Email)
	if errors.Is(err, http.StatusNotFound) {
		return response.Auth{}, errors.UnauthorizedError("invalid credentials")
	}
	if err != nil {
		return response.Auth{}, err
	}

	if !user.Password.Valid {
		return response.Auth{}, errors.UnauthorizedError("invalid credentials")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password.String), []byte(payload.Password)) != nil {
		return response.Auth{}, errors.UnauthorizedError("invalid credentials")
	}

	if !user.IsActive {
		return response.Auth{}, errors.UnauthorizedError("account is deactivated")
	}

	return u.issue(user)
}

func (u *usecase) GoogleAuthURL(state string) string {
	return u.repo.GoogleAuthURL(state)
}

// GoogleLogin resolves the Google account by google id, then links an existing local
// account with the same email, and creates a new user otherwise.
func (u *usecase) GoogleLogin(ctx context.Context, code string) (response.Auth, error) {
	profile, err := u.repo.ExchangeGoogleCode(ctx, code)
	if err != nil {
		return response.Auth{}, err
	}

	user, err := u.repo.FindUserByGoogleID(ctx, profile.ID)
	switch {
	case err == nil:
	case errors.Is(err, http.StatusNotFound):
		user, err = u.linkOrCreate(ctx, profile)
		if err != nil {
			return response.Auth{}, err
		}
	default:
		return response.Auth{}, err
	}

	if !user.IsActive {
		return response.Auth{}, errors.UnauthorizedError("account is deactivated")
	}

	return u.issue(user)
}

func (u *usecase) linkOrCreate(ctx context.Context, profile entity.GoogleProfile) (entity.User, error) {
	existing, err := u.repo.FindUserByEmail(ctx, profile.Email)
	if err == nil {
		return u.repo.LinkGoogleAccount(ctx, existing.ID, profile.ID, profile.Picture)
	}
	if !errors.Is(err, http.StatusNotFound) {
		return entity.User{}, err
	}

	id, err := u.ids.Next(ctx, "users", u.repo.UserIDExists)
	if err != nil {
		return entity.User{}, err
	}

	return u.repo.CreateUser(ctx, entity.User{
		ID:       id,
		Email:    profile.Email,
		Name:     profile.Name,
		Role:     policy.RoleUser,
		Provider: entity.ProviderGoogle,
		GoogleID: sql.NullString{String: profile.ID, Valid: true},
		Avatar:   sql.NullString{String: profile.Picture, Valid: profile.Picture != ""},
	})
}

// ValidateToken checks the JWT and reloads the user so deactivated accounts and role
// changes take effect before the token expires.
func (u *usecase) ValidateToken(ctx context.Context, tokenString string) (policy.Actor, error) {
	claims, err := u.tokens.Parse(tokenString)
	if err != nil {
		return policy.Actor{}, errors.UnauthorizedError("invalid token")
	}

	user, err := u.repo.FindUserByID(ctx, claims.Subject)
	if errors.Is(err, http.StatusNotFound) {
		return policy.Actor{}, errors.UnauthorizedError("invalid token")
	}
	if err != nil {
		return policy.Actor{}, err
	}
	if !user.IsActive {
		return policy.Actor{}, errors.UnauthorizedError("account is deactivated")
	}

	return policy.Actor{ID: user.ID, Email: user.Email, Role: user.Role}, nil
}

func (u *usecase) Profile(ctx context.Context, actor policy.Actor) (response.User, error) {
	user, err := u.repo.FindUserByID(ctx, actor.ID)
	if err != nil {
		return response.User{}, err
	}
	return toUser(user), nil
}

func (u *usecase) issue(user entity.User) (response.Auth, error) {
	signed, err := u.tokens.Sign(user.ID, user.Email, user.Role)
	if err != nil {
		return response.Auth{}, errors.InternalServerError("error sign token")
	}
	return response.Auth{AccessToken: signed, User: toUser(user)}, nil
}

func toUser(user entity.User) response.User {
	return response.User{
		ID:       user.ID,
		Email:    user.Email,
		Name:     user.Name,
		Role:     user.Role,
		Provider: user.Provider,
		Avatar:   user.Avatar.String,
	}
}
