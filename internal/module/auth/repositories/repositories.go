package repositories

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"

	"tourism-service/config"
	"tourism-service/internal/module/auth/models/entity"
	"tourism-service/internal/pkg/database"
	"tourism-service/internal/pkg/errors"
	"tourism-service/internal/pkg/log"

	"github.com/goccy/go-json"
	"github.com/jmoiron/sqlx"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const userColumns = `id, email, name, password, role, provider, google_id, avatar, is_active, created_at, updated_at`

type repositories struct {
	db          *sqlx.DB
	log         log.Logger
	oauth       *oauth2.Config
	userInfoURL string
}

type Repositories interface {
	// db
	FindUserByID(ctx context.Context, id string) (entity.User, error)
	FindUserByEmail(ctx context.Context, email string) (entity.User, error)
	FindUserByGoogleID(ctx context.Context, googleID string) (entity.User, error)
	UserIDExists(ctx context.Context, id string) (bool, error)
	CreateUser(ctx context.Context, user entity.User) (entity.User, error)
	LinkGoogleAccount(ctx context.Context, userID, googleID, avatar string) (entity.User, error)
	// http
	GoogleAuthURL(state string) string
	ExchangeGoogleCode(ctx context.Context, code string) (entity.GoogleProfile, error)
}

func New(db *sqlx.DB, log log.Logger, cfg *config.GoogleConfig) Repositories {
	return &repositories{
		db:  db,
		log: log,
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.CallbackURL,
			Scopes:       []string{"email", "profile"},
			Endpoint:     google.Endpoint,
		},
		userInfoURL: cfg.UserInfoURL,
	}
}

func (r *repositories) findUser(ctx context.Context, column, value string) (entity.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE %s = $1`, userColumns, column)

	var user entity.User
	err := r.db.GetContext(ctx, &user, query, value)
	if stderrors.Is(err, sql.ErrNoRows) {
		return entity.User{}, errors.NotFound("user not found")
	}
	if err != nil {
		r.log.Error(ctx, "error find user", err)
		return entity.User{}, errors.InternalServerError("error find user by " + column)
	}
	return user, nil
}

// FindUserByID implements Repositories.
func (r *repositories) FindUserByID(ctx context.Context, id string) (entity.User, error) {
	return r.findUser(ctx, "id", id)
}

// FindUserByEmail implements Repositories.
func (r *repositories) FindUserByEmail(ctx context.Context, email string) (entity.User, error) {
	return r.findUser(ctx, "email", email)
}

// FindUserByGoogleID implements Repositories.
func (r *repositories) FindUserByGoogleID(ctx context.Context, googleID string) (entity.User, error) {
	return r.findUser(ctx, "google_id", googleID)
}

// UserIDExists implements Repositories.
func (r *repositories) UserIDExists(ctx context.Context, id string) (bool, error) {
	var exists bool
	if err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, id); err != nil {
		return false, errors.InternalServerError("error check user id")
	}
	return exists, nil
}

// CreateUser implements Repositories.
func (r *repositories) CreateUser(ctx context.Context, user entity.User) (entity.User, error) {
	query := `INSERT INTO users (id, email, name, password, role, provider, google_id, avatar)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + userColumns

	var created entity.User
	err := r.db.GetContext(ctx, &created, query,
		user.ID, user.Email, user.Name, user.Password, user.Role, user.Provider, user.GoogleID, user.Avatar)
	if database.IsUniqueViolation(err) {
		return entity.User{}, errors.Conflict("user with this email already exists")
	}
	if err != nil {
		r.log.Error(ctx, "error create user", err)
		return entity.User{}, errors.InternalServerError("error create user")
	}
	return created, nil
}

// LinkGoogleAccount implements Repositories.
func (r *repositories) LinkGoogleAccount(ctx context.Context, userID, googleID, avatar string) (entity.User, error) {
	query := `UPDATE users
		SET google_id = $2, avatar = COALESCE(NULLIF($3, ''), avatar), provider = 'google', updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns

	var user entity.User
	err := r.db.GetContext(ctx, &user, query, userID, googleID, avatar)
	if stderrors.Is(err, sql.ErrNoRows) {
		return entity.User{}, errors.NotFound("user not found")
	}
	if err != nil {
		r.log.Error(ctx, "error link google account", err)
		return entity.User{}, errors.InternalServerError("error link google account")
	}
	return user, nil
}

// GoogleAuthURL implements Repositories.
func (r *repositories) GoogleAuthURL(state string) string {
	return r.oauth.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// ExchangeGoogleCode implements Repositories.
func (r *repositories) ExchangeGoogleCode(ctx context.Context, code string) (entity.GoogleProfile, error) {
	tok, err := r.oauth.Exchange(ctx, code)
	if err != nil {
		r.log.Error(ctx, "error exchange google code", err)
		return entity.GoogleProfile{}, errors.UnauthorizedError("invalid google authorization code")
	}

	resp, err := r.oauth.Client(ctx, tok).Get(r.userInfoURL)
	if err != nil {
		r.log.Error(ctx, "error fetch google profile", err)
		return entity.GoogleProfile{}, errors.InternalServerError("error fetch google profile")
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		r.log.Error(ctx, "google userinfo returned non 200", resp.StatusCode)
		return entity.GoogleProfile{}, errors.UnauthorizedError("no user from google")
	}

	var profile entity.GoogleProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return entity.GoogleProfile{}, errors.InternalServerError("error parse google profile")
	}
	if profile.ID == "" || profile.Email == "" {
		return entity.GoogleProfile{}, errors.UnauthorizedError("no user from google")
	}

	return profile, nil
}
