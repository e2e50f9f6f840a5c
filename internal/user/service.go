package user

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/abaakil35/Qiuz-App/internal/auth"
	"github.com/abaakil35/Qiuz-App/internal/config"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const tokenTTL = 24 * time.Hour

var (
	ErrUserExists         = errors.New("username or email already in use")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrGoogleDisabled     = errors.New("google sign-in is not configured")
	ErrInvalidInput       = errors.New("username, email and password are required")
)

type Service interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResponse, error)
	Login(ctx context.Context, input LoginInput) (*AuthResponse, error)
	GoogleLogin(ctx context.Context, code string) (*AuthResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*UserResponse, error)
}

type service struct {
	repo  Repository
	oauth *oauth2.Config
}

func NewService(repo Repository) Service {
	svc := &service{repo: repo}

	clientID := config.Getenv("GOOGLE_CLIENT_ID", "")
	clientSecret := config.Getenv("GOOGLE_CLIENT_SECRET", "")
	if clientID != "" && clientSecret != "" {
		svc.oauth = &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  config.Getenv("GOOGLE_REDIRECT_URL", "postmessage"),
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		}
	}
	return svc
}

func (s *service) Register(ctx context.Context, input RegisterInput) (*AuthResponse, error) {
	log := config.WithContext(ctx)

	username := strings.TrimSpace(input.Username)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if username == "" || email == "" || input.Password == "" {
		return nil, ErrInvalidInput
	}

	if existing, err := s.repo.FindByEmail(email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, ErrUserExists
	}
	if existing, err := s.repo.FindByUsername(username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         auth.RoleUser,
	}
	if err := s.repo.Create(u); err != nil {
		log.WithError(err).Error("Failed to create user")
		return nil, err
	}

	log.WithField("user_id", u.ID.String()).Info("User registered")
	return s.authResponse(u)
}

func (s *service) Login(ctx context.Context, input LoginInput) (*AuthResponse, error) {
	log := config.WithContext(ctx)

	email := strings.ToLower(strings.TrimSpace(input.Email))
	u, err := s.repo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if u == nil || u.PasswordHash == "" {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(input.Password)); err != nil {
		log.WithField("user_id", u.ID.String()).Warn("Failed login attempt")
		return nil, ErrInvalidCredentials
	}

	return s.authResponse(u)
}

type googleUserInfo struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (s *service) GoogleLogin(ctx context.Context, code string) (*AuthResponse, error) {
	log := config.WithContext(ctx)

	if s.oauth == nil {
		return nil, ErrGoogleDisabled
	}

	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		log.WithError(err).Warn("Google code exchange failed")
		return nil, ErrInvalidCredentials
	}

	resp, err := s.oauth.Client(ctx, token).Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		log.WithError(err).Error("Failed to fetch Google user info")
		return nil, err
	}
	defer resp.Body.Close()

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, err
	}
	if info.Email == "" {
		return nil, ErrInvalidCredentials
	}

	email := strings.ToLower(info.Email)
	u, err := s.repo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		u = &User{
			ID:       uuid.New(),
			Username: usernameFromEmail(email),
			Email:    email,
			Role:     auth.RoleUser,
		}
		if err := s.repo.Create(u); err != nil {
			log.WithError(err).Error("Failed to create user from Google sign-in")
			return nil, err
		}
		log.WithField("user_id", u.ID.String()).Info("User created via Google sign-in")
	}

	if token.RefreshToken != "" {
		encrypted, err := config.Encrypt(token.RefreshToken)
		if err != nil {
			log.WithError(err).Error("Failed to encrypt refresh token")
			return nil, err
		}
		u.GoogleRefreshToken = encrypted
		if err := s.repo.Update(u); err != nil {
			return nil, err
		}
	}

	return s.authResponse(u)
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*UserResponse, error) {
	u, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	resp := toResponse(u)
	return &resp, nil
}

func (s *service) authResponse(u *User) (*AuthResponse, error) {
	token, err := auth.GenerateJWT(u.ID.String(), u.Role, tokenTTL)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{Token: token, User: toResponse(u)}, nil
}

func usernameFromEmail(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}
