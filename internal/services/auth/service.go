package auth

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/codele-game/codele-go/internal/dependencies/clock"
	"github.com/codele-game/codele-go/internal/model"
	"github.com/codele-game/codele-go/internal/storage"
)

// Errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUsernameExists     = errors.New("username already exists")
	ErrEmailExists        = errors.New("email already exists")
)

// Session is the result of a successful registration or login
type Session struct {
	Token    string
	PlayerID model.PlayerID
	Username string
}

// Config holds configuration for the auth service
type Config struct {
	// TokenSecret signs issued tokens. Required outside tests.
	TokenSecret string
	// TokenTTL is how long issued tokens stay valid
	TokenTTL time.Duration
}

// DefaultConfig returns default auth configuration
func DefaultConfig() Config {
	return Config{
		TokenSecret: "dev-secret-do-not-use",
		TokenTTL:    24 * time.Hour,
	}
}

// Service handles registration, login and token issuance
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	tokens  *TokenIssuer
	logger  *slog.Logger
}

// New creates a new auth service
func New(storage storage.Storage, clock clock.Clock, cfg Config, logger *slog.Logger) *Service {
	if cfg.TokenTTL == 0 {
		cfg.TokenTTL = DefaultConfig().TokenTTL
	}
	return &Service{
		storage: storage,
		clock:   clock,
		tokens:  NewTokenIssuer(cfg.TokenSecret, "codele", cfg.TokenTTL),
		logger:  logger,
	}
}

// Register creates credentials for a player and issues a token.
// When playerID names an existing player (a client that played anonymously
// before signing up), the credentials attach to that player and its history
// is preserved; otherwise a fresh player is created.
func (s *Service) Register(ctx context.Context, username, email, password string, playerID model.PlayerID) (*Session, error) {
	if _, err := s.storage.GetCredentialsByUsername(ctx, username); err == nil {
		return nil, ErrUsernameExists
	} else if !errors.Is(err, model.ErrCredentialsNotFound) {
		return nil, err
	}

	if email != "" {
		if _, err := s.storage.GetCredentialsByEmail(ctx, email); err == nil {
			return nil, ErrEmailExists
		} else if !errors.Is(err, model.ErrCredentialsNotFound) {
			return nil, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()

	var player *model.Player
	if playerID != "" {
		player, err = s.storage.GetPlayer(ctx, playerID)
		if err != nil && !errors.Is(err, model.ErrPlayerNotFound) {
			return nil, err
		}
	}
	if player == nil {
		if playerID == "" {
			playerID = model.PlayerID("p_" + uuid.NewString())
		}
		player = model.NewPlayer(playerID, now)
	}

	player.Username = username
	player.UpdatedAt = now

	creds := &model.Credentials{
		PlayerID:     player.ID,
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}
	if err := s.storage.SaveCredentials(ctx, creds); err != nil {
		return nil, err
	}

	s.logger.Info("player registered",
		slog.String("player_id", string(player.ID)),
		slog.String("username", username),
	)

	return s.createSession(player)
}

// Login authenticates a registered player and issues a token
func (s *Service) Login(ctx context.Context, username, password string) (*Session, error) {
	creds, err := s.storage.GetCredentialsByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrCredentialsNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(creds.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	player, err := s.storage.GetPlayer(ctx, creds.PlayerID)
	if err != nil {
		return nil, err
	}

	return s.createSession(player)
}

// ValidateToken verifies a token and returns its identity claims
func (s *Service) ValidateToken(token string) (*Claims, error) {
	return s.tokens.Validate(token)
}

func (s *Service) createSession(player *model.Player) (*Session, error) {
	token, err := s.tokens.Issue(player.ID, player.Username, s.clock.Now())
	if err != nil {
		return nil, err
	}

	return &Session{
		Token:    token,
		PlayerID: player.ID,
		Username: player.Username,
	}, nil
}
