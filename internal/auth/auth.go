package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/wcmap/toilet-map/internal/config"
	"golang.org/x/crypto/bcrypt"
)

// Ожидаемые исходы аутентификации
var (
	// ErrInvalidCredentials - неверная пара email/пароль
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNoSession - токен отсутствует, истек или отозван
	ErrNoSession = errors.New("no active session")
)

// Session - административная сессия. Передается явным аргументом во все
// защищенные вызовы сервиса, nil означает публичного вызывающего.
type Session struct {
	Token     string    `json:"token"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

//go:generate mockgen -source=auth.go -destination=mocks/mock_auth.go -package=mocks

// Service определяет контракт слоя аутентификации
type Service interface {
	// Login проверяет учетные данные и создает сессию
	Login(ctx context.Context, email, password string) (*Session, error)
	// Resolve возвращает сессию по токену
	Resolve(ctx context.Context, token string) (*Session, error)
	// Logout отзывает сессию
	Logout(ctx context.Context, token string) error
}

type authService struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
}

func NewService(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config) Service {
	return &authService{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
	}
}

func sessionKey(token string) string {
	return fmt.Sprintf("session:%s", token)
}

// Login сравнивает email и bcrypt-хэш пароля с настройками администратора
// и при совпадении сохраняет новую сессию в Redis
func (s *authService) Login(ctx context.Context, email, password string) (*Session, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "Login",
	})

	if email != s.cfg.AdminEmail {
		log.Warn("Login attempt with unknown email")
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(password)); err != nil {
		log.Warn("Login attempt with wrong password")
		return nil, ErrInvalidCredentials
	}

	sess := &Session{
		Token:     uuid.NewString(),
		Email:     email,
		IsAdmin:   true,
		CreatedAt: time.Now().UTC(),
	}

	val, err := json.Marshal(sess)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := s.redisClient.Set(ctx, sessionKey(sess.Token), val, s.cfg.SessionTTL).Err(); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	log.Info("Admin logged in")
	return sess, nil
}

// Resolve возвращает сессию по токену или ErrNoSession
func (s *authService) Resolve(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, ErrNoSession
	}

	val, err := s.redisClient.Get(ctx, sessionKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	sess := &Session{}
	if err := json.Unmarshal(val, sess); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return sess, nil
}

// Logout удаляет сессию из Redis
func (s *authService) Logout(ctx context.Context, token string) error {
	if err := s.redisClient.Del(ctx, sessionKey(token)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	s.logger.WithField("service", "auth").Info("Admin logged out")
	return nil
}
