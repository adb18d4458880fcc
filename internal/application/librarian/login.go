package librarian

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/adilzhan/libra/internal/domain/librarian"
	"github.com/adilzhan/libra/internal/infrastructure/persistence/redis"
	"github.com/adilzhan/libra/pkg/jwt"
	"github.com/adilzhan/libra/pkg/logger"
)

// LoginUseCase verifies credentials, issues a token pair and records the
// session in redis.
type LoginUseCase struct {
	librarianService librarian.Service
	jwtManager       *jwt.Manager
	sessionStore     *redis.SessionStore
}

// NewLoginUseCase creates the use case.
func NewLoginUseCase(librarianService librarian.Service, jwtManager *jwt.Manager, sessionStore *redis.SessionStore) *LoginUseCase {
	return &LoginUseCase{
		librarianService: librarianService,
		jwtManager:       jwtManager,
		sessionStore:     sessionStore,
	}
}

// LoginRequest carries the submitted credentials.
type LoginRequest struct {
	Email    string
	Password string
}

// LoginResponse returns the token pair and the account identity.
type LoginResponse struct {
	ID           uint   `json:"id"`
	Email        string `json:"email"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// Execute authenticates and opens a session. A failed session write does not
// fail the login: the token is already valid on its own, the session record
// only supports observability and forced sign-out.
func (uc *LoginUseCase) Execute(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	l, err := uc.librarianService.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	pair, err := uc.jwtManager.GenerateToken(l.ID, l.Email, l.IsLibrarian)
	if err != nil {
		return nil, err
	}

	session := map[string]interface{}{
		"librarian_id": l.ID,
		"email":        l.Email,
		"login_at":     time.Now().Format(time.RFC3339),
	}
	if err := uc.sessionStore.SaveSession(ctx, l.ID, session, uc.jwtManager.RefreshTokenExpire()); err != nil {
		logger.L().Warn("failed to save session", zap.Uint("librarian_id", l.ID), zap.Error(err))
	}

	return &LoginResponse{
		ID:           l.ID,
		Email:        l.Email,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}

// LogoutUseCase closes the session and revokes the presented access token.
type LogoutUseCase struct {
	jwtManager   *jwt.Manager
	sessionStore *redis.SessionStore
}

// NewLogoutUseCase creates the use case.
func NewLogoutUseCase(jwtManager *jwt.Manager, sessionStore *redis.SessionStore) *LogoutUseCase {
	return &LogoutUseCase{
		jwtManager:   jwtManager,
		sessionStore: sessionStore,
	}
}

// Execute deletes the session and blacklists the token for the remainder of
// its lifetime. A blacklist failure fails the request: the token must not
// stay usable after logout.
func (uc *LogoutUseCase) Execute(ctx context.Context, librarianID uint, token string) error {
	if err := uc.sessionStore.DeleteSession(ctx, librarianID); err != nil {
		logger.L().Warn("failed to delete session", zap.Uint("librarian_id", librarianID), zap.Error(err))
	}

	return uc.sessionStore.AddToBlacklist(ctx, token, uc.jwtManager.AccessTokenExpire())
}
