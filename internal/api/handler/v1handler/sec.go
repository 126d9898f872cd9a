package v1handler

import (
	"crypto/rsa"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"ocrflow/internal/config"
	"ocrflow/pkg/domain"
	"ocrflow/pkg/serrors"
)

// userIDKey is the gin context key under which the authenticated user ID is stored.
const userIDKey = "auth.userID"

// SecHandlerOptions configures request authentication.
type SecHandlerOptions struct {
	// PublicKey is the PEM-encoded RSA public key used to verify bearer
	// tokens. When empty, authentication is disabled and all requests run
	// as the anonymous user.
	PublicKey string
}

// NewSecHandlerOptions constructs SecHandlerOptions from the application configuration.
func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{PublicKey: cfg.JWT.PublicKey}
}

// SecHandler authenticates requests using RS256-signed bearer tokens.
type SecHandler struct {
	key *rsa.PublicKey
}

// NewSecHandler creates a SecHandler from the given options. A nil options
// value or an empty public key disables authentication.
func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	if opts == nil || opts.PublicKey == "" {
		return &SecHandler{}, nil
	}

	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse JWT public key: %w", err)
	}

	return &SecHandler{key: key}, nil
}

// Middleware returns a gin middleware enforcing bearer authentication. With
// no public key configured it passes every request through anonymously.
func (s *SecHandler) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.key == nil {
			c.Next()

			return
		}

		userID, err := s.authenticate(c.GetHeader("Authorization"))
		if err != nil {
			respondError(c, err)

			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

func (s *SecHandler) authenticate(header string) (domain.UserID, error) {
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || raw == "" {
		return domain.UserID{}, serrors.With(serrors.ErrUnauthorized, "missing bearer token")
	}

	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}

		return s.key, nil
	})
	if err != nil {
		return domain.UserID{}, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid bearer token")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return domain.UserID{}, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token subject")
	}

	return domain.UserID(userID), nil
}

// GetUserID returns the authenticated user ID from the gin context. The zero
// UserID identifies an anonymous request.
func GetUserID(c *gin.Context) domain.UserID {
	if v, ok := c.Get(userIDKey); ok {
		if id, ok := v.(domain.UserID); ok {
			return id
		}
	}

	return domain.UserID{}
}
