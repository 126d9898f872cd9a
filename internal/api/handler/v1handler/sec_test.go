package v1handler_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"ocrflow/internal/api/handler/v1handler"
	"ocrflow/pkg/domain"
)

// helper to generate an RSA key pair and return the private key and PEM-encoded public key.
func genRSAKeys(tb testing.TB) (*rsa.PrivateKey, string) {
	tb.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(tb, err, "failed to generate RSA key")
	pubASN1, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(tb, err, "failed to marshal public key")
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubASN1})

	return priv, string(pubPEM)
}

func newSecHandlerForTest(t *testing.T, pubPEM string) *v1handler.SecHandler {
	t.Helper()
	sh, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{PublicKey: pubPEM})
	require.NoError(t, err, "NewSecHandler failed")

	return sh
}

func signJWTRS256(tb testing.TB, priv *rsa.PrivateKey, sub string, issuedAt time.Time, exp time.Time) string {
	tb.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   sub,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(exp),
		NotBefore: jwt.NewNumericDate(issuedAt),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	signed, err := token.SignedString(priv)
	require.NoError(tb, err, "failed to sign token")

	return signed
}

// probeAuth serves one request through the middleware and reports the user ID
// the probe handler observed.
func probeAuth(t *testing.T, sec *v1handler.SecHandler, authorization string) (*httptest.ResponseRecorder, domain.UserID) {
	t.Helper()

	var got domain.UserID
	engine := gin.New()
	engine.POST("/probe", sec.Middleware(), func(c *gin.Context) {
		got = v1handler.GetUserID(c)
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodPost, "/probe", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	return w, got
}

func TestMiddleware_ValidToken(t *testing.T) {
	priv, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM)

	userID := uuid.New()
	now := time.Now()
	tkn := signJWTRS256(t, priv, userID.String(), now, now.Add(1*time.Hour))

	w, got := probeAuth(t, sh, "Bearer "+tkn)
	require.Equal(t, http.StatusNoContent, w.Code)
	require.Equal(t, domain.UserID(userID), got)
}

func TestMiddleware_MissingToken(t *testing.T) {
	_, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM)

	w, _ := probeAuth(t, sh, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, errorBody(t, w), "missing bearer token")
}

func TestMiddleware_InvalidSignature(t *testing.T) {
	// handler uses pub from key A, but token signed with key B
	_, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM)

	privOther, _ := genRSAKeys(t)
	now := time.Now()
	tkn := signJWTRS256(t, privOther, uuid.NewString(), now, now.Add(time.Hour))

	w, _ := probeAuth(t, sh, "Bearer "+tkn)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMiddleware_ExpiredToken(t *testing.T) {
	priv, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM)

	now := time.Now()
	tkn := signJWTRS256(t, priv, uuid.NewString(), now.Add(-2*time.Hour), now.Add(-1*time.Hour))

	w, _ := probeAuth(t, sh, "Bearer "+tkn)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMiddleware_InvalidSubject(t *testing.T) {
	priv, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM)

	now := time.Now()
	// non-UUID subject
	tkn := signJWTRS256(t, priv, "not-a-uuid", now, now.Add(time.Hour))

	w, _ := probeAuth(t, sh, "Bearer "+tkn)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMiddleware_WrongAlgorithm(t *testing.T) {
	// create handler with RSA public key, but sign token with HS256
	_, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM)

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		NotBefore: jwt.NewNumericDate(now),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("secret"))
	require.NoError(t, err, "failed to sign HS256 token")

	w, _ := probeAuth(t, sh, "Bearer "+signed)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMiddleware_DisabledRunsAnonymously(t *testing.T) {
	sh, err := v1handler.NewSecHandler(nil)
	require.NoError(t, err)

	w, got := probeAuth(t, sh, "")
	require.Equal(t, http.StatusNoContent, w.Code)
	require.Equal(t, domain.UserID{}, got)
}

func TestNewSecHandler_BadKey(t *testing.T) {
	_, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{PublicKey: "not a pem"})
	require.Error(t, err)
}

func TestRegister_ProtectsMutatingRoutes(t *testing.T) {
	_, pubPEM := genRSAKeys(t)
	ts := newTestServer(t, newSecHandlerForTest(t, pubPEM))

	// mutating route rejects anonymous requests
	w := ts.do(t, http.MethodPost, "/v1/models", v1handler.CreateModelRequest{Name: "prod.billing.receipts"})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// read route stays open
	ts.registry.EXPECT().ListModels(gomock.Any(), gomock.Any()).Return(nil, "", nil)
	w = ts.do(t, http.MethodGet, "/v1/models", nil)
	require.Equal(t, http.StatusOK, w.Code)
}
