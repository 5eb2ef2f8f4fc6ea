// Package auth issues and checks the admin session cookie.
package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// CookieName holds the signed session token, HTTP-only, path "/".
const CookieName = "portfolio_admin"

// TokenTTL is the fixed session lifetime. There is no refresh; after expiry
// the admin logs in again.
const TokenTTL = time.Hour

var ErrBadCredentials = errors.New("invalid username or password")

// Sessions validates the single admin credential pair and manages tokens.
type Sessions struct {
	secret       []byte
	username     string
	passwordHash []byte // bcrypt
	secure       bool   // Secure cookie flag; on in release mode
}

func NewSessions(secret, username string, passwordHash []byte, secure bool) *Sessions {
	return &Sessions{
		secret:       []byte(secret),
		username:     username,
		passwordHash: passwordHash,
		secure:       secure,
	}
}

// Login exchanges the admin credentials for a signed session token.
func (s *Sessions) Login(username, password string) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passOK := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)) == nil
	if !userOK || !passOK {
		return "", ErrBadCredentials
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   s.username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify returns the token subject, or an error for absent/invalid/expired
// tokens.
func (s *Sessions) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", fmt.Errorf("token is not valid")
	}
	return claims.Subject, nil
}

func (s *Sessions) SetCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, token, int(TokenTTL.Seconds()), "/", "", s.secure, true)
}

func (s *Sessions) ClearCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, "", -1, "/", "", s.secure, true)
}

// Subject returns the logged-in admin from the request cookie, or "" when
// the session is absent or no longer valid.
func (s *Sessions) Subject(c *gin.Context) string {
	token, err := c.Cookie(CookieName)
	if err != nil {
		return ""
	}
	subject, err := s.Verify(token)
	if err != nil {
		return ""
	}
	return subject
}

// Middleware gates the admin route group.
func (s *Sessions) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		subject := s.Subject(c)
		if subject == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "Authentication required",
				"message": "Please log in to access the admin panel",
			})
			c.Abort()
			return
		}

		c.Set("admin", subject)
		c.Next()
	}
}
