// internal/httpserver/token.go
//
// Session tokens.
// A token is an HS256 JWT whose "gid" claim names the ladder session it may
// play. Clients send it as "Authorization: Bearer <token>" or in the
// letterleap_token cookie set by POST /ladder/new.

package httpserver

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const tokenCookieName = "letterleap_token"

// sessionClaims binds a token to one game.
type sessionClaims struct {
	GameID string `json:"gid"`
	jwt.RegisteredClaims
}

type tokenIssuer struct {
	secret []byte
	ttl    time.Duration
	secure bool // Secure + SameSite=None cookies
}

// sign creates a token for gameID, returning it with its expiry.
func (ti *tokenIssuer) sign(gameID string) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(ti.ttl)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		GameID: gameID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	})
	ss, err := t.SignedString(ti.secret)
	return ss, exp, err
}

// verify parses tokenStr and returns the game it is bound to.
func (ti *tokenIssuer) verify(tokenStr string) (string, error) {
	claims := &sessionClaims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected token signing method")
		}
		return ti.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}
	if claims.GameID == "" {
		return "", errors.New("invalid token: missing gid")
	}
	return claims.GameID, nil
}

// setCookie writes the token cookie with appropriate security attributes.
func (ti *tokenIssuer) setCookie(w http.ResponseWriter, token string, exp time.Time) {
	sameSite := http.SameSiteLaxMode
	if ti.secure {
		sameSite = http.SameSiteNoneMode // required for third‑party contexts when Secure
	}
	http.SetCookie(w, &http.Cookie{
		Name:     tokenCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   ti.secure,
		SameSite: sameSite,
		Expires:  exp,
	})
}

// bearerOrCookie extracts a bearer token from Authorization header or token cookie.
func bearerOrCookie(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	if c, err := r.Cookie(tokenCookieName); err == nil {
		return c.Value
	}
	return ""
}
