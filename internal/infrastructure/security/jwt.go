package security

import (
	"errors"
	"fmt"
	"time"

	"fiftymais/internal/domain/entities"
	"fiftymais/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
)

const (
	purposeSession = "session"
	purposeReset   = "password_reset"
)

// UserClaims represents the JWT claims for account tokens
type UserClaims struct {
	Email   string `json:"email"`
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

// JWTIssuer signs HS256 tokens for sessions and password resets.
type JWTIssuer struct {
	signingKey []byte
	sessionTTL time.Duration
	resetTTL   time.Duration
	now        func() time.Time
}

var _ interfaces.ITokenIssuer = (*JWTIssuer)(nil)

func NewJWTIssuer(signingKey string, sessionTTL, resetTTL time.Duration) *JWTIssuer {
	return &JWTIssuer{
		signingKey: []byte(signingKey),
		sessionTTL: sessionTTL,
		resetTTL:   resetTTL,
		now:        time.Now,
	}
}

func (j *JWTIssuer) IssueSession(a entities.Account) (string, entities.Session, error) {
	expires := j.now().Add(j.sessionTTL)
	token, err := j.sign(a, purposeSession, expires)
	if err != nil {
		return "", entities.Session{}, err
	}
	return token, entities.Session{UserID: a.ID, Email: a.Email, ExpiresAt: expires.UTC()}, nil
}

func (j *JWTIssuer) ParseSession(token string) (entities.Session, error) {
	claims, err := j.parse(token, purposeSession)
	if err != nil {
		return entities.Session{}, err
	}
	s := entities.Session{UserID: claims.Subject, Email: claims.Email}
	if claims.ExpiresAt != nil {
		s.ExpiresAt = claims.ExpiresAt.Time.UTC()
	}
	return s, nil
}

func (j *JWTIssuer) IssueReset(a entities.Account) (string, error) {
	return j.sign(a, purposeReset, j.now().Add(j.resetTTL))
}

func (j *JWTIssuer) ParseReset(token string) (string, error) {
	claims, err := j.parse(token, purposeReset)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

func (j *JWTIssuer) sign(a entities.Account, purpose string, expires time.Time) (string, error) {
	claims := UserClaims{
		Email:   a.Email,
		Purpose: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   a.ID,
			ExpiresAt: jwt.NewNumericDate(expires),
			IssuedAt:  jwt.NewNumericDate(j.now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.signingKey)
}

func (j *JWTIssuer) parse(tokenString, purpose string) (*UserClaims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&UserClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return j.signingKey, nil
		},
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", interfaces.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*UserClaims)
	if !ok || !token.Valid {
		return nil, interfaces.ErrInvalidToken
	}
	if claims.Purpose != purpose || claims.Subject == "" {
		return nil, fmt.Errorf("%w: %v", interfaces.ErrInvalidToken, errors.New("wrong token purpose"))
	}
	return claims, nil
}
