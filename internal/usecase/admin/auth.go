package admin

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

const (
	CodeInvalidCredentials = "invalid_credentials"
	CodeLoginDisabled      = "admin_login_disabled"

	RoleAdmin = "admin"
	TokenTTL  = 12 * time.Hour
)

// Authenticator checks the shared admin password and issues HS256 tokens.
type Authenticator struct {
	hash   []byte
	secret []byte
	now    func() time.Time
}

// NewAuthenticator prefers a bcrypt hash; a plain password is hashed once at
// start. With neither, every login is refused.
func NewAuthenticator(passwordHash, password, secret string) (*Authenticator, error) {
	a := &Authenticator{secret: []byte(secret), now: time.Now}

	switch {
	case passwordHash != "":
		if _, err := bcrypt.Cost([]byte(passwordHash)); err != nil {
			return nil, errors.Wrap(err, "ADMIN_PASSWORD_HASH is not a bcrypt hash")
		}
		a.hash = []byte(passwordHash)
	case password != "":
		h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, errors.Wrap(err, "hash admin password")
		}
		a.hash = h
	}

	return a, nil
}

type LoginResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (a *Authenticator) Login(password string) (*LoginResult, error) {
	if len(a.hash) == 0 {
		return nil, httperr.ErrBusiness(CodeLoginDisabled)
	}

	if err := bcrypt.CompareHashAndPassword(a.hash, []byte(password)); err != nil {
		return nil, httperr.ErrBusiness(CodeInvalidCredentials)
	}

	now := a.now()
	exp := now.Add(TokenTTL)

	claims := jwt.MapClaims{
		"sub":  "admin",
		"role": RoleAdmin,
		"exp":  exp.Unix(),
		"iat":  now.Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return nil, errors.Wrap(err, "sign admin token")
	}

	return &LoginResult{Token: token, ExpiresAt: exp}, nil
}
