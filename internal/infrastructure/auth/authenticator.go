// Package auth implements the single-operator login gate: a bcrypt-checked
// admin credential and HMAC-SHA256 signed bearer tokens.
package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
)

const DefaultTokenTTL = 12 * time.Hour

type Settings struct {
	AdminEmail        string
	AdminPassword     string
	AdminPasswordHash string
	Secret            string
	TokenTTL          time.Duration
}

// Token is an issued bearer token.
type Token struct {
	Value     string
	Subject   string
	ExpiresAt time.Time
}

type claims struct {
	ID      string `json:"jti"`
	Subject string `json:"sub"`
	Expires int64  `json:"exp"`
}

type Authenticator struct {
	email  string
	hash   []byte
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewAuthenticator hashes AdminPassword when no hash is configured. Without
// a secret a random one is generated, so tokens do not survive a restart.
func NewAuthenticator(s Settings) (*Authenticator, error) {
	email := strings.ToLower(strings.TrimSpace(s.AdminEmail))
	if email == "" {
		return nil, errors.New("auth: admin email is required")
	}

	hash := []byte(strings.TrimSpace(s.AdminPasswordHash))
	if len(hash) == 0 {
		if s.AdminPassword == "" {
			return nil, errors.New("auth: admin password or hash is required")
		}
		var err error
		hash, err = bcrypt.GenerateFromPassword([]byte(s.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("auth: hash admin password: %w", err)
		}
	} else if _, err := bcrypt.Cost(hash); err != nil {
		return nil, fmt.Errorf("auth: admin password hash: %w", err)
	}

	secret := []byte(s.Secret)
	if len(secret) == 0 {
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			return nil, fmt.Errorf("auth: generate secret: %w", err)
		}
	}

	ttl := s.TokenTTL
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &Authenticator{email: email, hash: hash, secret: secret, ttl: ttl, now: time.Now}, nil
}

// Login checks the admin credential and issues a token. Email comparison is
// case-insensitive.
func (a *Authenticator) Login(email, password string) (Token, error) {
	if strings.ToLower(strings.TrimSpace(email)) != a.email {
		return Token{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(a.hash, []byte(password)); err != nil {
		return Token{}, ErrInvalidCredentials
	}
	return a.issue(a.email)
}

func (a *Authenticator) issue(subject string) (Token, error) {
	exp := a.now().Add(a.ttl).UTC()
	payload, err := json.Marshal(claims{ID: uuid.NewString(), Subject: subject, Expires: exp.Unix()})
	if err != nil {
		return Token{}, err
	}
	body := base64.RawURLEncoding.EncodeToString(payload)
	return Token{Value: body + "." + a.sign(body), Subject: subject, ExpiresAt: exp}, nil
}

// Verify returns the token subject.
func (a *Authenticator) Verify(token string) (string, error) {
	body, sig, ok := strings.Cut(strings.TrimSpace(token), ".")
	if !ok || body == "" || sig == "" {
		return "", ErrInvalidToken
	}
	if !hmac.Equal([]byte(sig), []byte(a.sign(body))) {
		return "", ErrInvalidToken
	}

	raw, err := base64.RawURLEncoding.DecodeString(body)
	if err != nil {
		return "", ErrInvalidToken
	}
	var c claims
	if err := json.Unmarshal(raw, &c); err != nil || c.Subject == "" {
		return "", ErrInvalidToken
	}
	if !a.now().Before(time.Unix(c.Expires, 0)) {
		return "", ErrTokenExpired
	}
	return c.Subject, nil
}

func (a *Authenticator) sign(body string) string {
	mac := hmac.New(sha256.New, a.secret)
	mac.Write([]byte(body))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
