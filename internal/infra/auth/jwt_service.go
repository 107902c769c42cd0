package auth

import (
	"time"

	"jobboard/config"
	"jobboard/internal/domain/entity"
	"jobboard/internal/domain/service"
	"jobboard/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	sessionSecret []byte
	resetSecret   []byte
	sessionTTL    time.Duration
	resetTTL      time.Duration
	issuer        string
	now           func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	svc, err := newJWTService(cfg, time.Now)
	if err != nil {
		return nil, err
	}

	return svc, nil
}

func newJWTService(cfg *config.Config, now func() time.Time) (*jwtService, error) {
	if cfg.SecretKey.Session == "" || cfg.SecretKey.Reset == "" {
		return nil, errors.New("jwt secrets must be provided")
	}
	if cfg.SecretKey.Session == cfg.SecretKey.Reset {
		return nil, errors.New("session and reset secrets must differ")
	}

	svc := &jwtService{
		sessionSecret: []byte(cfg.SecretKey.Session),
		resetSecret:   []byte(cfg.SecretKey.Reset),
		sessionTTL:    12 * time.Hour,
		resetTTL:      20 * time.Minute,
		now:           now,
	}
	if cfg.Auth != nil {
		if cfg.Auth.SessionTTL > 0 {
			svc.sessionTTL = cfg.Auth.SessionTTL
		}
		if cfg.Auth.ResetTTL > 0 {
			svc.resetTTL = cfg.Auth.ResetTTL
		}
		svc.issuer = cfg.Auth.Issuer
	}

	return svc, nil
}

// IssueSessionToken signs the public identity of the account with the session secret.
func (s *jwtService) IssueSessionToken(account *entity.Account) (string, error) {
	claims := service.SessionClaims{
		AccountID:        account.ID,
		Name:             account.Name,
		Email:            account.Email,
		Role:             account.Role,
		Kind:             account.Kind,
		Type:             service.TokenTypeSession,
		RegisteredClaims: s.registeredClaims(account.ID, s.sessionTTL),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.sessionSecret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return signed, nil
}

// ValidateSessionToken verifies signature, expiry and type of a session token.
func (s *jwtService) ValidateSessionToken(token string) (*service.SessionClaims, error) {
	claims := &service.SessionClaims{}
	if err := s.parse(token, claims, s.sessionSecret); err != nil {
		return nil, err
	}
	if claims.Type != service.TokenTypeSession || claims.AccountID == uuid.Nil {
		return nil, errors.WithStack(service.ErrTokenInvalid)
	}

	return claims, nil
}

// IssueResetToken signs the account id with the reset secret.
func (s *jwtService) IssueResetToken(accountID uuid.UUID, kind entity.AccountKind) (string, error) {
	claims := service.ResetClaims{
		AccountID:        accountID,
		Kind:             kind,
		Type:             service.TokenTypeReset,
		RegisteredClaims: s.registeredClaims(accountID, s.resetTTL),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.resetSecret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign reset token")
	}

	return signed, nil
}

// VerifyResetToken verifies signature, expiry and type of a reset token.
func (s *jwtService) VerifyResetToken(token string) (*service.ResetClaims, error) {
	claims := &service.ResetClaims{}
	if err := s.parse(token, claims, s.resetSecret); err != nil {
		return nil, err
	}
	if claims.Type != service.TokenTypeReset || claims.AccountID == uuid.Nil {
		return nil, errors.WithStack(service.ErrTokenInvalid)
	}

	return claims, nil
}

func (s *jwtService) ResetTokenTTL() time.Duration {
	return s.resetTTL
}

func (s *jwtService) registeredClaims(subject uuid.UUID, ttl time.Duration) jwt.RegisteredClaims {
	now := s.now()

	return jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   subject.String(),
		Issuer:    s.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
}

// parse maps every jwt failure onto ErrTokenExpired or ErrTokenInvalid.
func (s *jwtService) parse(token string, claims jwt.Claims, secret []byte) error {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(s.now),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return secret, nil
	}, opts...)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, jwt.ErrTokenExpired):
		return errors.Wrap(service.ErrTokenExpired, err.Error())
	default:
		return errors.Wrap(service.ErrTokenInvalid, err.Error())
	}
}
