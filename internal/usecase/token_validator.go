package usecase

import (
	"parkspace-booking/internal/pkg/errs"
	"parkspace-booking/internal/pkg/jwt"
)

var ErrNotAdmin = errs.NewKind("token does not grant admin access", errs.ErrUnauthorized)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) error
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) error {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return errs.Mark(err, errs.ErrUnauthorized)
	}
	if claims.Scope != jwt.AdminSubject || claims.Subject != jwt.AdminSubject {
		return ErrNotAdmin
	}
	return nil
}
