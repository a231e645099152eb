package contract

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

type ScopeType string

const (
	ScopeGlobal   ScopeType = "global"
	ScopeCompany  ScopeType = "company"
	ScopeLocation ScopeType = "location"
)

const MinBodyLength = 10

func (s ScopeType) IsValid() bool {
	switch s {
	case ScopeGlobal, ScopeCompany, ScopeLocation:
		return true
	}
	return false
}

type Template struct {
	id        uuid.UUID
	name      string
	scopeType ScopeType
	scopeID   *uuid.UUID
	body      string
	version   int
	isActive  bool
	createdAt time.Time
}

// NewTemplate creates an inactive template. version is assigned by the caller
// as one past the highest existing version for the name.
func NewTemplate(name string, scopeType ScopeType, scopeID *uuid.UUID, body string, version int, now time.Time) (*Template, error) {
	name = strings.TrimSpace(name)
	if n := utf8.RuneCountInString(name); n < 2 || n > 100 {
		return nil, ErrInvalidName
	}
	if !scopeType.IsValid() {
		return nil, ErrInvalidScope
	}
	if scopeType == ScopeGlobal && scopeID != nil {
		return nil, ErrScopeIDNotAllowed
	}
	if scopeType != ScopeGlobal && scopeID == nil {
		return nil, ErrScopeIDRequired
	}
	if utf8.RuneCountInString(strings.TrimSpace(body)) < MinBodyLength {
		return nil, ErrBodyTooShort
	}
	if version < 1 {
		version = 1
	}
	return &Template{
		id:        uuid.New(),
		name:      name,
		scopeType: scopeType,
		scopeID:   scopeID,
		body:      body,
		version:   version,
		createdAt: now,
	}, nil
}

func ReconstructTemplate(
	id uuid.UUID,
	name string,
	scopeType ScopeType,
	scopeID *uuid.UUID,
	body string,
	version int,
	isActive bool,
	createdAt time.Time,
) *Template {
	return &Template{
		id:        id,
		name:      name,
		scopeType: scopeType,
		scopeID:   scopeID,
		body:      body,
		version:   version,
		isActive:  isActive,
		createdAt: createdAt,
	}
}

func (t *Template) appliesTo(scope ScopeType, id *uuid.UUID) bool {
	if !t.isActive || t.scopeType != scope {
		return false
	}
	if scope == ScopeGlobal {
		return true
	}
	return t.scopeID != nil && id != nil && *t.scopeID == *id
}

func (t *Template) ID() uuid.UUID        { return t.id }
func (t *Template) Name() string         { return t.name }
func (t *Template) ScopeType() ScopeType { return t.scopeType }
func (t *Template) ScopeID() *uuid.UUID  { return t.scopeID }
func (t *Template) Body() string         { return t.body }
func (t *Template) Version() int         { return t.version }
func (t *Template) IsActive() bool       { return t.isActive }
func (t *Template) CreatedAt() time.Time { return t.createdAt }

// SelectActive picks the most specific active template: location, then company,
// then global. Within a scope the highest version wins.
func SelectActive(candidates []*Template, locationID uuid.UUID, companyID *uuid.UUID) (*Template, error) {
	scopes := []struct {
		scope ScopeType
		id    *uuid.UUID
	}{
		{ScopeLocation, &locationID},
		{ScopeCompany, companyID},
		{ScopeGlobal, nil},
	}
	for _, s := range scopes {
		if s.scope == ScopeCompany && s.id == nil {
			continue
		}
		var best *Template
		for _, t := range candidates {
			if !t.appliesTo(s.scope, s.id) {
				continue
			}
			if best == nil || t.version > best.version {
				best = t
			}
		}
		if best != nil {
			return best, nil
		}
	}
	return nil, ErrNoActiveTemplate
}
