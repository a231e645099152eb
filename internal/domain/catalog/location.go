package catalog

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

type Location struct {
	id         uuid.UUID
	name       string
	address    string
	category   Category
	companyID  *uuid.UUID
	accessCode *string
}

func NewLocation(id uuid.UUID, name, address string, category Category, companyID *uuid.UUID, accessCode *string) (*Location, error) {
	name = strings.TrimSpace(name)
	address = strings.TrimSpace(address)
	if err := validateLength(name, 2, 100, ErrInvalidName); err != nil {
		return nil, err
	}
	if err := validateLength(address, 5, 500, ErrInvalidAddress); err != nil {
		return nil, err
	}
	if !category.IsValid() {
		return nil, ErrInvalidCategory
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	if accessCode != nil && strings.TrimSpace(*accessCode) == "" {
		accessCode = nil
	}
	return &Location{
		id:         id,
		name:       name,
		address:    address,
		category:   category,
		companyID:  companyID,
		accessCode: accessCode,
	}, nil
}

func (l *Location) ID() uuid.UUID         { return l.id }
func (l *Location) Name() string          { return l.name }
func (l *Location) Address() string       { return l.address }
func (l *Location) Category() Category    { return l.category }
func (l *Location) CompanyID() *uuid.UUID { return l.companyID }
func (l *Location) AccessCode() *string   { return l.accessCode }

type Company struct {
	id          uuid.UUID
	name        string
	street      *string
	houseNumber *string
	postalCode  *string
	city        *string
	email       *string
	phone       *string
}

type CompanyParams struct {
	Name        string
	Street      *string
	HouseNumber *string
	PostalCode  *string
	City        *string
	Email       *string
	Phone       *string
}

func NewCompany(id uuid.UUID, p CompanyParams) (*Company, error) {
	name := strings.TrimSpace(p.Name)
	if err := validateLength(name, 2, 100, ErrInvalidName); err != nil {
		return nil, err
	}
	if p.Email != nil && *p.Email != "" {
		if _, err := mail.ParseAddress(*p.Email); err != nil {
			return nil, ErrInvalidEmail
		}
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Company{
		id:          id,
		name:        name,
		street:      p.Street,
		houseNumber: p.HouseNumber,
		postalCode:  p.PostalCode,
		city:        p.City,
		email:       p.Email,
		phone:       p.Phone,
	}, nil
}

func (c *Company) ID() uuid.UUID        { return c.id }
func (c *Company) Name() string         { return c.name }
func (c *Company) Street() *string      { return c.street }
func (c *Company) HouseNumber() *string { return c.houseNumber }
func (c *Company) PostalCode() *string  { return c.postalCode }
func (c *Company) City() *string        { return c.city }
func (c *Company) Email() *string       { return c.email }
func (c *Company) Phone() *string       { return c.phone }

func validateLength(s string, lo, hi int, err error) error {
	n := utf8.RuneCountInString(s)
	if n < lo || n > hi {
		return err
	}
	return nil
}
