package request

import (
	"time"

	"parkspace-booking/internal/pkg/caldate"
	"parkspace-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

func (q *BookingFilterQuery) ToFilter() (queries.BookingFilter, error) {
	filter := queries.BookingFilter{Status: q.Status}
	if q.LocationID != nil {
		id, err := uuid.Parse(*q.LocationID)
		if err != nil {
			return filter, err
		}
		filter.LocationID = &id
	}
	var err error
	if filter.From, err = optionalDate(q.From); err != nil {
		return filter, err
	}
	if filter.To, err = optionalDate(q.To); err != nil {
		return filter, err
	}
	return filter, nil
}

type LocationFilterQuery struct {
	LocationID *string `form:"location_id" binding:"omitempty,uuid"`
}

func (q *LocationFilterQuery) ID() *uuid.UUID {
	if q.LocationID == nil {
		return nil
	}
	id, err := uuid.Parse(*q.LocationID)
	if err != nil {
		return nil
	}
	return &id
}

type PriceTableQuery struct {
	Date *string `form:"date" binding:"omitempty,caldate"`
}

type ResolvePriceQuery struct {
	LocationID    string  `form:"location_id" binding:"required,uuid"`
	VehicleTypeID string  `form:"vehicle_type_id" binding:"required,uuid"`
	Category      string  `form:"category" binding:"required,category"`
	Date          *string `form:"date" binding:"omitempty,caldate"`
}

type AvailabilityQuery struct {
	LocationID string `form:"location_id" binding:"required,uuid"`
	From       string `form:"from" binding:"required,caldate"`
	To         string `form:"to" binding:"required,caldate"`
}

type PageQuery struct {
	Limit  int `form:"limit" binding:"omitempty,min=0"`
	Offset int `form:"offset" binding:"omitempty,min=0"`
}

type ForceQuery struct {
	Force bool `form:"force"`
}

func optionalDate(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := caldate.Parse(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
