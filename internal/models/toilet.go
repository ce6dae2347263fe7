package models

import (
	"time"

	"github.com/google/uuid"
)

// Toilet - доменная модель общественного туалета.
// Distance заполняется только в ответах nearby-запросов, в базе не хранится.
type Toilet struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Latitude        float64   `json:"latitude"`
	Longitude       float64   `json:"longitude"`
	Description     string    `json:"description,omitempty"`
	IsAccessible    bool      `json:"isAccessible"`
	IsFree          bool      `json:"isFree"`
	HasBabyChanging bool      `json:"hasBabyChanging"`
	IsApproved      bool      `json:"isApproved"`
	SubmittedBy     string    `json:"submittedBy"`
	CreatedAt       time.Time `json:"createdAt"`
	Distance        *float64  `json:"distance,omitempty"`
}

// ToiletUpdate - частичное обновление: применяются только непустые поля.
type ToiletUpdate struct {
	Name            *string
	Latitude        *float64
	Longitude       *float64
	Description     *string
	IsAccessible    *bool
	IsFree          *bool
	HasBabyChanging *bool
	IsApproved      *bool
}

// IsEmpty возвращает true, если ни одно поле не задано
func (u ToiletUpdate) IsEmpty() bool {
	return u.Name == nil && u.Latitude == nil && u.Longitude == nil &&
		u.Description == nil && u.IsAccessible == nil && u.IsFree == nil &&
		u.HasBabyChanging == nil && u.IsApproved == nil
}
