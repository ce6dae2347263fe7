package v1

import (
	"time"

	"github.com/google/uuid"
)

// CreateToiletRequest DTO для публичной заявки на добавление туалета.
// isApproved и submittedBy клиентом не задаются и молча отбрасываются.
// @Description DTO для заявки на добавление туалета
type CreateToiletRequest struct {
	Name            string   `json:"name" validate:"required,min=1,max=255"`
	Latitude        *float64 `json:"latitude" validate:"required,latitude"`
	Longitude       *float64 `json:"longitude" validate:"required,longitude"`
	Description     string   `json:"description,omitempty"`
	IsAccessible    *bool    `json:"isAccessible,omitempty"`
	IsFree          *bool    `json:"isFree,omitempty"`
	HasBabyChanging *bool    `json:"hasBabyChanging,omitempty"`
}

// UpdateToiletRequest DTO для частичного обновления: применяются только
// присутствующие в теле поля
// @Description DTO для частичного обновления туалета
type UpdateToiletRequest struct {
	Name            *string  `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Latitude        *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude       *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
	Description     *string  `json:"description,omitempty"`
	IsAccessible    *bool    `json:"isAccessible,omitempty"`
	IsFree          *bool    `json:"isFree,omitempty"`
	HasBabyChanging *bool    `json:"hasBabyChanging,omitempty"`
	IsApproved      *bool    `json:"isApproved,omitempty"`
}

// ToiletResponse DTO для ответа с записью туалета. distance присутствует
// только в ответах на запросы с координатами.
// @Description DTO для ответа с записью туалета
type ToiletResponse struct {
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

// LoginRequest DTO для входа администратора
// @Description DTO для входа администратора
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse DTO с токеном сессии
// @Description DTO с токеном сессии
type LoginResponse struct {
	Token string `json:"token"`
}
