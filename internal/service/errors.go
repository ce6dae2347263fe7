package service

import "errors"

// Ожидаемые исходы бизнес-логики. Хендлеры отображают их в HTTP-статусы,
// всё остальное считается внутренней ошибкой (500).
var (
	// ErrToiletNotFound - запись не существует или не видна вызывающему
	ErrToiletNotFound = errors.New("toilet not found")

	// ErrForbidden - защищенная мутация без административной сессии
	ErrForbidden = errors.New("admin session required")

	// ErrEmptyUpdate - частичное обновление без единого поля
	ErrEmptyUpdate = errors.New("update contains no fields")
)
