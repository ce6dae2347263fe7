package models

// NearbyQuery - параметры поиска ближайших туалетов.
// Все поля опциональны: без координат возвращается весь видимый список,
// без радиуса применяется радиус по умолчанию. Явный radius=0 - это
// валидный запрос, а не отсутствие параметра.
type NearbyQuery struct {
	Latitude  *float64
	Longitude *float64
	RadiusKm  *float64
}

// HasPoint возвращает true, если заданы обе координаты запроса
func (q NearbyQuery) HasPoint() bool {
	return q.Latitude != nil && q.Longitude != nil
}
