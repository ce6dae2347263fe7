package v1

import "github.com/wcmap/toilet-map/internal/models"

// CreateDTOToToiletModel преобразует заявку в доменную модель.
// isFree по умолчанию true, остальные флаги - false.
func CreateDTOToToiletModel(dto CreateToiletRequest) *models.Toilet {
	toilet := &models.Toilet{
		Name:        dto.Name,
		Latitude:    *dto.Latitude,
		Longitude:   *dto.Longitude,
		Description: dto.Description,
		IsFree:      true,
	}
	if dto.IsAccessible != nil {
		toilet.IsAccessible = *dto.IsAccessible
	}
	if dto.IsFree != nil {
		toilet.IsFree = *dto.IsFree
	}
	if dto.HasBabyChanging != nil {
		toilet.HasBabyChanging = *dto.HasBabyChanging
	}
	return toilet
}

// UpdateDTOToToiletUpdate преобразует DTO частичного обновления
func UpdateDTOToToiletUpdate(dto UpdateToiletRequest) models.ToiletUpdate {
	return models.ToiletUpdate{
		Name:            dto.Name,
		Latitude:        dto.Latitude,
		Longitude:       dto.Longitude,
		Description:     dto.Description,
		IsAccessible:    dto.IsAccessible,
		IsFree:          dto.IsFree,
		HasBabyChanging: dto.HasBabyChanging,
		IsApproved:      dto.IsApproved,
	}
}

// ModelToToiletResponse преобразует доменную модель в DTO для ответа
func ModelToToiletResponse(model *models.Toilet) *ToiletResponse {
	return &ToiletResponse{
		ID:              model.ID,
		Name:            model.Name,
		Latitude:        model.Latitude,
		Longitude:       model.Longitude,
		Description:     model.Description,
		IsAccessible:    model.IsAccessible,
		IsFree:          model.IsFree,
		HasBabyChanging: model.HasBabyChanging,
		IsApproved:      model.IsApproved,
		SubmittedBy:     model.SubmittedBy,
		CreatedAt:       model.CreatedAt,
		Distance:        model.Distance,
	}
}

// ModelsToToiletResponses преобразует слайс моделей в слайс DTO
func ModelsToToiletResponses(models []*models.Toilet) []*ToiletResponse {
	responses := make([]*ToiletResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToToiletResponse(model)
	}
	return responses
}
