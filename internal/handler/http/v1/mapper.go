package v1

import (
	"github.com/shenikar/gym_checkin_system/internal/models"
	"github.com/shenikar/gym_checkin_system/internal/service"
)

func DTOToRegisterInput(dto RegisterRequest) service.RegisterInput {
	return service.RegisterInput{
		Name:     dto.Name,
		Email:    dto.Email,
		Password: dto.Password,
	}
}

func DTOToCreateGymInput(dto CreateGymRequest) service.CreateGymInput {
	return service.CreateGymInput{
		Title:       dto.Title,
		Description: dto.Description,
		Phone:       dto.Phone,
		Latitude:    *dto.Latitude,
		Longitude:   *dto.Longitude,
	}
}

func ModelToUserResponse(model *models.User) *UserResponse {
	return &UserResponse{
		ID:        model.ID,
		Name:      model.Name,
		Email:     model.Email,
		CreatedAt: model.CreatedAt,
	}
}

// ModelToGymResponse переводит decimal координаты в float64 для ответа.
// Колонки latitude/longitude NOT NULL, а модели создаются через models.NewCoordinate,
// поэтому ошибка конвертации здесь невозможна.
func ModelToGymResponse(model *models.Gym) *GymResponse {
	lat, _ := models.CoordinateToFloat(model.Latitude)
	lon, _ := models.CoordinateToFloat(model.Longitude)
	return &GymResponse{
		ID:          model.ID,
		Title:       model.Title,
		Description: model.Description,
		Phone:       model.Phone,
		Latitude:    lat,
		Longitude:   lon,
		CreatedAt:   model.CreatedAt,
	}
}

func ModelsToGymResponses(models []*models.Gym) []*GymResponse {
	responses := make([]*GymResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToGymResponse(model)
	}
	return responses
}

func ModelToCheckInResponse(model *models.CheckIn) *CheckInResponse {
	return &CheckInResponse{
		ID:          model.ID,
		UserID:      model.UserID,
		GymID:       model.GymID,
		ValidatedAt: model.ValidatedAt,
		CreatedAt:   model.CreatedAt,
	}
}

func ModelsToCheckInResponses(models []*models.CheckIn) []*CheckInResponse {
	responses := make([]*CheckInResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToCheckInResponse(model)
	}
	return responses
}
