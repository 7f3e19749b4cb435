package dto

import "salon/internal/domains/catalog/model"

type ServiceResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	DurationMin int    `json:"durationMin"`
	BasePrice   int    `json:"basePrice"`
	IsActive    bool   `json:"isActive"`
}

func (r *ServiceResponse) FromModel(model model.Service) {
	r.ID = model.ID
	r.Name = model.Name
	r.Category = model.Category
	r.DurationMin = model.DurationMin
	r.BasePrice = model.BasePrice
	r.IsActive = model.IsActive
}

func (r *ServiceResponse) ToModel() model.Service {
	return model.Service{
		ID:          r.ID,
		Name:        r.Name,
		Category:    r.Category,
		DurationMin: r.DurationMin,
		BasePrice:   r.BasePrice,
		IsActive:    r.IsActive,
	}
}

type GetServicesResponse struct {
	Services []ServiceResponse `json:"services"`
}

func (r *GetServicesResponse) FromModels(models []model.Service) {
	r.Services = make([]ServiceResponse, len(models))
	for i, mod := range models {
		r.Services[i].FromModel(mod)
	}
}
