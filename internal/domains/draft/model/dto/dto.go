package dto

import (
	bookingModel "salon/internal/domains/booking/model"
	"salon/internal/domains/draft/model"
)

const (
	MessageDraftFailed  = "Entwurf konnte nicht gespeichert werden"
	MessageStepLocked   = "Bitte vervollständige zuerst die vorherigen Schritte"
	MessageImageMissing = "Bild nicht gefunden"
)

// CustomerPatch merges into the stored customer. Nil fields keep their value.
type CustomerPatch struct {
	FullName  *string `json:"fullName,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Email     *string `json:"email,omitempty"`
	Instagram *string `json:"instagram,omitempty"`
}

func (p CustomerPatch) Apply(customer *model.Customer) *model.Customer {
	merged := model.Customer{}
	if customer != nil {
		merged = *customer
	}

	if p.FullName != nil {
		merged.FullName = *p.FullName
	}

	if p.Phone != nil {
		merged.Phone = *p.Phone
	}

	if p.Email != nil {
		merged.Email = *p.Email
	}

	if p.Instagram != nil {
		merged.Instagram = *p.Instagram
	}

	return &merged
}

// UpdateDraftRequest is a partial draft. Only the fields present in the body are written.
type UpdateDraftRequest struct {
	ServiceID  *string              `json:"serviceId,omitempty"`
	DesignText *string              `json:"designText,omitempty"`
	Length     *bookingModel.Length `json:"length,omitempty"     validate:"omitempty,oneof=small medium long"`
	Date       *string              `json:"date,omitempty"       validate:"omitempty,datetime=2006-01-02"`
	Time       *string              `json:"time,omitempty"       validate:"omitempty,datetime=15:04"`
	Customer   *CustomerPatch       `json:"customer,omitempty"`
}

func (r UpdateDraftRequest) Apply(draft *model.Draft) {
	if r.ServiceID != nil {
		draft.ServiceID = *r.ServiceID
	}

	if r.DesignText != nil {
		draft.DesignText = *r.DesignText
	}

	if r.Length != nil {
		draft.Length = *r.Length
	}

	if r.Date != nil {
		draft.Date = *r.Date
	}

	if r.Time != nil {
		draft.Time = *r.Time
	}

	if r.Customer != nil {
		draft.Customer = r.Customer.Apply(draft.Customer)
	}
}

type AddImageRequest struct {
	URL  string `json:"url"            validate:"required,url"`
	Name string `json:"name,omitempty"`
}

func (r AddImageRequest) ToModel() bookingModel.Image {
	return bookingModel.Image{URL: r.URL, Name: r.Name}
}

type SetStepRequest struct {
	Step int `json:"step" validate:"required"`
}

type StepResponse struct {
	Step  int  `json:"step"`
	Valid bool `json:"valid"`
}
