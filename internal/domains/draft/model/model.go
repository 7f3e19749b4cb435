package model

import (
	bookingModel "salon/internal/domains/booking/model"
)

const (
	StepService  = 1
	StepDesign   = 2
	StepLength   = 3
	StepDateTime = 4
	StepCustomer = 5

	FirstStep = StepService
	LastStep  = StepCustomer
)

type Customer struct {
	FullName  string `json:"fullName,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

// Draft accumulates the wizard steps of one browser session until submission.
type Draft struct {
	ServiceID    string              `json:"serviceId,omitempty"`
	DesignText   string              `json:"designText,omitempty"`
	DesignImages bookingModel.Images `json:"designImages"`
	Length       bookingModel.Length `json:"length,omitempty"`
	Date         string              `json:"date,omitempty"`
	Time         string              `json:"time,omitempty"`
	Customer     *Customer           `json:"customer,omitempty"`
	CurrentStep  int                 `json:"currentStep"`
}

func New() Draft {
	return Draft{
		DesignImages: bookingModel.Images{},
		CurrentStep:  FirstStep,
	}
}

// IsValid reports whether step has everything it needs. Unknown steps are never valid.
func (d Draft) IsValid(step int) bool {
	switch step {
	case StepService:
		return d.ServiceID != ""
	case StepDesign:
		return d.DesignText != "" || len(d.DesignImages) > 0
	case StepLength:
		return d.Length != ""
	case StepDateTime:
		return d.Date != "" && d.Time != ""
	case StepCustomer:
		return d.Customer != nil && d.Customer.FullName != "" && d.Customer.Phone != ""
	default:
		return false
	}
}

// CanAdvance reports whether every step from the current one up to, but excluding, target is valid.
func (d Draft) CanAdvance(target int) bool {
	for step := d.CurrentStep; step < target; step++ {
		if !d.IsValid(step) {
			return false
		}
	}

	return true
}

func (d *Draft) RemoveImage(index int) bool {
	if index < 0 || index >= len(d.DesignImages) {
		return false
	}

	images := make(bookingModel.Images, 0, len(d.DesignImages)-1)
	images = append(images, d.DesignImages[:index]...)
	d.DesignImages = append(images, d.DesignImages[index+1:]...)

	return true
}
