package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	bookingModel "salon/internal/domains/booking/model"
	"salon/internal/domains/draft/model"
)

func TestDraft_IsValid(t *testing.T) {
	tests := []struct {
		name  string
		draft model.Draft
		step  int
		want  bool
	}{
		{name: "service missing", draft: model.New(), step: model.StepService, want: false},
		{name: "service set", draft: model.Draft{ServiceID: "svc-gel"}, step: model.StepService, want: true},
		{name: "design missing", draft: model.New(), step: model.StepDesign, want: false},
		{name: "design text", draft: model.Draft{DesignText: "ombre"}, step: model.StepDesign, want: true},
		{
			name:  "design image only",
			draft: model.Draft{DesignImages: bookingModel.Images{{URL: "https://cdn.example.ch/a.png"}}},
			step:  model.StepDesign,
			want:  true,
		},
		{name: "length missing", draft: model.New(), step: model.StepLength, want: false},
		{name: "length set", draft: model.Draft{Length: bookingModel.LengthLong}, step: model.StepLength, want: true},
		{name: "date without time", draft: model.Draft{Date: "2025-03-14"}, step: model.StepDateTime, want: false},
		{name: "time without date", draft: model.Draft{Time: "10:00"}, step: model.StepDateTime, want: false},
		{name: "date and time", draft: model.Draft{Date: "2025-03-14", Time: "10:00"}, step: model.StepDateTime, want: true},
		{name: "no customer", draft: model.New(), step: model.StepCustomer, want: false},
		{
			name:  "customer without phone",
			draft: model.Draft{Customer: &model.Customer{FullName: "Anna Muster"}},
			step:  model.StepCustomer,
			want:  false,
		},
		{
			name:  "phone format is not checked",
			draft: model.Draft{Customer: &model.Customer{FullName: "A", Phone: "abc"}},
			step:  model.StepCustomer,
			want:  true,
		},
		{name: "step zero", draft: model.Draft{ServiceID: "svc-gel"}, step: 0, want: false},
		{name: "step six", draft: model.Draft{ServiceID: "svc-gel"}, step: 6, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.draft.IsValid(tt.step))
		})
	}
}

func TestDraft_CanAdvance(t *testing.T) {
	draft := model.New()
	draft.ServiceID = "svc-gel"

	assert.True(t, draft.CanAdvance(model.StepDesign))
	assert.False(t, draft.CanAdvance(model.StepLength))

	draft.DesignText = "french"
	draft.Length = bookingModel.LengthSmall

	assert.True(t, draft.CanAdvance(model.StepDateTime))
	assert.False(t, draft.CanAdvance(model.StepCustomer))
	assert.True(t, draft.CanAdvance(model.StepService))
}

func TestDraft_RemoveImage(t *testing.T) {
	draft := model.New()
	draft.DesignImages = bookingModel.Images{{URL: "https://a"}, {URL: "https://b"}, {URL: "https://c"}}

	assert.False(t, draft.RemoveImage(3))
	assert.False(t, draft.RemoveImage(-1))
	assert.True(t, draft.RemoveImage(1))
	assert.Equal(t, bookingModel.Images{{URL: "https://a"}, {URL: "https://c"}}, draft.DesignImages)
}
