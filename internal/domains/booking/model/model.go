package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"salon/shared/model"
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID           = "id"
	FieldCustomerID   = "customer_id"
	FieldServiceID    = "service_id"
	FieldLength       = "length"
	FieldDesignText   = "design_text"
	FieldDesignImages = "design_images"
	FieldStartTime    = "start_time"
	FieldEndTime      = "end_time"
	FieldTotalPrice   = "total_price"
	FieldStatus       = "status"
	FieldEventID      = "event_id"
	FieldSource       = "source"
)

type Status string

const (
	StatusPending     Status = "pending"
	StatusConfirmed   Status = "confirmed"
	StatusNeedsManual Status = "needs_manual"
	StatusCancelled   Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusNeedsManual, StatusCancelled:
		return true
	default:
		return false
	}
}

// Blocking reports whether a booking in this status occupies its time range.
func (s Status) Blocking() bool {
	return s == StatusPending || s == StatusConfirmed
}

type Image struct {
	URL  string `json:"url"`
	Name string `json:"name,omitempty"`
}

// Images is stored as a JSONB array.
type Images []Image

func (i Images) Value() (driver.Value, error) {
	if i == nil {
		return []byte("[]"), nil
	}

	b, err := json.Marshal(i)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal images: %w", err)
	}

	return b, nil
}

func (i *Images) Scan(src any) error {
	var raw []byte

	switch v := src.(type) {
	case nil:
		*i = Images{}

		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("unsupported images column type")
	}

	if err := json.Unmarshal(raw, i); err != nil {
		return fmt.Errorf("failed to unmarshal images: %w", err)
	}

	return nil
}

type Booking struct {
	ID           string    `db:"id"`
	CustomerID   string    `db:"customer_id"`
	ServiceID    string    `db:"service_id"`
	Length       Length    `db:"length"`
	DesignText   string    `db:"design_text"`
	DesignImages Images    `db:"design_images"`
	StartTime    time.Time `db:"start_time"`
	EndTime      time.Time `db:"end_time"`
	TotalPrice   int       `db:"total_price"`
	Status       Status    `db:"status"`
	EventID      *string   `db:"event_id"`
	Source       string    `db:"source"`
	model.Metadata
}

// Overlaps reports whether [start, end) intersects the booking widened by padding on both sides.
func (b Booking) Overlaps(start, end time.Time, padding time.Duration) bool {
	return start.Before(b.EndTime.Add(padding)) && end.After(b.StartTime.Add(-padding))
}
