package store_models

import "time"

type LeadStatus string

const (
	LeadPending   LeadStatus = "pending"
	LeadConfirmed LeadStatus = "confirmed"
	LeadCancelled LeadStatus = "cancelled"
	LeadDone      LeadStatus = "done"
)

type Lead struct {
	ID     string
	PageID string

	Name    string
	Phone   string
	Email   string
	Message string

	AppointmentDate   time.Time
	AppointmentStatus LeadStatus

	CreatedAt time.Time
}
