package schedule

type CreateBookingRequest struct {
	Date            string `json:"date" binding:"required"`
	StartMinute     int    `json:"start_minute"`
	DurationMinutes int    `json:"duration_minutes"`
	ServiceSlug     string `json:"service_slug"`
	DeviceModel     string `json:"device_model"`
	IssueType       string `json:"issue_type"`
	CustomerName    string `json:"customer_name" binding:"required"`
	CustomerPhone   string `json:"customer_phone" binding:"required"`
	CustomerEmail   string `json:"customer_email" binding:"required,email"`
	Notes           string `json:"notes"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason"`
}

// SlotAvailability is one row of the availability listing the booking UI
// renders as a selectable slot.
type SlotAvailability struct {
	StartMinute       int    `json:"start_minute"`
	Label             string `json:"time"`
	RemainingCapacity int    `json:"remaining_capacity"`
	Available         bool   `json:"available"`
}

type AvailabilityResponse struct {
	Date  string             `json:"date"`
	Open  bool               `json:"open"`
	Hours *DayHours          `json:"hours,omitempty"`
	Slots []SlotAvailability `json:"slots"`
}
