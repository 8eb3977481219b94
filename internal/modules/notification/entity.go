package notification

import "time"

// Type represents notification type
type Type string

const (
	TypeBookingConfirmed Type = "booking_confirmed"
	TypeBookingCancelled Type = "booking_cancelled"
)

type Channel string

const (
	ChannelSMS   Channel = "sms"
	ChannelEmail Channel = "email"
)

// Notification is one dispatched (or attempted) customer message, kept so
// the admin dashboard can show what went out for each booking.
type Notification struct {
	ID        int64     `json:"id" gorm:"primaryKey;column:id"`
	BookingID int64     `json:"booking_id" gorm:"column:booking_id;index"`
	Type      Type      `json:"type" gorm:"column:type"`
	Channel   Channel   `json:"channel" gorm:"column:channel"`
	Recipient string    `json:"recipient" gorm:"column:recipient"`
	Subject   string    `json:"subject,omitempty" gorm:"column:subject"`
	Body      string    `json:"body" gorm:"column:body;type:text"`
	Delivered bool      `json:"delivered" gorm:"column:delivered"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
}

// TableName specifies table name for GORM
func (Notification) TableName() string {
	return "notifications"
}
