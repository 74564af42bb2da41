package models

import (
	"hbs/src/types"
	"time"
)

// Bookings are append-only: there is no update or delete surface, a
// record exists exactly as written once its payment intent succeeded.
type Booking struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	HotelID         uint      `json:"hotel_id,omitempty"`
	UserID          uint      `json:"user_id,omitempty"`
	FirstName       string    `json:"firstName,omitempty"`
	LastName        string    `json:"lastName,omitempty"`
	Email           string    `json:"email,omitempty"`
	AdultCount      uint8     `json:"adultCount,omitempty"`
	ChildCount      uint8     `json:"childCount,omitempty"`
	CheckIn         time.Time `json:"checkIn,omitempty"`
	CheckOut        time.Time `json:"checkOut,omitempty"`
	NumberOfNights  uint      `json:"numberOfNights,omitempty"`
	TotalCost       float32   `json:"totalCost,omitempty"`
	PaymentIntentID string    `json:"payment_intent_id,omitempty"`

	Hotel *Hotel `gorm:"foreignKey:hotel_id" json:"-"`
	User  *User  `gorm:"foreignKey:user_id" json:"user,omitempty"`

	types.Timestamps
}
