package models

import (
	"hbs/src/types"
	"time"
)

type Hotel struct {
	ID            uint               `gorm:"primarykey" json:"id"`
	UserID        uint               `json:"user_id,omitempty"`
	Name          string             `json:"name,omitempty"`
	City          string             `json:"city,omitempty"`
	Country       string             `json:"country,omitempty"`
	Description   string             `json:"description,omitempty"`
	Type          string             `json:"type,omitempty"`
	PricePerNight float32            `json:"pricePerNight,omitempty"`
	StarRating    uint8              `json:"starRating,omitempty"`
	AdultCount    uint8              `json:"adultCount,omitempty"`
	ChildCount    uint8              `json:"childCount,omitempty"`
	Facilities    types.JSONBStrings `gorm:"type:jsonb" json:"facilities,omitempty"`
	ImageURLs     types.JSONBStrings `gorm:"column:image_urls;type:jsonb" json:"imageUrls,omitempty"`
	LastUpdated   time.Time          `json:"lastUpdated,omitempty"`

	User     *User     `gorm:"foreignKey:user_id" json:"-"`
	Bookings []Booking `gorm:"foreignKey:hotel_id" json:"bookings,omitempty"`

	types.Timestamps
}
