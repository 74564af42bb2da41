package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

type Timestamps struct {
	CreatedAt time.Time      `gorm:"autoCreateTime:nano" json:"created_at,omitempty"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime:nano" json:"updated_at,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty,omitnil"`
}

type JSONB map[string]any

// JSONBStrings maps a jsonb column to a plain string slice. Facility tags
// and image URLs are stored this way so facility search can use jsonb
// containment.
type JSONBStrings []string

func (a JSONB) Value() (driver.Value, error) {
	valueString, err := json.Marshal(a)
	return string(valueString), err
}
func (a *JSONB) Scan(value any) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	return nil
}

func (a JSONBStrings) Value() (driver.Value, error) {
	valueString, err := json.Marshal(a)
	return string(valueString), err
}
func (a *JSONBStrings) Scan(value any) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	return nil
}

type RegisterUserRequestBody struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=5"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
}

type LoginUserRequestBody struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=5"`
}

type UpsertHotelRequestBody struct {
	Name          string   `form:"name" binding:"required"`
	City          string   `form:"city" binding:"required"`
	Country       string   `form:"country" binding:"required"`
	Description   string   `form:"description" binding:"required"`
	Type          string   `form:"type" binding:"required"`
	PricePerNight float32  `form:"pricePerNight" binding:"required,gt=0"`
	StarRating    uint8    `form:"starRating" binding:"required,min=1,max=5"`
	AdultCount    uint8    `form:"adultCount" binding:"required,min=1"`
	ChildCount    uint8    `form:"childCount" binding:"min=0"`
	Facilities    []string `form:"facilities" binding:"required,min=1"`
	// Image URLs the submitted form wants to keep. Only meaningful on update.
	ImageURLs []string `form:"imageUrls"`
}

type CreatePaymentIntentRequestBody struct {
	NumberOfNights uint `json:"numberOfNights" binding:"required,min=1"`
}

type CreateBookingRequestBody struct {
	PaymentIntentID string  `json:"paymentIntentId" binding:"required"`
	FirstName       string  `json:"firstName" binding:"required"`
	LastName        string  `json:"lastName" binding:"required"`
	Email           string  `json:"email" binding:"required,email"`
	AdultCount      uint8   `json:"adultCount" binding:"required,min=1"`
	ChildCount      uint8   `json:"childCount" binding:"min=0"`
	CheckIn         string  `json:"checkIn" binding:"required,staydate"`
	CheckOut        string  `json:"checkOut" binding:"required,staydate,gtdate=CheckIn"`
	NumberOfNights  uint    `json:"numberOfNights" binding:"required,min=1"`
	TotalCost       float32 `json:"totalCost"`
}

type SimpleRequestParams struct {
	ID uint `uri:"id" binding:"required"`
}

type HotelRequestParams struct {
	HotelID uint `uri:"hotelId" binding:"required"`
}

// HotelSearchFilter carries one optional field per supported search
// parameter. A nil/empty field contributes no clause.
type HotelSearchFilter struct {
	Destination *string
	AdultCount  *int
	ChildCount  *int
	Facilities  []string
	Types       []string
	Stars       []int
	MaxPrice    *int
}

type SearchPagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Pages int   `json:"pages"`
}

type SortOption string

const (
	SORT_STAR_RATING      SortOption = "starRating"
	SORT_PRICE_NIGHT_ASC  SortOption = "pricePerNightAsc"
	SORT_PRICE_NIGHT_DESC SortOption = "pricePerNightDesc"
)
