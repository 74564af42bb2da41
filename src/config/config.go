package config

import (
	"fmt"
	"os"
)

func GetDSN() string {
	DATABASE_HOST := os.Getenv("DATABASE_HOST")
	DATABASE_PORT := os.Getenv("DATABASE_PORT")
	DATABASE_SSLMODE := os.Getenv("DATABASE_SSLMODE")
	DATABASE_TIMEZONE := os.Getenv("DATABASE_TIMEZONE")
	DATABASE_USER := os.Getenv("DATABASE_USER")
	DATABASE_PASSWORD := os.Getenv("DATABASE_PASSWORD")
	DATABASE_NAME := os.Getenv("DATABASE_NAME")
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s", DATABASE_HOST, DATABASE_USER, DATABASE_PASSWORD, DATABASE_NAME, DATABASE_PORT, DATABASE_SSLMODE, DATABASE_TIMEZONE)
	return dsn
}

// Check-in and check-out dates travel as plain calendar dates.
const DATE_PARSE_FORMAT = "2006-01-02"

const (
	AUTH_COOKIE         = "auth_token"
	AUTH_COOKIE_MAX_AGE = 86400
)

const (
	SEARCH_PAGE_SIZE = 5
	BOOKING_CURRENCY = "gbp"
	MAX_HOTEL_IMAGES = 6
	MAX_IMAGE_BYTES  = 5 * 1024 * 1024
)
