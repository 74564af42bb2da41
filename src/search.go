package main

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"strconv"

	"hbs/src/config"
	"hbs/src/types"

	"github.com/stripe/stripe-go/v82"
)

// constructSearchFilter maps the raw query params onto the filter value
// type. A parameter that is absent or fails to parse simply never becomes
// a clause.
func constructSearchFilter(query url.Values) types.HotelSearchFilter {
	var f types.HotelSearchFilter

	if v := query.Get("destination"); v != "" {
		f.Destination = &v
	}
	if v := query.Get("adultCount"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			f.AdultCount = &n
		}
	}
	if v := query.Get("childCount"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			f.ChildCount = &n
		}
	}
	if vs := query["facilities"]; len(vs) > 0 {
		f.Facilities = vs
	}
	if vs := query["types"]; len(vs) > 0 {
		f.Types = vs
	}
	for _, v := range query["stars"] {
		if n, err := strconv.Atoi(v); err == nil {
			f.Stars = append(f.Stars, n)
		}
	}
	if v := query.Get("maxPrice"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			f.MaxPrice = &n
		}
	}
	return f
}

// pageFromQuery never rejects a request over a bad page value.
func pageFromQuery(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func totalPages(total int64) int {
	return int(math.Ceil(float64(total) / float64(config.SEARCH_PAGE_SIZE)))
}

func computeTotalCost(pricePerNight float32, nights uint) float32 {
	return pricePerNight * float32(nights)
}

// minorCurrencyUnits rounds rather than truncates, so float32 noise in a
// cost like 39.9*3 cannot shave a penny off the charged amount.
func minorCurrencyUnits(cost float32) int64 {
	return int64(math.Round(float64(cost) * 100))
}

// verifyPaymentIntent checks the retrieved intent against the hotel and
// the authenticated caller before any booking is written.
func verifyPaymentIntent(pi *stripe.PaymentIntent, hotelID string, userID string) error {
	if pi == nil {
		return errors.New("payment intent not found")
	}
	if pi.Metadata["hotelId"] != hotelID || pi.Metadata["userId"] != userID {
		return errors.New("payment intent mismatch")
	}
	if pi.Status != stripe.PaymentIntentStatusSucceeded {
		return fmt.Errorf("payment intent not succeeded. Status: %s", pi.Status)
	}
	return nil
}
