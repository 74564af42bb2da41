package main

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"hbs/src/config"
	"hbs/src/db"
	"hbs/src/lib"
	"hbs/src/lib/mailer"
	"hbs/src/middlewares"
	"hbs/src/models"
	"hbs/src/models/scopes"
	"hbs/src/types"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const hotelsCacheKey = "hotels:latest"

func hotelHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/search", func(ctx *gin.Context) {
			query := ctx.Request.URL.Query()
			filter := constructSearchFilter(query)
			sort := types.SortOption(query.Get("sortOption"))
			page := pageFromQuery(query.Get("page"))

			db := db.GetDb()
			var hotels []models.Hotel
			if err := db.
				Model(&models.Hotel{}).
				Scopes(scopes.ForSearch(filter), scopes.OrderedBy(sort), scopes.Paginated(page)).
				Find(&hotels).
				Error; err != nil {
				log.Printf("Error searching hotels: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong"})
				return
			}
			var total int64
			if err := db.
				Model(&models.Hotel{}).
				Scopes(scopes.ForSearch(filter)).
				Count(&total).
				Error; err != nil {
				log.Printf("Error counting hotels: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong"})
				return
			}

			ctx.JSON(http.StatusOK, gin.H{
				"data": hotels,
				"pagination": types.SearchPagination{
					Total: total,
					Page:  page,
					Pages: totalPages(total),
				},
			})
		}).
		GET("", func(ctx *gin.Context) {
			var hotels []models.Hotel
			if lib.CacheGet(ctx, hotelsCacheKey, &hotels) {
				ctx.JSON(http.StatusOK, hotels)
				return
			}
			db := db.GetDb()
			if err := db.
				Model(&models.Hotel{}).
				Order("last_updated DESC").
				Find(&hotels).
				Error; err != nil {
				log.Printf("Error fetching hotels: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching hotels"})
				return
			}
			lib.CacheSet(ctx, hotelsCacheKey, hotels, time.Minute)
			ctx.JSON(http.StatusOK, hotels)
		}).
		GET("/:hotelId", func(ctx *gin.Context) {
			var params types.HotelRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			db := db.GetDb()
			var hotel models.Hotel
			err := db.
				Model(&models.Hotel{}).
				Scopes(scopes.WithID(params.HotelID)).
				First(&hotel).
				Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// an unknown id answers a null payload, not an error
				ctx.JSON(http.StatusOK, nil)
				return
			}
			if err != nil {
				log.Printf("Error fetching hotel [%d]: %s\n", params.HotelID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching hotel"})
				return
			}
			ctx.JSON(http.StatusOK, hotel)
		}).
		POST("/:hotelId/bookings/payment-intent", middlewares.AuthMiddleware, func(ctx *gin.Context) {
			var params types.HotelRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.CreatePaymentIntentRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			userID := ctx.GetUint("id")

			db := db.GetDb()
			var hotel models.Hotel
			if err := db.
				Model(&models.Hotel{}).
				Scopes(scopes.WithID(params.HotelID)).
				First(&hotel).
				Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusBadRequest, gin.H{"message": "Hotel not found"})
					return
				}
				ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong"})
				return
			}

			totalCost := computeTotalCost(hotel.PricePerNight, body.NumberOfNights)
			pc := lib.GetPaymentsClient()
			pi, err := pc.CreateIntent(ctx, minorCurrencyUnits(totalCost), config.BOOKING_CURRENCY, map[string]string{
				"hotelId": strconv.FormatUint(uint64(params.HotelID), 10),
				"userId":  strconv.FormatUint(uint64(userID), 10),
			})
			if err != nil {
				log.Printf("Error creating payment intent for hotel [%d]: %s\n", params.HotelID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating payment intent"})
				return
			}
			if pi.ClientSecret == "" {
				ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating payment intent"})
				return
			}

			ctx.JSON(http.StatusOK, gin.H{
				"paymentIntentId": pi.ID,
				"clientSecret":    pi.ClientSecret,
				"totalCost":       totalCost,
			})
		}).
		POST("/:hotelId/bookings", middlewares.AuthMiddleware, func(ctx *gin.Context) {
			var params types.HotelRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.CreateBookingRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			userID := ctx.GetUint("id")

			pc := lib.GetPaymentsClient()
			pi, err := pc.RetrieveIntent(ctx, body.PaymentIntentID)
			if err != nil || pi == nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": "payment intent not found"})
				return
			}
			hotelID := strconv.FormatUint(uint64(params.HotelID), 10)
			uid := strconv.FormatUint(uint64(userID), 10)
			if err := verifyPaymentIntent(pi, hotelID, uid); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}

			checkIn, err := time.Parse(config.DATE_PARSE_FORMAT, body.CheckIn)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			checkOut, err := time.Parse(config.DATE_PARSE_FORMAT, body.CheckOut)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}

			booking := models.Booking{
				HotelID:         params.HotelID,
				UserID:          userID,
				FirstName:       body.FirstName,
				LastName:        body.LastName,
				Email:           body.Email,
				AdultCount:      body.AdultCount,
				ChildCount:      body.ChildCount,
				CheckIn:         checkIn,
				CheckOut:        checkOut,
				NumberOfNights:  body.NumberOfNights,
				TotalCost:       body.TotalCost,
				PaymentIntentID: body.PaymentIntentID,
			}

			db := db.GetDb()
			var hotel models.Hotel
			err = db.Transaction(func(tx *gorm.DB) error {
				if err := tx.
					Model(&models.Hotel{}).
					Scopes(scopes.WithID(params.HotelID)).
					First(&hotel).
					Error; err != nil {
					return err
				}
				if err := tx.Create(&booking).Error; err != nil {
					return err
				}
				return nil
			})
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusBadRequest, gin.H{"message": "hotel not found"})
					return
				}
				log.Printf("Error creating booking for hotel [%d]: %s\n", params.HotelID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"message": "something went wrong"})
				return
			}

			go func() {
				if err := mailer.SendBookingConfirmation(&booking, &hotel); err != nil {
					log.Printf("Could not send booking confirmation [%d]: %s\n", booking.ID, err.Error())
				}
			}()

			ctx.Status(http.StatusOK)
		})
	return g
}
