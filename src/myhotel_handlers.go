package main

import (
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"time"

	"hbs/src/config"
	"hbs/src/db"
	"hbs/src/lib"
	"hbs/src/models"
	"hbs/src/models/scopes"
	"hbs/src/types"
	"hbs/src/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func checkImageFiles(files []*multipart.FileHeader) error {
	if len(files) > config.MAX_HOTEL_IMAGES {
		return fmt.Errorf("at most %d images are allowed", config.MAX_HOTEL_IMAGES)
	}
	for _, fh := range files {
		if fh.Size > config.MAX_IMAGE_BYTES {
			return fmt.Errorf("image %s exceeds the %d byte limit", fh.Filename, config.MAX_IMAGE_BYTES)
		}
	}
	return nil
}

func myHotelHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("", func(ctx *gin.Context) {
			var body types.UpsertHotelRequestBody
			if err := ctx.ShouldBind(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			form, err := ctx.MultipartForm()
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			files := form.File["imageFiles"]
			if err := checkImageFiles(files); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}

			urls, err := utils.UploadImages(ctx, files, body.Name)
			if err != nil {
				log.Printf("Error uploading hotel images: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong"})
				return
			}

			userID := ctx.GetUint("id")
			hotel := models.Hotel{
				UserID:        userID,
				Name:          body.Name,
				City:          body.City,
				Country:       body.Country,
				Description:   body.Description,
				Type:          body.Type,
				PricePerNight: body.PricePerNight,
				StarRating:    body.StarRating,
				AdultCount:    body.AdultCount,
				ChildCount:    body.ChildCount,
				Facilities:    types.JSONBStrings(body.Facilities),
				ImageURLs:     types.JSONBStrings(urls),
				LastUpdated:   time.Now(),
			}
			db := db.GetDb()
			if err := db.Transaction(func(tx *gorm.DB) error {
				return tx.Create(&hotel).Error
			}); err != nil {
				log.Printf("Error creating hotel: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong"})
				return
			}
			lib.CacheDel(ctx, hotelsCacheKey)

			ctx.JSON(http.StatusCreated, hotel)
		}).
		GET("", func(ctx *gin.Context) {
			userID := ctx.GetUint("id")
			db := db.GetDb()
			var hotels []models.Hotel
			if err := db.
				Model(&models.Hotel{}).
				Scopes(scopes.OwnedBy(userID)).
				Find(&hotels).
				Error; err != nil {
				log.Printf("Error fetching hotels for user [%d]: %s\n", userID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching hotels"})
				return
			}
			ctx.JSON(http.StatusOK, hotels)
		}).
		GET("/:hotelId", func(ctx *gin.Context) {
			var params types.HotelRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			userID := ctx.GetUint("id")
			db := db.GetDb()
			var hotel models.Hotel
			err := db.
				Model(&models.Hotel{}).
				Scopes(scopes.WithID(params.HotelID), scopes.OwnedBy(userID)).
				First(&hotel).
				Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
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
		PUT("/:hotelId", func(ctx *gin.Context) {
			var params types.HotelRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.UpsertHotelRequestBody
			if err := ctx.ShouldBind(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			form, err := ctx.MultipartForm()
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			files := form.File["imageFiles"]
			if err := checkImageFiles(files); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}

			userID := ctx.GetUint("id")
			db := db.GetDb()
			var hotel models.Hotel
			if err := db.
				Model(&models.Hotel{}).
				Scopes(scopes.WithID(params.HotelID), scopes.OwnedBy(userID)).
				First(&hotel).
				Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"message": "Hotel not found"})
					return
				}
				ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong"})
				return
			}

			urls, err := utils.UploadImages(ctx, files, body.Name)
			if err != nil {
				log.Printf("Error uploading hotel images: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong"})
				return
			}
			// fresh uploads go in front of whatever the form kept
			images := append(urls, body.ImageURLs...)
			if images == nil {
				images = []string{}
			}

			updated := models.Hotel{
				Name:          body.Name,
				City:          body.City,
				Country:       body.Country,
				Description:   body.Description,
				Type:          body.Type,
				PricePerNight: body.PricePerNight,
				StarRating:    body.StarRating,
				AdultCount:    body.AdultCount,
				ChildCount:    body.ChildCount,
				Facilities:    types.JSONBStrings(body.Facilities),
				ImageURLs:     types.JSONBStrings(images),
				LastUpdated:   time.Now(),
			}
			// a map keeps zero values (a cleared child count or image list)
			// in the SET clause, which struct updates would drop
			if err := db.Transaction(func(tx *gorm.DB) error {
				return tx.
					Model(&models.Hotel{}).
					Scopes(scopes.WithID(params.HotelID), scopes.OwnedBy(userID)).
					Updates(map[string]any{
						"name":            updated.Name,
						"city":            updated.City,
						"country":         updated.Country,
						"description":     updated.Description,
						"type":            updated.Type,
						"price_per_night": updated.PricePerNight,
						"star_rating":     updated.StarRating,
						"adult_count":     updated.AdultCount,
						"child_count":     updated.ChildCount,
						"facilities":      updated.Facilities,
						"image_urls":      updated.ImageURLs,
						"last_updated":    updated.LastUpdated,
					}).
					Error
			}); err != nil {
				log.Printf("Error updating hotel [%d]: %s\n", params.HotelID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong"})
				return
			}
			lib.CacheDel(ctx, hotelsCacheKey)

			updated.ID = hotel.ID
			updated.UserID = userID
			ctx.JSON(http.StatusCreated, updated)
		})
	return g
}
