package controllers

import (
	"errors"
	"log"
	"net/http"

	"hbs/src/db"
	"hbs/src/lib/mailer"
	"hbs/src/models"
	"hbs/src/types"
	"hbs/src/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func AuthRegister(ctx *gin.Context) (token *string, status int, err error) {
	var body types.RegisterUserRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return nil, http.StatusBadRequest, err
	}

	db := db.GetDb()
	var existing models.User
	err = db.
		Model(&models.User{}).
		Where(&models.User{Email: body.Email}).
		First(&existing).
		Error
	if err == nil {
		return nil, http.StatusBadRequest, errors.New("user already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, http.StatusInternalServerError, err
	}

	user := models.User{
		Email:     body.Email,
		Password:  body.Password,
		FirstName: body.FirstName,
		LastName:  body.LastName,
	}
	if err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&user).Error
	}); err != nil {
		// a concurrent registration can slip past the lookup above and
		// land on the unique index instead
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, http.StatusBadRequest, errors.New("user already exists")
		}
		return nil, http.StatusInternalServerError, err
	}

	jwt, err := utils.GenerateJWT(user.Email, user.ID)
	if err != nil {
		log.Printf("Error generating token for user [%d]: %s\n", user.ID, err.Error())
		return nil, http.StatusInternalServerError, err
	}

	go func() {
		if err := mailer.SendWelcome(&user); err != nil {
			log.Printf("Could not send welcome mail to user [%d]: %s\n", user.ID, err.Error())
		}
	}()

	return &jwt, http.StatusOK, nil
}

func AuthLogin(ctx *gin.Context) (token *string, userID uint, status int, err error) {
	var body types.LoginUserRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return nil, 0, http.StatusBadRequest, err
	}

	db := db.GetDb()
	var user models.User
	if err := db.
		Model(&models.User{}).
		Where(&models.User{Email: body.Email}).
		First(&user).
		Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, http.StatusBadRequest, errors.New("invalid credentials")
		}
		return nil, 0, http.StatusInternalServerError, err
	}
	if !user.CheckPassword(body.Password) {
		return nil, 0, http.StatusBadRequest, errors.New("invalid credentials")
	}

	jwt, err := utils.GenerateJWT(user.Email, user.ID)
	if err != nil {
		return nil, 0, http.StatusInternalServerError, err
	}
	return &jwt, user.ID, http.StatusOK, nil
}

func AuthMe(ctx *gin.Context) (*models.User, int, error) {
	userID := ctx.GetUint("id")
	db := db.GetDb()
	var user models.User
	if err := db.
		Model(&models.User{}).
		Where(&models.User{ID: userID}).
		First(&user).
		Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, http.StatusBadRequest, errors.New("user not found")
		}
		return nil, http.StatusInternalServerError, err
	}
	return &user, http.StatusOK, nil
}
