package utils

import (
	"context"
	"fmt"
	"mime/multipart"
	"os"
	"strconv"
	"time"

	"hbs/src/lib"
	"hbs/src/types"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"golang.org/x/sync/errgroup"
)

var jwtKey = []byte(os.Getenv("JWT_SECRET"))

func IsProd() bool {
	return os.Getenv("API_ENV") == "production"
}

func GenerateJWT(email string, userID uint) (string, error) {
	claims := types.Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

func ImageObjectKey(hotelName string, filename string) string {
	return fmt.Sprintf("hotels/%s/%s-%s", slug.Make(hotelName), uuid.NewString(), slug.Make(filename))
}

// UploadImages pushes every file to the image store concurrently. Results
// keep the input order regardless of which upload finishes first; any
// failed upload fails the whole batch.
func UploadImages(ctx context.Context, files []*multipart.FileHeader, hotelName string) ([]string, error) {
	urls := make([]string, len(files))
	store := lib.GetImageStore()
	g, gctx := errgroup.WithContext(ctx)
	for i, fh := range files {
		g.Go(func() error {
			f, err := fh.Open()
			if err != nil {
				return err
			}
			defer f.Close()
			url, err := store.Upload(gctx, ImageObjectKey(hotelName, fh.Filename), fh.Header.Get("Content-Type"), f)
			if err != nil {
				return err
			}
			urls[i] = url
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return urls, nil
}
