package aws

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

func GetS3Client() *s3.Client {
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Printf("Could not load default config: %s\n", err.Error())
		return nil
	}
	svc := s3.NewFromConfig(cfg)
	return svc
}

// S3UploadImage stores one hotel image and returns its public URL. The
// bucket serves objects directly, so the stored URL never expires.
func S3UploadImage(ctx context.Context, key string, contentType string, body io.Reader) (*string, error) {
	imagesBucket := os.Getenv("S3_IMAGES_BUCKET")
	client := GetS3Client()
	_, err := client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(imagesBucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		log.Printf("Could not put object to S3 bucket: %s\n", err.Error())
		return nil, err
	}
	err = s3.NewObjectExistsWaiter(client).Wait(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(imagesBucket),
		Key:    aws.String(key),
	}, time.Minute)
	if err != nil {
		log.Printf("Failed attempt to wait for object %s to exist: %s\n", key, err.Error())
		return nil, err
	}
	log.Printf("Added object '%s' to bucket '%s'", key, imagesBucket)
	base := strings.TrimRight(os.Getenv("S3_PUBLIC_URL"), "/")
	url := fmt.Sprintf("%s/%s", base, key)
	return &url, nil
}
