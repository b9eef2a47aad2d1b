package storage

import (
	"bytes"
	"fmt"
	"net/url"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/gofrs/uuid"
	"github.com/pkg/errors"

	"github.com/silinternational/inspection-api/api"
	"github.com/silinternational/inspection-api/domain"
)

// maximum number of keys accepted by a single DeleteObjects call
const maxDeleteKeys = 1000

type ObjectUrl struct {
	Url        string
	Expiration time.Time
}

type awsConfig struct {
	awsAccessKeyID     string
	awsSecretAccessKey string
	awsEndpoint        string
	awsRegion          string
	awsS3Bucket        string
	awsDisableSSL      bool
	getPresignedUrl    bool
}

func getS3ConfigFromEnv() awsConfig {
	var a awsConfig
	a.awsAccessKeyID = domain.Env.AwsAccessKeyID
	a.awsSecretAccessKey = domain.Env.AwsSecretAccessKey
	a.awsEndpoint = domain.Env.AwsS3Endpoint
	a.awsRegion = domain.Env.AwsRegion
	a.awsS3Bucket = domain.Env.AwsS3Bucket
	a.awsDisableSSL = domain.Env.AwsS3DisableSSL

	if domain.Env.GoEnv == domain.EnvDevelopment || domain.Env.GoEnv == domain.EnvTest {
		a.awsAccessKeyID = "abc123"
		a.awsSecretAccessKey = "abcd1234"
	}

	// a non-empty endpoint means minIO is in use, which doesn't support the S3 object URL scheme
	if !strings.HasPrefix(domain.Env.AwsS3ACL, "public") || len(a.awsEndpoint) > 0 {
		a.getPresignedUrl = true
	}
	return a
}

func createS3Service(config awsConfig) (*s3.S3, error) {
	sess, err := session.NewSession(&aws.Config{
		Credentials:      credentials.NewStaticCredentials(config.awsAccessKeyID, config.awsSecretAccessKey, ""),
		Endpoint:         aws.String(config.awsEndpoint),
		Region:           aws.String(config.awsRegion),
		DisableSSL:       aws.Bool(config.awsDisableSSL),
		S3ForcePathStyle: aws.Bool(len(config.awsEndpoint) > 0),
	})
	if err != nil {
		return nil, errors.Wrap(err, "creating aws session")
	}

	return s3.New(sess), nil
}

func getObjectURL(config awsConfig, svc *s3.S3, key string) (ObjectUrl, error) {
	var objectUrl ObjectUrl

	if !config.getPresignedUrl {
		objectUrl.Url = fmt.Sprintf("https://%s.s3.amazonaws.com/%s", config.awsS3Bucket, url.PathEscape(key))
		objectUrl.Expiration = time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)
		return objectUrl, nil
	}

	req, _ := svc.GetObjectRequest(&s3.GetObjectInput{
		Bucket: aws.String(config.awsS3Bucket),
		Key:    aws.String(key),
	})

	urlLifespan := time.Duration(domain.Env.AwsS3URLLifeMinutes) * time.Minute
	newUrl, err := req.Presign(urlLifespan)
	if err != nil {
		return objectUrl, errors.Wrapf(err, "presigning url for %s", key)
	}

	objectUrl.Url = newUrl
	// return a time slightly before the actual url expiration to account for delays
	objectUrl.Expiration = time.Now().Add(urlLifespan - time.Minute)
	return objectUrl, nil
}

// part-keys become a path segment of photo keys, so only snake_case keys are accepted there
var partKeyPattern = regexp.MustCompile(`^[a-z0-9]+(_[a-z0-9]+)*$`)

// PhotoKey builds the storage key of a photo of one part of an inspection. The key is what the overlay keeps in
// its photo list.
func PhotoKey(inspectionID uuid.UUID, partKey api.PartKey, name string) (string, error) {
	if !partKeyPattern.MatchString(string(partKey)) {
		return "", fmt.Errorf("part key %q cannot be used in a photo key", partKey)
	}
	return path.Join(domain.Env.PhotoKeyPrefix, inspectionID.String(), string(partKey), path.Base(name)), nil
}

// IsPhotoKey reports whether key was built by PhotoKey for the given inspection
func IsPhotoKey(inspectionID uuid.UUID, key string) bool {
	return strings.HasPrefix(key, path.Join(domain.Env.PhotoKeyPrefix, inspectionID.String())+"/")
}

// StorePhoto saves content in an AWS S3 bucket or compatible storage, depending on environment configuration.
func StorePhoto(key, contentType string, content []byte) (ObjectUrl, error) {
	config := getS3ConfigFromEnv()

	svc, err := createS3Service(config)
	if err != nil {
		return ObjectUrl{}, err
	}

	input := &s3.PutObjectInput{
		Bucket:      aws.String(config.awsS3Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
		Body:        bytes.NewReader(content),
	}
	if !config.getPresignedUrl {
		input.ACL = aws.String(domain.Env.AwsS3ACL)
	}
	if _, err := svc.PutObject(input); err != nil {
		return ObjectUrl{}, errors.Wrapf(err, "storing photo %s", key)
	}

	return getObjectURL(config, svc, key)
}

// GetPhotoURL retrieves a URL from which a stored photo can be loaded. The URL should not require external
// credentials to access. It may reference a file with public_read access or it may be a pre-signed URL.
func GetPhotoURL(key string) (ObjectUrl, error) {
	config := getS3ConfigFromEnv()

	svc, err := createS3Service(config)
	if err != nil {
		return ObjectUrl{}, err
	}

	return getObjectURL(config, svc, key)
}

// RemovePhotos removes photos from the configured AWS S3 bucket. Keys that do not exist are not an error.
func RemovePhotos(keys []string) error {
	if len(keys) == 0 {
		return nil
	}

	config := getS3ConfigFromEnv()

	svc, err := createS3Service(config)
	if err != nil {
		return err
	}

	for _, batch := range batchKeys(keys, maxDeleteKeys) {
		objects := make([]*s3.ObjectIdentifier, len(batch))
		for i := range batch {
			objects[i] = &s3.ObjectIdentifier{Key: aws.String(batch[i])}
		}

		out, err := svc.DeleteObjects(&s3.DeleteObjectsInput{
			Bucket: aws.String(config.awsS3Bucket),
			Delete: &s3.Delete{Objects: objects, Quiet: aws.Bool(true)},
		})
		if err != nil {
			return errors.Wrap(err, "removing photos")
		}
		if len(out.Errors) > 0 {
			e := out.Errors[0]
			return fmt.Errorf("removing photo %s: %s", aws.StringValue(e.Key), aws.StringValue(e.Message))
		}
	}

	return nil
}

func batchKeys(keys []string, size int) [][]string {
	var batches [][]string
	for len(keys) > size {
		batches = append(batches, keys[:size])
		keys = keys[size:]
	}
	if len(keys) > 0 {
		batches = append(batches, keys)
	}
	return batches
}

// CreateS3Bucket creates an S3 bucket with a name defined by an environment variable. If the bucket already
// exists, it will not return an error.
func CreateS3Bucket() error {
	env := domain.Env.GoEnv
	if env != domain.EnvTest && env != domain.EnvDevelopment {
		return errors.New("CreateS3Bucket should only be used in test and development")
	}

	config := getS3ConfigFromEnv()

	svc, err := createS3Service(config)
	if err != nil {
		return err
	}

	c := &s3.CreateBucketInput{Bucket: aws.String(config.awsS3Bucket)}
	if _, err := svc.CreateBucket(c); err != nil {
		if aerr, ok := err.(awserr.Error); ok {
			switch aerr.Code() {
			case s3.ErrCodeBucketAlreadyExists:
			case s3.ErrCodeBucketAlreadyOwnedByYou:
			default:
				return err
			}
		}
	}
	return nil
}
