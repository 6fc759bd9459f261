package publish

import (
	"bytes"
	"context"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/elevensolutions/whits/internal/errors"
)

// PutObjectAPI is the part of *s3.Client the sink needs.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Sink uploads files to a bucket.
//
//	client := publish.NewS3Client("eu-west-1", "")
//	sink := publish.NewS3Sink(client, "my-site", "docs/")
type S3Sink struct {
	client       PutObjectAPI
	bucket       string
	prefix       string
	cacheControl string
}

// NewS3Sink creates a sink that stores each file under prefix+name.
func NewS3Sink(client PutObjectAPI, bucket, prefix string) *S3Sink {
	return &S3Sink{
		client:       client,
		bucket:       bucket,
		prefix:       prefix,
		cacheControl: "public, max-age=300",
	}
}

// WithCacheControl sets the Cache-Control header stored with each object.
func (s *S3Sink) WithCacheControl(v string) *S3Sink {
	s.cacheControl = v
	return s
}

// Put uploads data to the bucket.
func (s *S3Sink) Put(ctx context.Context, name, contentType string, data []byte) error {
	clean, err := cleanName(name)
	if err != nil {
		return err
	}
	key := s.prefix + clean

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(s.bucket),
		Key:          aws.String(key),
		Body:         bytes.NewReader(data),
		ContentType:  aws.String(contentType),
		CacheControl: aws.String(s.cacheControl),
		Metadata: map[string]string{
			"generator":    "whits",
			"publish-time": time.Now().UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		return errors.New(errors.CodeOutputPublish).WithFile("s3://" + s.bucket + "/" + key).Wrap(err)
	}
	return nil
}

// NewS3Client creates an S3 client for region. A non-empty endpoint
// selects an S3-compatible service with path-style addressing.
// Credentials come from the standard AWS_* environment variables.
func NewS3Client(region, endpoint string) *s3.Client {
	return s3.New(s3.Options{
		Region:      region,
		Credentials: aws.NewCredentialsCache(aws.CredentialsProviderFunc(envCredentials)),
	}, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})
}

func envCredentials(context.Context) (aws.Credentials, error) {
	creds := aws.Credentials{
		AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
		Source:          "whits environment",
	}
	if creds.AccessKeyID == "" || creds.SecretAccessKey == "" {
		return aws.Credentials{}, errors.New(errors.CodeOutputPublish).
			WithDetail("AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY must be set to publish to S3.")
	}
	return creds, nil
}
