// Package publish delivers rendered pages to a directory or an S3 bucket.
package publish

import (
	"context"
	"mime"
	"path"
	"strings"

	"github.com/elevensolutions/whits/internal/config"
	"github.com/elevensolutions/whits/internal/errors"
)

// Sink receives rendered files. Names are slash-separated and relative.
type Sink interface {
	Put(ctx context.Context, name, contentType string, data []byte) error
}

// Cleaner is implemented by sinks that can remove previous output.
type Cleaner interface {
	Clean() error
}

// ContentType guesses the MIME type of an output file from its name.
func ContentType(name string) string {
	if t := mime.TypeByExtension(path.Ext(name)); t != "" {
		return t
	}
	return "text/html; charset=utf-8"
}

// cleanName rejects names that would leave the sink root.
func cleanName(name string) (string, error) {
	clean := path.Clean("/" + strings.TrimPrefix(name, "/"))[1:]
	if clean == "" || clean != strings.TrimPrefix(name, "/") {
		return "", errors.New(errors.CodeOutputWrite).
			WithFile(name).
			WithDetail("Output names must be relative paths without '..' or empty segments.")
	}
	return clean, nil
}

// FromConfig creates the sink selected by the [publish] section.
func FromConfig(cfg *config.Config) Sink {
	switch cfg.Publish.Target {
	case config.PublishS3:
		client := NewS3Client(cfg.Publish.Region, cfg.Publish.Endpoint)
		return NewS3Sink(client, cfg.Publish.Bucket, cfg.Publish.Prefix)
	default:
		return NewDirSink(cfg.OutputPath())
	}
}
