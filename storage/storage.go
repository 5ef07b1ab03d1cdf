// Package storage abstracts where uploaded recipe images end up
package storage

import (
	"context"
	"io"

	"github.com/spf13/viper"
)

type Storage interface {
	// Put writes the object under key. Size must match what r yields
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	// Delete removes the object. Deleting a missing key is not an error
	Delete(ctx context.Context, key string) error
	// URL returns the address clients can fetch the object from
	URL(key string) string
}

// New picks the backend from storage.type
func New() (Storage, error) {
	if viper.GetString("storage.type") == "s3" {
		return NewS3()
	}

	return NewLocal(viper.GetString("storage.local_path"))
}
