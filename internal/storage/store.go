// Package storage keeps uploaded documents in a blob store and hands back a
// retrievable reference.
package storage

import (
	"context"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// Ref locates a stored object.
type Ref struct {
	Bucket string `json:"bucket"`
	Key    string `json:"key"`
	URL    string `json:"url"`
}

// Store is a blob store.
type Store interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (Ref, error)
	Delete(ctx context.Context, key string) error
}

var unsafeKeyChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// ResumeKey builds a collision-free key "<prefix><uuid>-<filename>" with the
// filename reduced to its base name and safe characters.
func ResumeKey(prefix, filename string) string {
	name := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	name = strings.Trim(unsafeKeyChars.ReplaceAllString(name, "_"), "._")
	if name == "" {
		name = "document"
	}
	return prefix + uuid.NewString() + "-" + name
}
