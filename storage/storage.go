// Package storage persists uploaded images and returns the path recorded on
// the owning record.
package storage

import (
	"context"
	"fmt"
	"math/rand/v2"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"
)

// Storage saves one uploaded file and returns its public path or URL.
type Storage interface {
	Save(ctx context.Context, file *multipart.FileHeader) (string, error)
}

// uniqueName builds "<millis>-<random><ext>".
func uniqueName(original string, now time.Time) string {
	ext := strings.ToLower(filepath.Ext(original))
	return fmt.Sprintf("%d-%d%s", now.UnixMilli(), rand.IntN(1_000_000_000), ext)
}
