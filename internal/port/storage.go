package port

import (
	"context"
	"io"
)

// ObjectStorage archives rendered invoice documents. Implementations return
// the stored object's location.
type ObjectStorage interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}
