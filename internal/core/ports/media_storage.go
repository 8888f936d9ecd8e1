package ports

import (
	"context"
	"io"
)

// MediaStorage stores shipment proof media (receipt photos) and hands back an
// opaque reference string. Orders keep only the reference; resolving it back
// to bytes is the storage adapter's concern.
type MediaStorage interface {
	// Store saves the media content under a generated reference and returns it.
	Store(ctx context.Context, contentType string, content io.Reader) (string, error)

	// Load resolves a reference produced by Store back to its content.
	Load(ctx context.Context, reference string) (io.ReadCloser, error)
}
