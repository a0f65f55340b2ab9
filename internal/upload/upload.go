// Package upload receives user files and hands back a URL they can be
// fetched from. Storage is flat: anyone who knows a generated name can
// retrieve the file, which is fine for a shareable-gift product.
package upload

import (
	"bytes"
	"context"
	"io"

	"github.com/Omiixx-nova/Bloom-Heaven/internal/common"
)

// FileStore stores an uploaded file under a generated unique name and
// returns the URL path it can be retrieved from. uploadedBy is recorded
// where the backend supports metadata; storage stays flat either way.
type FileStore interface {
	Save(ctx context.Context, filename, contentType, uploadedBy string, content io.Reader) (string, error)
}

// readCapped buffers at most maxBytes from r. One byte over the cap and the
// whole upload is rejected with nothing stored.
func readCapped(r io.Reader, maxBytes int64) (*bytes.Buffer, error) {
	var buf bytes.Buffer
	n, err := io.Copy(&buf, io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, err
	}
	if n > maxBytes {
		return nil, common.ErrPayloadTooLarge
	}
	return &buf, nil
}
