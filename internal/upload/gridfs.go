package upload

import (
	"context"
	"io"

	"github.com/Omiixx-nova/Bloom-Heaven/internal/dbmongo"
)

// GridFSStore keeps uploads in MongoDB GridFS instead of local disk.
// Files come back through the media server at /media/{fileId}.
type GridFSStore struct {
	blobs    *dbmongo.BlobStorage
	maxBytes int64
}

func NewGridFSStore(blobs *dbmongo.BlobStorage, maxBytes int64) *GridFSStore {
	return &GridFSStore{blobs: blobs, maxBytes: maxBytes}
}

func (g *GridFSStore) Save(ctx context.Context, filename, contentType, uploadedBy string, content io.Reader) (string, error) {
	// buffer first so an oversized upload never reaches GridFS at all
	buf, err := readCapped(content, g.maxBytes)
	if err != nil {
		return "", err
	}

	file, err := g.blobs.UploadFile(ctx, filename, contentType, uploadedBy, buf)
	if err != nil {
		return "", err
	}
	return "/media/" + file.ID, nil
}
