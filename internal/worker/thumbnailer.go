package worker

import (
	"bytes"
	"context"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/saransh1220/filevault/internal/domain"
)

// Thumbnailer regenerates derived images beside an original blob.
type Thumbnailer struct {
	blobs domain.BlobStore
}

func NewThumbnailer(blobs domain.BlobStore) *Thumbnailer {
	return &Thumbnailer{blobs: blobs}
}

// Generate reads the original blob and writes one derived blob per width, in
// the given order, at localPath + "_" + width. Each thumbnail keeps the
// original aspect ratio and encoding, so re-running a job overwrites the
// derived blobs with identical bytes. The first failing width aborts the
// remaining ones; earlier widths already written stay in place.
func (t *Thumbnailer) Generate(ctx context.Context, localPath string, widths []int) error {
	data, err := t.blobs.Read(ctx, localPath)
	if err != nil {
		return fmt.Errorf("read original: %w", err)
	}

	img, formatName, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decode image: %w", err)
	}

	format, err := imaging.FormatFromExtension(formatName)
	if err != nil {
		return fmt.Errorf("unsupported image format %q: %w", formatName, err)
	}

	for _, width := range widths {
		// Height 0 preserves the aspect ratio.
		thumb := imaging.Resize(img, width, 0, imaging.Lanczos)

		var buf bytes.Buffer
		if err := imaging.Encode(&buf, thumb, format); err != nil {
			return fmt.Errorf("encode %dpx thumbnail: %w", width, err)
		}

		if err := t.blobs.WriteDerived(ctx, localPath, fmt.Sprintf("_%d", width), buf.Bytes()); err != nil {
			return fmt.Errorf("write %dpx thumbnail: %w", width, err)
		}
	}
	return nil
}
