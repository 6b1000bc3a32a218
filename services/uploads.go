package services

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"image"
	"image/jpeg"
	"net/http"
	"strings"
	"time"

	_ "image/gif"
	_ "image/png"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/errgroup"

	"github.com/subarudev0/portfolio-backend/errs"
)

const (
	// MaxUploadBytes is the hard size ceiling, enforced before any network call.
	MaxUploadBytes = 10 << 20

	// Images above this size get downscaled before upload.
	compressThreshold = 200 << 10

	maxImageWidth = 1200
	jpegQuality   = 80
)

var allowedMIMETypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/gif":       true,
	"image/webp":      true,
	"application/pdf": true,
}

// Uploader runs the upload pipeline (validate, downscale, store) and the
// best-effort cleanup of blobs whose references were replaced or removed.
type Uploader struct {
	store  BlobStore
	logger zerolog.Logger
}

func NewUploader(store BlobStore) Uploader {
	return Uploader{
		store:  store,
		logger: log.With().Str("service", "uploader").Logger(),
	}
}

// Upload validates and stores one file, returning its public URL. The MIME
// type is sniffed from the payload, never trusted from the request. Images
// over the compression threshold are downscaled to width <= 1200 and
// re-encoded as JPEG; if that fails the original bytes go up unchanged.
func (u Uploader) Upload(ctx context.Context, folder, filename string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", errs.NewValidationError("file", "empty file")
	}
	if len(data) > MaxUploadBytes {
		return "", errs.NewValidationError("file", fmt.Sprintf("file exceeds the %d MiB limit", MaxUploadBytes>>20))
	}

	contentType := normalizeContentType(http.DetectContentType(data))
	if !allowedMIMETypes[contentType] {
		return "", errs.NewValidationError("file", fmt.Sprintf("invalid file type %q, images and PDFs only", contentType))
	}

	if strings.HasPrefix(contentType, "image/") && contentType != "image/gif" && len(data) > compressThreshold {
		if shrunk, err := downscaleImage(data); err == nil {
			data = shrunk
			contentType = "image/jpeg"
		} else {
			u.logger.Debug().Err(err).Str("file", filename).Msg("image downscale failed, uploading original")
		}
	}

	url, err := u.store.Put(ctx, buildObjectKey(folder, filename), data, contentType)
	if err != nil {
		return "", errs.NewInternalErrorWithCause("failed to store file", err)
	}
	return url, nil
}

// CleanupReplaced deletes the previous blob after its reference changed.
// Only URLs the store owns are touched; failures are logged and swallowed
// because the primary write has already succeeded.
func (u Uploader) CleanupReplaced(ctx context.Context, oldURL, newURL string) {
	if oldURL == "" || oldURL == newURL || !u.store.Owns(oldURL) {
		return
	}
	if err := u.store.Delete(ctx, oldURL); err != nil {
		u.logger.Warn().Err(err).Str("url", oldURL).Msg("stale blob cleanup failed")
	}
}

// CleanupAll best-effort deletes every owned URL in the list, fanning out
// concurrently. Used when a record with a gallery is deleted.
func (u Uploader) CleanupAll(ctx context.Context, urls []string) {
	group, ctx := errgroup.WithContext(ctx)
	for _, rawURL := range urls {
		if !u.store.Owns(rawURL) {
			continue
		}
		rawURL := rawURL
		group.Go(func() error {
			if err := u.store.Delete(ctx, rawURL); err != nil {
				u.logger.Warn().Err(err).Str("url", rawURL).Msg("stale blob cleanup failed")
			}
			return nil
		})
	}
	_ = group.Wait()
}

// Store exposes the underlying blob store for direct deletes.
func (u Uploader) Store() BlobStore {
	return u.store
}

// normalizeContentType strips parameters like "; charset=..." that
// http.DetectContentType appends to text-like sniffs.
func normalizeContentType(contentType string) string {
	if i := strings.Index(contentType, ";"); i >= 0 {
		contentType = contentType[:i]
	}
	return strings.TrimSpace(contentType)
}

func downscaleImage(data []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	bounds := src.Bounds()
	if w := bounds.Dx(); w > maxImageWidth {
		h := bounds.Dy() * maxImageWidth / w
		dst := image.NewRGBA(image.Rect(0, 0, maxImageWidth, h))
		draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
		src = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, src, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// buildObjectKey namespaces uploads by folder, timestamp and a short random
// suffix so concurrent uploads of the same filename never collide.
func buildObjectKey(folder, filename string) string {
	folder = sanitizePathSegment(folder)
	if folder == "" {
		folder = "uploads"
	}
	suffix := make([]byte, 4)
	_, _ = rand.Read(suffix)
	name := sanitizePathSegment(filename)
	if name == "" {
		name = "file"
	}
	return fmt.Sprintf("%s/%d-%s-%s", folder, time.Now().UnixMilli(), hex.EncodeToString(suffix), name)
}

func sanitizePathSegment(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('-')
		}
	}
	return strings.Trim(b.String(), ".")
}
