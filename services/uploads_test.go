package services

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type putCall struct {
	key         string
	data        []byte
	contentType string
}

type fakeBlobStore struct {
	puts    []putCall
	deletes []string
	ownHost string
	failPut error
}

func (f *fakeBlobStore) Put(_ context.Context, key string, data []byte, contentType string) (string, error) {
	if f.failPut != nil {
		return "", f.failPut
	}
	f.puts = append(f.puts, putCall{key: key, data: data, contentType: contentType})
	return "https://" + f.ownHost + "/" + key, nil
}

func (f *fakeBlobStore) Delete(_ context.Context, rawURL string) error {
	f.deletes = append(f.deletes, rawURL)
	return nil
}

func (f *fakeBlobStore) Owns(rawURL string) bool {
	return strings.HasPrefix(rawURL, "https://"+f.ownHost+"/")
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{ownHost: "blobs.example.com"}
}

// noisePNG encodes a deterministic incompressible image so the payload stays
// above the compression threshold.
func noisePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	rng := rand.New(rand.NewSource(42))
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = byte(rng.Intn(256))
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestUploadRejectsOversizedFileBeforeStore(t *testing.T) {
	store := newFakeBlobStore()
	uploader := NewUploader(store)

	_, err := uploader.Upload(context.Background(), "projects", "big.png", make([]byte, 15<<20))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "limit")
	assert.Empty(t, store.puts)
}

func TestUploadRejectsInvalidType(t *testing.T) {
	store := newFakeBlobStore()
	uploader := NewUploader(store)

	// docx files sniff as zip archives
	docx := append([]byte("PK\x03\x04"), make([]byte, 128)...)
	_, err := uploader.Upload(context.Background(), "projects", "cv.docx", docx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid file type")
	assert.Empty(t, store.puts)
}

func TestUploadSmallImagePassesThrough(t *testing.T) {
	store := newFakeBlobStore()
	uploader := NewUploader(store)

	small := noisePNG(t, 10, 10)
	url, err := uploader.Upload(context.Background(), "projects", "tiny.png", small)
	require.NoError(t, err)

	require.Len(t, store.puts, 1)
	assert.Equal(t, "image/png", store.puts[0].contentType)
	assert.Equal(t, small, store.puts[0].data)
	assert.Contains(t, url, "projects/")
}

func TestUploadDownscalesWideImages(t *testing.T) {
	store := newFakeBlobStore()
	uploader := NewUploader(store)

	wide := noisePNG(t, 1500, 300)
	require.Greater(t, len(wide), compressThreshold)

	_, err := uploader.Upload(context.Background(), "projects", "wide.png", wide)
	require.NoError(t, err)

	require.Len(t, store.puts, 1)
	assert.Equal(t, "image/jpeg", store.puts[0].contentType)

	decoded, _, err := image.Decode(bytes.NewReader(store.puts[0].data))
	require.NoError(t, err)
	assert.Equal(t, maxImageWidth, decoded.Bounds().Dx())
	assert.Equal(t, 240, decoded.Bounds().Dy())
}

func TestUploadFallsBackWhenDownscaleFails(t *testing.T) {
	store := newFakeBlobStore()
	uploader := NewUploader(store)

	// sniffs as JPEG but does not decode
	broken := append([]byte{0xFF, 0xD8, 0xFF, 0xE0}, bytes.Repeat([]byte{0xAB}, 300<<10)...)
	_, err := uploader.Upload(context.Background(), "projects", "broken.jpg", broken)
	require.NoError(t, err)

	require.Len(t, store.puts, 1)
	assert.Equal(t, broken, store.puts[0].data)
}

func TestUploadKeyNamespacing(t *testing.T) {
	store := newFakeBlobStore()
	uploader := NewUploader(store)

	small := noisePNG(t, 10, 10)
	_, err := uploader.Upload(context.Background(), "", "My Cool Image (1).png", small)
	require.NoError(t, err)

	require.Len(t, store.puts, 1)
	key := store.puts[0].key
	assert.True(t, strings.HasPrefix(key, "uploads/"), "key %q should use the default folder", key)
	assert.True(t, strings.HasSuffix(key, "My-Cool-Image-1.png"), "key %q should keep the sanitized filename", key)
	assert.NotContains(t, key, " ")
}

func TestCleanupReplacedScoping(t *testing.T) {
	tests := []struct {
		name    string
		oldURL  string
		newURL  string
		deletes int
	}{
		{"owned url replaced", "https://blobs.example.com/projects/old.png", "https://blobs.example.com/projects/new.png", 1},
		{"replaced with foreign url", "https://blobs.example.com/projects/old.png", "https://elsewhere.com/x.png", 1},
		{"foreign url replaced", "https://elsewhere.com/x.png", "https://blobs.example.com/projects/new.png", 0},
		{"data url replaced", "data:image/png;base64,AAAA", "https://blobs.example.com/projects/new.png", 0},
		{"unchanged reference", "https://blobs.example.com/projects/old.png", "https://blobs.example.com/projects/old.png", 0},
		{"no previous reference", "", "https://blobs.example.com/projects/new.png", 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := newFakeBlobStore()
			uploader := NewUploader(store)

			uploader.CleanupReplaced(context.Background(), tc.oldURL, tc.newURL)
			assert.Len(t, store.deletes, tc.deletes)
		})
	}
}

func TestCleanupAllSkipsForeignURLs(t *testing.T) {
	store := newFakeBlobStore()
	uploader := NewUploader(store)

	uploader.CleanupAll(context.Background(), []string{
		"https://blobs.example.com/projects/a.png",
		"https://elsewhere.com/b.png",
		"data:image/png;base64,AAAA",
		"https://blobs.example.com/projects/c.png",
	})

	assert.ElementsMatch(t, []string{
		"https://blobs.example.com/projects/a.png",
		"https://blobs.example.com/projects/c.png",
	}, store.deletes)
}
