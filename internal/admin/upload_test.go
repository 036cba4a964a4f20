package admin

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/clothescatalog/internal/server/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

type fakePhotos struct {
	contentType string
	err         error
}

func (f *fakePhotos) PresignUpload(_ context.Context, contentType string) (*services.PhotoUpload, error) {
	f.contentType = contentType
	if f.err != nil {
		return nil, f.err
	}
	return &services.PhotoUpload{
		Key:       "clothes/2024/01/01/k.png",
		UploadURL: "http://s3/upload?sig=1",
		PhotoURL:  "http://s3/clothes/clothes/2024/01/01/k.png",
		ExpiresAt: time.Now().Add(time.Minute),
	}, nil
}

func stubUpload(t *testing.T, fn func(ctx context.Context, url, contentType string, body []byte) error) {
	t.Helper()
	orig := upload
	upload = fn
	t.Cleanup(func() { upload = orig })
}

func TestUploadPhoto(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dress.png")
	require.NoError(t, os.WriteFile(path, pngHeader, 0o600))

	var gotURL, gotCT string
	var gotBody []byte
	stubUpload(t, func(_ context.Context, url, contentType string, body []byte) error {
		gotURL, gotCT, gotBody = url, contentType, body
		return nil
	})

	photos := &fakePhotos{}
	var out bytes.Buffer
	app := NewApp(&fakeUsers{}, photos, bytes.NewReader(nil), &out)

	require.NoError(t, app.Run(context.Background(), []string{"upload-photo", "-file", path}))

	assert.Equal(t, "image/png", photos.contentType)
	assert.Equal(t, "http://s3/upload?sig=1", gotURL)
	assert.Equal(t, "image/png", gotCT)
	assert.Equal(t, pngHeader, gotBody)
	assert.Equal(t, "http://s3/clothes/clothes/2024/01/01/k.png\n", out.String())
}

func TestUploadPhoto_Errors(t *testing.T) {
	stubUpload(t, func(context.Context, string, string, []byte) error {
		return errors.New("upload failed: 403 Forbidden")
	})

	path := filepath.Join(t.TempDir(), "dress.png")
	require.NoError(t, os.WriteFile(path, pngHeader, 0o600))

	app := NewApp(&fakeUsers{}, &fakePhotos{}, bytes.NewReader(nil), &bytes.Buffer{})

	require.ErrorIs(t, app.Run(context.Background(), []string{"upload-photo"}), ErrUsage)
	require.Error(t, app.Run(context.Background(), []string{"upload-photo", "-file", filepath.Join(t.TempDir(), "missing.png")}))

	err := app.Run(context.Background(), []string{"upload-photo", "-file", path})
	require.ErrorContains(t, err, "403")

	app = NewApp(&fakeUsers{}, &fakePhotos{err: errors.New("s3 client: no region")}, bytes.NewReader(nil), &bytes.Buffer{})
	err = app.Run(context.Background(), []string{"upload-photo", "-file", path})
	require.ErrorContains(t, err, "no region")
}
