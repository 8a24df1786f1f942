package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paju/errors"
)

var (
	pngHeader  = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")
	jpegHeader = []byte("\xff\xd8\xff\xe0\x00\x10JFIF\x00\x01\x01\x00\x00\x01\x00\x01\x00\x00")
	webpHeader = []byte("RIFF\x24\x00\x00\x00WEBPVP8 \x18\x00\x00\x00")
)

func TestValidateImage(t *testing.T) {
	for name, data := range map[string][]byte{"png": pngHeader, "jpeg": jpegHeader, "webp": webpHeader} {
		mime, ext, err := ValidateImage(data)
		require.NoError(t, err, name)
		assert.True(t, strings.HasPrefix(mime, "image/"), name)
		assert.NotEmpty(t, ext, name)
	}

	_, _, err := ValidateImage([]byte("GIF89a\x01\x00\x01\x00"))
	assert.Equal(t, errors.ErrCodeInvalidImage, errors.GetAppError(err).Code)

	_, _, err = ValidateImage([]byte("just some text"))
	assert.Error(t, err)

	_, _, err = ValidateImage(nil)
	assert.Error(t, err)

	big := append(append([]byte{}, pngHeader...), make([]byte, MaxImageSize)...)
	_, _, err = ValidateImage(big)
	assert.Equal(t, errors.ErrCodeFileTooLarge, errors.GetAppError(err).Code)
}

func TestGenerateFilename(t *testing.T) {
	now := time.UnixMilli(1715340000000)

	assert.Equal(t, "banh-xeo-1715340000000-abc123.jpg", generateFilename("Bánh Xèo.JPG", ".png", now, "abc123"))
	assert.Equal(t, "image-1715340000000-abc123.png", generateFilename("???", ".png", now, "abc123"))
	assert.Equal(t, "photo-1715340000000-abc123.webp", generateFilename("photo", ".webp", now, "abc123"))

	long := generateFilename(strings.Repeat("a", 50)+".png", "", now, "abc123")
	assert.True(t, strings.HasPrefix(long, strings.Repeat("a", 30)+"-"))

	got := GenerateFilename("Galbi Plate.png", ".png")
	assert.Regexp(t, `^galbi-plate-\d+-[0-9a-f]{6}\.png$`, got)
}

func TestLocalStorage(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "uploads")
	s, err := NewLocalStorage(dir, "/uploads/")
	require.NoError(t, err)
	assert.Equal(t, "local", s.Name())

	res, err := s.Upload(ctx, "galbi-1-abc.png", pngHeader)
	require.NoError(t, err)
	assert.Equal(t, "/uploads/galbi-1-abc.png", res.URL)
	assert.EqualValues(t, len(pngHeader), res.Size)

	_, err = os.Stat(filepath.Join(dir, "galbi-1-abc.png"))
	require.NoError(t, err)

	assert.True(t, s.Owns(res.URL))
	assert.False(t, s.Owns("https://example.com/uploads/x.png"))
	data, err := s.Read(res.URL)
	require.NoError(t, err)
	assert.Equal(t, pngHeader, data)
	_, err = s.Read("/uploads/missing.png")
	assert.ErrorIs(t, err, os.ErrNotExist)
	_, err = s.Read("https://example.com/x.png")
	assert.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, s.Delete(ctx, res.URL))
	_, err = os.Stat(filepath.Join(dir, "galbi-1-abc.png"))
	assert.True(t, os.IsNotExist(err))

	// file không tồn tại hoặc URL ngoài thì bỏ qua
	assert.NoError(t, s.Delete(ctx, res.URL))
	assert.NoError(t, s.Delete(ctx, "https://example.com/x.png"))

	// không cho thoát khỏi thư mục uploads
	res, err = s.Upload(ctx, "../escape.png", pngHeader)
	require.NoError(t, err)
	assert.Equal(t, "/uploads/escape.png", res.URL)
}

func TestPublicIDFromURL(t *testing.T) {
	cases := map[string]string{
		"https://res.cloudinary.com/demo/image/upload/v1715340000/menu-items/galbi-1-abc.jpg":    "menu-items/galbi-1-abc",
		"https://res.cloudinary.com/demo/image/upload/c_fill,w_300/v12/menu-items/galbi.png?x=1": "menu-items/galbi",
		"https://res.cloudinary.com/demo/image/upload/sample.webp":                               "sample",
		"/uploads/galbi.png":                        "",
		"https://example.com/image/upload/v1/a.png": "",
	}
	for in, want := range cases {
		assert.Equal(t, want, PublicIDFromURL(in), in)
	}
}

type fakeUploadAPI struct {
	uploaded  uploader.UploadParams
	destroyed []string
	fail      string
}

func (f *fakeUploadAPI) Upload(_ context.Context, _ interface{}, params uploader.UploadParams) (*uploader.UploadResult, error) {
	f.uploaded = params
	res := &uploader.UploadResult{
		SecureURL: "https://res.cloudinary.com/demo/image/upload/v1/" + params.Folder + "/" + params.PublicID + ".png",
		Bytes:     42,
	}
	if f.fail != "" {
		res.Error = api.ErrorResp{Message: f.fail}
	}
	return res, nil
}

func (f *fakeUploadAPI) Destroy(_ context.Context, params uploader.DestroyParams) (*uploader.DestroyResult, error) {
	f.destroyed = append(f.destroyed, params.PublicID)
	return &uploader.DestroyResult{Result: "ok"}, nil
}

func TestCloudinaryStorage(t *testing.T) {
	ctx := context.Background()
	fake := &fakeUploadAPI{}
	s := &CloudinaryStorage{api: fake, folder: "menu-items"}

	res, err := s.Upload(ctx, "galbi-1-abc.png", pngHeader)
	require.NoError(t, err)
	assert.Equal(t, "galbi-1-abc", fake.uploaded.PublicID)
	assert.Equal(t, "menu-items", fake.uploaded.Folder)
	assert.EqualValues(t, 42, res.Size)

	require.NoError(t, s.Delete(ctx, res.URL))
	require.NoError(t, s.Delete(ctx, "/uploads/local.png"))
	assert.Equal(t, []string{"menu-items/galbi-1-abc"}, fake.destroyed)

	fake.fail = "quota exceeded"
	_, err = s.Upload(ctx, "x.png", pngHeader)
	assert.ErrorContains(t, err, "quota exceeded")
}
