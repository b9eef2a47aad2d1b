package models

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/silinternational/inspection-api/api"
	"github.com/silinternational/inspection-api/damage"
	"github.com/silinternational/inspection-api/domain"
)

func testPNG() []byte {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{R: 200, A: 255})

	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

func (ms *ModelSuite) TestAttachPhoto_Errors() {
	open := damage.NewSession(testInspectionDamage())
	open.Open(api.PartKeyHood)

	foreign := damage.NewSession(testInspectionDamage())
	foreign.Open("../spoiler")

	tests := []struct {
		name    string
		session *damage.Session
		photo   Photo
		wantKey api.ErrorKey
	}{
		{
			name:    "no open draft",
			session: damage.NewSession(testInspectionDamage()),
			photo:   Photo{Name: "hood.png", Content: testPNG()},
			wantKey: api.ErrorInspectionNoOpenDraft,
		},
		{
			name:    "too large",
			session: open,
			photo:   Photo{Name: "hood.png", Content: make([]byte, domain.MaxPhotoSize+1)},
			wantKey: api.ErrorStorePhotoTooLarge,
		},
		{
			name:    "not an image",
			session: open,
			photo:   Photo{Name: "hood.txt", Content: []byte("the hood has a dent")},
			wantKey: api.ErrorStorePhotoBadContentType,
		},
		{
			name:    "part key unusable in a photo key",
			session: foreign,
			photo:   Photo{Name: "spoiler.png", Content: testPNG()},
			wantKey: api.ErrorInspectionInvalidInput,
		},
	}
	for _, tt := range tests {
		ms.T().Run(tt.name, func(t *testing.T) {
			_, err := AttachPhoto(tt.session, tt.photo)
			ms.EqualAppError(api.AppError{Key: tt.wantKey, Category: api.CategoryUser}, err)
		})
	}

	ms.Empty(open.Draft().Photos, "a rejected photo must not be attached")
	ms.Empty(foreign.Draft().Photos)
}

func (ms *ModelSuite) TestValidatePhotoContentType() {
	contentType, err := validatePhotoContentType(testPNG())
	ms.NoError(err)
	ms.Equal("image/png", contentType)

	_, err = validatePhotoContentType([]byte("%PDF-1.4"))
	ms.Error(err)
}

func (ms *ModelSuite) TestPhoto_removeMetadata() {
	p := Photo{Name: "hood.png", ContentType: "image/png", Content: testPNG()}
	p.removeMetadata()
	ms.Equal("image/png", p.ContentType)

	img, format, err := image.Decode(bytes.NewReader(p.Content))
	ms.NoError(err)
	ms.Equal("png", format)
	ms.Equal(4, img.Bounds().Dx())

	junk := Photo{Name: "x.jpg", ContentType: "image/jpeg", Content: []byte("not really a jpeg")}
	junk.removeMetadata()
	ms.Equal([]byte("not really a jpeg"), junk.Content)
}

func (ms *ModelSuite) TestPhoto_changeFileExtension() {
	tests := []struct {
		name        string
		photoName   string
		contentType string
		want        string
	}{
		{name: "matching", photoName: "hood.png", contentType: "image/png", want: "hood.png"},
		{name: "wrong extension", photoName: "hood.jpeg", contentType: "image/png", want: "hood.png"},
		{name: "no extension", photoName: "hood", contentType: "image/jpeg", want: "hood.jpg"},
		{name: "path", photoName: "uploads/2024/hood.gif", contentType: "image/gif", want: "hood.gif"},
		{name: "no name", photoName: "", contentType: "image/webp", want: "photo.webp"},
		{name: "unknown type", photoName: "hood.bmp", contentType: "image/bmp", want: "hood.bmp"},
	}
	for _, tt := range tests {
		ms.T().Run(tt.name, func(t *testing.T) {
			p := Photo{Name: tt.photoName, ContentType: tt.contentType}
			p.changeFileExtension()
			ms.Equal(tt.want, p.Name)
		})
	}
}
