package models

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"net/http"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/webp" // enable decoding of WEBP images

	"github.com/silinternational/inspection-api/api"
	"github.com/silinternational/inspection-api/damage"
	"github.com/silinternational/inspection-api/domain"
	"github.com/silinternational/inspection-api/storage"
)

// Photo is an image uploaded for the part that is open in an edit session
type Photo struct {
	Name        string
	ContentType string
	Content     []byte
}

// AttachPhoto stores the photo and adds its storage key to the session's draft. The draft still has to be saved
// for the reference to persist.
func AttachPhoto(session *damage.Session, p Photo) (storage.ObjectUrl, error) {
	if !session.HasDraft() {
		err := errors.New("no part is open for edit")
		return storage.ObjectUrl{}, api.NewAppError(err, api.ErrorInspectionNoOpenDraft, api.CategoryUser)
	}

	if len(p.Content) > domain.MaxPhotoSize {
		err := fmt.Errorf("photo too large (%d bytes), max is %d bytes", len(p.Content), domain.MaxPhotoSize)
		return storage.ObjectUrl{}, api.NewAppError(err, api.ErrorStorePhotoTooLarge, api.CategoryUser)
	}

	contentType, err := validatePhotoContentType(p.Content)
	if err != nil {
		return storage.ObjectUrl{}, api.NewAppError(err, api.ErrorStorePhotoBadContentType, api.CategoryUser)
	}
	p.ContentType = contentType

	p.removeMetadata()
	p.changeFileExtension()

	key, err := storage.PhotoKey(session.Inspection().ID, session.Draft().PartKey, p.Name)
	if err != nil {
		return storage.ObjectUrl{}, api.NewAppError(err, api.ErrorInspectionInvalidInput, api.CategoryUser)
	}
	url, err := storage.StorePhoto(key, p.ContentType, p.Content)
	if err != nil {
		err = fmt.Errorf("error storing photo %s: %w", key, err)
		return storage.ObjectUrl{}, api.NewAppError(err, api.ErrorUnableToStoreFile, api.CategoryStorage)
	}

	err = session.Update(func(rec *api.PartDamage) {
		if !domain.IsStringInSlice(key, rec.Photos) {
			rec.Photos = append(rec.Photos, key)
		}
	})
	return url, err
}

func validatePhotoContentType(content []byte) (string, error) {
	detectedType := http.DetectContentType(content)
	if domain.IsStringInSlice(detectedType, domain.AllowedPhotoTypes) {
		return detectedType, nil
	}
	return "", fmt.Errorf("invalid photo type %s", detectedType)
}

// removeMetadata removes, if possible, all EXIF metadata by re-encoding the image. If the encoding type changes,
// `ContentType` will be modified accordingly.
func (p *Photo) removeMetadata() {
	img, _, err := image.Decode(bytes.NewReader(p.Content))
	if err != nil {
		return
	}
	buf := new(bytes.Buffer)
	switch p.ContentType {
	case "image/jpeg":
		if err := jpeg.Encode(buf, img, nil); err == nil {
			p.Content = buf.Bytes()
		}
	case "image/gif":
		if err := gif.Encode(buf, img, nil); err == nil {
			p.Content = buf.Bytes()
		}
	case "image/png":
		if err := png.Encode(buf, img); err == nil {
			p.Content = buf.Bytes()
		}
	case "image/webp":
		if err := png.Encode(buf, img); err == nil {
			p.Content = buf.Bytes()
			p.ContentType = "image/png"
		}
	}
}

// changeFileExtension makes the file extension match the content type
func (p *Photo) changeFileExtension() {
	ext := map[string]string{
		"image/jpeg": ".jpg",
		"image/gif":  ".gif",
		"image/png":  ".png",
		"image/webp": ".webp",
	}[p.ContentType]
	if ext == "" {
		return
	}
	name := strings.TrimSuffix(filepath.Base(p.Name), filepath.Ext(p.Name))
	if name == "" || name == "." {
		name = "photo"
	}
	p.Name = name + ext
}
