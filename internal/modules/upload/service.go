package upload

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // register PNG decoding for uploaded images

	"github.com/google/uuid"
	"github.com/nfnt/resize"

	"github.com/dev-guime/arcade-backend/internal/apperror"
)

// Service processes an uploaded image and stores it: decode, cap the
// width, re-encode as JPEG under a uuid key.
type Service interface {
	StoreImage(ctx context.Context, data []byte) (string, error)
}

type service struct {
	store    Store
	maxWidth uint
}

func NewService(store Store, maxWidth uint) Service {
	if maxWidth == 0 {
		maxWidth = 1600
	}
	return &service{store: store, maxWidth: maxWidth}
}

func (s *service) StoreImage(ctx context.Context, data []byte) (string, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", &apperror.ValidationError{Field: "file", Message: "not a decodable image"}
	}
	if uint(img.Bounds().Dx()) > s.maxWidth {
		img = resize.Resize(s.maxWidth, 0, img, resize.Lanczos3)
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 85}); err != nil {
		return "", fmt.Errorf("encode image: %w", err)
	}
	key := fmt.Sprintf("products/%s.jpg", uuid.New())
	url, err := s.store.Put(ctx, key, "image/jpeg", &buf)
	if err != nil {
		return "", &apperror.WriteError{Op: "store image", Err: err}
	}
	return url, nil
}
