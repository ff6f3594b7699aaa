package upload

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"github.com/dev-guime/arcade-backend/internal/apperror"
)

func testImage(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: 40, B: 90, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test image: %v", err)
	}
	return buf.Bytes()
}

func TestStoreImageUploadsJPEGUnderProductsKey(t *testing.T) {
	store, state := NewMockForTests()
	svc := NewService(store, 1600)

	url, err := svc.StoreImage(context.Background(), testImage(t, 320, 200))
	if err != nil {
		t.Fatalf("StoreImage: %v", err)
	}
	if !strings.HasPrefix(url, "https://cdn.arcade.local/products/") || !strings.HasSuffix(url, ".jpg") {
		t.Fatalf("unexpected public url %q", url)
	}
	if state.Len() != 1 {
		t.Fatalf("expected one stored object, got %d", state.Len())
	}
	key := strings.TrimPrefix(url, "https://cdn.arcade.local/")
	data, ok := state.Object(key)
	if !ok {
		t.Fatalf("object %q not stored", key)
	}
	img, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("stored object is not a jpeg: %v", err)
	}
	if img.Bounds().Dx() != 320 {
		t.Fatalf("small image should keep its width, got %d", img.Bounds().Dx())
	}
}

func TestStoreImageCapsWidth(t *testing.T) {
	store, state := NewMockForTests()
	svc := NewService(store, 100)

	url, err := svc.StoreImage(context.Background(), testImage(t, 300, 150))
	if err != nil {
		t.Fatalf("StoreImage: %v", err)
	}
	key := strings.TrimPrefix(url, "https://cdn.arcade.local/")
	data, _ := state.Object(key)
	img, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode stored object: %v", err)
	}
	if img.Bounds().Dx() != 100 {
		t.Fatalf("width not capped: got %d", img.Bounds().Dx())
	}
	if img.Bounds().Dy() != 50 {
		t.Fatalf("aspect ratio not kept: got height %d", img.Bounds().Dy())
	}
}

func TestStoreImageRejectsNonImage(t *testing.T) {
	store, state := NewMockForTests()
	svc := NewService(store, 1600)

	_, err := svc.StoreImage(context.Background(), []byte("definitely not pixels"))
	var ve *apperror.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if state.Len() != 0 {
		t.Fatalf("nothing should be stored on a rejected upload")
	}
}
