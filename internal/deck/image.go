package deck

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

func loadImage(path string) (Slide, error) {
	f, err := os.Open(path)
	if err != nil {
		return Slide{}, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return Slide{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return Slide{Kind: KindImage, Source: path, Image: img, Title: titleFromPath(path)}, nil
}
