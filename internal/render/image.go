package render

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/draw"
)

// Image draws img into a width x height cell box using upper half blocks,
// two pixels per cell, scaled to fit and centred.
func Image(img image.Image, width, height int) string {
	if img == nil || width < 1 || height < 1 {
		return ""
	}
	w, h := fit(img.Bounds().Dx(), img.Bounds().Dy(), width, height*2)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)

	rows := make([]string, 0, h/2)
	for y := 0; y < h; y += 2 {
		var sb strings.Builder
		for x := 0; x < w; x++ {
			top := dst.RGBAAt(x, y)
			bottom := dst.RGBAAt(x, y+1)
			sb.WriteString(lipgloss.NewStyle().
				Foreground(hex(top)).
				Background(hex(bottom)).
				Render("▀"))
		}
		rows = append(rows, sb.String())
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(rows, "\n"))
}

// fit scales srcW x srcH into maxW x maxH keeping the aspect ratio. The
// height is kept even so every cell has two pixels.
func fit(srcW, srcH, maxW, maxH int) (int, int) {
	if srcW < 1 || srcH < 1 {
		return 1, 2
	}
	scale := min(float64(maxW)/float64(srcW), float64(maxH)/float64(srcH))
	w := max(1, int(float64(srcW)*scale))
	h := max(2, int(float64(srcH)*scale))
	h -= h % 2
	return w, h
}

func hex(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}
