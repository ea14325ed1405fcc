// Package ogimage renders open-graph preview cards as PNGs. A card is a
// fixed 1200x630 layout: gradient background, wrapped description text,
// and a date/author line. Rendering is pure and deterministic, so builds
// can be compared byte for byte.
package ogimage

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Width and Height match the recommended OpenGraph image dimensions.
const (
	Width  = 1200
	Height = 630
)

const (
	marginX     = 90.0
	titleTop    = 150.0
	lineSpacing = 1.4
)

// Card holds the fields drawn onto the preview image.
type Card struct {
	Title       string // post title (or site name on the home card)
	Description string // front-matter description, wrapped under the title
	Date        string // front-matter date string, drawn verbatim
	Author      string
	Site        string
}

var (
	titleFace font.Face
	metaFace  font.Face
	brandFace font.Face
)

func init() {
	bold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		panic(fmt.Sprintf("ogimage: parse gobold: %v", err))
	}
	regular, err := truetype.Parse(goregular.TTF)
	if err != nil {
		panic(fmt.Sprintf("ogimage: parse goregular: %v", err))
	}
	titleFace = truetype.NewFace(bold, &truetype.Options{Size: 64})
	metaFace = truetype.NewFace(regular, &truetype.Options{Size: 34})
	brandFace = truetype.NewFace(bold, &truetype.Options{Size: 30})
}

// Render draws the card and returns the image.
func Render(card Card) image.Image {
	dc := gg.NewContext(Width, Height)

	grad := gg.NewLinearGradient(0, 0, 0, Height)
	grad.AddColorStop(0, color.RGBA{R: 24, G: 24, B: 46, A: 255})
	grad.AddColorStop(1, color.RGBA{R: 66, G: 32, B: 92, A: 255})
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, Width, Height)
	dc.Fill()

	maxWidth := float64(Width) - 2*marginX

	dc.SetFontFace(brandFace)
	dc.SetColor(color.RGBA{R: 186, G: 170, B: 219, A: 255})
	dc.DrawString(card.Site, marginX, 80)

	dc.SetFontFace(titleFace)
	dc.SetColor(color.White)
	dc.DrawStringWrapped(card.Title, marginX, titleTop, 0, 0, maxWidth, lineSpacing, gg.AlignLeft)

	if card.Description != "" {
		titleLines := dc.WordWrap(card.Title, maxWidth)
		_, titleHeight := dc.MeasureMultilineString(strings.Join(titleLines, "\n"), lineSpacing)
		dc.SetFontFace(metaFace)
		dc.SetColor(color.RGBA{R: 210, G: 205, B: 224, A: 255})
		dc.DrawStringWrapped(card.Description, marginX, titleTop+titleHeight+40, 0, 0, maxWidth, lineSpacing, gg.AlignLeft)
	}

	meta := card.Date
	if card.Author != "" {
		if meta != "" {
			meta += "  ·  "
		}
		meta += card.Author
	}
	dc.SetFontFace(metaFace)
	dc.SetColor(color.RGBA{R: 210, G: 205, B: 224, A: 255})
	dc.DrawString(meta, marginX, Height-70)

	return dc.Image()
}

// EncodePNG renders the card and writes it as PNG to w.
func EncodePNG(w io.Writer, card Card) error {
	if err := png.Encode(w, Render(card)); err != nil {
		return fmt.Errorf("ogimage: encode png: %w", err)
	}
	return nil
}
