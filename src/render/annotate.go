package render

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Annotation block geometry.
const (
	annotationLineHeight = 16
	annotationPadX       = 14
	annotationPadY       = 10
	annotationMarginY    = 48
)

// -----------------------------------------------------------------------------

// StampAnnotation draws the summary lines in a bordered box centered in the
// band reserved below the plot area.
func StampAnnotation(img *image.RGBA, lines []string) {
	if len(lines) == 0 {
		return
	}

	face := basicfont.Face7x13
	bounds := img.Bounds()

	dr := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{R: 51, G: 51, B: 51, A: 255}),
		Face: face,
	}

	// Widest line decides the box width
	maxW := 0
	for _, line := range lines {
		if w := dr.MeasureString(line).Ceil(); w > maxW {
			maxW = w
		}
	}

	blockW := maxW + 2*annotationPadX
	blockH := len(lines)*annotationLineHeight + 2*annotationPadY
	x0 := bounds.Min.X + (bounds.Dx()-blockW)/2
	y1 := bounds.Max.Y - annotationMarginY
	y0 := y1 - blockH

	// Translucent white box with a gray border
	boxRect := image.Rect(x0, y0, x0+blockW, y1)
	bg := image.NewUniform(color.RGBA{R: 178, G: 178, B: 178, A: 178})
	draw.Draw(img, boxRect, bg, image.Point{}, draw.Over)
	drawRectOutline(img, boxRect, image.NewUniform(color.RGBA{R: 128, G: 128, B: 128, A: 255}))

	ascent := face.Metrics().Ascent.Ceil()
	for i, line := range lines {
		w := dr.MeasureString(line).Ceil()
		x := bounds.Min.X + (bounds.Dx()-w)/2
		y := y0 + annotationPadY + i*annotationLineHeight + ascent
		dr.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
		dr.DrawString(line)
	}
}

// -----------------------------------------------------------------------------

// drawRectOutline draws a one pixel border around r.
func drawRectOutline(img *image.RGBA, r image.Rectangle, src image.Image) {
	draw.Draw(img, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), src, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y), src, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y), src, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y), src, image.Point{}, draw.Src)
}
