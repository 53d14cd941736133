package spiraltree

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

// particleTextureSize is the edge length of the point sprite in pixels.
const particleTextureSize = 32

// gradientStop is one fade step of the point sprite, from centre (0) to rim (1).
type gradientStop struct {
	offset float64
	alpha  uint8
}

var particleStops = []gradientStop{
	{0, 255},
	{0.2, 204},
	{0.5, 51},
	{1, 0},
}

// newParticleImage renders the soft round point sprite: white, opaque at the
// centre and fading to transparent at the rim.
func newParticleImage(size int) image.Image {
	dc := gg.NewContext(size, size)
	c := float64(size) / 2
	grad := gg.NewRadialGradient(c, c, 0, c, c, c)
	for _, st := range particleStops {
		grad.AddColorStop(st.offset, color.NRGBA{R: 255, G: 255, B: 255, A: st.alpha})
	}
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, float64(size), float64(size))
	dc.Fill()
	return dc.Image()
}
