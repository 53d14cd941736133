package spiraltree

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Label is a line of centred screen text anchored at a fraction of the
// viewport (0..1 on each axis).
type Label struct {
	Text    string
	AnchorX float64
	AnchorY float64
	Color   Color
	face    *text.GoTextFace
}

// newFaceSource parses the bundled Go Regular font.
func newFaceSource() (*text.GoTextFaceSource, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	return src, nil
}

// newLabel creates a label drawn at size points from src.
func newLabel(src *text.GoTextFaceSource, s string, size, anchorX, anchorY float64) *Label {
	return &Label{
		Text:    s,
		AnchorX: anchorX,
		AnchorY: anchorY,
		Color:   ColorWhite,
		face:    &text.GoTextFace{Source: src, Size: size},
	}
}

// draw renders the label centred on its anchor with the given alpha.
func (l *Label) draw(dst *ebiten.Image, alpha float64) {
	if l == nil || l.Text == "" || alpha <= 0 {
		return
	}
	b := dst.Bounds()
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(float64(b.Min.X)+float64(b.Dx())*l.AnchorX, float64(b.Min.Y)+float64(b.Dy())*l.AnchorY)
	op.ColorScale.Scale(float32(l.Color.R), float32(l.Color.G), float32(l.Color.B), 1)
	op.ColorScale.ScaleAlpha(float32(l.Color.A * alpha))
	text.Draw(dst, l.Text, l.face, op)
}
