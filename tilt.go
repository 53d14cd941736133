package spiraltree

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// TiltSource reports device orientation in degrees: gamma (left/right) and
// beta (front/back). ok is false when no reading is available this frame.
type TiltSource interface {
	Orientation() (gamma, beta float64, ok bool)
}

// PermissionRequester is implemented by tilt sources that must be granted
// access first. A non-nil error leaves tilt unwired.
type PermissionRequester interface {
	RequestPermission() error
}

// ErrNoGamepad is returned by GamepadTilt.RequestPermission when no
// standard-layout gamepad is connected.
var ErrNoGamepad = errors.New("no standard gamepad connected")

// GamepadTilt turns the left stick of the first standard-layout gamepad into
// an orientation reading, for hosts without motion sensors.
type GamepadTilt struct {
	// GammaScale is the gamma angle at full horizontal deflection.
	GammaScale float64
	// BetaScale is the beta change at full vertical deflection.
	BetaScale float64
	// BetaCenter is the beta reported with the stick at rest.
	BetaCenter float64

	id  ebiten.GamepadID
	ok  bool
	buf []ebiten.GamepadID
}

// NewGamepadTilt returns a source spanning ±45° of gamma and 60±45° of beta.
func NewGamepadTilt() *GamepadTilt {
	return &GamepadTilt{GammaScale: 45, BetaScale: 45, BetaCenter: 60}
}

// RequestPermission binds the first standard gamepad.
func (g *GamepadTilt) RequestPermission() error {
	g.buf = ebiten.AppendGamepadIDs(g.buf[:0])
	for _, id := range g.buf {
		if ebiten.IsStandardGamepadLayoutAvailable(id) {
			g.id = id
			g.ok = true
			return nil
		}
	}
	return ErrNoGamepad
}

// Orientation reads the bound stick. It reports !ok after a disconnect.
func (g *GamepadTilt) Orientation() (gamma, beta float64, ok bool) {
	if !g.ok || !ebiten.IsStandardGamepadLayoutAvailable(g.id) {
		return 0, 0, false
	}
	x := ebiten.StandardGamepadAxisValue(g.id, ebiten.StandardGamepadAxisLeftStickHorizontal)
	y := ebiten.StandardGamepadAxisValue(g.id, ebiten.StandardGamepadAxisLeftStickVertical)
	return x * g.GammaScale, g.BetaCenter + y*g.BetaScale, true
}
