// Package render holds the color language and the renderer family. The
// color Context is threaded explicitly into every renderer call so the
// shared phase has exactly one writer per frame and every reader sees the
// same value.
package render

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/maestro/constants"
	"github.com/lixenwraith/maestro/vmath"
)

// Relationship selects how per-finger hues relate to the base hue
type Relationship int

const (
	Analogous Relationship = iota
	Monochromatic
	Triadic
)

// Scheme is a named color language shared by all renderers
type Scheme struct {
	Name         string
	BaseHue      float64
	Relationship Relationship
}

// schemes in cycle order
var schemes = []Scheme{
	{Name: "aurora", BaseHue: 160, Relationship: Analogous},
	{Name: "ember", BaseHue: 20, Relationship: Monochromatic},
	{Name: "prism", BaseHue: 0, Relationship: Triadic},
	{Name: "violet", BaseHue: 285, Relationship: Analogous},
}

// ParticleMode selects the hue derivation for ParticleColor
type ParticleMode int

const (
	ByVelocity ParticleMode = iota // value is speed in pixels/second
	ByAge                         // value is age ratio 0..1
	ByPhase                       // value ignored; hue follows the phase
	FixedHue                      // value is the hue itself
)

// Context is the per-session color state. UpdatePhase must run exactly
// once per frame before any renderer reads colors.
type Context struct {
	scheme  Scheme
	idx     int
	elapsed float64 // seconds; phase and wobble derive from it
}

// NewContext starts on the first scheme
func NewContext() *Context {
	return &Context{scheme: schemes[0]}
}

// SetScheme selects a scheme by name; unknown names keep the current
// scheme
func (c *Context) SetScheme(name string) bool {
	for i, s := range schemes {
		if s.Name == name {
			c.scheme = s
			c.idx = i
			return true
		}
	}
	return false
}

// CycleScheme advances to the next scheme and returns its name
func (c *Context) CycleScheme() string {
	c.idx = (c.idx + 1) % len(schemes)
	c.scheme = schemes[c.idx]
	return c.scheme.Name
}

// SchemeName returns the active scheme's name
func (c *Context) SchemeName() string {
	return c.scheme.Name
}

// UpdatePhase advances the shared color phase by the frame delta
func (c *Context) UpdatePhase(dt float64) {
	c.elapsed += dt
}

// Phase returns the shared hue phase in degrees
func (c *Context) Phase() float64 {
	return math.Mod(c.elapsed*constants.ColorPhaseSpeed, 360)
}

// FingerHue returns the hue assigned to a finger under the active scheme
func (c *Context) FingerHue(finger int) float64 {
	base := c.scheme.BaseHue
	switch c.scheme.Relationship {
	case Analogous:
		return wrapHue(base + float64(finger)*12 + c.Phase())
	case Triadic:
		return wrapHue(base + float64(finger%3)*120 + c.Phase()*0.5)
	default: // Monochromatic
		return wrapHue(base)
	}
}

// FingerColor derives the shared color for a fingertip: hue from the
// scheme relationship and phase, saturation rising modestly with
// velocity, lightness wobbling slowly with a per-finger offset.
func (c *Context) FingerColor(finger int, velocity, alpha float64) color.NRGBA {
	hue := c.FingerHue(finger)

	sat := 0.7 + velocity*constants.SaturationVelocityGain
	if sat > constants.SaturationCap {
		sat = constants.SaturationCap
	}

	wobble := math.Sin(2*math.Pi*constants.LightnessWobbleRate*c.elapsed + float64(finger)*1.3)
	light := 0.55 + constants.LightnessWobbleDepth*wobble

	return hsl(hue, sat, light, alpha)
}

// ParticleColor derives a particle color from the requested mode
func (c *Context) ParticleColor(mode ParticleMode, value, alpha float64) color.NRGBA {
	var hue float64
	switch mode {
	case ByVelocity:
		hue = wrapHue(c.scheme.BaseHue + vmath.Clamp(value, 0, 400)/400*90)
	case ByAge:
		hue = wrapHue(c.scheme.BaseHue + vmath.Clamp01(value)*60 + c.Phase()*0.25)
	case ByPhase:
		hue = wrapHue(c.scheme.BaseHue + c.Phase())
	default: // FixedHue
		hue = wrapHue(value)
	}
	return hsl(hue, 0.85, 0.6, alpha)
}

func wrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// hsl builds an NRGBA from HSL plus alpha
func hsl(h, s, l, alpha float64) color.NRGBA {
	c := colorful.Hsl(h, vmath.Clamp01(s), vmath.Clamp01(l)).Clamped()
	return color.NRGBA{
		R: uint8(c.R*255 + 0.5),
		G: uint8(c.G*255 + 0.5),
		B: uint8(c.B*255 + 0.5),
		A: uint8(vmath.Clamp01(alpha)*255 + 0.5),
	}
}
