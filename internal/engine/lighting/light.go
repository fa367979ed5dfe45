// Package lighting holds the scene's light registry and picks the lights
// that affect a shaded object each frame.
package lighting

import "github.com/go-gl/mathgl/mgl32"

// Variant is the capability a light category needs to go through the
// nearest-light selector. L is the light's own value type, so Off can hand
// back a padding value of the right category.
type Variant[L any] interface {
	// WorldPosition is the point distances are measured from.
	WorldPosition() mgl32.Vec3
	// Off returns a light with no visible effect, used to pad results.
	Off() L
}

// PointLight is an omnidirectional light. Colour holds rgb with the
// intensity in the alpha channel.
type PointLight struct {
	Position mgl32.Vec3
	Colour   mgl32.Vec4
}

// NewPointLight creates a shared point light.
func NewPointLight(position mgl32.Vec3, colour mgl32.Vec4) *PointLight {
	return &PointLight{Position: position, Colour: colour}
}

// WorldPosition implements Variant.
func (l PointLight) WorldPosition() mgl32.Vec3 { return l.Position }

// Off implements Variant.
func (PointLight) Off() PointLight {
	return PointLight{}
}

// Intensity returns the intensity stored in the colour's alpha channel.
func (l PointLight) Intensity() float32 { return l.Colour.W() }

// DirectionalLight lights along a fixed direction. Direction points from
// the lit surface towards the light.
type DirectionalLight struct {
	Position  mgl32.Vec3
	Direction mgl32.Vec3
	Colour    mgl32.Vec4
}

// NewDirectionalLight creates a shared directional light.
func NewDirectionalLight(position, direction mgl32.Vec3, colour mgl32.Vec4) *DirectionalLight {
	return &DirectionalLight{Position: position, Direction: direction, Colour: colour}
}

// WorldPosition implements Variant.
func (l DirectionalLight) WorldPosition() mgl32.Vec3 { return l.Position }

// Off implements Variant. The direction stays a unit vector so shaders that
// normalize it never divide by zero.
func (DirectionalLight) Off() DirectionalLight {
	return DirectionalLight{Direction: mgl32.Vec3{0, 1, 0}}
}

// Intensity returns the intensity stored in the colour's alpha channel.
func (l DirectionalLight) Intensity() float32 { return l.Colour.W() }
