package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/lightscene/internal/engine/lighting"
)

const (
	// PointLightTypeName identifies PointLightElement.
	PointLightTypeName = "Point Light"
	// DirectionalLightTypeName identifies DirectionalLightElement.
	DirectionalLightTypeName = "Directional Light"
)

var defaultLightColour = mgl32.Vec4{1, 1, 1, 1}

// PointLightElement places a point light in the scene. The light is shared
// with the LightScene; its Position is the element's world position.
type PointLightElement struct {
	base

	Position    mgl32.Vec3
	Visible     bool    // Editor gizmo visibility
	VisualScale float32 // Editor gizmo scale

	Light *lighting.PointLight
}

// NewPointLightElement creates a point light element at a local position.
func NewPointLightElement(name string, position mgl32.Vec3, colour mgl32.Vec4) *PointLightElement {
	e := &PointLightElement{
		base:        newBase(name),
		Position:    position,
		Visible:     true,
		VisualScale: 1,
		Light:       lighting.NewPointLight(mgl32.Vec3{}, colour),
	}
	e.UpdateInstanceData()
	return e
}

// NewDefaultPointLight creates the element the editor inserts from its menu.
func NewDefaultPointLight() *PointLightElement {
	return NewPointLightElement("New Point Light", mgl32.Vec3{0, 1, 0}, defaultLightColour)
}

// UpdateInstanceData implements Element.
func (e *PointLightElement) UpdateInstanceData() {
	e.transform = e.parentTransform().Mul4(mgl32.Translate3D(e.Position.X(), e.Position.Y(), e.Position.Z()))
	e.Light.Position = translation(e.transform)
}

// AddToLightScene implements Element.
func (e *PointLightElement) AddToLightScene(lights *lighting.LightScene) {
	lights.InsertPointLight(e.Light)
}

// RemoveFromLightScene implements Element.
func (e *PointLightElement) RemoveFromLightScene(lights *lighting.LightScene) {
	lights.RemovePointLight(e.Light)
}

// TypeName implements Element.
func (e *PointLightElement) TypeName() string { return PointLightTypeName }

// DirectionalLightElement places a directional light. Target is the local
// point the light is aimed at; the light's Direction points from the target
// back towards the element.
type DirectionalLightElement struct {
	base

	Position    mgl32.Vec3
	Target      mgl32.Vec3
	Visible     bool
	VisualScale float32

	Light *lighting.DirectionalLight
}

// NewDirectionalLightElement creates a directional light element aimed at target.
func NewDirectionalLightElement(name string, position, target mgl32.Vec3, colour mgl32.Vec4) *DirectionalLightElement {
	e := &DirectionalLightElement{
		base:        newBase(name),
		Position:    position,
		Target:      target,
		Visible:     true,
		VisualScale: 1,
		Light:       lighting.NewDirectionalLight(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}, colour),
	}
	e.UpdateInstanceData()
	return e
}

// NewDefaultDirectionalLight creates the element the editor inserts from its
// menu: above and behind the origin, aimed at it.
func NewDefaultDirectionalLight() *DirectionalLightElement {
	return NewDirectionalLightElement("New Directional Light", mgl32.Vec3{0, 3, 2}, mgl32.Vec3{}, defaultLightColour)
}

// UpdateInstanceData implements Element.
func (e *DirectionalLightElement) UpdateInstanceData() {
	parent := e.parentTransform()
	e.transform = parent.Mul4(mgl32.Translate3D(e.Position.X(), e.Position.Y(), e.Position.Z()))
	target := parent.Mul4x1(e.Target.Vec4(1)).Vec3()

	e.Light.Position = translation(e.transform)
	e.Light.Direction = facing(e.Light.Position, target)
}

// facing returns the unit vector from target to position. A light on the
// same vertical line as its target has no usable look-at basis against the
// +Y up vector, so it points straight up whether it sits above, below or on
// the target.
func facing(position, target mgl32.Vec3) mgl32.Vec3 {
	if mgl32.Abs(position.X()-target.X()) < 1e-6 && mgl32.Abs(position.Z()-target.Z()) < 1e-6 {
		return mgl32.Vec3{0, 1, 0}
	}
	return position.Sub(target).Normalize()
}

// AddToLightScene implements Element.
func (e *DirectionalLightElement) AddToLightScene(lights *lighting.LightScene) {
	lights.InsertDirectionalLight(e.Light)
}

// RemoveFromLightScene implements Element.
func (e *DirectionalLightElement) RemoveFromLightScene(lights *lighting.LightScene) {
	lights.RemoveDirectionalLight(e.Light)
}

// TypeName implements Element.
func (e *DirectionalLightElement) TypeName() string { return DirectionalLightTypeName }
