package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/lightscene/internal/engine/lighting"
)

// EntityTypeName identifies EntityElement.
const EntityTypeName = "Entity"

// EntityElement is a renderable object or plain group node. Its model is
// referenced by path only; loading happens in the renderer.
type EntityElement struct {
	base

	Position  mgl32.Vec3
	Rotation  mgl32.Vec3 // Euler angles in degrees, applied X then Y then Z
	Scale     mgl32.Vec3
	ModelPath string
}

// NewEntityElement creates an entity at position with unit scale.
func NewEntityElement(name string, position mgl32.Vec3, modelPath string) *EntityElement {
	return &EntityElement{
		base:      newBase(name),
		Position:  position,
		Scale:     mgl32.Vec3{1, 1, 1},
		ModelPath: modelPath,
	}
}

// LocalTransform returns T * R * S.
func (e *EntityElement) LocalTransform() mgl32.Mat4 {
	rot := mgl32.AnglesToQuat(
		mgl32.DegToRad(e.Rotation.X()),
		mgl32.DegToRad(e.Rotation.Y()),
		mgl32.DegToRad(e.Rotation.Z()),
		mgl32.XYZ,
	)
	return mgl32.Translate3D(e.Position.X(), e.Position.Y(), e.Position.Z()).
		Mul4(rot.Mat4()).
		Mul4(mgl32.Scale3D(e.Scale.X(), e.Scale.Y(), e.Scale.Z()))
}

// UpdateInstanceData implements Element.
func (e *EntityElement) UpdateInstanceData() {
	e.transform = e.parentTransform().Mul4(e.LocalTransform())
}

// AddToLightScene implements Element. Entities own no lights.
func (e *EntityElement) AddToLightScene(*lighting.LightScene) {}

// RemoveFromLightScene implements Element.
func (e *EntityElement) RemoveFromLightScene(*lighting.LightScene) {}

// TypeName implements Element.
func (e *EntityElement) TypeName() string { return EntityTypeName }
