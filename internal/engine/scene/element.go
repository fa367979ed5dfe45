// Package scene provides the editor's scene graph: named elements with
// parent-relative transforms, some of which own lights in a LightScene.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"

	"github.com/Faultbox/lightscene/internal/engine/lighting"
)

// Element is a node of the editor scene graph.
type Element interface {
	ID() uuid.UUID
	Name() string
	SetName(name string)

	// Parent returns nil for root elements.
	Parent() Element

	// Transform is the world transform computed by the last UpdateInstanceData.
	Transform() mgl32.Mat4

	// UpdateInstanceData recomputes the world transform from the local
	// fields and the parent's transform, and pushes it into owned lights.
	UpdateInstanceData()

	// AddToLightScene registers the lights the element owns, if any.
	AddToLightScene(lights *lighting.LightScene)
	// RemoveFromLightScene unregisters them again.
	RemoveFromLightScene(lights *lighting.LightScene)

	// TypeName is unique per element kind.
	TypeName() string

	setParent(parent Element)
}

// base carries the state every element shares.
type base struct {
	id        uuid.UUID
	name      string
	parent    Element
	transform mgl32.Mat4
}

func newBase(name string) base {
	return base{
		id:        uuid.New(),
		name:      name,
		transform: mgl32.Ident4(),
	}
}

func (b *base) ID() uuid.UUID            { return b.id }
func (b *base) Name() string             { return b.name }
func (b *base) SetName(name string)      { b.name = name }
func (b *base) Parent() Element          { return b.parent }
func (b *base) Transform() mgl32.Mat4    { return b.transform }
func (b *base) setParent(parent Element) { b.parent = parent }

// parentTransform is identity for roots.
func (b *base) parentTransform() mgl32.Mat4 {
	if b.parent == nil {
		return mgl32.Ident4()
	}
	return b.parent.Transform()
}

func translation(m mgl32.Mat4) mgl32.Vec3 {
	return m.Col(3).Vec3()
}
