package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/lightscene/internal/engine/lighting"
)

func vecNear(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	assert.InDeltaSlice(t, want[:], got[:], 1e-5, "want %v, got %v", want, got)
}

func TestAddRegistersLights(t *testing.T) {
	lights := lighting.NewLightScene()
	s := New(lights)

	point := NewDefaultPointLight()
	sun := NewDefaultDirectionalLight()
	prop := NewEntityElement("Crate", mgl32.Vec3{}, "crate.obj")

	require.NoError(t, s.Add(point, nil))
	require.NoError(t, s.Add(sun, nil))
	require.NoError(t, s.Add(prop, nil))

	assert.Equal(t, 3, s.Len())
	assert.True(t, lights.ContainsPointLight(point.Light))
	assert.True(t, lights.ContainsDirectionalLight(sun.Light))
	assert.Equal(t, 1, lights.PointLightCount())

	err := s.Add(point, nil)
	assert.ErrorIs(t, err, ErrDuplicateElement)
}

func TestAddUnknownParent(t *testing.T) {
	s := New(lighting.NewLightScene())
	orphanParent := NewEntityElement("Ghost", mgl32.Vec3{}, "")

	err := s.Add(NewDefaultPointLight(), orphanParent)
	assert.ErrorIs(t, err, ErrElementNotFound)
	assert.Equal(t, 0, s.Len())
}

func TestAddUnderItself(t *testing.T) {
	s := New(lighting.NewLightScene())
	el := NewEntityElement("Loop", mgl32.Vec3{}, "")

	assert.ErrorIs(t, s.Add(el, el), ErrCycle)
}

func TestLightFollowsParentTransform(t *testing.T) {
	lights := lighting.NewLightScene()
	s := New(lights)

	lamp := NewEntityElement("Lamp Post", mgl32.Vec3{10, 0, 0}, "lamp.obj")
	bulb := NewPointLightElement("Bulb", mgl32.Vec3{0, 3, 0}, mgl32.Vec4{1, 0.9, 0.7, 2})
	require.NoError(t, s.Add(lamp, nil))
	require.NoError(t, s.Add(bulb, lamp))

	vecNear(t, mgl32.Vec3{10, 3, 0}, bulb.Light.Position)

	lamp.Position = mgl32.Vec3{-5, 1, 0}
	require.NoError(t, s.Update(lamp.ID()))
	vecNear(t, mgl32.Vec3{-5, 4, 0}, bulb.Light.Position)

	// The registry holds the same light, so selection sees the move.
	got := lights.NearestPointLights(mgl32.Vec3{-5, 4, 0}, 1, 0)
	require.Len(t, got, 1)
	vecNear(t, mgl32.Vec3{-5, 4, 0}, got[0].Position)
}

func TestEntityRotationAndScale(t *testing.T) {
	s := New(lighting.NewLightScene())

	arm := NewEntityElement("Arm", mgl32.Vec3{0, 0, 0}, "")
	arm.Rotation = mgl32.Vec3{0, 90, 0}
	arm.Scale = mgl32.Vec3{2, 2, 2}
	bulb := NewPointLightElement("Bulb", mgl32.Vec3{1, 0, 0}, mgl32.Vec4{1, 1, 1, 1})

	require.NoError(t, s.Add(arm, nil))
	require.NoError(t, s.Add(bulb, arm))

	// +X rotated 90 degrees about Y lands on -Z, then scaled by 2.
	vecNear(t, mgl32.Vec3{0, 0, -2}, bulb.Light.Position)
}

func TestDirectionalLightFacing(t *testing.T) {
	sun := NewDefaultDirectionalLight()
	vecNear(t, mgl32.Vec3{0, 3, 2}, sun.Light.Position)
	vecNear(t, mgl32.Vec3{0, 3, 2}.Normalize(), sun.Light.Direction)

	sun.Target = sun.Position
	sun.UpdateInstanceData()
	vecNear(t, mgl32.Vec3{0, 1, 0}, sun.Light.Direction)

	sun.Target = mgl32.Vec3{0, 3, 0}
	sun.UpdateInstanceData()
	vecNear(t, mgl32.Vec3{0, 0, 1}, sun.Light.Direction)
}

func TestDirectionalLightVerticalFallsBackToUp(t *testing.T) {
	tests := []struct {
		name   string
		target mgl32.Vec3
	}{
		{"below target", mgl32.Vec3{2, 9, -1}},
		{"above target", mgl32.Vec3{2, -4, -1}},
		{"on target", mgl32.Vec3{2, 3, -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sun := NewDirectionalLightElement("Sun", mgl32.Vec3{2, 3, -1}, tt.target, mgl32.Vec4{1, 1, 1, 1})
			vecNear(t, mgl32.Vec3{0, 1, 0}, sun.Light.Direction)
		})
	}

	// Any horizontal offset restores the aimed direction.
	sun := NewDirectionalLightElement("Sun", mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 1, 0}, mgl32.Vec4{1, 1, 1, 1})
	vecNear(t, mgl32.Vec3{-1, -1, 0}.Normalize(), sun.Light.Direction)
}

func TestDirectionalLightUnderParent(t *testing.T) {
	s := New(lighting.NewLightScene())
	rig := NewEntityElement("Rig", mgl32.Vec3{0, 10, 0}, "")
	sun := NewDirectionalLightElement("Sun", mgl32.Vec3{0, 5, 0}, mgl32.Vec3{}, mgl32.Vec4{1, 1, 1, 1})

	require.NoError(t, s.Add(rig, nil))
	require.NoError(t, s.Add(sun, rig))

	vecNear(t, mgl32.Vec3{0, 15, 0}, sun.Light.Position)
	vecNear(t, mgl32.Vec3{0, 1, 0}, sun.Light.Direction)
}

func TestRemoveSubtree(t *testing.T) {
	lights := lighting.NewLightScene()
	s := New(lights)

	room := NewEntityElement("Room", mgl32.Vec3{}, "")
	ceiling := NewPointLightElement("Ceiling", mgl32.Vec3{0, 3, 0}, mgl32.Vec4{1, 1, 1, 1})
	window := NewDirectionalLightElement("Window", mgl32.Vec3{4, 2, 0}, mgl32.Vec3{}, mgl32.Vec4{1, 1, 1, 1})
	desk := NewPointLightElement("Desk", mgl32.Vec3{1, 1, 1}, mgl32.Vec4{1, 1, 1, 1})
	outside := NewDefaultPointLight()

	require.NoError(t, s.Add(room, nil))
	require.NoError(t, s.Add(ceiling, room))
	require.NoError(t, s.Add(window, room))
	require.NoError(t, s.Add(desk, ceiling))
	require.NoError(t, s.Add(outside, nil))
	require.Equal(t, 3, lights.PointLightCount())

	require.NoError(t, s.Remove(room.ID()))

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 1, lights.PointLightCount())
	assert.Equal(t, 0, lights.DirectionalLightCount())
	assert.False(t, lights.ContainsPointLight(desk.Light))
	assert.True(t, lights.ContainsPointLight(outside.Light))
	_, ok := s.Get(desk.ID())
	assert.False(t, ok)
	assert.Equal(t, []Element{outside}, s.Roots())

	assert.ErrorIs(t, s.Remove(room.ID()), ErrElementNotFound)
}

func TestSelectionSurvivesElementRemoval(t *testing.T) {
	lights := lighting.NewLightScene()
	s := New(lights)
	bulb := NewDefaultPointLight()
	require.NoError(t, s.Add(bulb, nil))

	got := lights.NearestPointLights(mgl32.Vec3{}, 1, 0)
	require.NoError(t, s.Remove(bulb.ID()))

	require.Len(t, got, 1)
	vecNear(t, mgl32.Vec3{0, 1, 0}, got[0].Position)
	assert.Empty(t, lights.NearestPointLights(mgl32.Vec3{}, 1, 0))
}

func TestSetParent(t *testing.T) {
	s := New(lighting.NewLightScene())

	a := NewEntityElement("A", mgl32.Vec3{1, 0, 0}, "")
	b := NewEntityElement("B", mgl32.Vec3{0, 1, 0}, "")
	bulb := NewPointLightElement("Bulb", mgl32.Vec3{0, 0, 1}, mgl32.Vec4{1, 1, 1, 1})
	require.NoError(t, s.Add(a, nil))
	require.NoError(t, s.Add(b, a))
	require.NoError(t, s.Add(bulb, b))
	vecNear(t, mgl32.Vec3{1, 1, 1}, bulb.Light.Position)

	assert.ErrorIs(t, s.SetParent(a.ID(), bulb), ErrCycle)
	assert.ErrorIs(t, s.SetParent(a.ID(), a), ErrCycle)
	assert.ErrorIs(t, s.SetParent(uuid.New(), nil), ErrElementNotFound)

	require.NoError(t, s.SetParent(b.ID(), nil))
	vecNear(t, mgl32.Vec3{0, 1, 1}, bulb.Light.Position)
	assert.Nil(t, b.Parent())
	assert.Empty(t, s.Children(a.ID()))
	assert.Equal(t, []Element{a, b}, s.Roots())
}

func TestElementsOrderAndUpdateAll(t *testing.T) {
	s := New(lighting.NewLightScene())

	root := NewEntityElement("Root", mgl32.Vec3{}, "")
	child := NewPointLightElement("Child", mgl32.Vec3{1, 0, 0}, mgl32.Vec4{1, 1, 1, 1})
	other := NewEntityElement("Other", mgl32.Vec3{}, "")
	require.NoError(t, s.Add(root, nil))
	require.NoError(t, s.Add(other, nil))
	require.NoError(t, s.Add(child, root))

	assert.Equal(t, []Element{root, child, other}, s.Elements())

	root.Position = mgl32.Vec3{0, 0, 5}
	s.UpdateAll()
	vecNear(t, mgl32.Vec3{1, 0, 5}, child.Light.Position)
}

func TestClear(t *testing.T) {
	lights := lighting.NewLightScene()
	s := New(lights)
	require.NoError(t, s.Add(NewDefaultPointLight(), nil))
	require.NoError(t, s.Add(NewDefaultDirectionalLight(), nil))

	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0, lights.PointLightCount())
	assert.Equal(t, 0, lights.DirectionalLightCount())
}

func TestTypeNames(t *testing.T) {
	names := map[string]bool{}
	for _, el := range []Element{NewDefaultPointLight(), NewDefaultDirectionalLight(), NewEntityElement("E", mgl32.Vec3{}, "")} {
		assert.False(t, names[el.TypeName()], "type names must be unique")
		names[el.TypeName()] = true
	}
}
