package lighting

// MaxPointLights is the point light array size of the default lit shader.
const MaxPointLights = 32

// MaxDirectionalLights is the directional light array size of the default lit shader.
const MaxDirectionalLights = 4

// PointLightUniforms holds a selection flattened for GPU upload.
type PointLightUniforms struct {
	Positions []float32 // [x0, y0, z0, x1, y1, z1, ...]
	Colours   []float32 // [r0, g0, b0, i0, r1, ...]
	Count     int       // Slots filled from the selection
}

// DirectionalLightUniforms holds a selection flattened for GPU upload.
type DirectionalLightUniforms struct {
	Positions  []float32
	Directions []float32
	Colours    []float32
	Count      int
}

// PackPointLights flattens lights into arrays sized for slots lights.
// Extra lights are dropped; unused slots stay zero, which the shader treats
// like an off light.
func PackPointLights(lights []PointLight, slots int) PointLightUniforms {
	slots = max(slots, 0)
	count := min(len(lights), slots)

	u := PointLightUniforms{
		Positions: make([]float32, slots*3),
		Colours:   make([]float32, slots*4),
		Count:     count,
	}
	for i, light := range lights[:count] {
		copy(u.Positions[i*3:], light.Position[:])
		copy(u.Colours[i*4:], light.Colour[:])
	}
	return u
}

// PackDirectionalLights flattens lights into arrays sized for slots lights.
func PackDirectionalLights(lights []DirectionalLight, slots int) DirectionalLightUniforms {
	slots = max(slots, 0)
	count := min(len(lights), slots)

	u := DirectionalLightUniforms{
		Positions:  make([]float32, slots*3),
		Directions: make([]float32, slots*3),
		Colours:    make([]float32, slots*4),
		Count:      count,
	}
	for i, light := range lights[:count] {
		copy(u.Positions[i*3:], light.Position[:])
		copy(u.Directions[i*3:], light.Direction[:])
		copy(u.Colours[i*4:], light.Colour[:])
	}
	return u
}
