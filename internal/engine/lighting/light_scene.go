package lighting

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// LightScene is the registry of every active light, per category.
//
// Selection takes the read lock for its whole run, insertion and removal
// take the write lock. Per-object selection may therefore run from several
// goroutines while the editor mutates lights between frames.
type LightScene struct {
	mu          sync.RWMutex
	points      *Set[PointLight]
	directional *Set[DirectionalLight]
}

// NewLightScene creates an empty light registry.
func NewLightScene() *LightScene {
	return &LightScene{
		points:      NewSet[PointLight](),
		directional: NewSet[DirectionalLight](),
	}
}

// InsertPointLight registers a point light. Inserting twice is a no-op.
func (s *LightScene) InsertPointLight(light *PointLight) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.points.Insert(light)
}

// RemovePointLight unregisters a point light.
func (s *LightScene) RemovePointLight(light *PointLight) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.points.Remove(light)
}

// InsertDirectionalLight registers a directional light. Inserting twice is a no-op.
func (s *LightScene) InsertDirectionalLight(light *DirectionalLight) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.directional.Insert(light)
}

// RemoveDirectionalLight unregisters a directional light.
func (s *LightScene) RemoveDirectionalLight(light *DirectionalLight) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.directional.Remove(light)
}

// ContainsPointLight reports whether the point light is registered.
func (s *LightScene) ContainsPointLight(light *PointLight) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.points.Contains(light)
}

// ContainsDirectionalLight reports whether the directional light is registered.
func (s *LightScene) ContainsDirectionalLight(light *DirectionalLight) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.directional.Contains(light)
}

// PointLightCount returns the number of registered point lights.
func (s *LightScene) PointLightCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.points.Len()
}

// DirectionalLightCount returns the number of registered directional lights.
func (s *LightScene) DirectionalLightCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.directional.Len()
}

// Clear unregisters every light.
func (s *LightScene) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.points.Clear()
	s.directional.Clear()
}

// NearestPointLights returns copies of the point lights nearest to target.
// See SelectNearest for the shape of the result.
func (s *LightScene) NearestPointLights(target mgl32.Vec3, maxCount, minCount int) []PointLight {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return SelectNearest(s.points.Items(), target, maxCount, minCount)
}

// NearestDirectionalLights returns copies of the directional lights nearest to target.
// See SelectNearest for the shape of the result.
func (s *LightScene) NearestDirectionalLights(target mgl32.Vec3, maxCount, minCount int) []DirectionalLight {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return SelectNearest(s.directional.Items(), target, maxCount, minCount)
}

// SlotBounds is the light count range a shader accepts for one category.
type SlotBounds struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Fixed returns bounds for a shader with exactly n light slots.
func Fixed(n int) SlotBounds {
	return SlotBounds{Min: n, Max: n}
}

// Selection is the set of lights chosen for one shaded object.
type Selection struct {
	Point       []PointLight
	Directional []DirectionalLight
}

// LightsFor selects both light categories for an object at target from a
// single consistent view of the registry.
func (s *LightScene) LightsFor(target mgl32.Vec3, point, directional SlotBounds) Selection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Selection{
		Point:       SelectNearest(s.points.Items(), target, point.Max, point.Min),
		Directional: SelectNearest(s.directional.Items(), target, directional.Max, directional.Min),
	}
}
