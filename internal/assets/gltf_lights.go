// Package assets imports scene content from asset files.
package assets

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/ext/lightspunctual"
	"go.uber.org/zap"

	"github.com/Faultbox/lightscene/internal/engine/scene"
	"github.com/Faultbox/lightscene/internal/logger"
)

// ErrInvalidLightIndex is returned when a node references a light the
// document does not define.
var ErrInvalidLightIndex = errors.New("node references undefined light")

// glTF light types from KHR_lights_punctual.
const (
	lightTypePoint       = "point"
	lightTypeSpot        = "spot"
	lightTypeDirectional = "directional"
)

// LightImport is the set of light elements found in a glTF document.
// Positions are baked into world space, so the elements are scene roots.
type LightImport struct {
	Point       []*scene.PointLightElement
	Directional []*scene.DirectionalLightElement
}

// Len returns the number of imported lights.
func (r *LightImport) Len() int {
	return len(r.Point) + len(r.Directional)
}

// AddTo adds every imported light to s as a root element.
func (r *LightImport) AddTo(s *scene.Scene) error {
	for _, el := range r.Point {
		if err := s.Add(el, nil); err != nil {
			return err
		}
	}
	for _, el := range r.Directional {
		if err := s.Add(el, nil); err != nil {
			return err
		}
	}
	return nil
}

// LoadLights reads the punctual lights of a .gltf or .glb file.
func LoadLights(path string) (*LightImport, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf %s: %w", path, err)
	}
	result, err := ImportLights(doc)
	if err != nil {
		return nil, fmt.Errorf("import lights from %s: %w", path, err)
	}
	return result, nil
}

// ImportLights walks the default scene of doc (or every scene when none is
// marked default) and converts each node's light into an editor element.
// Spot lights become point lights.
func ImportLights(doc *gltf.Document) (*LightImport, error) {
	log := logger.Named("assets")

	defs, err := documentLights(doc)
	if err != nil {
		return nil, err
	}

	result := &LightImport{}
	if len(defs) == 0 {
		log.Debug("document has no punctual lights")
		return result, nil
	}

	visit := func(nodeIdx int, world mgl32.Mat4) error {
		node := doc.Nodes[nodeIdx]
		idx, ok, err := nodeLight(node)
		if err != nil || !ok {
			return err
		}
		if int(idx) >= len(defs) || defs[idx] == nil {
			return fmt.Errorf("node %q light %d: %w", node.Name, idx, ErrInvalidLightIndex)
		}
		def := defs[idx]

		name := def.Name
		if name == "" {
			name = node.Name
		}
		if name == "" {
			name = fmt.Sprintf("Light %d", idx)
		}

		position := world.Col(3).Vec3()
		colour := lightColour(def)

		switch def.Type {
		case lightTypeDirectional:
			// The light shines down the node's -Z axis.
			forward := world.Mul4x1(mgl32.Vec4{0, 0, -1, 0}).Vec3()
			if forward.Len() > 0 {
				forward = forward.Normalize()
			}
			result.Directional = append(result.Directional,
				scene.NewDirectionalLightElement(name, position, position.Add(forward), colour))
		case lightTypeSpot:
			log.Debug("importing spot light as point light", zap.String("light", name))
			fallthrough
		case lightTypePoint:
			result.Point = append(result.Point, scene.NewPointLightElement(name, position, colour))
		default:
			log.Warn("skipping light of unknown type", zap.String("light", name), zap.String("type", string(def.Type)))
		}
		return nil
	}

	for _, root := range sceneRoots(doc) {
		if err := walkNodes(doc, root, mgl32.Ident4(), visit, 0); err != nil {
			return nil, err
		}
	}

	log.Info("imported lights",
		zap.Int("point", len(result.Point)),
		zap.Int("directional", len(result.Directional)))
	return result, nil
}

// maxNodeDepth guards against malformed documents whose children loop.
const maxNodeDepth = 256

func walkNodes(doc *gltf.Document, idx int, parent mgl32.Mat4, visit func(int, mgl32.Mat4) error, depth int) error {
	if idx < 0 || idx >= len(doc.Nodes) {
		return fmt.Errorf("node index %d out of range", idx)
	}
	if depth > maxNodeDepth {
		return fmt.Errorf("node hierarchy deeper than %d", maxNodeDepth)
	}

	world := parent.Mul4(localTransform(doc.Nodes[idx]))
	if err := visit(idx, world); err != nil {
		return err
	}
	for _, child := range doc.Nodes[idx].Children {
		if err := walkNodes(doc, child, world, visit, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func sceneRoots(doc *gltf.Document) []int {
	if doc.Scene != nil && *doc.Scene < len(doc.Scenes) {
		return doc.Scenes[*doc.Scene].Nodes
	}
	var roots []int
	for _, s := range doc.Scenes {
		roots = append(roots, s.Nodes...)
	}
	return roots
}

// localTransform uses the node matrix when set, otherwise T * R * S.
func localTransform(node *gltf.Node) mgl32.Mat4 {
	var m mgl32.Mat4
	for i, v := range node.Matrix {
		m[i] = float32(v)
	}
	if m != (mgl32.Mat4{}) && m != mgl32.Ident4() {
		return m
	}

	t := node.Translation
	r := node.Rotation
	s := node.Scale

	rot := mgl32.QuatIdent()
	if r != [4]float64{} {
		rot = mgl32.Quat{W: float32(r[3]), V: mgl32.Vec3{float32(r[0]), float32(r[1]), float32(r[2])}}.Normalize()
	}
	scale := mgl32.Vec3{1, 1, 1}
	if s != [3]float64{} {
		scale = mgl32.Vec3{float32(s[0]), float32(s[1]), float32(s[2])}
	}

	return mgl32.Translate3D(float32(t[0]), float32(t[1]), float32(t[2])).
		Mul4(rot.Mat4()).
		Mul4(mgl32.Scale3D(scale.X(), scale.Y(), scale.Z()))
}

func lightColour(def *lightspunctual.Light) mgl32.Vec4 {
	c := def.ColorOrDefault()
	return mgl32.Vec4{float32(c[0]), float32(c[1]), float32(c[2]), float32(def.IntensityOrDefault())}
}

// documentLights returns the document-level light definitions.
func documentLights(doc *gltf.Document) (lightspunctual.Lights, error) {
	ext, ok := doc.Extensions[lightspunctual.ExtensionName]
	if !ok {
		return nil, nil
	}
	switch v := ext.(type) {
	case lightspunctual.Lights:
		return v, nil
	case *lightspunctual.Lights:
		return *v, nil
	case json.RawMessage:
		var raw struct {
			Lights lightspunctual.Lights `json:"lights"`
		}
		if err := json.Unmarshal(v, &raw); err != nil {
			return nil, fmt.Errorf("decode %s: %w", lightspunctual.ExtensionName, err)
		}
		return raw.Lights, nil
	default:
		return nil, fmt.Errorf("unexpected %s extension type %T", lightspunctual.ExtensionName, ext)
	}
}

// nodeLight returns the light index a node references, if any.
func nodeLight(node *gltf.Node) (lightspunctual.LightIndex, bool, error) {
	ext, ok := node.Extensions[lightspunctual.ExtensionName]
	if !ok {
		return 0, false, nil
	}
	switch v := ext.(type) {
	case lightspunctual.LightIndex:
		return v, true, nil
	case *lightspunctual.LightIndex:
		return *v, true, nil
	case json.RawMessage:
		var raw struct {
			Light *lightspunctual.LightIndex `json:"light"`
		}
		if err := json.Unmarshal(v, &raw); err != nil {
			return 0, false, fmt.Errorf("node %q: decode %s: %w", node.Name, lightspunctual.ExtensionName, err)
		}
		if raw.Light == nil {
			return 0, false, nil
		}
		return *raw.Light, true, nil
	default:
		return 0, false, fmt.Errorf("node %q: unexpected %s extension type %T", node.Name, lightspunctual.ExtensionName, ext)
	}
}
