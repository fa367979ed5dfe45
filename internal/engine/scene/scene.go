package scene

import (
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Faultbox/lightscene/internal/engine/lighting"
	"github.com/Faultbox/lightscene/internal/logger"
)

var (
	// ErrElementNotFound is returned for an element or parent not in the scene.
	ErrElementNotFound = errors.New("element not found")
	// ErrDuplicateElement is returned when adding an element twice.
	ErrDuplicateElement = errors.New("element already in scene")
	// ErrCycle is returned when a parent change would make an element its own ancestor.
	ErrCycle = errors.New("element would become its own ancestor")
)

// Scene is the editor's element tree. It keeps the LightScene in step with
// element lifetime: a light is registered while its element is in the scene.
//
// Scene is not safe for concurrent use; the LightScene it feeds is.
type Scene struct {
	lights   *lighting.LightScene
	elements map[uuid.UUID]Element
	roots    []Element
	children map[uuid.UUID][]Element
	log      *zap.Logger
}

// New creates an empty scene feeding lights.
func New(lights *lighting.LightScene) *Scene {
	return &Scene{
		lights:   lights,
		elements: make(map[uuid.UUID]Element),
		children: make(map[uuid.UUID][]Element),
		log:      logger.Named("scene"),
	}
}

// Lights returns the light registry the scene feeds.
func (s *Scene) Lights() *lighting.LightScene { return s.lights }

// Len returns the number of elements.
func (s *Scene) Len() int { return len(s.elements) }

// Get looks up an element by ID.
func (s *Scene) Get(id uuid.UUID) (Element, bool) {
	el, ok := s.elements[id]
	return el, ok
}

// Roots returns the elements without a parent, in insertion order.
func (s *Scene) Roots() []Element {
	return slices.Clone(s.roots)
}

// Children returns the direct children of id, in insertion order.
func (s *Scene) Children(id uuid.UUID) []Element {
	return slices.Clone(s.children[id])
}

// Add inserts el under parent (nil for a root), computes its transform and
// registers its lights.
func (s *Scene) Add(el Element, parent Element) error {
	if _, ok := s.elements[el.ID()]; ok {
		return fmt.Errorf("add %q: %w", el.Name(), ErrDuplicateElement)
	}
	if parent != nil {
		if parent.ID() == el.ID() {
			return fmt.Errorf("add %q under itself: %w", el.Name(), ErrCycle)
		}
		if _, ok := s.elements[parent.ID()]; !ok {
			return fmt.Errorf("add %q under %q: %w", el.Name(), parent.Name(), ErrElementNotFound)
		}
	}

	s.elements[el.ID()] = el
	s.link(el, parent)
	el.UpdateInstanceData()
	el.AddToLightScene(s.lights)

	s.log.Debug("element added",
		zap.String("type", el.TypeName()),
		zap.String("name", el.Name()),
		zap.Stringer("id", el.ID()))
	return nil
}

// Remove deletes the element and its whole subtree, unregistering their lights.
// The removed elements keep their light pointers; nothing else refers to them.
func (s *Scene) Remove(id uuid.UUID) error {
	el, ok := s.elements[id]
	if !ok {
		return fmt.Errorf("remove %s: %w", id, ErrElementNotFound)
	}

	var subtree []Element
	s.walk(el, func(e Element) { subtree = append(subtree, e) })

	s.unlink(el)
	for _, e := range subtree {
		e.RemoveFromLightScene(s.lights)
		delete(s.elements, e.ID())
		delete(s.children, e.ID())
	}

	s.log.Debug("element removed",
		zap.String("name", el.Name()),
		zap.Int("subtree", len(subtree)))
	return nil
}

// SetParent moves an element under a new parent (nil for root) and
// recomputes the transforms of the moved subtree.
func (s *Scene) SetParent(id uuid.UUID, parent Element) error {
	el, ok := s.elements[id]
	if !ok {
		return fmt.Errorf("reparent %s: %w", id, ErrElementNotFound)
	}
	if parent != nil {
		if _, ok := s.elements[parent.ID()]; !ok {
			return fmt.Errorf("reparent %q under %q: %w", el.Name(), parent.Name(), ErrElementNotFound)
		}
		for p := parent; p != nil; p = p.Parent() {
			if p.ID() == id {
				return fmt.Errorf("reparent %q under %q: %w", el.Name(), parent.Name(), ErrCycle)
			}
		}
	}

	s.unlink(el)
	s.link(el, parent)
	s.walk(el, Element.UpdateInstanceData)
	return nil
}

// Update recomputes the transforms of an element and its descendants after
// its local fields were edited.
func (s *Scene) Update(id uuid.UUID) error {
	el, ok := s.elements[id]
	if !ok {
		return fmt.Errorf("update %s: %w", id, ErrElementNotFound)
	}
	s.walk(el, Element.UpdateInstanceData)
	return nil
}

// UpdateAll recomputes every transform, parents before children.
func (s *Scene) UpdateAll() {
	for _, root := range s.roots {
		s.walk(root, Element.UpdateInstanceData)
	}
}

// Elements returns every element in depth-first order, parents first.
func (s *Scene) Elements() []Element {
	out := make([]Element, 0, len(s.elements))
	for _, root := range s.roots {
		s.walk(root, func(e Element) { out = append(out, e) })
	}
	return out
}

// Clear removes every element and unregisters their lights.
func (s *Scene) Clear() {
	for _, root := range slices.Clone(s.roots) {
		_ = s.Remove(root.ID())
	}
}

// walk visits el and its descendants, parents first.
func (s *Scene) walk(el Element, fn func(Element)) {
	fn(el)
	for _, child := range s.children[el.ID()] {
		s.walk(child, fn)
	}
}

func (s *Scene) link(el, parent Element) {
	el.setParent(parent)
	if parent == nil {
		s.roots = append(s.roots, el)
		return
	}
	s.children[parent.ID()] = append(s.children[parent.ID()], el)
}

func (s *Scene) unlink(el Element) {
	parent := el.Parent()
	if parent == nil {
		s.roots = removeElement(s.roots, el)
	} else {
		s.children[parent.ID()] = removeElement(s.children[parent.ID()], el)
	}
	el.setParent(nil)
}

func removeElement(list []Element, el Element) []Element {
	return slices.DeleteFunc(list, func(e Element) bool { return e.ID() == el.ID() })
}
