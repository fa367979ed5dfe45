package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/lightscene/internal/engine/lighting"
	"github.com/Faultbox/lightscene/internal/engine/scene"
)

var errNoTargets = errors.New("no query positions given (expected x,y,z arguments)")

// parseTargets parses "x,y,z" positional arguments.
func parseTargets(args []string) ([]mgl32.Vec3, error) {
	if len(args) == 0 {
		return nil, errNoTargets
	}
	targets := make([]mgl32.Vec3, 0, len(args))
	for _, arg := range args {
		v, err := parseVec3(arg)
		if err != nil {
			return nil, err
		}
		targets = append(targets, v)
	}
	return targets, nil
}

func parseVec3(s string) (mgl32.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return mgl32.Vec3{}, fmt.Errorf("position %q: want 3 comma-separated components, got %d", s, len(parts))
	}
	var v mgl32.Vec3
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return mgl32.Vec3{}, fmt.Errorf("position %q component %d: %w", s, i, err)
		}
		v[i] = float32(f)
	}
	return v, nil
}

func printSelection(w io.Writer, target mgl32.Vec3, sel lighting.Selection) {
	fmt.Fprintf(w, "@ (%g, %g, %g)\n", target.X(), target.Y(), target.Z())
	for i, l := range sel.Point {
		fmt.Fprintf(w, "  point[%d]       pos=(%g, %g, %g) colour=(%g, %g, %g) intensity=%g dist=%g\n",
			i, l.Position.X(), l.Position.Y(), l.Position.Z(),
			l.Colour.X(), l.Colour.Y(), l.Colour.Z(), l.Intensity(),
			l.Position.Sub(target).Len())
	}
	for i, l := range sel.Directional {
		fmt.Fprintf(w, "  directional[%d] pos=(%g, %g, %g) dir=(%g, %g, %g) intensity=%g\n",
			i, l.Position.X(), l.Position.Y(), l.Position.Z(),
			l.Direction.X(), l.Direction.Y(), l.Direction.Z(), l.Intensity())
	}
}

// printUniforms reports how the selection fills the default lit shader's
// light arrays.
func printUniforms(w io.Writer, sel lighting.Selection) {
	point := lighting.PackPointLights(sel.Point, lighting.MaxPointLights)
	directional := lighting.PackDirectionalLights(sel.Directional, lighting.MaxDirectionalLights)
	fmt.Fprintf(w, "  uniforms       point=%d/%d directional=%d/%d\n",
		point.Count, len(point.Colours)/4,
		directional.Count, len(directional.Colours)/4)
}

// addDefaultLights seeds an empty editor with the menu's default point and
// directional lights.
func addDefaultLights(editor *scene.Scene) error {
	for _, el := range []scene.Element{scene.NewDefaultPointLight(), scene.NewDefaultDirectionalLight()} {
		if err := editor.Add(el, nil); err != nil {
			return fmt.Errorf("add %s: %w", el.Name(), err)
		}
	}
	return nil
}
