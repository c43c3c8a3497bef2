// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package scene

// Scene collects the primitives and lights gathered during a scene
// specification. It owns its primitives, lights, and environment map;
// materials are shared by reference and kept alive only by the
// primitives that reference them, which Go's GC handles without any
// explicit refcounting.
type Scene struct {
	Primitives []Primitive
	Lights     []Light
	Env        *Environment
}

// New returns an empty Scene.
func New() *Scene { return &Scene{} }

// AddPrimitive appends p to the scene.
func (s *Scene) AddPrimitive(p Primitive) { s.Primitives = append(s.Primitives, p) }

// AddLight appends l to the scene.
func (s *Scene) AddLight(l Light) { s.Lights = append(s.Lights, l) }

// SetEnvironment replaces the scene's environment map.
func (s *Scene) SetEnvironment(e *Environment) { s.Env = e }

// Reset empties the scene, releasing all primitive and light
// references (and, with them, any material no longer referenced
// elsewhere).
func (s *Scene) Reset() {
	s.Primitives = nil
	s.Lights = nil
	s.Env = nil
}
