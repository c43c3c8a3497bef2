// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package sgl

import (
	"github.com/galvanized-logic/sgl/lin"
	"github.com/galvanized-logic/sgl/trace"
)

// Config holds everything needed to create a Context: framebuffer
// size, initial clear color, and the ray tracer's tunable constants.
type Config struct {
	Width, Height int
	ClearColor    lin.Vec3
	Trace         trace.Config
}

// Attr configures a Config; apply a sequence of Attrs with an
// options-pattern call to CreateContext.
type Attr func(*Config)

func defaultConfig(w, h int) Config {
	return Config{Width: w, Height: h, Trace: trace.DefaultConfig()}
}

// WithClearColor sets the initial clear color.
func WithClearColor(r, g, b float32) Attr {
	return func(c *Config) { c.ClearColor = lin.V3(r, g, b) }
}

// WithDOF enables depth-of-field rendering in RayTraceScene.
func WithDOF(enable bool) Attr {
	return func(c *Config) { c.Trace.EnableDOF = enable }
}

// WithDOFConstants overrides the aperture, focal length, and per-pixel
// sample count used when depth-of-field is enabled.
func WithDOFConstants(aperture, focalLength float32, rays int) Attr {
	return func(c *Config) {
		c.Trace.Aperture = aperture
		c.Trace.FocalLength = focalLength
		c.Trace.DOFRays = rays
	}
}

// WithAA enables the adaptive anti-aliasing post pass in RayTraceScene.
func WithAA(enable bool) Attr {
	return func(c *Config) { c.Trace.EnableAA = enable }
}

// WithAAThreshold overrides the neighbor-contrast trigger used by the
// adaptive anti-aliasing post pass.
func WithAAThreshold(t float32) Attr {
	return func(c *Config) { c.Trace.AAThreshold = t }
}

// WithMaxDepth overrides the ray tracer's recursion depth ceiling.
func WithMaxDepth(depth int) Attr {
	return func(c *Config) { c.Trace.MaxDepth = depth }
}
