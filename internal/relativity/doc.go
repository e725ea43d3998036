// Package relativity implements the special-relativistic kernel for
// flat 1+1-dimensional spacetime in natural units (c = 1).
//
// The package defines two value types and pure functions over them:
//
//   - [Event]: a point in spacetime, (x, t) in a single frame
//   - [Frame]: an inertial observer frame, velocity V and lab offset X0
//
// Core operations:
//
//   - [Gamma]: Lorentz factor 1/sqrt(1-v^2)
//   - [Boost]: event coordinates between frames in relative motion
//   - [ComposeVelocity]: relativistic velocity composition
//   - [Frame.WorldLine]: an inertial world line seen from a frame
//   - [LightCone], [SimultaneityLine], [ProperTimeTicks]: derived
//     line work for diagram rendering
//
// # Example
//
//	f := relativity.Frame{V: 0.5}
//	line := f.WorldLine(1.0, 0.5, 0, 10)
//	vPrime := f.VelocityOf(0.5)
//
// # Degenerate Input
//
// Every function is total for finite input and nothing here panics or
// returns an error, so the kernel can run on every render pass without
// guarding. Singular input degrades to sentinel results instead:
// [Gamma] returns +Inf for |v| >= 1, and [Frame.WorldLine] returns nil
// when the reconstruction denominator falls below
// [DenominatorEpsilon]. Callers that cannot tolerate infinities must
// clamp velocities before calling in.
//
// # Frames
//
// An Event never mixes coordinates from two frames. [Frame.ToFrame]
// and [Frame.FromFrame] are the only crossing points between lab
// coordinates and observer coordinates.
package relativity
