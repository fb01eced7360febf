// Package scratch implements an interactive scratch-off surface: an overlay
// that conceals content until enough of it has been rubbed away by a pointer,
// at which point milestone callbacks fire and the overlay is revealed.
//
// # Overview
//
// The package is built from four cooperating pieces:
//
//   - CoverageGrid: a fixed-resolution boolean grid that estimates how much
//     of the surface a circular brush has covered, in O(brush area) per
//     sample, without any analytic area computation.
//   - State: a small synchronous state machine owning the stroke log, the
//     progress value and the revealed flag, notifying subscribers with typed
//     change records.
//   - The milestone coordinator: consumes progress updates and fires each
//     configured trigger and the reveal threshold at most once per session,
//     driving auto-reveal and the celebration Start/Stop signals.
//   - Compositor: renders the overlay fill into its own pixmap and punches
//     holes in it by stroking the recorded path with Porter-Duff clear. The
//     private pixmap is the isolated blend scope: erasing can never touch
//     content composited beneath the overlay.
//
// # Quick Start
//
//	s := scratch.NewSurface(
//		scratch.WithBrushDiameter(24),
//		scratch.WithThreshold(0.6),
//		scratch.WithTriggers(0.25, 0.5),
//		scratch.WithOnThreshold(func() { fmt.Println("revealed!") }),
//	)
//	s.Resize(300, 200)
//
//	// Feed pointer samples (local coordinates).
//	s.Begin(scratch.Pt(40, 60))
//	s.Move(scratch.Pt(45, 62))
//
//	// Render the current overlay and composite it over your content.
//	overlay := s.Overlay()
//	overlay.CompositeOver(content)
//
// # Coordinate System
//
// Local surface coordinates: origin (0,0) at top-left, X increases right,
// Y increases down. The coverage grid is resolution independent; the current
// pixel size of the surface is supplied per call.
//
// # Concurrency
//
// The core is single-threaded by design: all mutation happens on one event
// path, operations never block, and notifications are synchronous. Mutations
// issued from inside a notification callback are queued and applied after the
// current notification completes.
package scratch
