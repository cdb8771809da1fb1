// Package displaylist records drawing calls into immutable, replayable
// display lists.
//
// # Overview
//
// A Builder receives the calls of a 2D canvas API (attribute changes,
// save/restore, transforms, clips and draws) and encodes them into a
// compact command buffer. Build freezes the buffer into a DisplayList
// together with metadata computed while recording:
//   - the device-space bounds of everything drawn, limited by the cull rect
//   - whether a group opacity can be applied to each op instead of a layer
//   - an optional R-tree of per-op bounds for culled playback
//
// A DisplayList is safe to share between goroutines and can be replayed
// any number of times into a Dispatcher.
//
// # Quick Start
//
//	b := displaylist.NewBuilder(displaylist.WithCullRect(geom.MakeWH(800, 600)))
//	b.SetColor(displaylist.Red)
//	b.DrawRect(geom.MakeLTRB(10, 10, 50, 50))
//	dl := b.Build()
//
//	dl.Dispatch(myBackend)
//
// # Playback backends
//
// Backends implement Dispatcher, usually by embedding NopDispatcher, and
// may register themselves with RegisterDispatcher. The built-in "trace"
// dispatcher logs every op through the package logger and "stats" counts
// them.
//
// # Coordinate System
//
// Origin at top-left, X increases right, Y increases down. Angles are in
// degrees and positive angles rotate clockwise on screen.
//
// # Logging
//
// The package is silent by default. Use SetLogger to receive build
// statistics and trace output.
package displaylist

// Version is the current version of the library.
const Version = "0.1.0"
