// Package viz renders spacetime diagrams onto a Braille terminal canvas.
//
// The package sits between the diagram builder and the presentation
// layers (TUI, exporters):
//
//   - [Canvas]: Braille pixel grid with a per-cell color-class layer
//   - [Viewport]: world-to-dot mapping with pan, zoom and clipping
//   - [Render]: rasterizes a built diagram onto a canvas
//   - [Theme]: color schemes, 5 built-in
//
// Each Braille cell packs 2x4 dots, so an 80x24 canvas resolves
// 160x96 addressable points. Color is per cell, not per dot: the
// class of the last primitive drawn into a cell wins, and
// [Canvas.Styled] groups equal-class runs into lipgloss spans to
// keep escape-sequence overhead low.
package viz
