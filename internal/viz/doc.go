// Package viz provides Renderer Sinks for the galaxy frame buffer.
//
//   - [ANSISink]: writes frames to any io.Writer, homing the cursor between frames
//   - [TcellSink]: draws frames into a tcell screen with per-glyph colour
//   - [TextSink]: renders frames to a lipgloss-styled string
//   - [LiveModel]: Bubble Tea program stepping the simulation on a ticker
//
// # Key Bindings
//
//	Space - Pause/Resume simulation
//	.     - Single step while paused
//	R     - Reset to initial bodies
//	T     - Cycle color themes
//	S     - Toggle stats panel
//	Q     - Quit
package viz
