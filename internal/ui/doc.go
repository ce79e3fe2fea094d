// Package ui contains the Bubble Tea program that renders a session's open
// surface in the terminal and turns key presses into raw interactions.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry keyed by message type.
//   - Key presses either move the cursor over the grid (navigation.go), edit
//     the text field of an Anvil surface (input.go), or become a raw
//     interaction (slot, button, click kind) executed through the
//     internal/ui/command bus against the session.
//   - A ticker.Clock feeds tick messages; each one advances the shared
//     scheduler and re-arms the wait (backend.go).
//
// Surface handlers, tick callbacks and rendering therefore all run on the
// Update goroutine. After every message the model re-reads the session's
// current surface; once nothing is open the program quits.
package ui
