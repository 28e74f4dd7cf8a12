// Package terminal feeds a tcell terminal into the world as a window.
//
// Mouse reports move the window cursor to the center of the reported cell, resizes update the
// logical resolution, and focus loss clears the cursor. With touch emulation the left button
// drives a single touch so touch fallback paths can be exercised from a terminal.
//
// Events are queued by Push from any goroutine and applied by the Bridge system during
// World.Update, so cursor queries never observe a half-applied event.
package terminal
