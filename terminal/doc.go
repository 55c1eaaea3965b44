// Package terminal sets up the tcell screen used as the display surface and
// input source, and restores the terminal after a crash.
//
// Features:
//   - True color (24-bit) and 256-color selection, auto-detected from the environment
//   - Mouse click and drag reporting for widgets
//   - Clean terminal restoration on exit/panic
package terminal
