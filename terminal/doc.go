// Package terminal wraps a tcell screen behind a cell-buffer interface.
//
// Features:
//   - True color (24-bit) and 256-color output, downsampled by tcell
//   - Whole-frame flush from a row-major cell buffer
//   - Key, mouse and resize events translated to backend-neutral Event values
//   - Clean terminal restoration on exit/panic
package terminal
