// Package progress shows a one-line spinner with the current step of a run.
//
// The main goroutine reports steps with Status; a forwarding goroutine hands
// them to a bubbletea program that redraws the spinner and watches the
// keyboard. Pressing q, esc or ctrl+c stops the indicator and cancels the
// context returned by Start.
package progress
