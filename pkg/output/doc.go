// Package output renders command results.
//
// Four concrete formats exist. term draws lipgloss-styled text and pterm
// tables, text prints the same information without styling, and json and
// yaml emit the result views for scripts. auto picks term or text from the
// terminal capabilities of the destination.
package output
