// Package format holds the presentation helpers shared by the CLI: duration
// and ETA rendering, progress bars, digit truncation and byte sizes.
package format
