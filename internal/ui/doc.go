// Package ui provides the color themes and lipgloss styles shared by the
// presentation layer.
package ui
