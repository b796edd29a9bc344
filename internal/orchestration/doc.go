// Package orchestration runs the selected multiplication strategies
// concurrently and compares their products. Presentation is delegated to
// the ProgressReporter and ResultPresenter interfaces.
package orchestration
