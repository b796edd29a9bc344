// Package internalcheck holds repository policy tests. It has no exported
// API and is not imported by any other package.
package internalcheck
