// Package logging provides the logging interface shared by the multiplier
// application. A zerolog backend is used by default; an adapter over the
// standard log package is available for callers that already own a
// *log.Logger.
package logging
