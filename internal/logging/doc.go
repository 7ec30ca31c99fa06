// Package logging configures the slog loggers used across subfetch. The
// console handler prints compact single-line records for interactive use;
// the JSON handler serves log files and machine consumption.
package logging
