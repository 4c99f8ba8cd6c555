// Package logging wires log/slog with a console handler for interactive use
// and a JSON handler for machine consumption. Component loggers carry a
// standardized component attribute that the console handler folds into the
// message prefix.
package logging
