// Package core defines the shared types used across logconf.
//
// It provides the Level type, the six severities of the dictionary
// logging configuration schema (NOTSET, DEBUG, INFO, WARNING, ERROR,
// CRITICAL), and the error taxonomy returned by every setter in the
// formatter, handler and logconfig packages.
//
// Levels carry the numeric values the schema's runtimes use (NOTSET=0
// up to CRITICAL=50) so that comparisons order them the way a logging
// runtime filters records. ParseLevel matches names exactly; there is
// no case folding and no "WARN" alias.
//
// Errors are plain structs returned at the point of assignment:
//
//   - PathError for a path that cannot be used as given.
//   - TypeMismatchError for a value of the wrong kind (nil references,
//     writers that cannot be flushed, unknown names).
//   - InvalidLevelError for a level outside the six severities.
//   - PathNotFoundError for a file target whose directory is missing.
//
// Error() is a single line. Describe renders the multi-line diagnostic
// form and leaves printing to the caller.
package core
