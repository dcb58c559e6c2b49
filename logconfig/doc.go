// Package logconfig assembles a complete logging configuration and
// renders it into the dictionary schema a configuration loader
// consumes:
//
//	{
//	  "version": 1,
//	  "disable_existing_loggers": false,
//	  "formatters": {"Default": {"format": ..., "datefmt": ...}},
//	  "handlers":   {"Default": {"class": "logging.StreamHandler", ...}},
//	  "root":       {"level": "NOTSET", "handlers": ["Default"]}
//	}
//
// New starts with a "Default" formatter, a "Default" stream handler on
// standard output and a root dispatching to it. Formatters and handlers
// are registered by their own name; registering a name again replaces
// the previous entry (last write wins) and there is no removal. Root
// holds references to the same Handler values the LogConfig owns.
//
// Configurations can be assembled three ways:
//
//   - directly, through New and the Add/Set methods,
//   - with the fluent Builder, which collects every validation error
//     and returns them together from Build,
//   - from a YAML Document via Load or LoadFile.
//
// Render never fails; all validation happens when values are assigned.
// Portable, MarshalJSON and MarshalYAML replace stream writers with
// names such as "ext://sys.stdout" for serialization.
//
// None of the types are safe for concurrent mutation.
package logconfig
