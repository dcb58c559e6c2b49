// Package handler describes the sinks of a logging configuration.
//
// Handler is a closed variant over two kinds:
//
//   - StreamKind writes to an open stream. The stream must expose both
//     write and flush; writers with a Sync method such as *os.File
//     qualify through AsStream.
//   - FileKind writes to a named file. The path is made absolute and
//     its parent directory must exist when the name is assigned, not
//     when the runtime later opens it. Files are always opened with
//     mode "w" and encoding "utf-8".
//
// Every setter validates before mutating: on error the handler keeps
// its previous value. Render emits the "handlers" entry of the
// configuration map, where "class" carries the tag a generic loader
// dispatches on to pick the concrete sink.
//
// A Handler only references its Formatter; formatters are shared and
// owned by the enclosing configuration.
package handler
