package core

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

// PathError reports a path that cannot be used as given
type PathError struct {
	Info string
	Path string
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%s: %q", e.Info, e.Path)
}

// TypeMismatchError reports a value of the wrong kind handed to a setter
type TypeMismatchError struct {
	// Field names the rejected assignment, e.g. "Handler.formatter"
	Field    string
	Expected string
	Actual   string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s: expected %s, got %s", e.Field, e.Expected, e.Actual)
}

// InvalidLevelError reports a level outside the recognized severities
type InvalidLevelError struct {
	Value string
}

func (e *InvalidLevelError) Error() string {
	return fmt.Sprintf("invalid level %q", e.Value)
}

// PathNotFoundError reports a file target whose parent directory is missing
type PathNotFoundError struct {
	Path string
	Dir  string
}

func (e *PathNotFoundError) Error() string {
	return fmt.Sprintf("directory %q of %q does not exist", e.Dir, e.Path)
}

// Describe renders err in the multi-line diagnostic form: the error
// kind on the first line followed by its details. Aggregated errors
// produce one block each, separated by a blank line.
func Describe(err error) string {
	if err == nil {
		return ""
	}
	errs := multierr.Errors(err)
	blocks := make([]string, 0, len(errs))
	for _, e := range errs {
		blocks = append(blocks, describeOne(e))
	}
	return strings.Join(blocks, "\n\n")
}

func describeOne(err error) string {
	var sb strings.Builder

	var (
		pathErr     *PathError
		mismatchErr *TypeMismatchError
		levelErr    *InvalidLevelError
		notFoundErr *PathNotFoundError
	)
	switch {
	case errors.As(err, &mismatchErr):
		sb.WriteString("TypeMismatchError:\n")
		sb.WriteString(err.Error())
		sb.WriteString("\nexpected type: ")
		sb.WriteString(mismatchErr.Expected)
		sb.WriteString("\nactual type: ")
		sb.WriteString(mismatchErr.Actual)
	case errors.As(err, &levelErr):
		sb.WriteString("InvalidLevelError:\n")
		sb.WriteString(err.Error())
		sb.WriteString("\nvalid levels: ")
		for i, l := range levels {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(l.String())
		}
	case errors.As(err, &notFoundErr):
		sb.WriteString("PathNotFoundError:\n")
		sb.WriteString(err.Error())
		sb.WriteString("\npath: ")
		sb.WriteString(notFoundErr.Path)
	case errors.As(err, &pathErr):
		sb.WriteString("PathError:\n")
		sb.WriteString(err.Error())
		sb.WriteString("\npath: ")
		sb.WriteString(pathErr.Path)
	default:
		sb.WriteString("Error:\n")
		sb.WriteString(err.Error())
	}
	return sb.String()
}
