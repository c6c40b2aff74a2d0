package svg2lottie

import "fmt"

// MalformedPathError reports a path description that strict mode
// refuses to interpret: an unparseable character, a truncated argument
// list, or a draw command issued before any moveto.
type MalformedPathError struct {
	Offset int  // byte offset in the path description
	Cmd    byte // command being interpreted, 0 when lexing
	Reason string
}

func (e *MalformedPathError) Error() string {
	if e.Cmd != 0 {
		return fmt.Sprintf("malformed path at byte %d in command %q: %s", e.Offset, e.Cmd, e.Reason)
	}
	return fmt.Sprintf("malformed path at byte %d: %s", e.Offset, e.Reason)
}

// UnsupportedCommandError reports a command that the grammar
// recognizes but the converter has no conversion for (quadratic and
// elliptical-arc segments).
type UnsupportedCommandError struct {
	Offset int
	Cmd    byte
}

func (e *UnsupportedCommandError) Error() string {
	return fmt.Sprintf("unsupported path command %q at byte %d", e.Cmd, e.Offset)
}
