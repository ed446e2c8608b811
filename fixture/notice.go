// SPDX-License-Identifier: EPL-2.0

package fixture

import "fmt"

// File records one written fixture.
type File struct {
	Index     int
	Name      string
	Path      string
	Extension string
	Size      int
}

// KB is Size in KiB.
func (f File) KB() float64 { return float64(f.Size) / KiB }

type NoticeKind int

const (
	// Completed is emitted after a fixture is written.
	Completed NoticeKind = iota
	// ConstraintAdjusted is emitted when the Clamp policy raised a size to
	// the format's header size. A Completed notice for the same file follows.
	ConstraintAdjusted
)

func (k NoticeKind) String() string {
	switch k {
	case Completed:
		return "completed"
	case ConstraintAdjusted:
		return "constraint-adjusted"
	default:
		return fmt.Sprintf("NoticeKind(%d)", int(k))
	}
}

// Notice is an observability event for one file.
type Notice struct {
	Kind NoticeKind
	File File
	// Requested is the drawn size before adjustment. Equal to File.Size for Completed.
	Requested int
}

func (n Notice) String() string {
	if n.Kind == ConstraintAdjusted {
		return fmt.Sprintf("%s: %s raised from %d to %d bytes", n.Kind, n.File.Name, n.Requested, n.File.Size)
	}
	return fmt.Sprintf("%s: %s (%.2f KB)", n.Kind, n.File.Name, n.File.KB())
}

// Report is the result of one Generate call.
// Files, Failures and Adjusted are ordered by file index.
type Report struct {
	RunID    string
	Files    []File
	Failures []FileError
	Adjusted []Notice
}

// TotalBytes sums the sizes of all written files.
func (r Report) TotalBytes() int64 {
	var total int64
	for _, f := range r.Files {
		total += int64(f.Size)
	}
	return total
}
