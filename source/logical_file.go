// Package source provides the LogicalFile collaborator the block parser
// depends on: a mapping from a combined line offset in the preprocessed
// source back to the physical (file, line) that produced it.
//
// Real inclusion/preprocessing (following @include-style directives,
// stitching physical files together) happens upstream of this module and
// is out of scope here. LogicalFile is the seam: parser and block code only
// ever see the interface, and SingleFile below is the trivial, in-memory
// implementation used whenever a single .rez source is parsed on its own,
// and in every test in this module.
package source

import (
	"fmt"
	"strings"
)

// LogicalFile resolves a line number in the logical (post-inclusion) source
// back to the physical file and line it came from. Implementations must be
// total over the range of line numbers the input can produce; the parser
// treats a failure to resolve as an internal error.
type LogicalFile interface {
	ResolveLine(line int) (file string, resolvedLine int, err error)

	// Line returns the literal text of a physical line, used only for
	// diagnostics (token.PosError.Explain). Implementations that cannot
	// recover the text may return "".
	Line(file string, line int) string
}

// SingleFile is a LogicalFile backed by one physical file with no
// inclusion: logical line N is physical line N.
type SingleFile struct {
	Name string
	text string
	// lines caches the split-by-newline source for Line lookups.
	lines []string
}

// NewSingleFile builds a LogicalFile over one physical file's full text.
func NewSingleFile(name, text string) *SingleFile {
	return &SingleFile{
		Name:  name,
		text:  text,
		lines: strings.Split(text, "\n"),
	}
}

func (s *SingleFile) ResolveLine(line int) (string, int, error) {
	if line < 1 {
		return "", 0, fmt.Errorf("line %d out of range", line)
	}

	return s.Name, line, nil
}

func (s *SingleFile) Line(file string, line int) string {
	if file != s.Name {
		return ""
	}

	idx := line - 1
	if idx < 0 || idx >= len(s.lines) {
		return ""
	}

	return s.lines[idx]
}

// Segment is one physical file's contribution to a logical file built from
// several included sources, stitched back-to-back.
type Segment struct {
	File string
	// LogicalStart is the first logical line number (inclusive, 1-based)
	// occupied by this segment.
	LogicalStart int
	// PhysicalStart is the physical line number (1-based) in File that
	// LogicalStart corresponds to.
	PhysicalStart int
	// Lines holds the segment's physical source, one entry per line, used
	// for diagnostics only.
	Lines []string
}

// Included is a LogicalFile stitched together from multiple physical
// segments in inclusion order, mirroring what a preprocessor would hand the
// parser after resolving @include-style directives. It exists so the block
// parser's position-resolution step has a nontrivial collaborator to
// exercise in tests, even though building the segment list from real
// directives is out of scope.
type Included struct {
	segments []Segment
}

// NewIncluded builds a multi-segment LogicalFile. Segments must be supplied
// in ascending LogicalStart order and must not overlap.
func NewIncluded(segments ...Segment) *Included {
	return &Included{segments: segments}
}

func (in *Included) ResolveLine(line int) (string, int, error) {
	for i := len(in.segments) - 1; i >= 0; i-- {
		seg := in.segments[i]
		if line >= seg.LogicalStart {
			offset := line - seg.LogicalStart
			return seg.File, seg.PhysicalStart + offset, nil
		}
	}

	return "", 0, fmt.Errorf("line %d is not covered by any included segment", line)
}

func (in *Included) Line(file string, line int) string {
	for _, seg := range in.segments {
		if seg.File != file {
			continue
		}

		idx := line - seg.PhysicalStart
		if idx < 0 || idx >= len(seg.Lines) {
			continue
		}

		return seg.Lines[idx]
	}

	return ""
}
