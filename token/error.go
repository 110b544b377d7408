// SPDX-FileCopyrightText: © 2021 The tadl authors <https://github.com/golangee/tadl/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package token

import (
	"fmt"
	"strconv"
	"strings"
)

// ErrDetail attaches a message to a specific Pos, so that a PosError can
// point at more than one location (e.g. "defined here" and "conflicts with
// this").
type ErrDetail struct {
	Pos     Pos
	Message string
}

func NewErrDetail(pos Pos, msg string) ErrDetail {
	return ErrDetail{
		Pos:     pos,
		Message: msg,
	}
}

// LineSource resolves the literal text of a source line, so that Explain
// can render a caret under the offending column without ever touching the
// filesystem: every line was already available in memory as part of the
// logical file that produced the Node in the first place.
type LineSource interface {
	Line(file string, line int) string
}

// PosError represents a very specific positional error with a lot of explaining noise. Use Explain.
type PosError struct {
	Details []ErrDetail
	Cause   error
	Hint    string
	Lines   LineSource
}

// NewPosError creates a new PosError with the given root cause and optional details.
func NewPosError(pos Pos, msg string, details ...ErrDetail) *PosError {
	tmp := append([]ErrDetail{}, ErrDetail{
		Pos:     pos,
		Message: msg,
	})
	tmp = append(tmp, details...)

	return &PosError{
		Details: tmp,
	}
}

func (p *PosError) SetCause(err error) *PosError {
	p.Cause = err
	return p
}

func (p *PosError) SetHint(str string) *PosError {
	p.Hint = str
	return p
}

// SetLines attaches a LineSource used by Explain to render source context.
func (p *PosError) SetLines(l LineSource) *PosError {
	p.Lines = l
	return p
}

func (p *PosError) Unwrap() error {
	return p.Cause
}

func (p *PosError) firstDetail() ErrDetail {
	if len(p.Details) > 0 {
		return p.Details[0]
	}

	return ErrDetail{}
}

func (p *PosError) Error() string {
	if p.Cause == nil {
		return p.firstDetail().Message
	}

	return p.firstDetail().Message + ": " + p.Cause.Error()
}

// Explain returns a multi-line text suited to be printed into the console.
func (p PosError) Explain() string {
	// grab the required indent for the line numbers
	indent := 0

	for _, detail := range p.Details {
		l := len(strconv.Itoa(detail.Pos.Line))
		if l > indent {
			indent = l
		}
	}

	sb := &strings.Builder{}

	for i, detail := range p.Details {
		line := ""
		if p.Lines != nil {
			line = p.Lines.Line(detail.Pos.File, detail.Pos.Line)
		}

		if i == 0 || (i > 0 && detail.Pos.File != p.Details[i-1].Pos.File) {
			sb.WriteString(detail.Pos.String())
			sb.WriteString("\n")
		}

		sb.WriteString(fmt.Sprintf("%"+strconv.Itoa(indent)+"s |\n", ""))
		sb.WriteString(fmt.Sprintf("%"+strconv.Itoa(indent)+"d |", detail.Pos.Line))
		sb.WriteString(line)
		sb.WriteString("\n")

		sb.WriteString(fmt.Sprintf("%"+strconv.Itoa(indent)+"s |", ""))
		sb.WriteString(fmt.Sprintf("%"+strconv.Itoa(detail.Pos.Col-1)+"s", ""))
		sb.WriteString("^~~~ ")

		sb.WriteString(detail.Message)
		sb.WriteString("\n")

		if i < len(p.Details)-1 {
			for i := 0; i < indent; i++ {
				sb.WriteByte(' ')
			}
			sb.WriteString("...")
			sb.WriteByte('\n')
		}
	}

	if p.Hint != "" {
		sb.WriteString(fmt.Sprintf("%"+strconv.Itoa(indent)+"s |\n", ""))
		sb.WriteString(fmt.Sprintf("%"+strconv.Itoa(indent)+"s = hint: %s\n", "", p.Hint))
	}

	return sb.String()
}
