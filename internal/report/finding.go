// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"cmp"
	"go/token"
	"io"

	"github.com/fatih/color"
)

// Finding is a case falling through to the next case, located in a source file.
type Finding struct {
	Pos     token.Position // Last label of the falling case
	Next    token.Position // Label of the case reached
	Message string
}

// Compare orders findings by file name and position.
func (f Finding) Compare(o Finding) int {
	if c := cmp.Compare(f.Pos.Filename, o.Pos.Filename); c != 0 {
		return c
	}

	if c := cmp.Compare(f.Pos.Line, o.Pos.Line); c != 0 {
		return c
	}

	return cmp.Compare(f.Pos.Column, o.Pos.Column)
}

// Printer writes findings in the `file:line:column: message` format.
type Printer struct {
	w          io.Writer
	pos, note  *color.Color
	msg, fault *color.Color
}

// NewPrinter creates a [Printer] writing to w, with colored output unless noColor is set.
func NewPrinter(w io.Writer, noColor bool) *Printer {
	p := &Printer{
		w:     w,
		pos:   color.New(color.Bold),
		msg:   color.New(color.FgYellow),
		note:  color.New(color.Faint),
		fault: color.New(color.FgRed),
	}

	if noColor {
		for _, c := range [...]*color.Color{p.pos, p.msg, p.note, p.fault} {
			c.DisableColor()
		}
	}

	return p
}

// Print writes a finding, followed by the position of the case reached.
func (p *Printer) Print(f Finding) error {
	_, err := io.WriteString(p.w,
		p.pos.Sprint(f.Pos.String())+": "+p.msg.Sprint(f.Message)+"\n"+
			"\t"+p.note.Sprint(f.Next.String()+": falls through to this case")+"\n")

	return err
}

// Error writes an error that did not stop processing.
func (p *Printer) Error(err error) error {
	_, werr := io.WriteString(p.w, p.fault.Sprint("error: "+err.Error())+"\n")

	return werr
}
