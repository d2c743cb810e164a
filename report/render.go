// SPDX-License-Identifier: MIT
//
// File: render.go
// Role: Plain and lipgloss-styled output for Stats and Connection.
// Determinism:
//   - Styled renders one line at a time, so no alignment padding is added.
//   - With an Ascii color profile Styled emits no escape sequences.

package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Renderer writes reports to w.
type Renderer interface {
	Stats(w io.Writer, s Stats) error
	Connection(w io.Writer, c Connection) error
}

var (
	_ Renderer = Plain{}
	_ Renderer = (*Styled)(nil)
)

// Plain writes the same text the interactive shell always printed.
type Plain struct{}

// Stats writes s.String() and a newline.
func (Plain) Stats(w io.Writer, s Stats) error {
	_, err := fmt.Fprintln(w, s.String())
	return err
}

// Connection writes c.String() and a newline.
func (Plain) Connection(w io.Writer, c Connection) error {
	_, err := fmt.Fprintln(w, c.String())
	return err
}

// Styled renders reports with lipgloss. Colors follow the renderer's
// detected color profile, so output to a pipe or file stays plain text.
type Styled struct {
	title lipgloss.Style
	key   lipgloss.Style
	value lipgloss.Style
	arrow lipgloss.Style
}

// NewStyled builds a Styled renderer bound to r. A nil r uses the default renderer.
func NewStyled(r *lipgloss.Renderer) *Styled {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	return &Styled{
		title: r.NewStyle().Foreground(lipgloss.Color("#874BFD")).Bold(true),
		key:   r.NewStyle().Foreground(lipgloss.Color("#64748B")),
		value: r.NewStyle().Foreground(lipgloss.Color("#00FF99")).Bold(true),
		arrow: r.NewStyle().Foreground(lipgloss.Color("#64748B")),
	}
}

// Stats writes a titled key/value block.
func (s *Styled) Stats(w io.Writer, st Stats) error {
	lines := []string{
		s.title.Render("Graph statistics"),
		s.pair("Nodes", strconv.Itoa(st.Nodes)),
		s.pair("Edges", strconv.Itoa(st.Edges)),
		s.pair("Average friends", strconv.FormatFloat(st.Average, 'f', 2, 64)),
	}
	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))

	return err
}

// Connection writes the path on one line joined by arrows.
func (s *Styled) Connection(w io.Writer, c Connection) error {
	hops := make([]string, len(c.Path))
	for i, l := range c.Path {
		hops[i] = s.value.Render(l)
	}
	lines := []string{
		s.title.Render(fmt.Sprintf("Closest path %s → %s", c.From, c.To)),
		strings.Join(hops, s.arrow.Render(" → ")),
		s.pair("Cost", strconv.FormatFloat(c.Cost, 'f', -1, 64)),
		s.pair("Intermediary friends", strconv.Itoa(c.Intermediaries)),
	}
	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))

	return err
}

func (s *Styled) pair(k, v string) string {
	return s.key.Render(k+":") + " " + s.value.Render(v)
}
