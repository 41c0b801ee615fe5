// Package report writes a model.Report as console text, JSON or YAML.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"wordcount/internal/model"
)

type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
)

// ParseFormat accepts the -format flag values.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case Text, JSON, YAML:
		return f, nil
	}
	return "", errors.Errorf("unknown format %q (want text, json or yaml)", s)
}

const indent = "    "

// NoMatch is printed instead of a sentence when the top word occurs in
// none of them.
const NoMatch = "(none)"

type Printer struct {
	w       io.Writer
	heading lipgloss.Style
}

type Option func(*lipgloss.Renderer)

// WithColorProfile overrides the profile detected from the writer.
func WithColorProfile(p termenv.Profile) Option {
	return func(r *lipgloss.Renderer) {
		r.SetColorProfile(p)
	}
}

func NewPrinter(w io.Writer, opts ...Option) *Printer {
	r := lipgloss.NewRenderer(w)
	for _, opt := range opts {
		opt(r)
	}
	return &Printer{
		w: w,
		heading: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")),
	}
}

func (p *Printer) Write(rep model.Report, f Format) error {
	switch f {
	case JSON:
		return p.JSON(rep)
	case YAML:
		return p.YAML(rep)
	default:
		return p.Text(rep)
	}
}

// Text writes the three metrics in the fixed console layout.
func (p *Printer) Text(rep model.Report) error {
	var sb strings.Builder
	sb.WriteString(p.heading.Render("Total word count:") + "\n")
	fmt.Fprintf(&sb, "%s%d words\n", indent, rep.TotalWords)
	sb.WriteString(p.heading.Render("Top 10 words counted:") + "\n")
	for _, wc := range rep.TopWords {
		fmt.Fprintf(&sb, "%s%d - %s\n", indent, wc.Count, wc.Word)
	}
	sb.WriteString(p.heading.Render("Last sentence using the top word:") + "\n")
	if rep.LastSentence != nil {
		fmt.Fprintf(&sb, "%s\"%s\"\n", indent, *rep.LastSentence)
	} else {
		fmt.Fprintf(&sb, "%s%s\n", indent, NoMatch)
	}
	_, err := io.WriteString(p.w, sb.String())
	return errors.Wrap(err, "writing report")
}

func (p *Printer) JSON(rep model.Report) error {
	data, err := json.MarshalIndent(rep, "", "    ")
	if err != nil {
		return errors.Wrap(err, "marshaling report")
	}
	data = append(data, '\n')
	_, err = p.w.Write(data)
	return errors.Wrap(err, "writing report")
}

func (p *Printer) YAML(rep model.Report) error {
	enc := yaml.NewEncoder(p.w)
	enc.SetIndent(4)
	if err := enc.Encode(rep); err != nil {
		return errors.Wrap(err, "encoding report")
	}
	return errors.Wrap(enc.Close(), "encoding report")
}
