// Package output serializes a roster into the supported output formats.
// The document shape is the same in every structured format: an ordered list
// of team entries, each with one leader entry and a list of member entries.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"teamgen/internal/roster"
)

// Format selects how a roster is rendered.
type Format string

const (
	// FormatAuto picks FormatTable when writing to a terminal and
	// FormatTOML otherwise.
	FormatAuto Format = "auto"
	// FormatTOML renders the roster as a TOML document.
	FormatTOML Format = "toml"
	// FormatYAML renders the roster as a YAML document.
	FormatYAML Format = "yaml"
	// FormatJSON renders the roster as an indented JSON document.
	FormatJSON Format = "json"
	// FormatTable renders the roster as styled text blocks for humans.
	FormatTable Format = "table"
)

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// Formats returns the list of valid format names.
func Formats() []string {
	return []string{string(FormatAuto), string(FormatTOML), string(FormatYAML), string(FormatJSON), string(FormatTable)}
}

// ParseFormat converts a user-supplied format name into a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatAuto:
		return FormatAuto, nil
	case FormatTOML:
		return FormatTOML, nil
	case FormatYAML:
		return FormatYAML, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatTable:
		return FormatTable, nil
	default:
		return "", fmt.Errorf("unknown format %q (valid: %s)", s, strings.Join(Formats(), ", "))
	}
}

// nameEntry is a single named participant in the output document.
type nameEntry struct {
	Name string `toml:"name" yaml:"name" json:"name"`
}

// teamEntry is one team in the output document.
type teamEntry struct {
	Leader nameEntry   `toml:"leader" yaml:"leader" json:"leader"`
	Member []nameEntry `toml:"member,omitempty" yaml:"member,omitempty" json:"member,omitempty"`
}

// document is the top-level output structure.
type document struct {
	Team []teamEntry `toml:"team" yaml:"team" json:"team"`
}

// buildDocument converts a roster into the serializable document shape.
func buildDocument(r roster.Roster) document {
	doc := document{Team: make([]teamEntry, len(r))}
	for i, t := range r {
		entry := teamEntry{Leader: nameEntry{Name: t.Leader.Name}}
		for _, m := range t.Members {
			entry.Member = append(entry.Member, nameEntry{Name: m.Name})
		}
		doc.Team[i] = entry
	}
	return doc
}

// Write renders the roster to w in the given format. FormatAuto resolves by
// whether w is a terminal.
func Write(w io.Writer, r roster.Roster, f Format) error {
	if f == FormatAuto {
		f = resolveAuto(w)
	}

	switch f {
	case FormatTOML:
		return toml.NewEncoder(w).Encode(buildDocument(r))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(buildDocument(r)); err != nil {
			return err
		}
		return enc.Close()
	case FormatJSON:
		data, err := json.MarshalIndent(buildDocument(r), "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case FormatTable:
		_, err := fmt.Fprintln(w, renderTable(r))
		return err
	default:
		return fmt.Errorf("unknown format %q (valid: %s)", f, strings.Join(Formats(), ", "))
	}
}

// resolveAuto picks the human-facing table layout on terminals and TOML for
// pipes and files.
func resolveAuto(w io.Writer) Format {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return FormatTable
	}
	return FormatTOML
}
