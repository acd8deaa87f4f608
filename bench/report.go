// SPDX-License-Identifier: MIT
package bench

import (
	"fmt"
	"io"
	"strings"

	json "github.com/goccy/go-json"
	asciitree "github.com/thediveo/go-asciitree"
	"gopkg.in/yaml.v3"
)

// Report formats accepted by Render.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTree = "tree"
)

// Formats lists the accepted report formats.
func Formats() []string {
	return []string{FormatText, FormatJSON, FormatYAML, FormatTree}
}

// Render writes rep to w in the given format (case-insensitive).
//
// Errors:
//   - ErrUnknownFormat for anything outside Formats().
//   - write and encoding errors from w and the codecs.
func Render(w io.Writer, rep Report, format string) error {
	switch strings.ToLower(format) {
	case FormatText:
		return renderText(w, rep)
	case FormatJSON:
		return renderJSON(w, rep)
	case FormatYAML:
		return renderYAML(w, rep)
	case FormatTree:
		return renderTree(w, rep)
	default:
		return fmt.Errorf("Render: %q: %w", format, ErrUnknownFormat)
	}
}

// renderText prints one "<algorithm>: <elapsed>" line per result.
func renderText(w io.Writer, rep Report) error {
	for _, r := range rep.Results {
		if _, err := fmt.Fprintf(w, "%s: %v\n", r.Algorithm, r.Elapsed); err != nil {
			return err
		}
	}

	return nil
}

func renderJSON(w io.Writer, rep Report) error {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("renderJSON: %w", err)
	}
	_, err = w.Write(append(data, '\n'))

	return err
}

func renderYAML(w io.Writer, rep Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("renderYAML: %w", err)
	}

	return enc.Close()
}

// treeNode is the asciitree view of a report.
type treeNode struct {
	Label    string     `asciitree:"label"`
	Props    []string   `asciitree:"properties"`
	Children []treeNode `asciitree:"children"`
}

// reportTree converts rep into a root node with one child per algorithm.
func reportTree(rep Report) treeNode {
	root := treeNode{
		Label: "benchmark",
		Props: []string{
			fmt.Sprintf("n: %d", rep.N),
			fmt.Sprintf("max: %d", rep.Max),
			fmt.Sprintf("seed: %d", rep.Seed),
		},
	}
	for _, r := range rep.Results {
		root.Children = append(root.Children, treeNode{
			Label: r.Algorithm,
			Props: []string{
				fmt.Sprintf("elapsed: %v", r.Elapsed),
				fmt.Sprintf("sorted: %t", r.Sorted),
			},
		})
	}

	return root
}

func renderTree(w io.Writer, rep Report) error {
	_, err := fmt.Fprintln(w, asciitree.RenderFancy(reportTree(rep)))

	return err
}
