// SPDX-License-Identifier: MIT
// Package main demonstrates the list container: a few appends, two indexed
// inserts (forcing growth), then "<size> -> <list>".
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/arraylist/list"
)

func main() {
	if err := run(os.Stdout); err != nil {
		// Presentation only: report the message and exit normally.
		fmt.Println(err)
	}
}

// run builds the demo list and writes the summary line to w.
func run(w io.Writer) error {
	l, err := list.New(4, list.WithZeroForbidden[string]())
	if err != nil {
		return err
	}
	for _, s := range []string{"00", "11", "22", "33"} {
		if _, err = l.Add(s); err != nil {
			return err
		}
	}
	if _, err = l.Insert(1, "77"); err != nil {
		return err
	}
	if _, err = l.Insert(1, "88"); err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "%d -> %s\n", l.Size(), l)

	return err
}
