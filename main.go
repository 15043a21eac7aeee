// Copyright (c) 2024 The go-wordreplace authors. All rights reserved.
// https://github.com/textfix/go-wordreplace
// See the included LICENSE file for license details.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cast"
	"github.com/textfix/go-wordreplace/wordreplace"
)

func readFile(filename string) string {
	data, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return string(data)
}

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintf(os.Stderr, "usage: %s <original-file> <fixed-file> [offset]\n", os.Args[0])
		os.Exit(2)
	}
	original := readFile(os.Args[1])
	fixed := readFile(os.Args[2])

	wd := wordreplace.New()
	wd.Separators = wordreplace.WhitespaceSeparators
	replaces, err := wd.Diff(original, fixed)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println(wd.ReplacePrettyText(replaces))
	for _, r := range replaces {
		if r.IsIdentity() {
			continue
		}
		fmt.Printf("%d-%d: %q -> %q\n", r.From, r.To, r.Original, r.Replacement)
	}

	if len(os.Args) > 3 {
		oldLoc := cast.ToInt(os.Args[3])
		newLoc := wd.ReplaceXIndex(replaces, oldLoc)
		fmt.Println(fmt.Sprintf("loc_change: %d -> %d", oldLoc, newLoc))
	}
}
