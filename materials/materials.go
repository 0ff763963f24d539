// Package materials counts the blocks of a decoded schematic for a shopping-list style report.
package materials

import (
	"bufio"
	"fmt"
	"io"
	"sort"

	"github.com/blockme/schemread/schematic"
)

const StackSize = 64

type Entry struct {
	ID    string `json:"block_id"`
	Count int    `json:"count"`
}

// Count tallies blocks by id, most common first, ties broken by id.
func Count(blocks []schematic.Block) []Entry {
	counts := make(map[string]int)
	for _, b := range blocks {
		counts[b.ID]++
	}
	entries := make([]Entry, 0, len(counts))
	for id, n := range counts {
		entries = append(entries, Entry{ID: id, Count: n})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].ID < entries[j].ID
	})
	return entries
}

// FormatStacks renders n as full stacks plus remainder: "10", "2x64", "2x64 + 5".
func FormatStacks(n int) string {
	stacks, rest := n/StackSize, n%StackSize
	switch {
	case stacks == 0:
		return fmt.Sprintf("%d", rest)
	case rest == 0:
		return fmt.Sprintf("%dx%d", stacks, StackSize)
	default:
		return fmt.Sprintf("%dx%d + %d", stacks, StackSize, rest)
	}
}

// WriteReport writes one "id: count (stacks)" line per entry.
func WriteReport(w io.Writer, entries []Entry) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		if _, err := fmt.Fprintf(bw, "%s: %d (%s)\n", e.ID, e.Count, FormatStacks(e.Count)); err != nil {
			return err
		}
	}
	return bw.Flush()
}
