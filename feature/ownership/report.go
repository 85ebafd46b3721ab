package ownership

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const (
	ownedMark    = "✓"
	notOwnedMark = "✗"
)

// Print writes the human-readable ownership report to w.
func (r *Report) Print(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "\nGame Ownership Check Results:")
	fmt.Fprintln(bw, strings.Repeat("-", 50))

	printSection(bw, "Owned Games:", ownedMark, r.Owned)
	printSection(bw, "Not Owned Games:", notOwnedMark, r.NotOwned)

	fmt.Fprintln(bw, "\nSummary:")
	fmt.Fprintf(bw, "Total games checked: %d\n", r.Total())
	fmt.Fprintf(bw, "Owned: %d\n", len(r.Owned))
	fmt.Fprintf(bw, "Not owned: %d\n", len(r.NotOwned))

	return bw.Flush()
}

// Empty sections are left out.
func printSection(w io.Writer, title, mark string, titles []string) {
	if len(titles) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s\n", title)
	fmt.Fprintln(w, strings.Repeat("-", 20))
	for _, t := range titles {
		fmt.Fprintf(w, "%s %s\n", mark, t)
	}
}
