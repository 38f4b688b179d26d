// Command cesrinspect reads one CESR qualified form (qb64) per
// command-line argument or, with no arguments, one per line of stdin, and
// prints its derivation code alias, hard/soft/raw sizes, and raw byte
// length.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/cesrkit/cesr/codes"
	"github.com/cesrkit/cesr/matter"
)

func main() {
	args := os.Args[1:]
	if len(args) > 0 {
		for _, qb64 := range args {
			inspect(qb64)
		}

		return
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		inspect(line)
	}
}

func inspect(qb64 string) {
	m, err := matter.FromQb64(qb64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", qb64, err)
		return
	}

	hs, ss, _ := codes.HardSizeOf(m.Code()[0])
	entry, err := codes.Lookup(m.Code()[:hs])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", qb64, err)
		return
	}

	fmt.Printf("%s  code=%-6s alias=%-16s hs=%d ss=%d raw=%d bytes\n",
		qb64, m.Code(), entry.Alias, hs, ss, len(m.Raw()))
}
