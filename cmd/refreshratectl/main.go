// Command refreshratectl is a small operator CLI over the refresh-rate
// arbitration core, for local inspection and scripted testing — not part
// of the core's own API surface.
package main

import (
	"fmt"
	"os"

	"github.com/refreshrate/selector/internal/refreshratectl"
)

func main() {
	if err := refreshratectl.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
