// Package renderer turns the logbook report structs into markdown strings,
// ready for the terminal renderer of the cmd package.
package renderer

import (
	"bytes"
	"fmt"
	"io"

	"github.com/etnz/drivelog"
)

// ConditionalBlock let you fully write a block and decide at the end to print it or not.
// If the block function returns true, the content is printed to w, otherwise it is discarded.
func ConditionalBlock(w io.Writer, block func(io.Writer) bool) {
	bw := &bytes.Buffer{}
	if block(bw) {
		io.Copy(w, bw)
	}
}

// km formats a distance for display.
func km(v float64) string {
	return fmt.Sprintf("%.0f km", v)
}

// gauge formats a clamped percentage with its color tier, e.g. "92.00% (danger)".
func gauge(p drivelog.Percent, tier drivelog.GaugeTier) string {
	return fmt.Sprintf("%s (%s)", p, tier)
}
