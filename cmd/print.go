package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders markdown for the terminal. If rendering fails the raw
// markdown is still printed, the content matters more than the styling.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not render markdown: %v\n", err)
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
