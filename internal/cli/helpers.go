package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/choonghwanlee/folio/internal/portfolio"
	"github.com/choonghwanlee/folio/internal/ui"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

func plainLayout(content portfolio.Content, width, height, tab int) ui.Layout {
	return ui.Render(content, ui.RenderOptions{
		Width:     width,
		MinHeight: height,
		Tab:       tab,
		Role:      firstRole(content),
		Styles:    ui.PlainStyles(),
	})
}

func firstRole(content portfolio.Content) string {
	if len(content.Profile.Roles) == 0 {
		return ""
	}
	return content.Profile.Roles[0]
}

// trimBlock strips the padding lipgloss adds when wrapping to a width.
func trimBlock(block string) string {
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Trim(strings.Join(lines, "\n"), "\n")
}

func printNav(cmd *cobra.Command, active portfolio.Section) {
	out := cmd.OutOrStdout()
	for _, link := range portfolio.NavLinks() {
		marker := " "
		if link.IsActive(active) {
			marker = ">"
		}
		fmt.Fprintf(out, "%s %s %-10s -> %s\n", marker, link.Number(), link.Label, link.Target)
	}
}
