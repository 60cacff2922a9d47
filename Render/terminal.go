package Render

import (
	"fmt"
	"io"
	"os"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
	"github.com/samber/lo"
)

// TerminalPresenter prints the heading and the visible vertices as a pterm
// tree. Children are prefixed with L: or R: since a lone child would
// otherwise not tell which side it's on.
type TerminalPresenter struct {
	Out io.Writer
}

// NewTerminalPresenter prints to stdout.
func NewTerminalPresenter() *TerminalPresenter {
	return &TerminalPresenter{os.Stdout}
}

func prefix(s Side) string {
	switch s {
	case Left:
		return "L:"
	case Right:
		return "R:"
	default:
		return ""
	}
}

func (u *TerminalPresenter) Present(g *Graph) error {
	items := lo.FilterMap(g.Vertices, func(v Vertex, _ int) (pterm.LeveledListItem, bool) {
		return pterm.LeveledListItem{Level: v.Level, Text: prefix(v.Side) + v.Label}, !v.Hidden
	})
	s, err := pterm.DefaultTree.WithRoot(putils.TreeFromLeveledList(items)).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(u.Out, "%s\n%s", g.Heading, s)
	return err
}
