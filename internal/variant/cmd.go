package variant

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
)

type Cmd struct {
	// Query filters the variants fuzzily by name and title.
	Query string `arg:"" optional:"" help:"Fuzzy query to filter variants by name and title."`
}

func (c Cmd) Run() error {
	return c.write(os.Stdout)
}

func (c Cmd) write(w io.Writer) error {
	matches := Query(c.Query)
	if len(matches) == 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, c.Query)
	}

	nameW := 0
	for _, v := range matches {
		nameW = max(nameW, runewidth.StringWidth(v.Name))
	}

	for _, v := range matches {
		var ids []string
		for _, d := range v.Build(DefaultOptions()) {
			ids = append(ids, d.ID)
		}

		_, err := fmt.Fprintf(w, "%s  %s (%s)\n", runewidth.FillRight(v.Name, nameW), v.Title, strings.Join(ids, ", "))
		if err != nil {
			return fmt.Errorf("write failed: %w", err)
		}
	}

	return nil
}
