package statusbar

import (
	"fmt"
	"io"
)

// Dump writes the indicator row listing.
func (c *Controller) Dump(w io.Writer) error {
	n := c.statusIcons.Len()
	if _, err := fmt.Fprintf(w, "  system icons: %d\n", n); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if _, err := fmt.Fprintf(w, "    [%d] icon=%v\n", i, c.statusIcons.At(i)); err != nil {
			return err
		}
	}
	return nil
}
