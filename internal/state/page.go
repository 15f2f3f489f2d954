package state

import (
	"fmt"
	"strings"
)

// Page is the guide pattern shown on the board.
type Page int

const (
	PagePlain Page = iota
	PageGrid
	PageLined
	PageDotted
)

var pageNames = [...]string{
	PagePlain:  "plain",
	PageGrid:   "grid",
	PageLined:  "lined",
	PageDotted: "dotted",
}

// Pages returns every page in menu order.
func Pages() []Page {
	return []Page{PagePlain, PageGrid, PageLined, PageDotted}
}

func (p Page) Valid() bool { return p >= PagePlain && p <= PageDotted }

// Snaps reports whether shapes may snap to this page's guides. Lined pages
// have no vertical guides, so only grid and dotted pages snap.
func (p Page) Snaps() bool { return p == PageGrid || p == PageDotted }

func (p Page) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Page(%d)", int(p))
	}
	return pageNames[p]
}

func ParsePage(name string) (Page, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range pageNames {
		if n == name {
			return Page(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPage, name)
}
