package state

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// Clock mints op ids for one application session. Ids are the session's
// site id plus a monotonically increasing sequence number.
type Clock struct {
	site string
	seq  atomic.Uint64
}

func NewClock() *Clock {
	return &Clock{site: uuid.NewString()}
}

// Site returns the session id shared by every op this clock mints.
func (c *Clock) Site() string { return c.site }

// Next returns the next sequence number and the op id built from it.
func (c *Clock) Next() (uint64, string) {
	n := c.seq.Add(1)
	return n, fmt.Sprintf("%s-%d", c.site, n)
}
