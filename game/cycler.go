package game

import (
	"fmt"

	"github.com/ratel-online/cardgame/consts"
)

const (
	left  = consts.CounterClockwise
	right = consts.Clockwise
)

// Cycler walks seat indexes around the table in either direction.
type Cycler struct {
	seats     int
	current   int
	direction int
}

func NewCycler(seats, start int) (*Cycler, error) {
	c := &Cycler{seats: seats, direction: right}
	if err := c.Set(start); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Cycler) Current() int {
	return c.current
}

func (c *Cycler) Direction() int {
	return c.direction
}

func (c *Cycler) Seats() int {
	return c.seats
}

// Set moves the cycler to seat index.
func (c *Cycler) Set(index int) error {
	if index < 0 || index >= c.seats {
		return fmt.Errorf("%wseat %d of %d", consts.ErrorsInvalidIndex, index, c.seats)
	}
	c.current = index
	return nil
}

// Resize changes the number of seats, keeping the current seat when it
// still exists.
func (c *Cycler) Resize(seats int) {
	c.seats = seats
	if c.current >= seats {
		c.current = 0
	}
}

// Peek returns the seat Next would move to.
func (c *Cycler) Peek() int {
	if c.seats == 0 {
		return 0
	}
	return (c.current + c.direction + c.seats) % c.seats
}

func (c *Cycler) Next() int {
	c.current = c.Peek()
	return c.current
}

func (c *Cycler) Reverse() {
	switch c.direction {
	case right:
		c.direction = left
	case left:
		c.direction = right
	}
}
