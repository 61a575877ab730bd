package game

const (
	left  = -1
	right = 1
)

// Cycler walks player positions circularly in either direction.
type Cycler struct {
	size      int
	current   int
	direction int
}

func NewCycler(size int) *Cycler {
	return &Cycler{
		size:      size,
		current:   0,
		direction: right,
	}
}

func (c *Cycler) Current() int {
	return c.current
}

// SetCurrent positions the cycler, used to seat a random starting player.
func (c *Cycler) SetCurrent(position int) {
	c.current = position
}

func (c *Cycler) Next() int {
	c.current = (c.current + c.direction + c.size) % c.size
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

func (c *Cycler) Reversed() bool {
	return c.direction == left
}

// Peek returns the position steps ahead in clockwise order without moving.
func (c *Cycler) Peek(steps int) int {
	return ((c.current+steps)%c.size + c.size) % c.size
}
