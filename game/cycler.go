package game

const (
	left  = -1
	right = 1
)

// Cycler walks player indices around the table, honouring the current turn
// direction. Reverse flips the direction without moving the pointer.
type Cycler struct {
	count     int
	current   int
	direction int
}

func NewCycler(count int) *Cycler {
	return &Cycler{
		count:     count,
		current:   0,
		direction: right,
	}
}

func (c *Cycler) Current() int {
	return c.current
}

// Next advances the pointer one seat in the current direction.
func (c *Cycler) Next() int {
	c.current = (c.current + c.direction + c.count) % c.count
	return c.current
}

// Peek returns the seat Next would land on without moving the pointer.
func (c *Cycler) Peek() int {
	return (c.current + c.direction + c.count) % c.count
}

func (c *Cycler) Reverse() {
	switch c.direction {
	case right:
		c.direction = left
	case left:
		c.direction = right
	}
}

func (c *Cycler) Direction() int {
	return c.direction
}
