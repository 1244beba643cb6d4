package domain

import "fmt"

// Creature is the target of the modifier chain. Modifiers mutate it in place.
type Creature struct {
	Name    string
	Attack  int
	Defense int
}

func (c *Creature) String() string {
	return fmt.Sprintf("%s (%d/%d)", c.Name, c.Attack, c.Defense)
}
