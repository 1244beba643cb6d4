// Package creature applies stat modifiers to a creature through a
// consume-and-forward chain: every modifier gets its turn unless one of them
// blocks the rest.
package creature

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aalvaropc/patternkit/internal/domain"
	"github.com/aalvaropc/patternkit/internal/pattern/chain"
)

// Modifier changes a creature in place and reports what it did.
type Modifier = chain.Handler[*domain.Creature, string]

// NoBonuses blocks every modifier added after it.
func NoBonuses(out io.Writer) Modifier {
	return chain.HandlerFunc[*domain.Creature, string](func(_ *domain.Creature) (string, chain.Step) {
		fmt.Fprintln(out, "No bonuses for you!")
		return "no bonuses", chain.Stop
	})
}

// DoubleAttack doubles the attack.
func DoubleAttack(out io.Writer) Modifier {
	return chain.HandlerFunc[*domain.Creature, string](func(c *domain.Creature) (string, chain.Step) {
		fmt.Fprintf(out, "Doubling %s's attack\n", c.Name)
		c.Attack *= 2
		return "attack doubled", chain.Forward
	})
}

// IncreaseDefense adds one defense point to weak creatures (attack <= 2).
func IncreaseDefense(out io.Writer) Modifier {
	return chain.HandlerFunc[*domain.Creature, string](func(c *domain.Creature) (string, chain.Step) {
		if c.Attack > 2 {
			return "", chain.Forward
		}
		fmt.Fprintf(out, "Increasing %s's defense\n", c.Name)
		c.Defense++
		return "defense increased", chain.Forward
	})
}

// NewModifiers returns an empty modifier chain.
func NewModifiers(log *slog.Logger) *chain.Chain[*domain.Creature, string] {
	return chain.New[*domain.Creature, string](
		chain.ConsumeAndForward[string](),
		chain.WithName[*domain.Creature, string]("creature.modifiers"),
		chain.WithLogger[*domain.Creature, string](log),
	)
}

type Demo struct {
	log *slog.Logger
}

func NewDemo(log *slog.Logger) *Demo {
	return &Demo{log: log}
}

func (d *Demo) Ref() domain.DemoRef {
	return domain.DemoRef{
		Name:    "chain.creature",
		Pattern: "chain-of-responsibility",
		Summary: "Stat modifiers applied in turn to a goblin; a blocker stops the rest",
	}
}

func (d *Demo) Run(ctx context.Context, out io.Writer) error {
	goblin := &domain.Creature{Name: "Goblin", Attack: 1, Defense: 1}
	fmt.Fprintln(out, goblin)

	mods := NewModifiers(d.log)
	mods.Add("double-attack", DoubleAttack(out))
	mods.Add("increase-defense", IncreaseDefense(out))
	mods.Handle(goblin)
	fmt.Fprintln(out, goblin)

	if err := ctx.Err(); err != nil {
		return err
	}

	blocked := &domain.Creature{Name: "Blocked goblin", Attack: 1, Defense: 1}
	guarded := NewModifiers(d.log)
	guarded.Add("no-bonuses", NoBonuses(out))
	guarded.Add("double-attack", DoubleAttack(out))
	guarded.Handle(blocked)
	fmt.Fprintln(out, blocked)

	return nil
}
