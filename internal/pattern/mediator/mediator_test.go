package mediator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aalvaropc/patternkit/internal/pattern/mediator"
)

type toggle struct {
	mediator.Base[string]
	name string
	on   bool
}

func (t *toggle) Flip() {
	t.on = !t.on
	t.Changed(t, t.name+".flipped")
}

func Test_Rules_ReactionsRunToCompletionInOrder(t *testing.T) {
	// arrange
	a := &toggle{name: "a"}
	b := &toggle{name: "b"}
	c := &toggle{name: "c"}
	var trace []string

	rules := mediator.NewRules[string](nil).Attach(a, b, c)
	rules.On("a.flipped", func(_ any, _ string) {
		trace = append(trace, "a:start")
		b.Flip()
		trace = append(trace, "a:end")
	})
	rules.On("a.flipped", func(_ any, _ string) { trace = append(trace, "a:second") })
	rules.On("b.flipped", func(_ any, _ string) {
		trace = append(trace, "b")
		c.on = true
	})

	// act
	a.Flip()

	// assert
	assert.Equal(t, []string{"a:start", "b", "a:end", "a:second"}, trace)
	assert.True(t, b.on)
	assert.True(t, c.on)
}

func Test_Rules_SenderIsPassedThrough(t *testing.T) {
	a := &toggle{name: "a"}
	var got any

	rules := mediator.NewRules[string](nil).Attach(a)
	rules.On("a.flipped", func(sender any, _ string) { got = sender })

	a.Flip()

	assert.Same(t, a, got)
}

func Test_Rules_UnknownEventIsIgnored(t *testing.T) {
	a := &toggle{name: "a"}
	mediator.NewRules[string](nil).Attach(a)

	assert.NotPanics(t, func() { a.Flip() })
	assert.True(t, a.on)
}

func Test_Base_WithoutMediatorDoesNothing(t *testing.T) {
	a := &toggle{name: "a"}

	assert.NotPanics(t, func() { a.Flip() })
}

func Test_Rules_NilReactionPanics(t *testing.T) {
	assert.Panics(t, func() { mediator.NewRules[string](nil).On("x", nil) })
}
