package visitor_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalvaropc/patternkit/internal/pattern/visitor"
)

type nodeVisitor interface {
	VisitLeaf(l leaf) error
	VisitBranch(b branch) error
}

type node interface {
	Accept(v nodeVisitor) error
}

type leaf struct{ id int }
type branch struct{ id int }

func (l leaf) Accept(v nodeVisitor) error   { return v.VisitLeaf(l) }
func (b branch) Accept(v nodeVisitor) error { return v.VisitBranch(b) }

type recording struct {
	calls   []string
	failOn  int
	failErr error
}

func (r *recording) VisitLeaf(l leaf) error {
	r.calls = append(r.calls, "leaf")
	if l.id == r.failOn {
		return r.failErr
	}
	return nil
}

func (r *recording) VisitBranch(b branch) error {
	r.calls = append(r.calls, "branch")
	if b.id == r.failOn {
		return r.failErr
	}
	return nil
}

func Test_Walk_DispatchesOneVisitPerElementByVariant(t *testing.T) {
	nodes := []node{leaf{1}, branch{2}, leaf{3}}
	rec := &recording{failOn: -1}

	err := visitor.Walk[nodeVisitor](nodes, rec)

	require.NoError(t, err)
	assert.Equal(t, []string{"leaf", "branch", "leaf"}, rec.calls)
}

func Test_Walk_StopsAtFirstFailure(t *testing.T) {
	boom := errors.New("bad branch")
	nodes := []node{leaf{1}, branch{2}, leaf{3}}
	rec := &recording{failOn: 2, failErr: boom}

	err := visitor.Walk[nodeVisitor](nodes, rec)

	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "element 1")
	assert.Equal(t, []string{"leaf", "branch"}, rec.calls)
}

func Test_WalkAll_VisitsEverything(t *testing.T) {
	boom := errors.New("bad leaf")
	nodes := []node{leaf{1}, branch{2}, leaf{3}}
	rec := &recording{failOn: 1, failErr: boom}

	errs := visitor.WalkAll[nodeVisitor](nodes, rec)

	require.Len(t, errs, 3)
	assert.ErrorIs(t, errs[0], boom)
	assert.NoError(t, errs[1])
	assert.NoError(t, errs[2])
	assert.Len(t, rec.calls, 3)
}

type counter struct{ n int }

type tick struct{}

func (tick) Accept(c *counter) { c.n++ }

func Test_Each_VisitsInOrder(t *testing.T) {
	c := &counter{}

	visitor.Each([]tick{{}, {}, {}}, c)

	assert.Equal(t, 3, c.n)
}
