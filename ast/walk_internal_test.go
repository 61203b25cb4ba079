package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type unknownNode struct{}

func (*unknownNode) node() {}

func TestEachChildUnknownKindPanics(t *testing.T) {
	assert.PanicsWithValue(t,
		"ast: EachChild: unknown node kind *ast.unknownNode",
		func() { EachChild(&unknownNode{}, func(Node) {}) })
}

func TestRewriteUnknownKindPanics(t *testing.T) {
	assert.Panics(t, func() {
		Rewrite(&unknownNode{}, WithPost(func(p *Path) Node { return p.Node }))
	})
}
