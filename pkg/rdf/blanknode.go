package rdf

import "strconv"

// blankNodeGenerator hands out auto-generated blank-node labels of the form
// "_:bN", N monotonically increasing from 0. Labels are local to one parse;
// distinct allocation calls always yield distinct labels.
type blankNodeGenerator struct {
	counter int
}

// fresh allocates the next auto-generated blank node.
func (g *blankNodeGenerator) fresh() *BlankNode {
	id := "b" + strconv.Itoa(g.counter)
	g.counter++
	return NewBlankNode(id)
}
