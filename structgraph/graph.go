//Package structgraph exposes a solved Lewis structure as a
//gonum.org/v1/gonum/graph graph, so the gonum graph algorithms can walk
//it. The graph is undirected and star shaped (every edge touches the
//central atom); edge weights are bond orders.
package structgraph

import (
	"gonum.org/v1/gonum/graph"

	lewis "github.com/solvate/golewis"
)

type Atom struct {
	*lewis.Atom
	id    int64
	Bonds []*Bond
}

func (A *Atom) ID() int64 {
	return A.id
}

type Bond struct {
	*lewis.Bond
	At1, At2 *Atom
}

func (B *Bond) Weight() float64 {
	return float64(B.Order)
}

func (B *Bond) From() graph.Node {
	return B.At1
}

func (B *Bond) To() graph.Node {
	return B.At2
}

//Bonds are not directional, so the endpoints just switch in place.
func (B *Bond) ReversedEdge() graph.Edge {
	B.At1, B.At2 = B.At2, B.At1
	return B
}

type Bonds []*Bond

func (B Bonds) Len() int {
	return len(B)
}

//Implements gonum graph.Nodes
type Atoms struct {
	Atoms []*Atom
	curr  int
}

func (A *Atoms) Len() int {
	return len(A.Atoms)
}
func (A *Atoms) Reset() {
	A.curr = -1
}
func (A *Atoms) Next() bool {
	if A.curr >= len(A.Atoms)-1 {
		return false
	}
	A.curr++
	return true
}
func (A *Atoms) Node() graph.Node {
	return A.Atoms[A.curr]
}

//Graph implements the gonum graph.Graph and graph.Weighted interfaces over
//one Lewis structure. Node 0 is the central atom; terminals follow in bond
//order.
type Graph struct {
	Bonds
	atoms []*Atom
}

func (G *Graph) Node(id int64) graph.Node {
	for _, a := range G.atoms {
		if a.id == id {
			return a
		}
	}
	return nil
}

func (G *Graph) Nodes() graph.Nodes {
	return &Atoms{Atoms: G.atoms, curr: -1}
}

func (G *Graph) From(id int64) graph.Nodes {
	ret := make([]*Atom, 0)
	for _, b := range G.Bonds {
		//undirected graph
		if b.At1.id == id {
			ret = append(ret, b.At2)
		} else if b.At2.id == id {
			ret = append(ret, b.At1)
		}
	}
	return &Atoms{Atoms: ret, curr: -1}
}

func (G *Graph) HasEdgeBetween(id1, id2 int64) bool {
	return G.Edge(id1, id2) != nil
}

func (G *Graph) Edge(id1, id2 int64) graph.Edge {
	for _, b := range G.Bonds {
		//always undirected
		if (b.At1.id == id1 && b.At2.id == id2) || (b.At1.id == id2 && b.At2.id == id1) {
			return b
		}
	}
	return nil
}

func (G *Graph) WeightedEdge(id1, id2 int64) graph.WeightedEdge {
	b := G.Edge(id1, id2)
	if b == nil {
		return nil
	}
	return b.(*Bond)
}

func (G *Graph) WeightedEdgeBetween(id1, id2 int64) graph.WeightedEdge {
	return G.WeightedEdge(id1, id2)
}

func (G *Graph) Weight(id1, id2 int64) (w float64, ok bool) {
	if id1 == id2 {
		return 0.0, true
	}
	b := G.Edge(id1, id2)
	if b == nil {
		return -1, false
	}
	return b.(*Bond).Weight(), true
}

//FromStructure builds the graph view of a structure. The structure is not
//modified; atoms are shared, bonds are wrapped.
func FromStructure(S *lewis.Structure) *Graph {
	G := new(Graph)
	central := &Atom{Atom: S.Central, id: 0}
	G.atoms = append(G.atoms, central)
	for i, b := range S.Bonds {
		at := &Atom{Atom: b.At2, id: int64(i + 1)}
		G.atoms = append(G.atoms, at)
		nb := &Bond{Bond: b, At1: central, At2: at}
		central.Bonds = append(central.Bonds, nb)
		at.Bonds = append(at.Bonds, nb)
		G.Bonds = append(G.Bonds, nb)
	}
	return G
}
