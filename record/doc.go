// Package record defines graph records — the data objects the pad transform
// operates on — together with their attribute stores and introspection.
//
// 🚀 What is a record?
//
//	One graph instance, in one of two shapes:
//	  • Data       — homogeneous: a single implicit node type and edge type,
//	    all attributes in one store.
//	  • HeteroData — heterogeneous: explicit node-type stores plus edge-type
//	    stores keyed by (source, relation, destination) triples.
//
// A Store maps attribute names to dense tensors and remembers, per attribute,
// whether it is node-level or edge-level. Entity counts are inferred from the
// attributes themselves (node count from a node attribute's leading dimension,
// edge count from the connectivity attribute's column count) and may be
// overridden explicitly for attribute-less stores.
//
// The connectivity attribute is named by KeyEdgeIndex and holds a [2, E]
// tensor of endpoint indices: row 0 sources, row 1 destinations. It varies
// along dimension 1; every other attribute varies along dimension 0 — see
// CatDim.
//
// All iteration orders (Keys, NodeItems, EdgeItems) are sorted and therefore
// deterministic across runs.
package record
