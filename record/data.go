// SPDX-License-Identifier: MIT
// Package record: Data is the homogeneous record — a single implicit node
// type and edge type, all attributes in one store.

package record

// Data is a homogeneous graph record.
type Data struct {
	store *Store
}

// NewData creates an empty homogeneous record.
func NewData() *Data {
	return &Data{store: NewStore()}
}

// Store returns the record's single attribute store.
func (d *Data) Store() *Store {
	return d.store
}

// NumNodes delegates to the underlying store.
func (d *Data) NumNodes() (int, error) {
	return d.store.NumNodes()
}

// NumEdges delegates to the underlying store.
func (d *Data) NumEdges() (int, error) {
	return d.store.NumEdges()
}
