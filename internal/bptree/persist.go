package bptree

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Dump serializes the tree to w as a sequence of nodes in the same
// pre-order (root, then each child recursively) the original dump_bptree
// used, so Load can rebuild parent/child/prev/next links by replaying
// nodes in write order without needing to persist raw pointers.
func (t *Tree) Dump(w io.Writer) error {
	if t.root == noNode {
		return binary.Write(w, binary.LittleEndian, int32(0))
	}
	if err := binary.Write(w, binary.LittleEndian, int32(1)); err != nil {
		return err
	}
	return t.dumpNode(w, t.root)
}

func (t *Tree) dumpNode(w io.Writer, idx int) error {
	n := &t.nodes[idx]

	isLeaf := int32(0)
	if n.kind == leafNode {
		isLeaf = 1
	}
	if err := binary.Write(w, binary.LittleEndian, isLeaf); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, int32(len(n.vals))); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, n.vals); err != nil {
		return err
	}

	if n.kind == leafNode {
		return binary.Write(w, binary.LittleEndian, n.positions)
	}

	for _, child := range n.children {
		if err := t.dumpNode(w, child); err != nil {
			return err
		}
	}
	return nil
}

// Load rebuilds a tree from r, restitching leaf next/prev links by
// tracking the most recently loaded leaf in document order - every leaf
// visited by a pre-order DFS of a B+ tree is visited left-to-right, so
// this recreates the same left-to-right leaf chain the tree had when
// dumped.
func Load(r io.Reader) (*Tree, error) {
	var present int32
	if err := binary.Read(r, binary.LittleEndian, &present); err != nil {
		return nil, fmt.Errorf("bptree: reading presence flag: %w", err)
	}
	t := New()
	if present == 0 {
		return t, nil
	}

	var lastLeaf = noNode
	root, err := t.loadNode(r, noNode, &lastLeaf)
	if err != nil {
		return nil, err
	}
	t.root = root
	return t, nil
}

func (t *Tree) loadNode(r io.Reader, parent int, lastLeaf *int) (int, error) {
	var isLeaf, numVals int32
	if err := binary.Read(r, binary.LittleEndian, &isLeaf); err != nil {
		return noNode, fmt.Errorf("bptree: reading node kind: %w", err)
	}
	if err := binary.Read(r, binary.LittleEndian, &numVals); err != nil {
		return noNode, fmt.Errorf("bptree: reading node size: %w", err)
	}

	vals := make([]int32, numVals)
	if numVals > 0 {
		if err := binary.Read(r, binary.LittleEndian, vals); err != nil {
			return noNode, fmt.Errorf("bptree: reading node values: %w", err)
		}
	}

	if isLeaf == 1 {
		positions := make([]int32, numVals)
		if numVals > 0 {
			if err := binary.Read(r, binary.LittleEndian, positions); err != nil {
				return noNode, fmt.Errorf("bptree: reading leaf positions: %w", err)
			}
		}
		leaf := newLeaf()
		leaf.vals = vals
		leaf.positions = positions
		leaf.parent = parent
		idx := t.alloc(leaf)

		if *lastLeaf != noNode {
			t.nodes[*lastLeaf].next = idx
			t.nodes[idx].prev = *lastLeaf
		}
		*lastLeaf = idx
		return idx, nil
	}

	n := newInternal()
	n.vals = vals
	n.parent = parent
	idx := t.alloc(n)

	children := make([]int, numVals+1)
	for i := range children {
		child, err := t.loadNode(r, idx, lastLeaf)
		if err != nil {
			return noNode, err
		}
		children[i] = child
	}
	t.nodes[idx].children = children

	return idx, nil
}
