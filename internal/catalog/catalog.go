// Package catalog implements the process-wide object catalog (name ->
// handle lookup) plus the Database/Table/Column/Result hierarchy it
// indexes.
package catalog

import "hash/fnv"

// lookupTableSize mirrors lookup.c's LOOKUP_TABLE_SIZE - the number of
// hash buckets in the catalog's open-chaining map.
const lookupTableSize = 100

// Handle is a tagged reference to one of the four kinds of object the
// catalog can resolve a qualified name to, matching include/cs165_api.h's
// CHandle union.
type Handle struct {
	Kind     ObjectKind
	Database *Database
	Table    *Table
	Column   *Column
	Result   *Result
}

type lookupNode struct {
	name string
	kind ObjectKind
	handle Handle
	next   *lookupNode
}

// Catalog is an open-chaining string-keyed map from fully-qualified
// dotted name (db, db.table, or db.table.column) to a Handle, grounded
// on lookup.c's LookupTable/LookupNode chaining. Unlike the original,
// it hashes names with a real string hash (FNV-1a) rather than the
// original's hash() function, which assumes every character is an
// ASCII digit (`c - '0'`) and produces meaningless results on real
// table/column names.
type Catalog struct {
	buckets [lookupTableSize]*lookupNode
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{}
}

func bucketFor(name string) int {
	h := fnv.New64a()
	_, _ = h.Write([]byte(name))
	return int(h.Sum64() % lookupTableSize)
}

// Insert adds or replaces the handle registered under name/kind.
func (c *Catalog) Insert(name string, kind ObjectKind, handle Handle) {
	bin := bucketFor(name)

	for n := c.buckets[bin]; n != nil; n = n.next {
		if n.name == name && n.kind == kind {
			n.handle = handle
			return
		}
	}

	c.buckets[bin] = &lookupNode{name: name, kind: kind, handle: handle, next: c.buckets[bin]}
}

// Lookup returns the handle registered under name/kind, and whether it
// was found.
func (c *Catalog) Lookup(name string, kind ObjectKind) (Handle, bool) {
	bin := bucketFor(name)
	for n := c.buckets[bin]; n != nil; n = n.next {
		if n.name == name && n.kind == kind {
			return n.handle, true
		}
	}
	return Handle{}, false
}

// Remove deletes the handle registered under name/kind, if any.
func (c *Catalog) Remove(name string, kind ObjectKind) {
	bin := bucketFor(name)
	var prev *lookupNode
	for n := c.buckets[bin]; n != nil; n = n.next {
		if n.name == name && n.kind == kind {
			if prev == nil {
				c.buckets[bin] = n.next
			} else {
				prev.next = n.next
			}
			return
		}
		prev = n
	}
}
