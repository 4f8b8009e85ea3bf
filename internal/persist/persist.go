// Package persist implements the on-disk dump/load of a whole
// Database: tables, their columns' base data, and any secondary
// indexes, as a single binary file.
//
// Grounded on db_manager.c's dump_server_data/load_server_data: a
// database dumps as its name, then each table (name, column count,
// length/capacity), then each column (name, index type, clustered
// flag, data array, and - depending on index type - either a sorted
// companion index's values/positions arrays or a B+ tree dump
// delegated to internal/bptree's own Dump/Load).
package persist

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/SteveKekacs/column-store-db/internal/bptree"
	"github.com/SteveKekacs/column-store-db/internal/catalog"
	"github.com/SteveKekacs/column-store-db/internal/dberrors"
)

func writeString(w io.Writer, s string) error {
	if err := binary.Write(w, binary.LittleEndian, int32(len(s))); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}

func readString(r io.Reader) (string, error) {
	var n int32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return "", err
	}
	buf := make([]byte, n)
	if n > 0 {
		if _, err := io.ReadFull(r, buf); err != nil {
			return "", err
		}
	}
	return string(buf), nil
}

func writeInt32Slice(w io.Writer, vals []int32) error {
	if err := binary.Write(w, binary.LittleEndian, int32(len(vals))); err != nil {
		return err
	}
	if len(vals) == 0 {
		return nil
	}
	return binary.Write(w, binary.LittleEndian, vals)
}

func readInt32Slice(r io.Reader) ([]int32, error) {
	var n int32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return nil, err
	}
	vals := make([]int32, n)
	if n > 0 {
		if err := binary.Read(r, binary.LittleEndian, vals); err != nil {
			return nil, err
		}
	}
	return vals, nil
}

// Dump writes db in full to w.
func Dump(w io.Writer, db *catalog.Database) error {
	if err := writeString(w, db.Name); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, int32(len(db.Tables))); err != nil {
		return err
	}
	for _, table := range db.Tables {
		if err := dumpTable(w, table); err != nil {
			return fmt.Errorf("persist: dumping table %q: %w", table.Name, err)
		}
	}
	return nil
}

func dumpTable(w io.Writer, table *catalog.Table) error {
	if err := writeString(w, table.Name); err != nil {
		return err
	}
	fields := []int32{int32(table.ColCapacity), int32(table.Length), int32(table.LengthCapacity), int32(len(table.Columns))}
	for _, f := range fields {
		if err := binary.Write(w, binary.LittleEndian, f); err != nil {
			return err
		}
	}
	for _, col := range table.Columns {
		if err := dumpColumn(w, col); err != nil {
			return fmt.Errorf("persist: dumping column %q: %w", col.Name, err)
		}
	}
	return nil
}

func dumpColumn(w io.Writer, col *catalog.Column) error {
	if err := writeString(w, col.Name); err != nil {
		return err
	}
	clustered := int32(0)
	if col.Clustered {
		clustered = 1
	}
	if err := binary.Write(w, binary.LittleEndian, int32(col.IndexType)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, clustered); err != nil {
		return err
	}
	if err := writeInt32Slice(w, col.Data); err != nil {
		return err
	}

	switch col.IndexType {
	case catalog.SortedUnclustered:
		idx := col.SortedIndex()
		if err := writeInt32Slice(w, idx.Values); err != nil {
			return err
		}
		return writeInt32Slice(w, idx.Positions)
	case catalog.BTreeClustered, catalog.BTreeUnclustered:
		return col.Tree().Dump(w)
	default:
		return nil
	}
}

// Load reads a whole database back from r.
func Load(r io.Reader) (*catalog.Database, *catalog.Catalog, error) {
	name, err := readString(r)
	if err != nil {
		return nil, nil, err
	}
	db := catalog.NewDatabase(name)
	cat := catalog.NewCatalog()
	cat.Insert(name, catalog.DatabaseKind, catalog.Handle{Kind: catalog.DatabaseKind, Database: db})

	var numTables int32
	if err := binary.Read(r, binary.LittleEndian, &numTables); err != nil {
		return nil, nil, err
	}
	for i := int32(0); i < numTables; i++ {
		table, err := loadTable(r)
		if err != nil {
			return nil, nil, fmt.Errorf("persist: loading table %d: %w", i, err)
		}
		db.Tables = append(db.Tables, table)
		qualified := name + "." + table.Name
		cat.Insert(qualified, catalog.TableKind, catalog.Handle{Kind: catalog.TableKind, Table: table})
		for _, col := range table.Columns {
			cat.Insert(qualified+"."+col.Name, catalog.ColumnKind, catalog.Handle{Kind: catalog.ColumnKind, Column: col})
		}
	}
	return db, cat, nil
}

func loadTable(r io.Reader) (*catalog.Table, error) {
	name, err := readString(r)
	if err != nil {
		return nil, err
	}
	var colCapacity, length, lengthCapacity, numColumns int32
	for _, f := range []*int32{&colCapacity, &length, &lengthCapacity, &numColumns} {
		if err := binary.Read(r, binary.LittleEndian, f); err != nil {
			return nil, err
		}
	}

	table := catalog.NewTable(name, int(colCapacity))
	table.Length = int(length)
	table.LengthCapacity = int(lengthCapacity)

	for i := int32(0); i < numColumns; i++ {
		col, err := loadColumn(r)
		if err != nil {
			return nil, fmt.Errorf("persist: loading column %d: %w", i, err)
		}
		table.Columns = append(table.Columns, col)
	}
	return table, nil
}

func loadColumn(r io.Reader) (*catalog.Column, error) {
	name, err := readString(r)
	if err != nil {
		return nil, err
	}
	var indexType, clustered int32
	if err := binary.Read(r, binary.LittleEndian, &indexType); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.LittleEndian, &clustered); err != nil {
		return nil, err
	}
	data, err := readInt32Slice(r)
	if err != nil {
		return nil, err
	}

	col := catalog.NewColumn(name, len(data))
	col.Data = data
	col.Clustered = clustered != 0
	col.IndexType = catalog.IndexType(indexType)

	switch col.IndexType {
	case catalog.SortedUnclustered:
		col.SetIndexType(catalog.SortedUnclustered, len(data))
		values, err := readInt32Slice(r)
		if err != nil {
			return nil, err
		}
		positions, err := readInt32Slice(r)
		if err != nil {
			return nil, err
		}
		col.SortedIndex().Values = values
		col.SortedIndex().Positions = positions
	case catalog.BTreeClustered, catalog.BTreeUnclustered:
		tree, err := bptree.Load(r)
		if err != nil {
			return nil, err
		}
		col.SetIndexType(col.IndexType, len(data))
		col.AttachTree(tree)
	}

	return col, nil
}

// DumpStatus wraps Dump in a Status-returning form for callers that
// follow the engine's Status convention instead of propagating a raw
// error.
func DumpStatus(w io.Writer, db *catalog.Database) dberrors.Status {
	if err := Dump(w, db); err != nil {
		return dberrors.Fail(dberrors.Error, "%v", err)
	}
	return dberrors.Done()
}
