package catalog

import gfn "github.com/panyam/goutils/fn"

// TablesCapacity mirrors db_manager.c's TABLE_CAPACITY - the initial
// number of table slots a database reserves before doubling.
const TablesCapacity = 10

// Database is a named collection of tables. The engine supports at
// most one open database at a time, matching the original's single
// process-wide current_db.
type Database struct {
	Name   string
	Tables []*Table
}

func NewDatabase(name string) *Database {
	return &Database{Name: name, Tables: make([]*Table, 0, TablesCapacity)}
}

// Table looks up one of the database's tables by unqualified name.
func (d *Database) Table(name string) *Table {
	for _, t := range d.Tables {
		if t.Name == name {
			return t
		}
	}
	return nil
}

// TableNames lists every table name the database currently holds, used
// to build a helpful "did you mean one of: ..." detail on a failed
// lookup.
func (d *Database) TableNames() []string {
	return gfn.Map(d.Tables, func(t *Table) string { return t.Name })
}
