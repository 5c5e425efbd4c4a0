// Package intern canonicalizes strings to small integer handles so the
// rest of the compiler can compare names and literals with integer
// equality instead of string equality.
package intern

// ID is the handle for an interned string.  Two IDs issued by the same
// Table are equal if and only if their strings are equal.
type ID int

// Table maps distinct strings to dense IDs starting at zero.  A Table is
// single-writer: one parse interns into it at a time.  A Table that is no
// longer being written may be read concurrently.
type Table struct {
	ids     map[string]ID
	strings []string
}

func NewTable() *Table {
	return &Table{ids: make(map[string]ID)}
}

// Intern returns the ID for s, issuing the next dense ID the first time
// s is seen.
func (t *Table) Intern(s string) ID {
	if id, ok := t.ids[s]; ok {
		return id
	}
	id := ID(len(t.strings))
	t.ids[s] = id
	t.strings = append(t.strings, s)
	return id
}

// Resolve returns the string for id.  It panics if id is out of range
// for this table.
func (t *Table) Resolve(id ID) string {
	return t.strings[id]
}

// Lookup returns the ID for s without interning it.
func (t *Table) Lookup(s string) (ID, bool) {
	id, ok := t.ids[s]
	return id, ok
}

// Len returns the number of distinct strings interned so far.
func (t *Table) Len() int { return len(t.strings) }
