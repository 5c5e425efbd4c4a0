package intern_test

import (
	"testing"

	"github.com/brimdata/bform/compiler/intern"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntern(t *testing.T) {
	table := intern.NewTable()
	a := table.Intern("foo")
	b := table.Intern("bar")
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, table.Intern("foo"))
	assert.Equal(t, b, table.Intern("bar"))
	assert.Equal(t, "foo", table.Resolve(a))
	assert.Equal(t, "bar", table.Resolve(b))
	assert.Equal(t, 2, table.Len())
}

func TestDenseIDs(t *testing.T) {
	table := intern.NewTable()
	for i, s := range []string{"a", "b", "c", "a", "b", "d"} {
		id := table.Intern(s)
		switch i {
		case 0, 3:
			assert.Equal(t, intern.ID(0), id)
		case 1, 4:
			assert.Equal(t, intern.ID(1), id)
		case 2:
			assert.Equal(t, intern.ID(2), id)
		case 5:
			assert.Equal(t, intern.ID(3), id)
		}
	}
}

func TestLookup(t *testing.T) {
	table := intern.NewTable()
	id := table.Intern("present")
	got, ok := table.Lookup("present")
	require.True(t, ok)
	assert.Equal(t, id, got)
	_, ok = table.Lookup("absent")
	assert.False(t, ok)
	assert.Equal(t, 1, table.Len())
}
