package propstore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwmacct/251207-go-pkg-propexp/pkg/propstore"
)

func TestMemoryStore_SetOnce(t *testing.T) {
	s := propstore.NewMemoryStore()

	s.SetIfUnset("a", "1")
	s.SetIfUnset("a", "2")

	got, ok := s.Get("a")
	require.True(t, ok)
	assert.Equal(t, "1", got)
	assert.False(t, s.IsUserSet("a"))
}

func TestMemoryStore_SetForced(t *testing.T) {
	s := propstore.NewMemoryStore()
	s.SetIfUnset("a", "1")

	s.SetForced("a", "2")
	s.SetIfUnset("a", "3")

	e, ok := s.Entry("a")
	require.True(t, ok)
	assert.Equal(t, "2", e.Value)
	assert.True(t, e.User)
	assert.Equal(t, propstore.OriginExpanded, e.Origin)
}

func TestMemoryStore_KeysKeepInsertionOrder(t *testing.T) {
	s := propstore.NewMemoryStore()
	for _, k := range []string{"z", "a", "m"} {
		s.SetIfUnset(k, k)
	}
	s.SetForced("a", "again")
	s.SetUser("b", "new")

	keys := s.Keys()
	assert.Equal(t, []string{"z", "a", "m", "b"}, keys)
	assert.Equal(t, 4, s.Len())

	keys[0] = "mutated"
	assert.Equal(t, "z", s.Keys()[0], "Keys returns a snapshot")
}

func TestMemoryStore_Put(t *testing.T) {
	s := propstore.NewMemoryStore()

	assert.True(t, s.Put("a", "1", propstore.FileOrigin("a.yaml")))
	assert.False(t, s.Put("a", "2", propstore.OriginEnv))

	e, _ := s.Entry("a")
	assert.Equal(t, propstore.Origin("file:a.yaml"), e.Origin)

	_, ok := s.Entry("missing")
	assert.False(t, ok)
}
