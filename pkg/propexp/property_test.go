package propexp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwmacct/251207-go-pkg-propexp/pkg/propexp"
)

func TestExpandProperty(t *testing.T) {
	s := serverStore()
	r := propexp.New(s)

	got, err := r.ExpandProperty(propexp.Property{
		Name:  "key",
		Value: propexp.StringValue("${scheme}://${server.${name}}/${path}"),
	})
	require.NoError(t, err)
	assert.Equal(t, "https://www.pharmgkb.org/some/path", got)

	stored, _ := s.Get("key")
	assert.Equal(t, "https://www.pharmgkb.org/some/path", stored)
}

func TestExpandProperty_Override(t *testing.T) {
	tests := []struct {
		name     string
		override bool
		want     string
	}{
		{name: "normal commit keeps user value", override: false, want: "prior"},
		{name: "override replaces user value", override: true, want: "www"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStore("name", "www", "key", "prior")
			r := propexp.New(s)

			got, err := r.ExpandProperty(propexp.Property{
				Name:     "key",
				Value:    propexp.StringValue("${name}"),
				Override: tt.override,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			stored, _ := s.Get("key")
			assert.Equal(t, tt.want, stored)
		})
	}
}

func TestExpandProperty_NoValue(t *testing.T) {
	t.Run("existing key is committed without resolution", func(t *testing.T) {
		s := newStore()
		s.SetIfUnset("key", "${unresolved}")
		r := propexp.New(s)

		got, err := r.ExpandProperty(propexp.Property{Name: "key", Override: true})
		require.NoError(t, err)
		assert.Equal(t, "${unresolved}", got)
		assert.True(t, s.IsUserSet("key"))
	})

	t.Run("missing key", func(t *testing.T) {
		r := propexp.New(newStore())

		_, err := r.ExpandProperty(propexp.Property{Name: "key"})
		require.ErrorIs(t, err, propexp.ErrMissingValue)
	})
}

func TestExpandProperty_Errors(t *testing.T) {
	s := serverStore()
	r := propexp.New(s)

	_, err := r.ExpandProperty(propexp.Property{Value: propexp.StringValue("x")})
	require.ErrorIs(t, err, propexp.ErrNoName)

	_, err = r.ExpandProperty(propexp.Property{Name: "key", Value: propexp.StringValue("${nope}")})
	var unresolved *propexp.UnresolvedReferenceError
	require.ErrorAs(t, err, &unresolved)

	_, ok := s.Get("key")
	assert.False(t, ok, "failed resolution commits nothing")
}
