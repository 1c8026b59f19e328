package cache

import (
	"CourtsideApi/internal/assert"
	"context"
	"testing"
)

func TestKey(t *testing.T) {
	tests := []struct {
		name  string
		parts []string
		want  string
	}{
		{
			name:  "Single Part",
			parts: []string{"a1b2c3"},
			want:  "stats:a1b2c3",
		},
		{
			name:  "Full Query Identity",
			parts: []string{"a1b2c3", "leaders", "points", "10"},
			want:  "stats:a1b2c3:leaders:points:10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, Key(tt.parts...), tt.want)
		})
	}
}

func TestDisabledCache(t *testing.T) {
	c := New(nil, 0)

	var dest []string
	hit, err := c.Get(context.Background(), Key("x"), &dest)
	assert.NilError(t, err)
	assert.Equal(t, hit, false)

	err = c.Set(context.Background(), Key("x"), []string{"a"})
	assert.NilError(t, err)
}

func TestNilCache(t *testing.T) {
	var c *Cache

	hit, err := c.Get(context.Background(), Key("x"), nil)
	assert.NilError(t, err)
	assert.Equal(t, hit, false)
	assert.NilError(t, c.Set(context.Background(), Key("x"), 1))
}
