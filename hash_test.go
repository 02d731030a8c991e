package strpack

import (
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
)

func TestHashMatchesContent(t *testing.T) {
	for _, in := range []string{"", "tiny", "hello world!", "a payload living in a heap block"} {
		v := MustNew(in)
		assert.Equal(t, xxhash.Sum64String(in), v.Hash(), "hash of %q", in)
		v.Drop()
	}
}

func TestHashIgnoresBlockIdentity(t *testing.T) {
	a := MustNew("equal content, two distinct blocks")
	b := MustNew("equal content, two distinct blocks")
	defer a.Drop()
	defer b.Drop()

	assert.NotEqual(t, a.addr(), b.addr())
	assert.Equal(t, a.Hash(), b.Hash())
}

func TestHashAsDictionaryKey(t *testing.T) {
	// The intended pattern for set/map use: key by content hash, chain
	// on Equal for collisions.
	dict := make(map[uint64][]*Str)
	add := func(v *Str) {
		h := v.Hash()
		for _, existing := range dict[h] {
			if existing.Equal(v) {
				return
			}
		}
		dict[h] = append(dict[h], v)
	}

	a := MustNew("recurring dictionary value")
	b := MustNew("recurring dictionary value")
	c := MustNew("a different value entirely")
	defer a.Drop()
	defer b.Drop()
	defer c.Drop()

	add(&a)
	add(&b)
	add(&c)

	total := 0
	for _, chain := range dict {
		total += len(chain)
	}
	assert.Equal(t, 2, total, "duplicate content must deduplicate")
}
