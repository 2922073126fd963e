package traits

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAt(t *testing.T) {
	s := []int{10, 20, 30}
	for i, want := range s {
		got, ok := At(s, i)
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}
	for _, i := range []int{-1, 3, 4, 1 << 20} {
		got, ok := At(s, i)
		assert.False(t, ok, "index %d", i)
		assert.Zero(t, got)
	}

	_, ok := At([]int(nil), 0)
	assert.False(t, ok)
}

func TestAtFunc(t *testing.T) {
	double := func(v int) int { return v * 2 }
	got, ok := AtFunc([]int{1, 2}, 1, double)
	assert.True(t, ok)
	assert.Equal(t, 4, got)

	_, ok = AtFunc([]int{1, 2}, 2, double)
	assert.False(t, ok)
	_, ok = AtFunc([]int{1, 2}, -1, double)
	assert.False(t, ok)
}

func TestMap(t *testing.T) {
	seq := Map([]int{1, 2, 3}, func(v int) string { return string(rune('a' + v - 1)) })
	assert.Equal(t, []string{"a", "b", "c"}, slices.Collect(seq))
	assert.Equal(t, []string{"a", "b", "c"}, slices.Collect(seq), "restartable")

	for v := range seq {
		assert.Equal(t, "a", v)
		break
	}
}

func TestIndexed(t *testing.T) {
	seq := Indexed(4, func(i int) int { return i * i })
	assert.Equal(t, []int{0, 1, 4, 9}, slices.Collect(seq))
	assert.Equal(t, 4, Count(seq))
	assert.Equal(t, 0, Count(Indexed(0, func(int) int { panic("unreachable") })))
}
