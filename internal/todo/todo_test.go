package todo

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListLifecycle(t *testing.T) {
	l := New()
	a := l.Add("buy milk")
	b := l.Add("set tables")
	assert.Equal(t, 1, a.ID)
	assert.Equal(t, 2, b.ID)

	got, ok := l.Toggle(a.ID)
	require.True(t, ok)
	assert.True(t, got.Checked)
	got, _ = l.Toggle(a.ID)
	assert.False(t, got.Checked)

	require.True(t, l.SetText(b.ID, "set four tables"))
	tb, _ := l.Get(b.ID)
	assert.Equal(t, "set four tables", tb.Text)

	require.True(t, l.Remove(a.ID))
	assert.False(t, l.Remove(a.ID))
	_, ok = l.Toggle(a.ID)
	assert.False(t, ok)

	c := l.Add("")
	assert.Equal(t, 3, c.ID, "ids are never reused")
	assert.Equal(t, []int{2, 3}, ids(l.Tasks()))
}

func TestListEmptyStaysEmpty(t *testing.T) {
	l := New()
	a := l.Add("x")
	l.Remove(a.ID)
	assert.Empty(t, l.Tasks())
}

func TestOnChange(t *testing.T) {
	l := New()
	var kinds []EventKind
	l.OnChange(func(e Event) { kinds = append(kinds, e.Kind) })
	a := l.Add("x")
	l.Toggle(a.ID)
	l.SetText(a.ID, "y")
	l.Remove(a.ID)
	l.Remove(a.ID)
	assert.Equal(t, []EventKind{Added, Toggled, Edited, Removed}, kinds)
}

func TestOnChangeMayCallBack(t *testing.T) {
	l := New()
	l.OnChange(func(e Event) {
		if e.Kind == Removed && len(l.Tasks()) == 0 {
			l.Add("refill")
		}
	})
	a := l.Add("only")
	l.Remove(a.ID)
	assert.Equal(t, []int{2}, ids(l.Tasks()))
}

func TestConcurrentAdds(t *testing.T) {
	l := New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.Add("t")
		}()
	}
	wg.Wait()
	seen := map[int]bool{}
	for _, task := range l.Tasks() {
		assert.False(t, seen[task.ID])
		seen[task.ID] = true
	}
	assert.Len(t, seen, 50)
}

func ids(ts []Task) []int {
	out := make([]int, 0, len(ts))
	for _, t := range ts {
		out = append(out, t.ID)
	}
	return out
}
