package quickfn

import (
	"math/rand"
	"reflect"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
)

func GenList(r *rand.Rand) *List[uint32] {
	size := int(r.Uint32() >> 26)
	l := NilList[uint32]()
	for i := 0; i < size; i++ {
		l = Cons(r.Uint32(), l)
	}
	return l
}

func listConfig() *quick.Config {
	return &quick.Config{
		Values: func(vs []reflect.Value, r *rand.Rand) {
			for i := range vs {
				vs[i] = reflect.ValueOf(GenList(r))
			}
		},
	}
}

func TestConsLenIncrement(t *testing.T) {
	err := quick.Check(
		func(l *List[uint32]) bool {
			return Cons(1, l).Len() == l.Len()+1
		},
		listConfig(),
	)

	if err != nil {
		t.Fatal(err)
	}
}

func TestConsDoesNotMutateTail(t *testing.T) {
	err := quick.Check(
		func(l *List[uint32]) bool {
			before := l.ToSlice()
			_ = Cons(1, l)
			after := l.ToSlice()

			return reflect.DeepEqual(before, after)
		},
		listConfig(),
	)

	if err != nil {
		t.Fatal(err)
	}
}

func TestReverseInvolution(t *testing.T) {
	err := quick.Check(
		func(l *List[uint32]) bool {
			return ListEqual(l, l.Reverse().Reverse())
		},
		listConfig(),
	)

	if err != nil {
		t.Fatal(err)
	}
}

func TestToSliceFromSliceRoundTrip(t *testing.T) {
	err := quick.Check(
		func(l *List[uint32]) bool {
			return ListEqual(l, FromSlice(l.ToSlice()))
		},
		listConfig(),
	)

	if err != nil {
		t.Fatal(err)
	}
}

func TestConcatLenAdds(t *testing.T) {
	err := quick.Check(
		func(a, b *List[uint32]) bool {
			return a.Concat(b).Len() == a.Len()+b.Len()
		},
		listConfig(),
	)

	if err != nil {
		t.Fatal(err)
	}
}

func TestListHeadTail(t *testing.T) {
	l := FromSlice([]int{1, 2, 3})

	require.Equal(t, Just(1), l.Head())
	require.Equal(t, Just(2), l.Tail().UnsafeGet().Head())
	require.Equal(t, NothingOf[int](), NilList[int]().Head())
	require.True(t, NilList[int]().IsEmpty())
}

func TestMapListPreservesOrder(t *testing.T) {
	double := func(i int) int { return 2 * i }

	l := MapList(double, FromSlice([]int{1, 2, 3}))
	require.Equal(t, []int{2, 4, 6}, l.ToSlice())
}

func TestFilterList(t *testing.T) {
	l := FilterList(even, FromSlice([]int{1, 2, 3, 4}))
	require.Equal(t, []int{2, 4}, l.ToSlice())
}

func TestFoldList(t *testing.T) {
	add := func(acc, x int) int { return acc + x }
	require.Equal(t, 6, FoldList(add, 0, FromSlice([]int{1, 2, 3})))
}

func TestListString(t *testing.T) {
	require.Equal(t, "[1, 2, 3]", FromSlice([]int{1, 2, 3}).String())
	require.Equal(t, "[]", NilList[int]().String())
}
