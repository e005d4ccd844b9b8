package memo_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OffTheMark/AdventOfCode2024/memo"
)

func TestMemoize_CallsOncePerKey(t *testing.T) {
	calls := map[int]int{}
	square := memo.Memoize(func(n int) int {
		calls[n]++
		return n * n
	})

	for i := 0; i < 3; i++ {
		assert.Equal(t, 16, square(4))
		assert.Equal(t, 9, square(3))
	}
	assert.Equal(t, map[int]int{4: 1, 3: 1}, calls)
}

func TestMemoize_WrappersAreIndependent(t *testing.T) {
	var calls int
	fn := func(n int) int { calls++; return n }
	a, b := memo.Memoize(fn), memo.Memoize(fn)
	a(1)
	b(1)
	assert.Equal(t, 2, calls)
}

func TestRecursive_Fibonacci(t *testing.T) {
	tbl := memo.NewTable[int, uint64]()
	var calls int
	fib := memo.RecursiveWith(tbl, func(self func(int) uint64, n int) uint64 {
		calls++
		if n < 2 {
			return uint64(n)
		}
		return self(n-1) + self(n-2)
	})

	require.Equal(t, uint64(12586269025), fib(50))
	assert.Equal(t, 51, calls, "each argument 0..50 is computed once")
	assert.Equal(t, 51, tbl.Len())

	v, ok := tbl.Get(10)
	assert.True(t, ok)
	assert.Equal(t, uint64(55), v)

	fib(50)
	assert.Equal(t, 51, calls)
}

func TestRecursive_CompositeKey(t *testing.T) {
	type key struct{ n, k int }
	binom := memo.Recursive(func(self func(key) int, in key) int {
		if in.k == 0 || in.k == in.n {
			return 1
		}
		return self(key{in.n - 1, in.k - 1}) + self(key{in.n - 1, in.k})
	})
	assert.Equal(t, 184756, binom(key{20, 10}))
}

func TestTable_Lookup(t *testing.T) {
	var tbl memo.Table[string, int]
	_, ok := tbl.Get("x")
	assert.False(t, ok)

	n := tbl.Lookup("abc", func(s string) int { return len(s) })
	assert.Equal(t, 3, n)
	n = tbl.Lookup("abc", func(string) int { return -1 })
	assert.Equal(t, 3, n)

	tbl.Put("abc", 7)
	v, _ := tbl.Get("abc")
	assert.Equal(t, 7, v)
	assert.Equal(t, 1, tbl.Len())
}

func ExampleRecursive() {
	ways := memo.Recursive(func(self func(int) int, stairs int) int {
		if stairs <= 1 {
			return 1
		}
		return self(stairs-1) + self(stairs-2)
	})
	fmt.Println(ways(30))
	// Output: 1346269
}
