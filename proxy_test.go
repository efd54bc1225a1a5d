package cartesian_test

import (
	"github.com/dalibo/cartesian"
)

// node is a singly linked list, a sequence without random access.
type node struct {
	value int
	next  *node
}

func linked(values ...int) (head *node) {
	for i := len(values) - 1; i >= 0; i-- {
		head = &node{value: values[i], next: head}
	}
	return
}

type nodeCursor struct {
	n *node
}

func (c *nodeCursor) Value() int { return c.n.value }
func (c *nodeCursor) Next()      { c.n = c.n.next }
func (c *nodeCursor) Equal(other cartesian.Cursor[int]) bool {
	return c.n == other.(*nodeCursor).n
}
func (c *nodeCursor) Clone() cartesian.Cursor[int]   { return &nodeCursor{n: c.n} }
func (c *nodeCursor) Reset(to cartesian.Cursor[int]) { c.n = to.(*nodeCursor).n }

func (suite *Suite) TestProxySlice() {
	r := suite.Require()

	v1 := cartesian.Slice[int]{1, 2}
	v2 := cartesian.Slice[int]{4, 5, 6}

	direct := cartesian.NewIterator[int](v1, v2)
	proxied := cartesian.NewIterator[int](
		cartesian.NewProxy(v1.Begin(), v1.End()),
		cartesian.NewProxy(v2.Begin(), v2.End()),
	)
	end := proxied.End()

	for combination := range direct.All() {
		r.False(proxied.Equal(end))
		r.Equal(combination, proxied.Value())
		proxied.Next()
	}
	r.True(proxied.Equal(end))
}

func (suite *Suite) TestProxyLinkedList() {
	r := suite.Require()

	head := linked(1, 2, 3)
	// Proxy over 2, 3 only.
	begin := &nodeCursor{n: head.next}
	end := &nodeCursor{}
	proxy := cartesian.NewProxy[int](begin, end)

	// Proxy keeps copies of the cursors.
	begin.Next()
	r.Equal(2, proxy.Begin().Value())

	r.Equal([]int{2, 3}, cartesian.Collect[int](proxy))

	it := cartesian.NewIterator[int](proxy, cartesian.Slice[int]{10, 20})
	var sums []int
	for combination := range it.All() {
		sums = append(sums, combination[0]+combination[1])
	}
	r.Equal([]int{12, 13, 22, 23}, sums)

	// Owning product copies the proxied range.
	prod := cartesian.NewProduct[int](proxy)
	head.next.value = 200
	var values []int
	for combination := range prod.All() {
		values = append(values, combination[0])
	}
	r.Equal([]int{2, 3}, values)
}

func (suite *Suite) TestCollectSlice() {
	r := suite.Require()

	s := cartesian.Slice[int]{1, 2}
	c := cartesian.Collect[int](s)
	c[0] = 10
	r.Equal(1, s[0])
}
