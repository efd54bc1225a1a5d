package cartesian_test

import (
	"math"

	"github.com/dalibo/cartesian"
)

func (suite *Suite) TestProductPermanentObjects() {
	r := suite.Require()

	v1 := []int{1, 2}
	v2 := []int{4, 5, 6}
	prod := cartesian.FromSlices(v1, v2)
	r.Equal(2, prod.Dimensions())
	r.Equal(6, prod.Len())

	it := prod.Begin()
	for j := 4; j <= 6; j++ {
		for i := 1; i <= 2; i++ {
			r.Equal(i, it.Value()[0])
			r.Equal(i, it.Get(0))
			r.Equal(j, it.Value()[1])
			r.Equal(j, it.Get(1))
			it.Next()
		}
	}
	r.True(it.Equal(prod.End()))
}

func (suite *Suite) TestProductCopyIsolation() {
	r := suite.Require()

	v1 := []int{1, 2}
	v2 := []int{4, 5, 6}
	prod := cartesian.NewProduct[int](cartesian.Slice[int](v1), cartesian.Slice[int](v2))
	v1[0] = 100
	v2[2] = 600

	var combinations [][]int
	for combination := range prod.All() {
		combinations = append(combinations, combination)
	}
	r.Equal([][]int{
		{1, 4}, {2, 4},
		{1, 5}, {2, 5},
		{1, 6}, {2, 6},
	}, combinations)
}

func (suite *Suite) TestProductOwn() {
	r := suite.Require()

	named := cartesian.FromSlices([]int{1, 2}, []int{4, 5, 6})
	moved := cartesian.Own([]int{1, 2}, []int{4, 5, 6})

	var want, got [][]int
	for combination := range named.All() {
		want = append(want, combination)
	}
	for combination := range moved.All() {
		got = append(got, combination)
	}
	r.Equal(want, got)
	r.Len(got, 6)
}

func (suite *Suite) TestProductEndAfterExactAdvances() {
	r := suite.Require()

	prod := cartesian.FromSlices([]int{1, 2}, []int{4, 5, 6})
	it := prod.Begin()
	end := prod.End()
	advances := 0
	for !it.Equal(end) {
		it.Next()
		advances++
	}
	r.Equal(6, advances)

	it.Next()
	r.True(it.Equal(end))
}

func (suite *Suite) TestProductBeginIsFresh() {
	r := suite.Require()

	prod := cartesian.FromSlices([]string{"a", "b"})
	it := prod.Begin()
	it.Next()
	it.Next()
	r.True(it.Done())

	// Moving a cursor does not move the product bounds.
	again := prod.Begin()
	r.Equal("a", again.Get(0))
	r.False(again.Equal(prod.End()))
}

func (suite *Suite) TestProductClone() {
	r := suite.Require()

	prod := cartesian.FromSlices([]int{1, 2}, []int{3})
	clone := prod.Clone()
	r.Equal(prod.Len(), clone.Len())

	var a, b [][]int
	for combination := range prod.All() {
		a = append(a, combination)
	}
	for combination := range clone.All() {
		b = append(b, combination)
	}
	r.Equal(a, b)
}

func (suite *Suite) TestProductEmpty() {
	r := suite.Require()

	var prod cartesian.Product[int]
	r.Equal(0, prod.Len())
	r.Equal(0, prod.Dimensions())
	begin := prod.Begin()
	r.True(begin.Equal(prod.End()))
}

func (suite *Suite) TestProduct2() {
	r := suite.Require()

	a := []int{1, 2}
	b := []string{"x", "y", "z"}
	prod := cartesian.Product2Of(a, b)
	a[0] = 0
	b[0] = "w"
	r.Equal(6, prod.Len())

	var got []string
	it := prod.Begin()
	for end := prod.End(); !it.Equal(end); it.Next() {
		got = append(got, it.Value().String())
	}
	r.Equal([]string{"(1, x)", "(2, x)", "(1, y)", "(2, y)", "(1, z)", "(2, z)"}, got)

	count := 0
	for range prod.Clone().All() {
		count++
	}
	r.Equal(6, count)
}

func (suite *Suite) TestProduct2FromSequences() {
	r := suite.Require()

	prod := cartesian.NewProduct2[int, bool](cartesian.Slice[int]{1, 2, 3}, cartesian.Slice[bool]{true, false})
	moved := cartesian.Own2([]int{1, 2, 3}, []bool{true, false})

	var a, b []string
	for x, y := range prod.All() {
		a = append(a, cartesian.Tuple2[int, bool]{V0: x, V1: y}.String())
	}
	for x, y := range moved.All() {
		b = append(b, cartesian.Tuple2[int, bool]{V0: x, V1: y}.String())
	}
	r.Equal(a, b)
	r.Len(a, 6)
	r.Equal("(1, true)", a[0])
	r.Equal("(3, false)", a[5])
}

func (suite *Suite) TestProduct3() {
	r := suite.Require()

	prod := cartesian.Product3Of([]int{1, 2}, []string{"a", "b"}, []float64{0.5})
	r.Equal(4, prod.Len())
	moved := cartesian.Own3([]int{1, 2}, []string{"a", "b"}, []float64{0.5})
	fromSequences := cartesian.NewProduct3[int, string, float64](
		cartesian.Slice[int]{1, 2},
		cartesian.Slice[string]{"a", "b"},
		cartesian.Slice[float64]{0.5},
	)

	collect := func(p *cartesian.Product3[int, string, float64]) (out []string) {
		for t := range p.All() {
			out = append(out, t.String())
		}
		return
	}
	want := []string{"(1, a, 0.5)", "(2, a, 0.5)", "(1, b, 0.5)", "(2, b, 0.5)"}
	r.Equal(want, collect(prod))
	r.Equal(want, collect(moved))
	r.Equal(want, collect(fromSequences))
	r.Equal(want, collect(prod.Clone()))

	it := prod.Begin()
	end := prod.End()
	for i := 0; i < 4; i++ {
		it.Next()
	}
	r.True(it.Equal(end))
}

func (suite *Suite) TestProductLenOverflow() {
	r := suite.Require()

	big := make([]struct{}, math.MaxInt/2+1)
	r.Equal(-1, cartesian.Own(big, big).Len())
	r.Equal(-1, cartesian.Own2(big, []int{1, 2}).Len())
	r.Equal(-1, cartesian.Own3(big, []struct{}{{}}, big).Len())

	half := big[:math.MaxInt/2]
	r.Equal(math.MaxInt-1, cartesian.Own2(half, []int{1, 2}).Len())
}

func (suite *Suite) TestProductAllWithEmptyDimension() {
	r := suite.Require()

	prod := cartesian.FromSlices([]int{1, 2}, nil, []int{3})
	r.Equal(0, prod.Len())
	for range prod.All() {
		r.Fail("combination of an empty dimension")
	}

	prod2 := cartesian.Product2Of([]int{}, []string{"a"})
	r.Equal(0, prod2.Len())
	for range prod2.All() {
		r.Fail("combination of an empty dimension")
	}

	prod3 := cartesian.Product3Of([]int{1}, []string{}, []bool{true})
	r.Equal(0, prod3.Len())
	for range prod3.All() {
		r.Fail("combination of an empty dimension")
	}
}
