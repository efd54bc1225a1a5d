package grid

import (
	"fmt"
	"iter"
	"log/slog"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/dalibo/cartesian"
	"github.com/dalibo/cartesian/internal/errorlist"
	"github.com/dalibo/cartesian/internal/lists"
	"github.com/dalibo/cartesian/internal/pyfmt"
	"github.com/gosimple/slug"
)

// Combination is one rendered point of the grid.
type Combination struct {
	// Index counts combinations from 0, excluded ones included.
	Index  int
	Values []string
	Line   string
}

func (g Grid) check() error {
	errs := errorlist.New("bad grid")
	names := g.Names()
	for _, name := range lists.Duplicates(names) {
		errs.Appendf("dimensions: duplicate name %s", name)
	}
	for _, name := range names {
		if slices.Contains(Reserved, name) {
			errs.Appendf("dimensions: %s is a reserved name", name)
		}
	}
	for _, name := range pyfmt.Variables(g.Format) {
		if !slices.Contains(names, name) && !slices.Contains(Reserved, name) {
			errs.Appendf("format: unknown field %s", name)
		}
	}
	if g.Len() < 0 {
		errs.Appendf("dimensions: too many combinations, more than %d", math.MaxInt)
	}
	if err := g.Exclude.Check(); err != nil {
		errs.Appendf("exclude: %w", err)
	}
	return errs.Err()
}

// Product builds the product of dimension values, first dimension varying
// fastest.
func (g Grid) Product() *cartesian.Product[string] {
	values := make([][]string, len(g.Dimensions))
	for i, d := range g.Dimensions {
		values[i] = d.Values
	}
	return cartesian.FromSlices(values...)
}

// Render formats a combination.
//
// Without format, values are joined with space.
func (g Grid) Render(index int, values []string) string {
	if g.Format.Input == "" {
		return strings.Join(values, " ")
	}
	if g.Format.IsStatic() {
		return g.Format.String()
	}
	fields := make(map[string]string, len(values)+len(Reserved))
	for i, d := range g.Dimensions {
		fields[d.Name] = values[i]
	}
	fields["index"] = strconv.Itoa(index)
	fields["slug"] = slug.Make(strings.Join(values, "-"))
	return g.Format.Format(fields)
}

// Combinations yields rendered combinations not excluded.
func (g Grid) Combinations() iter.Seq[Combination] {
	return func(yield func(Combination) bool) {
		index := 0
		for values := range g.Product().All() {
			c := Combination{
				Index:  index,
				Values: values,
				Line:   g.Render(index, values),
			}
			index++
			if pattern := g.Exclude.MatchString(c.Line); pattern != "" {
				slog.Debug("Excluding combination.", "index", c.Index, "line", c.Line, "pattern", pattern)
				continue
			}
			if !yield(c) {
				return
			}
		}
	}
}

// Lines yields rendered lines not excluded.
func (g Grid) Lines() iter.Seq[string] {
	rendered := func(yield func(string) bool) {
		index := 0
		for values := range g.Product().All() {
			if !yield(g.Render(index, values)) {
				return
			}
			index++
		}
	}
	return g.Exclude.Filter(rendered, func(line, pattern string) {
		slog.Debug("Excluding combination.", "line", line, "pattern", pattern)
	})
}

func (c Combination) String() string {
	return fmt.Sprintf("#%d %s", c.Index, c.Line)
}
