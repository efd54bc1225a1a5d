// Python-like format strings for rendering combinations.
//
// Supports {name}, {name.method()}, {name!r} and {name:spec} where spec is
// [[fill]align][width] with align one of <, > or ^.
package pyfmt

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/gosimple/slug"
)

type Format struct {
	Input string
	// List of either literal or field, in order.
	Sections []any
	Fields   []*Field
}

func (f Format) IsStatic() bool {
	return len(f.Fields) == 0
}

type Field struct {
	FieldName  string
	FormatSpec string
	Conversion string
	Method     string
}

// Methods lists the supported methods.
var Methods = []string{"lower", "upper", "slug", "quote"}

func Parse(f string) (format Format, err error) {
	err = format.Parse(f)
	return
}

func MustParse(f string) Format {
	format, err := Parse(f)
	if err != nil {
		panic(err)
	}
	return format
}

func (f *Format) Parse(s string) (err error) {
	*f = Format{Input: s}
	var (
		end     = len(s)
		inField = false
		next    byte
		start   int
	)

	for i := 0; i < end; { // Loops sections in s.
		start = i // Track the start of the section. i will move to the end.
		if inField {
			loc := strings.IndexByte(s[i:], '}')
			if loc == -1 {
				return errors.New("end of string before end of field")
			}
			i += loc // Move before }
			field, err := parseField(s[start:i])
			if err != nil {
				return err
			}
			f.Sections = append(f.Sections, &field)
			f.Fields = append(f.Fields, &field)
			i++ // Move after }
			inField = false
			continue
		}

		loc := strings.IndexByte(s[i:], '{')
		if loc == -1 {
			// --lr=0.1
			//         ^
			i = end // End loop at end of step.
		} else {
			// --lr={lr} OR --lr={{lr
			//      ^              ^
			i += loc // Move before {
			if i < end-1 {
				next = s[i+1]
			} else {
				next = 0
			}
			if next == '{' {
				// To escape {{, send two strings, the one before the second { and the rest after on next iteration.
				i++ // Move before second { to include first { as literal { this step.
			} else {
				inField = true
			}
		}
		if i > start { // Avoid empty literal.
			f.Sections = append(f.Sections, strings.ReplaceAll(s[start:i], "}}", "}"))
		}
		i++ // Move after {, literal or escape.
	}
	if inField {
		err = errors.New("unexpected end of format")
	}
	return
}

func parseField(s string) (f Field, err error) {
	before, after, found := strings.Cut(s, "!")
	if found {
		// case {lr!r} OR {lr!r:>30}
		f.FieldName = before
		before, after, _ = strings.Cut(after, ":")
		f.Conversion = before
	} else {
		// case {lr} OR {lr:>30}
		before, after, _ = strings.Cut(before, ":")
		f.FieldName = before
	}
	f.FormatSpec = after
	if strings.HasSuffix(f.FieldName, "()") {
		lastPoint := strings.LastIndex(f.FieldName, ".")
		if lastPoint == -1 {
			return f, fmt.Errorf("%s: method without field", s)
		}
		f.Method = strings.TrimSuffix(f.FieldName[lastPoint+1:], "()")
		f.FieldName = f.FieldName[:lastPoint]
		if !slices.Contains(Methods, f.Method) {
			return f, fmt.Errorf("%s: unknown method %s()", s, f.Method)
		}
	}
	if f.Conversion != "" && f.Conversion != "r" && f.Conversion != "s" {
		return f, fmt.Errorf("%s: unknown conversion !%s", s, f.Conversion)
	}
	if _, _, _, err := parseSpec(f.FormatSpec); err != nil {
		return f, fmt.Errorf("%s: %w", s, err)
	}
	return
}

// parseSpec parses [[fill]align][width].
func parseSpec(spec string) (fill rune, align byte, width int, err error) {
	fill = ' '
	if spec == "" {
		return
	}
	r, size := utf8.DecodeRuneInString(spec)
	if size < len(spec) && strings.IndexByte("<>^", spec[size]) >= 0 {
		fill = r
		align = spec[size]
		spec = spec[size+1:]
	} else if strings.IndexByte("<>^", spec[0]) >= 0 {
		align = spec[0]
		spec = spec[1:]
	}
	if spec == "" {
		return
	}
	width, err = strconv.Atoi(spec)
	if err != nil || width < 0 {
		err = fmt.Errorf("bad width %q", spec)
	}
	return
}

func (f Format) Format(values map[string]string) string {
	if values == nil {
		if !f.IsStatic() {
			panic("rendering dynamic format without values")
		}
		return f.String()
	}

	b := strings.Builder{}

	for _, item := range f.Sections {
		literal, ok := item.(string)
		if ok {
			b.WriteString(literal)
		} else {
			b.WriteString(item.(*Field).render(values[item.(*Field).FieldName]))
		}
	}
	return b.String()
}

func (f *Field) render(v string) string {
	switch f.Method {
	case "":
	case "lower":
		v = strings.ToLower(v)
	case "upper":
		v = strings.ToUpper(v)
	case "slug":
		v = slug.Make(v)
	case "quote":
		v = fmt.Sprintf("'%s'", strings.ReplaceAll(v, "'", `'\''`))
	}
	if f.Conversion == "r" {
		v = strconv.Quote(v)
	}
	return pad(v, f.FormatSpec)
}

func pad(v, spec string) string {
	fill, align, width, _ := parseSpec(spec)
	missing := width - utf8.RuneCountInString(v)
	if missing <= 0 {
		return v
	}
	filler := func(n int) string { return strings.Repeat(string(fill), n) }
	switch align {
	case '>':
		return filler(missing) + v
	case '^':
		left := missing / 2
		return filler(left) + v + filler(missing-left)
	default:
		return v + filler(missing)
	}
}

func (f Format) String() string {
	return f.Input
}

// Variables lists the distinct field names referenced by fmts, sorted.
func Variables(fmts ...Format) []string {
	set := mapset.NewSet[string]()
	for _, f := range fmts {
		for _, field := range f.Fields {
			set.Add(field.FieldName)
		}
	}
	names := set.ToSlice()
	slices.Sort(names)
	return names
}
