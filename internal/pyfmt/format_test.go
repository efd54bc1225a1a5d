package pyfmt_test

import "github.com/dalibo/cartesian/internal/pyfmt"

func (suite *Suite) TestParseLiteralOnly() {
	r := suite.Require()
	f, err := pyfmt.Parse("--lr=0.1")
	r.Nil(err)
	r.Len(f.Fields, 0)
	r.Len(f.Sections, 1)
	r.Equal("--lr=0.1", f.Sections[0])
	r.True(f.IsStatic())
}

func (suite *Suite) TestParseMethod() {
	r := suite.Require()
	f, err := pyfmt.Parse("{optimizer.upper()}")
	r.Nil(err)
	r.Len(f.Fields, 1)
	r.Len(f.Sections, 1)
	r.Equal("optimizer", f.Fields[0].FieldName)
	r.Equal("upper", f.Fields[0].Method)
}

func (suite *Suite) TestParseUnknownMethod() {
	r := suite.Require()
	_, err := pyfmt.Parse("{optimizer.title()}")
	r.ErrorContains(err, "unknown method title()")
}

func (suite *Suite) TestParseCombination() {
	r := suite.Require()

	f, err := pyfmt.Parse("--lr={lr} --seed={seed}")
	r.Nil(err)
	r.Len(f.Sections, 4)
	r.Equal("--lr=", f.Sections[0])
	r.Equal(" --seed=", f.Sections[2])
	r.Equal([]string{"lr", "seed"}, pyfmt.Variables(f))
}

func (suite *Suite) TestParseEscaped() {
	r := suite.Require()
	f, err := pyfmt.Parse("literal {{lr}} x")
	r.Nil(err)
	r.Len(f.Sections, 2)
	r.Len(f.Fields, 0)
	r.Equal("literal {", f.Sections[0])
	r.Equal("lr} x", f.Sections[1])
}

func (suite *Suite) TestParseUnterminatedField() {
	r := suite.Require()
	_, err := pyfmt.Parse("literal{unterminated_field")
	r.Error(err)
	_, err = pyfmt.Parse("literal{")
	r.Error(err)
}

func (suite *Suite) TestParseConversion() {
	r := suite.Require()
	f, err := pyfmt.Parse("{name!r}")
	r.Nil(err)
	r.Len(f.Fields, 1)
	r.Equal("name", f.Fields[0].FieldName)
	r.Equal("r", f.Fields[0].Conversion)

	_, err = pyfmt.Parse("{name!x}")
	r.ErrorContains(err, "unknown conversion")
}

func (suite *Suite) TestParseSpec() {
	r := suite.Require()
	f, err := pyfmt.Parse("{lr:>8}")
	r.Nil(err)
	r.Len(f.Fields, 1)
	r.Equal(&pyfmt.Field{FieldName: "lr", FormatSpec: ">8"}, f.Fields[0])

	_, err = pyfmt.Parse("{lr:>wide}")
	r.ErrorContains(err, "bad width")
}

func (suite *Suite) TestFormat() {
	r := suite.Require()
	values := map[string]string{
		"name":  "Adam W",
		"lr":    "0.1",
		"quote": "it's",
	}
	cases := map[string]string{
		"--opt={name}":    "--opt=Adam W",
		"{name.lower()}":  "adam w",
		"{name.upper()}":  "ADAM W",
		"{name.slug()}":   "adam-w",
		"{quote.quote()}": `'it'\''s'`,
		"{name!r}":        `"Adam W"`,
		"[{lr:>5}]":       "[  0.1]",
		"[{lr:<5}]":       "[0.1  ]",
		"[{lr:*^7}]":      "[**0.1**]",
		"[{lr:2}]":        "[0.1]",
		"{{{lr}}}":        "{0.1}",
		"{missing}-{lr}":  "-0.1",
	}
	for input, expected := range cases {
		f := pyfmt.MustParse(input)
		r.Equal(expected, f.Format(values), input)
	}
}

func (suite *Suite) TestFormatStatic() {
	r := suite.Require()
	f := pyfmt.MustParse("static")
	r.Equal("static", f.Format(nil))
	r.Panics(func() { pyfmt.MustParse("{lr}").Format(nil) })
}
