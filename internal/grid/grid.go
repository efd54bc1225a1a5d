// Parameter grid file: dimensions expanded into rendered combinations.
package grid

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"reflect"

	"github.com/dalibo/cartesian/internal/lists"
	"github.com/dalibo/cartesian/internal/odometer"
	"github.com/dalibo/cartesian/internal/pyfmt"
	"github.com/knadh/koanf/maps"
	"github.com/mattn/go-isatty"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Candidates lists the grid files searched when none is given.
var Candidates = []string{
	"./cartesian.yml",
	"./cartesian.yaml",
}

// Reserved fields are available in format besides dimension names.
var Reserved = []string{"index", "slug"}

// Grid holds the YAML grid file. Not the flags.
type Grid struct {
	Version    int
	Format     pyfmt.Format
	Exclude    lists.Blacklist
	Dimensions []Dimension
}

type Dimension struct {
	Name   string
	Values []string
	Unique bool
}

func FindFile(userValue string) (path string) {
	if userValue != "" {
		return userValue
	}

	slog.Debug("Searching grid file in current directory.")
	for _, candidate := range Candidates {
		_, err := os.Stat(candidate)
		if err == nil {
			slog.Debug("Found grid file.", "path", candidate)
			return candidate
		}
		slog.Debug("Ignoring grid file.", "path", candidate, "err", err)
	}

	return ""
}

func Load(path string) (Grid, error) {
	var g Grid
	err := g.Load(path)
	return g, err
}

func (g *Grid) Load(path string) (err error) {
	slog.Debug("Loading YAML grid.", "path", path)

	var fo io.ReadCloser
	if path == "-" {
		slog.Info("Reading grid from standard input.")
		fo = os.Stdin
	} else {
		fo, err = os.Open(path)
		if err != nil {
			return
		}
	}
	defer fo.Close() //nolint:errcheck

	return g.Read(fo)
}

// Read decodes, normalizes and validates a YAML grid.
func (g *Grid) Read(r io.Reader) error {
	var data any
	dec := yaml.NewDecoder(r)
	err := dec.Decode(&data)
	if err == io.EOF {
		return fmt.Errorf("empty grid")
	} else if err != nil {
		return fmt.Errorf("YAML error: %w", err)
	}
	if m, ok := data.(map[string]any); ok {
		maps.IntfaceKeysToStrings(m)
	}
	root, err := NormalizeRoot(data)
	if err != nil {
		return err
	}
	if slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		Dump(root)
	}
	return g.LoadYaml(root)
}

// LoadYaml fills grid from normalized YAML data.
func (g *Grid) LoadYaml(root map[string]any) (err error) {
	err = g.DecodeYaml(root)
	if err != nil {
		return
	}
	for i := range g.Dimensions {
		d := &g.Dimensions[i]
		if d.Unique {
			d.Values = lists.Unique(d.Values)
		}
	}
	err = g.check()
	if err != nil {
		return
	}
	slog.Debug("Loaded grid.", "version", g.Version, "dimensions", len(g.Dimensions), "combinations", g.Len())
	return
}

// Wrap mapstructure for grid object.
func (g *Grid) DecodeYaml(yaml any) (err error) {
	d, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       decodeMapHook,
		Metadata:         &mapstructure.Metadata{},
		Result:           g,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return
	}
	err = d.Decode(yaml)
	return
}

// Decode custom types for mapstructure. Implements mapstructure.DecodeHookFuncValue.
func decodeMapHook(from, to reflect.Value) (any, error) {
	if to.Type() != reflect.TypeOf(pyfmt.Format{}) || from.Kind() != reflect.String {
		return from.Interface(), nil
	}
	f, err := pyfmt.Parse(from.String())
	if err != nil {
		return nil, fmt.Errorf("format: %w", err)
	}
	return f, nil
}

// Dump writes normalized YAML to stderr, dimmed on terminals.
func Dump(root any) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	_ = encoder.Encode(root)
	encoder.Close() //nolint:errcheck
	color := isatty.IsTerminal(os.Stderr.Fd())
	slog.Debug("Dumping normalized YAML to stderr.")
	if color {
		os.Stderr.WriteString("\033[0;2m") //nolint:errcheck
	}
	os.Stderr.WriteString(buf.String()) //nolint:errcheck
	if color {
		os.Stderr.WriteString("\033[0m") //nolint:errcheck
	}
}

// Names returns dimension names in grid order.
func (g Grid) Names() []string {
	names := make([]string, len(g.Dimensions))
	for i, d := range g.Dimensions {
		names[i] = d.Name
	}
	return names
}

// Len returns the number of combinations, excluded ones included.
//
// Len is -1 if the count overflows int. Loaded grids never overflow.
func (g Grid) Len() int {
	lengths := make([]int, len(g.Dimensions))
	for i, d := range g.Dimensions {
		lengths[i] = len(d.Values)
	}
	n, ok := odometer.Count(lengths...)
	if !ok {
		return -1
	}
	return n
}

// SetFormat overrides the grid format.
func (g *Grid) SetFormat(s string) error {
	f, err := pyfmt.Parse(s)
	if err != nil {
		return fmt.Errorf("format: %w", err)
	}
	g.Format = f
	return g.check()
}
