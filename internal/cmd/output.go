package cmd

import (
	"bufio"
	"context"
	"io"
	"strconv"

	"github.com/dalibo/cartesian/internal/grid"
	"gopkg.in/yaml.v3"
)

// writeText writes one rendered line per combination.
func writeText(ctx context.Context, w io.Writer, g grid.Grid, limit int) (count int, err error) {
	buf := bufio.NewWriter(w)
	for line := range g.Lines() {
		if limit > 0 && count >= limit {
			break
		}
		if err = ctx.Err(); err != nil {
			return
		}
		_, err = buf.WriteString(line + "\n")
		if err != nil {
			return
		}
		count++
	}
	err = buf.Flush()
	return
}

// writeYaml writes a YAML list of combinations, dimensions in grid order.
func writeYaml(ctx context.Context, w io.Writer, g grid.Grid, limit int) (count int, err error) {
	root := &yaml.Node{Kind: yaml.SequenceNode}
	names := g.Names()
	for c := range g.Combinations() {
		if limit > 0 && count >= limit {
			break
		}
		if err = ctx.Err(); err != nil {
			return
		}
		values := &yaml.Node{Kind: yaml.MappingNode}
		for i, name := range names {
			values.Content = append(values.Content, scalar(name), scalar(c.Values[i]))
		}
		item := &yaml.Node{Kind: yaml.MappingNode}
		item.Content = append(item.Content,
			scalar("index"), &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(c.Index)},
			scalar("line"), scalar(c.Line),
			scalar("values"), values,
		)
		root.Content = append(root.Content, item)
		count++
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if count == 0 {
		root.Style = yaml.FlowStyle
	}
	err = encoder.Encode(root)
	if err != nil {
		return
	}
	err = encoder.Close()
	return
}

// countLines counts combinations left after exclusion.
func countLines(ctx context.Context, g grid.Grid) (count int, err error) {
	if len(g.Exclude) == 0 {
		return g.Len(), nil
	}
	for range g.Lines() {
		if err = ctx.Err(); err != nil {
			return
		}
		count++
	}
	return
}

// scalar builds a string node, quoted by yaml when needed.
func scalar(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}
