// Package outline parses indented plain-text outlines into nested list
// trees. Each line is one item; one leading tab or two leading spaces per
// nesting level. An optional "- " or "* " bullet prefix is stripped.
package outline

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/MikeBiancalana/bullet/list"
)

type frame struct {
	lst  *list.List
	last *list.Item
}

// Parse reads an outline and builds the corresponding list tree. Blank
// lines are skipped. Indentation jumps of more than one level clamp to
// one level deeper than the previous line, and an indented first line
// clamps to the root, so malformed input still parses.
func Parse(r io.Reader) (*list.List, error) {
	root := list.New()
	stack := []frame{{lst: root}}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		depth, text := splitLine(line)

		if depth > len(stack) {
			depth = len(stack)
		}
		if depth == len(stack) {
			parent := &stack[len(stack)-1]
			if parent.last == nil {
				depth = len(stack) - 1
			} else {
				sub := list.New()
				parent.last.Add(sub)
				stack = append(stack, frame{lst: sub})
			}
		}
		stack = stack[:depth+1]

		item := list.NewItem(list.Text(text))
		top := &stack[depth]
		top.lst.Add(item)
		top.last = item
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read outline: %w", err)
	}

	return root, nil
}

// splitLine measures the indentation depth of a line and returns the
// remaining text. A tab counts as one level, as does each pair of spaces.
func splitLine(line string) (int, string) {
	depth := 0
	i := 0
	for i < len(line) {
		switch {
		case line[i] == '\t':
			depth++
			i++
		case strings.HasPrefix(line[i:], "  "):
			depth++
			i += 2
		default:
			text := strings.TrimSpace(line[i:])
			for _, prefix := range []string{"- ", "* "} {
				if strings.HasPrefix(text, prefix) {
					text = strings.TrimSpace(text[len(prefix):])
					break
				}
			}
			return depth, text
		}
	}
	return depth, ""
}
