package verdict

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// String renders the registered key paths and their rules as a table,
// sorted by path.
func (e *Engine[K]) String() string {
	type row struct {
		path string
		rule Rule
	}
	var rows []row
	e.rules.Walk(func(keys []K, r Rule) bool {
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = fmt.Sprintf("%v", k)
		}
		rows = append(rows, row{path: strings.Join(parts, "/"), rule: r})
		return true
	})
	sort.Slice(rows, func(i, j int) bool { return rows[i].path < rows[j].path })

	tw := table.NewWriter()
	tw.SetTitle("\nRULE REGISTRY\n")
	tw.AppendHeader(table.Row{"Path", "Rule", "Kind"})
	for _, r := range rows {
		tw.AppendRow(table.Row{r.path, displayName(r.rule), kind(r.rule)})
	}
	style := table.StyleLight
	style.Format.Header = text.FormatDefault
	tw.SetStyle(style)
	return tw.Render()
}

func kind(r Rule) string {
	switch rr := r.(type) {
	case *RuleSet:
		return fmt.Sprintf("set(%s, %d rules)", rr.Policy(), len(rr.children))
	default:
		return "condition/assertion"
	}
}

func displayName(r Rule) string {
	if r.Name() != "" {
		return r.Name()
	}
	return "(unnamed)"
}

// Tree returns a tree representation of a rule hierarchy showing rule
// names, using box-drawing characters to visualize parent-child
// relationships. Recursion is limited to a maximum depth of 20 levels.
//
// Example output:
//
//	checkout
//	├── payment
//	│   ├── big-order
//	│   └── velocity
//	└── fraud
func Tree(r Rule) string {
	if r == nil {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(displayName(r))
	sb.WriteString("\n")
	buildTree(&sb, r, "", 0)
	return sb.String()
}

// buildTree recursively renders the children of composite rules with
// proper indentation and tree characters (├──, └──, │).
func buildTree(sb *strings.Builder, r Rule, prefix string, depth int) {
	if depth >= 20 {
		return
	}
	rs, ok := r.(*RuleSet)
	if !ok {
		return
	}
	for i, child := range rs.children {
		connector, childPrefix := "├── ", "│   "
		if i == len(rs.children)-1 {
			connector, childPrefix = "└── ", "    "
		}
		sb.WriteString(prefix)
		sb.WriteString(connector)
		sb.WriteString(displayName(child))
		sb.WriteString("\n")
		buildTree(sb, child, prefix+childPrefix, depth+1)
	}
}
