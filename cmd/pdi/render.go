package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"

	"github.com/meupdi/pdi/chat"
	"github.com/meupdi/pdi/core/health"
	"github.com/meupdi/pdi/plan"
)

func renderPlans(w io.Writer, plans []plan.Plan) {
	if len(plans) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("no plans yet, create one with: pdi new <name>"))
		return
	}
	for _, p := range plans {
		fmt.Fprintf(w, "%s  %s  %s\n",
			mutedStyle.Render(p.ID.String()),
			statusStyle(p.Status).Render(fmt.Sprintf("%-11s", p.Status)),
			p.Name,
		)
	}
}

func statusStyle(s plan.Status) lipgloss.Style {
	switch s {
	case plan.StatusDone:
		return okStyle
	case plan.StatusInProgress:
		return titleStyle
	case plan.StatusPending:
		return warnStyle
	default:
		return mutedStyle
	}
}

func renderMessages(w io.Writer, msgs []chat.Message) {
	for _, m := range msgs {
		renderMessage(w, m)
	}
}

func renderMessage(w io.Writer, m chat.Message) {
	label := botStyle.Render("assistant")
	if m.Role == chat.RoleUser {
		label = userStyle.Render("you")
	}
	stamp := ""
	if !m.CreatedAt.IsZero() {
		stamp = " " + mutedStyle.Render(m.CreatedAt.Format(chat.TimestampLayout))
	}
	fmt.Fprintf(w, "%s%s\n%s\n\n", label, stamp, strings.TrimSpace(m.Content))
}

// mindMapTree converts a plan mind map into a printable tree.
func mindMapTree(n *plan.Node) *tree.Tree {
	t := tree.Root(nodeLabel(n)).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(mutedStyle)
	for _, c := range n.Children {
		if len(c.Children) == 0 {
			t.Child(nodeLabel(c))
			continue
		}
		t.Child(mindMapTree(c))
	}
	return t
}

func nodeLabel(n *plan.Node) string {
	switch n.Kind {
	case plan.KindPlan:
		return titleStyle.Render(n.Label)
	case plan.KindSection:
		return sectionStyle.Render(n.Label)
	default:
		return n.Label
	}
}

func renderReport(w io.Writer, report health.Report) {
	for _, r := range report.Results {
		mark := okStyle.Render("ok  ")
		detail := mutedStyle.Render(r.Duration.Round(time.Millisecond).String())
		if !r.OK() {
			mark = errorStyle.Render("FAIL")
			detail = r.Err.Error()
		}
		fmt.Fprintf(w, "%s %-6s %s\n", mark, r.Name, detail)
	}
}
