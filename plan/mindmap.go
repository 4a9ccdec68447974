package plan

import (
	"fmt"
	"strings"
)

// NodeKind tells a renderer what a Node stands for.
type NodeKind string

const (
	KindPlan    NodeKind = "plan"
	KindGoal    NodeKind = "goal"
	KindSection NodeKind = "section"
	KindItem    NodeKind = "item"
)

// Section ids, in display order.
const (
	SectionAlignment  = "alignment"
	SectionActionPlan = "action-plan"
	SectionSkills     = "skills"
	SectionKeyResults = "krs"
)

// Node is a mind-map node. IDs are stable for the same content.
type Node struct {
	ID       string
	Label    string
	Kind     NodeKind
	Children []*Node
}

// Walk visits n and its descendants depth first. Returning false skips the children.
func (n *Node) Walk(fn func(n *Node, depth int) bool) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(*Node, int) bool, depth int) {
	if !fn(n, depth) {
		return
	}
	for _, c := range n.Children {
		c.walk(fn, depth+1)
	}
}

// MindMap builds the tree for a plan named name. Empty content yields just the root.
func MindMap(name string, content Content) *Node {
	root := &Node{ID: "root", Label: name, Kind: KindPlan}

	for gi, goal := range content.Goals {
		goalID := fmt.Sprintf("goal-%d", gi)
		g := &Node{ID: goalID, Label: goal.Description, Kind: KindGoal}

		sections := []struct {
			id    string
			label string
			items []string
		}{
			{SectionAlignment, "Alignment", []string{goal.Alignment}},
			{SectionActionPlan, "Action plan", goal.ActionPlan},
			{SectionSkills, "Skills", []string{skillsLabel(goal.Skills)}},
			{SectionKeyResults, "KRs", goal.KeyResults},
		}
		for _, sec := range sections {
			secID := goalID + "-" + sec.id
			sn := &Node{ID: secID, Label: sec.label, Kind: KindSection}
			for ii, item := range sec.items {
				if item == "" {
					continue
				}
				sn.Children = append(sn.Children, &Node{
					ID:    fmt.Sprintf("%s-%d", secID, ii),
					Label: item,
					Kind:  KindItem,
				})
			}
			g.Children = append(g.Children, sn)
		}

		root.Children = append(root.Children, g)
	}
	return root
}

func skillsLabel(s Skills) string {
	var parts []string
	if len(s.Hard) > 0 {
		parts = append(parts, "Hard Skills:\n- "+strings.Join(s.Hard, "\n- "))
	}
	if len(s.Soft) > 0 {
		parts = append(parts, "Soft Skills:\n- "+strings.Join(s.Soft, "\n- "))
	}
	return strings.Join(parts, "\n\n")
}
