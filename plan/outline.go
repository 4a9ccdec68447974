package plan

import (
	"bufio"
	"fmt"
	"io"
)

// Outline writes a plan as a markdown document.
func Outline(w io.Writer, name string, content Content) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# %s\n", name)
	if content.Empty() {
		fmt.Fprintln(bw, "\nNo content yet. Use the chat to start defining your goals.")
		return bw.Flush()
	}

	for _, g := range content.Goals {
		fmt.Fprintf(bw, "\n## %s\n", g.Description)

		fmt.Fprintln(bw, "\n### Skills")
		list(bw, "#### Hard Skills", g.Skills.Hard)
		list(bw, "#### Soft Skills", g.Skills.Soft)

		if g.Alignment != "" {
			fmt.Fprintf(bw, "\n### Alignment\n\n%s\n", g.Alignment)
		}
		list(bw, "### Action Plan", g.ActionPlan)
		list(bw, "### Key Results", g.KeyResults)
	}

	if len(content.SelfAssessmentQuestions) > 0 {
		fmt.Fprintln(bw, "\n## Self-assessment")
		fmt.Fprintln(bw)
		for i, q := range content.SelfAssessmentQuestions {
			fmt.Fprintf(bw, "%d. %s\n", i+1, q)
		}
	}
	return bw.Flush()
}

func list(w io.Writer, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s\n\n", heading)
	for _, it := range items {
		fmt.Fprintf(w, "- %s\n", it)
	}
}
