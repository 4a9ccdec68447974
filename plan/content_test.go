package plan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meupdi/pdi/plan"
)

const sampleContent = `{
  "goals": [
    {
      "description": "Lead the Q3 migration",
      "skills": {"hard_skills": ["Go", "PostgreSQL"], "soft_skills": ["Delegation"]},
      "alignment": "Supports the platform roadmap",
      "action_plan": ["Pair weekly with the tech lead", "Write the rollout doc"],
      "key_results": ["Migration shipped by September"]
    }
  ],
  "self_assessment_questions": ["What slowed me down this month?"]
}`

func TestDecodeContent(t *testing.T) {
	t.Parallel()

	t.Run("full document", func(t *testing.T) {
		t.Parallel()

		c, err := plan.DecodeContent(sampleContent)
		require.NoError(t, err)
		require.Len(t, c.Goals, 1)

		g := c.Goals[0]
		assert.Equal(t, "Lead the Q3 migration", g.Description)
		assert.Equal(t, []string{"Go", "PostgreSQL"}, g.Skills.Hard)
		assert.Equal(t, []string{"Delegation"}, g.Skills.Soft)
		assert.Equal(t, "Supports the platform roadmap", g.Alignment)
		assert.Len(t, g.ActionPlan, 2)
		assert.Equal(t, []string{"Migration shipped by September"}, g.KeyResults)
		assert.Equal(t, []string{"What slowed me down this month?"}, c.SelfAssessmentQuestions)
		assert.False(t, c.Empty())
	})

	t.Run("default and blank content are empty", func(t *testing.T) {
		t.Parallel()

		for _, raw := range []string{plan.DefaultContent, "", "   "} {
			c, err := plan.DecodeContent(raw)
			require.NoError(t, err)
			assert.True(t, c.Empty())
		}
	})

	t.Run("malformed", func(t *testing.T) {
		t.Parallel()

		for _, raw := range []string{
			"not json",
			"[1, 2]",
			`"a string"`,
			`{"goals": "nope"}`,
			`{"goals": []`,
			`{} {}`,
		} {
			_, err := plan.DecodeContent(raw)
			assert.ErrorIs(t, err, plan.ErrMalformedContent, raw)
		}
	})

	t.Run("plan without content", func(t *testing.T) {
		t.Parallel()

		c, err := plan.Plan{Name: "Q3"}.Content()
		require.NoError(t, err)
		assert.True(t, c.Empty())

		raw := sampleContent
		c, err = plan.Plan{RawContent: &raw}.Content()
		require.NoError(t, err)
		assert.Len(t, c.Goals, 1)
	})

	t.Run("encode round trips through decode", func(t *testing.T) {
		t.Parallel()

		c, err := plan.DecodeContent(sampleContent)
		require.NoError(t, err)
		raw, err := c.Encode()
		require.NoError(t, err)
		again, err := plan.DecodeContent(raw)
		require.NoError(t, err)
		assert.Equal(t, c, again)
	})
}

func TestStatus(t *testing.T) {
	t.Parallel()

	for _, s := range plan.Statuses() {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, plan.Status("LATE").Valid())
}
