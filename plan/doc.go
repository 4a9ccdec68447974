// Package plan manages personal development plans (PDIs) through the PDI API
// and gives structure to their content.
//
// A plan's content is a JSON document the assistant fills in during the chat:
//
//	{
//	  "goals": [{
//	    "description": "Lead the Q3 migration",
//	    "skills": {"hard_skills": ["Go"], "soft_skills": ["Delegation"]},
//	    "alignment": "Supports the platform roadmap",
//	    "action_plan": ["Pair weekly with the tech lead"],
//	    "key_results": ["Migration shipped by September"]
//	  }],
//	  "self_assessment_questions": ["What slowed me down this month?"]
//	}
//
// DecodeContent turns it into a Content value and reports anything that is
// not a JSON object as ErrMalformedContent. Missing content decodes to an
// empty Content.
//
// # Service
//
//	svc := plan.New(client)
//	p, err := svc.Create(ctx, "Q3 growth", plan.StatusDraft)
//	p, err = svc.Rename(ctx, p.ID, "Q3 growth plan")
//	plans, err := svc.List(ctx)
//
// # Views
//
// MindMap builds the tree shown as a mind map: plan, goals, then one branch
// each for alignment, action plan, skills and key results. It carries no
// layout. Outline writes the same information as a markdown document.
package plan
