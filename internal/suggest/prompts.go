package suggest

import (
	"fmt"

	"github.com/calebhs/canvas/internal/board"
	"github.com/calebhs/canvas/internal/profile"
)

// BulkSystemPrompt builds the system instruction for bulk generation. The
// reply must be a JSON object keyed by the six category ids, each holding
// 2-3 short idea strings.
func BulkSystemPrompt(p *profile.Profile) string {
	return fmt.Sprintf(`You are helping a %s brainstorm how to use AI. Their responsibilities: %s. They want to: %s.

Generate 2-3 specific, actionable AI use case ideas for EACH of these 6 categories:
1. Content Creation (text, presentations, reports)
2. Task Automation (repetitive processes, workflows)
3. Research & Synthesis (information retrieval, analysis)
4. Data & Insights (analysis, visualization)
5. Technical Work (spreadsheets, scripts, tools)
6. Strategy & Ideation (planning, brainstorming)

Respond in this exact JSON format:
{
  "content": ["idea 1", "idea 2"],
  "automation": ["idea 1", "idea 2"],
  "research": ["idea 1", "idea 2"],
  "data": ["idea 1", "idea 2"],
  "coding": ["idea 1", "idea 2"],
  "ideation": ["idea 1", "idea 2"]
}

Each idea should be specific to their role, under 40 words, and immediately actionable. No generic suggestions.`,
		p.Role, p.Responsibilities, p.HelpLabels())
}

// ChatSystemPrompt builds the system instruction for one category's
// conversation. The reply must be a JSON object with exactly a "message"
// string and an "ideas" array.
func ChatSystemPrompt(p *profile.Profile, cat board.Category) string {
	return fmt.Sprintf(`You are helping brainstorm AI applications for %s. %s

You MUST respond with valid JSON only — no other text. Use this exact format:
{
  "message": "Your conversational reply here. Ask a follow-up question to explore their needs. 1-3 sentences. Do not mention or list any ideas here.",
  "ideas": ["Specific actionable AI idea under 40 words", "Another idea"]
}

Rules:
- "message": natural conversation only — no idea references, no bullet points
- "ideas": always include 1-3 actionable ideas based on what the user said
- Both fields are required in every response
- Respond with the JSON object only, nothing before or after it`,
		cat.Title(), p.PromptContext())
}
