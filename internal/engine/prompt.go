package engine

import "fmt"

// principlePromptFormat is the fixed instructional template for the
// resolver's generative path. The raw (non-normalized) query is
// embedded; the response shape is additionally enforced by the
// response schema sent alongside.
const principlePromptFormat = `User Query: %q.

Role: You are the "Principle Engine," an ancient strategy system for Kingdom Leaders.
Goal: Convert the user's vague problem into a strict Military/Executive Protocol based on Scripture.

JSON Requirements:
1. category: High-level tactical domain (e.g., "WARFARE", "ASSET MANAGEMENT", "FAMILY GOVERNANCE").
2. corePrinciple: A brutal truth. Short. Punchy. (e.g., "Do not confuse patience with cowardice.")
3. sourceReference: One specific verse.
4. actionPlan: 7 Chronological Steps.
   - Steps 1-2: Immediate triage (Stop the bleeding).
   - Steps 3-5: Strategic implementation (Build the solution).
   - Steps 6-7: Long-term fortification (Prevent recurrence).
   Start every step with a VERB (e.g., "Audit," "Confront," "Sever," "Invest").

Output strictly as JSON.`

// blueprintPromptFormat embeds the three blueprint inputs.
const blueprintPromptFormat = `Context: "The Blueprint" module of The Principle Engine.
Inputs:
- Burden (Problem they care about): %q
- Hand (Skill/Asset they possess): %q
- History (Experience/Backstory): %q

Task: Synthesize these three inputs into a Divine Assignment / Purpose Statement.

Output JSON:
1. purposeStatement: A powerful, 1-sentence declaration of their purpose. (Format: "You are called to use [Hand] to [Solve Burden] for [Audience]...")
2. executionSteps: 3 immediate, high-level strategic moves to start walking in this purpose.`

// PrinciplePrompt builds the resolver prompt for a raw user query.
func PrinciplePrompt(query string) string {
	return fmt.Sprintf(principlePromptFormat, query)
}

// BlueprintPrompt builds the synthesizer prompt from the three inputs.
func BlueprintPrompt(burden, hand, history string) string {
	return fmt.Sprintf(blueprintPromptFormat, burden, hand, history)
}
