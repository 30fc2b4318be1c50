package principle

// The brain: the fixed, hand-authored table of query -> record
// mappings that require no external call. Lookup keys are normalized
// (trimmed, lowercased) query strings; matching is exact, with no
// tokenization or fuzzy matching.
var brain = map[string]Record{
	"anxiety": {
		ID:              "mental-001",
		Category:        "MENTAL HEALTH",
		CorePrinciple:   "Peace is a weapon, not just a feeling.",
		SourceReference: "Philippians 4:6-7",
		ActionPlan: []string{
			"Pause and physiologically reset (4-7-8 Breathing).",
			"Identify the specific fear; naming it removes its power.",
			"Perform a Gratitude Audit; list 3 tangible realities.",
			"Detach from the outcome; focus solely on the input.",
			"Engage in deep work for 20 minutes to break the loop.",
			"Serve someone else to shift perspective outward.",
			"Rest in sovereignty; accept what you cannot control.",
		},
		RelatedQuestions: []RelatedQuestion{
			{Question: "How do I stop overthinking at night?", Answer: "Write it down. Your brain loops because it fears forgetting."},
			{Question: "Is anxiety a sign of lack of faith?", Answer: "No. It is a signal that your reality needs re-anchoring."},
			{Question: "How do I make decisions when stressed?", Answer: "Never decide in the valley. Wait for the fog to lift."},
		},
		AdditionalScriptures: []RelatedScripture{
			{Verse: "Isaiah 26:3", Text: "You will keep him in perfect peace, whose mind is stayed on You."},
			{Verse: "1 Peter 5:7", Text: "Casting all your care upon Him, for He cares for you."},
		},
	},
	"profit": {
		ID:              "biz-001",
		Category:        "BUSINESS & FINANCE",
		CorePrinciple:   "Profit is a byproduct of Purpose.",
		SourceReference: "Matthew 6:33",
		ActionPlan: []string{
			"Define the Mission clearly; money follows vision.",
			"Audit your time; eliminate non-revenue generating noise.",
			"Serve first; solve a real problem better than anyone else.",
			"Identify value leaks in your current operations.",
			"Systematize generosity; build giving into the margins.",
			"Measure impact, not just income.",
			"Reinvest in the vision, not just the lifestyle.",
		},
		RelatedQuestions: []RelatedQuestion{
			{Question: "Is it wrong to want to be wealthy?", Answer: "Wealth is a resource. The morality lies in the master."},
			{Question: "How do I price my services fairly?", Answer: "Price based on the value provided, not the hours worked."},
			{Question: "When should I take a risk?", Answer: "When the cost of inaction exceeds the cost of failure."},
		},
		AdditionalScriptures: []RelatedScripture{
			{Verse: "Proverbs 10:22", Text: "The blessing of the Lord brings wealth, without painful toil for it."},
			{Verse: "Deuteronomy 8:18", Text: "But remember the Lord your God, for it is he who gives you the ability to produce wealth."},
		},
	},
	"leadership": {
		ID:              "exec-001",
		Category:        "EXECUTIVE LEADERSHIP",
		CorePrinciple:   "To lead is to serve.",
		SourceReference: "Mark 10:45",
		ActionPlan: []string{
			"Listen first; diagnosis precedes prescription.",
			"Remove barriers that hinder your team's performance.",
			"Clarify the vision; ambiguity breeds mediocrity.",
			"Empower ownership; delegate authority, not just tasks.",
			"Model the standard you expect from others.",
			"Celebrate others publicly; correct them privately.",
			"Protect the culture at all costs.",
		},
		RelatedQuestions: []RelatedQuestion{
			{Question: "How do I handle a toxic employee?", Answer: "Swiftly. Toxicity is cancer to culture; cut it out."},
			{Question: "When is it time to step down?", Answer: "When your ceiling becomes the organization's ceiling."},
			{Question: "How do I build trust?", Answer: "Consistency over time. Do what you say you will do."},
		},
		AdditionalScriptures: []RelatedScripture{
			{Verse: "Proverbs 29:18", Text: "Where there is no vision, the people perish."},
			{Verse: "Philippians 2:3", Text: "Do nothing out of selfish ambition or vain conceit."},
		},
	},
	"business idea": {
		ID:              "ent-001",
		Category:        "ENTREPRENEURSHIP",
		CorePrinciple:   "Success is not found by seeking a market, but by serving a need with integrity.",
		SourceReference: "Deuteronomy 28:8",
		ActionPlan: []string{
			"Audit your inventory; list the skills currently in your hand.",
			"Identify a recurring frustration in your immediate circle.",
			"Shift focus from 'What can I sell?' to 'How can I serve?'",
			"Solve that specific problem for one person for free to prove efficacy.",
			"Gather raw feedback and refine the solution.",
			"Systematize the delivery; turn the act into a repeatable process.",
			"Launch with consistency; trust that the work of your hands will be established.",
		},
		RelatedQuestions: []RelatedQuestion{
			{Question: "How do I know if my idea is good?", Answer: "The market validates value. If it solves a real pain, it is good."},
			{Question: "I feel stuck looking for the 'perfect' thing.", Answer: "Perfection is paralysis. Do the next right thing with what you have."},
			{Question: "What if I fail?", Answer: "Failure is data, not a definition. Iterate and continue serving."},
		},
		AdditionalScriptures: []RelatedScripture{
			{Verse: "Ecclesiastes 9:10", Text: "Whatever your hand finds to do, do it with all your might."},
			{Verse: "Zechariah 4:10", Text: "Do not despise these small beginnings, for the Lord rejoices to see the work begin."},
		},
	},
	"marriage": {
		ID:              "rel-001",
		Category:        "RELATIONSHIPS",
		CorePrinciple:   "Love is not a contract; it is a covenant.",
		SourceReference: "Ephesians 5:25",
		ActionPlan: []string{
			"Stop keeping score; a covenant has no ledger.",
			"Identify your spouse's primary stressor and remove it today.",
			"Listen without defending; validation is not agreement.",
			"Schedule the connection; intimacy requires intentionality.",
			"Speak their dialect (Love Language), not yours.",
			"Pray for them aloud; it makes resentment impossible.",
			"Out-serve one another daily.",
		},
		RelatedQuestions: []RelatedQuestion{
			{Question: "We have grown apart.", Answer: "Growth is directional. You must choose to grow in the same direction."},
			{Question: "I don't feel 'in love' anymore.", Answer: "Love is an action, not an emotion. Do the acts of love, and the feelings will follow."},
			{Question: "How do we resolve conflict?", Answer: "Attack the problem, not the person. You are on the same team."},
		},
		AdditionalScriptures: []RelatedScripture{
			{Verse: "1 Peter 4:8", Text: "Above all, love each other deeply, because love covers over a multitude of sins."},
			{Verse: "Ecclesiastes 4:9", Text: "Two are better than one, because they have a good return for their labor."},
		},
	},
}

// Builtin looks up a normalized query key in the built-in table.
// The returned record is a deep copy; mutating it cannot corrupt the
// seed data. The second return reports whether the key matched.
func Builtin(key string) (Record, bool) {
	r, ok := brain[key]
	if !ok {
		return Record{}, false
	}
	return r.Clone(), true
}

// BuiltinKeys returns the set of normalized keys the built-in table
// answers without an external call. Order is unspecified.
func BuiltinKeys() []string {
	keys := make([]string, 0, len(brain))
	for k := range brain {
		keys = append(keys, k)
	}
	return keys
}

// IsBuiltinID reports whether id belongs to a built-in record.
func IsBuiltinID(id string) bool {
	for _, r := range brain {
		if r.ID == id {
			return true
		}
	}
	return false
}
