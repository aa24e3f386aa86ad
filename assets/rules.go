package assets

// Rule is one topic of the language rules panel.
type Rule struct {
	Title string
	Lines []string
}

// Rules are the panel topics in tab order. Keys 1-4 select them.
var Rules = [4]Rule{
	{
		Title: "gravitational pull",
		Lines: []string{
			"A three-dimensional logographic language. No word has a sound.",
			"Phrases form by magnetism: chosen words drift toward one axis and meet at the centre.",
		},
	},
	{
		Title: "circular time",
		Lines: []string{
			"There are no tenses and no conjugations.",
			"There is no vocabulary for time.",
			"Nothing begins or ends; every phrase is a point on a repeating cycle.",
			"There is no verb to be.",
			"Word order carries no meaning.",
		},
	},
	{
		Title: "perpetual unity",
		Lines: []string{
			"Nothing marks the personal or the individual.",
			"Everything is plural; nouns never tell one from many.",
		},
	},
	{
		Title: "rotation",
		Lines: []string{
			"A word is one symbol repeated around a sphere.",
			"How many times it repeats depends on its role in the phrase:",
			"subject 8, object 13, adverb 21, verb 34.",
		},
	},
}
