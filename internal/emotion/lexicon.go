package emotion

// Lexicon maps each non-neutral state to its root prefixes, plus the negation
// words that flip a match within the preceding window. Roots and negations are
// stored diacritic-free and lowercase, the same form Tokenize emits.
type Lexicon struct {
	Roots     map[State][]string
	Negations map[string]bool
}

// DefaultLexicon returns the built-in Spanish lexicon.
func DefaultLexicon() *Lexicon {
	return &Lexicon{
		Roots: map[State][]string{
			StateAnxious:    {"preocup", "ansi", "mied", "nerv", "estres", "inquiet", "temor", "panic"},
			StateSad:        {"trist", "dolor", "llor", "deprim", "desanim", "perdid", "melancol", "lament"},
			StateHopeful:    {"esper", "optim", "positiv", "confianz", "fe", "mejor", "esperanz"},
			StateExcited:    {"emoc", "feliz", "alegr", "content", "genial", "fantast", "maravill", "increibl"},
			StateFrustrated: {"frustr", "rab", "ira", "enoj", "molest", "hart", "cansad", "agot"},
			StateGrateful:   {"agradec", "gracias", "apreci", "reconoc", "valor", "bendic", "afortunad"},
		},
		Negations: map[string]bool{
			"no":    true,
			"nunca": true,
			"jamas": true,
		},
	}
}
