package validator

// commonVocabulary is the fixed ~100-word common-English / SEC-filing
// function-word list used by the encoded-region gate. It deliberately mixes
// ordinary function words with SEC-specific nouns, since filing prose is
// formulaic and the two overlap heavily in practice.
var commonVocabulary = buildVocabularySet(
	"the", "and", "for", "that", "with", "this", "from", "have", "has",
	"are", "was", "were", "been", "being", "will", "shall", "may", "can",
	"such", "each", "any", "all", "other", "than", "then", "their", "its",
	"our", "your", "his", "her", "who", "which", "what", "when", "where",
	"how", "not", "but", "also", "upon", "into", "under", "over", "about",
	"pursuant", "securities", "exchange", "commission", "registrant",
	"company", "corporation", "shares", "shareholders", "stockholders",
	"director", "directors", "officer", "officers", "board", "annual",
	"report", "filing", "filed", "disclosure", "material", "agreement",
	"common", "stock", "value", "period", "fiscal", "year", "quarter",
	"section", "item", "schedule", "form", "date", "amount", "price",
	"transaction", "transactions", "beneficial", "ownership", "acquired",
	"disposed", "issuer", "issued", "capital", "markets", "investment",
	"management", "trust", "fund", "holdings", "notice", "statement",
	"proxy", "meeting", "election", "compensation", "executive", "named",
)

func buildVocabularySet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
