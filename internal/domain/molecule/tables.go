package molecule

// Alias maps an ingredient name with no direct source entry to the base
// sources its flavor actually comes from. The table covers spirits,
// liqueurs, and common bar ingredients whose trade names never appear as
// natural sources in the molecule database.
type Alias struct {
	Name    string
	Sources []string
}

// KeywordRule maps a substring of an ingredient name to the sources to
// union when neither an exact entry nor an alias matched ("fresh lemon
// juice" contains "lemon" -> citrus + lemon).
type KeywordRule struct {
	Keyword string
	Sources []string
}

// DefaultAliases is the built-in alias table. Ordered slices keep lookup
// results deterministic.
func DefaultAliases() []Alias {
	return []Alias{
		{"rum", []string{"sugar cane", "molasses", "vanilla"}},
		{"light rum", []string{"sugar cane", "citrus"}},
		{"white rum", []string{"sugar cane"}},
		{"dark rum", []string{"molasses", "caramel", "vanilla", "oak"}},
		{"spiced rum", []string{"sugar cane", "cinnamon", "vanilla", "clove"}},
		{"gold rum", []string{"sugar cane", "caramel"}},

		{"tequila", []string{"agave", "citrus"}},
		{"mezcal", []string{"agave", "smoke"}},

		{"bourbon", []string{"corn", "oak", "vanilla", "caramel"}},
		{"whiskey", []string{"grain", "malt", "oak"}},
		{"whisky", []string{"grain", "malt", "oak"}},
		{"scotch", []string{"malt", "peat", "smoke", "oak"}},
		{"rye whiskey", []string{"grain", "spice", "oak"}},
		{"irish whiskey", []string{"grain", "malt", "oak"}},

		{"vodka", []string{"grain", "neutral"}},
		{"gin", []string{"juniper", "citrus", "herbs", "coriander"}},

		{"brandy", []string{"grape", "oak", "vanilla"}},
		{"cognac", []string{"grape", "oak", "vanilla"}},
		{"pisco", []string{"grape"}},

		{"triple sec", []string{"orange", "citrus", "sweet"}},
		{"cointreau", []string{"orange", "citrus", "sweet"}},
		{"grand marnier", []string{"orange", "cognac", "sweet"}},
		{"curacao", []string{"orange", "citrus", "sweet"}},
		{"blue curacao", []string{"orange", "citrus", "sweet"}},

		{"campari", []string{"bitter orange", "herbs", "bitter"}},
		{"aperol", []string{"orange", "herbs", "bitter"}},

		{"amaretto", []string{"almond", "sweet"}},
		{"frangelico", []string{"hazelnut", "sweet"}},
		{"kahlua", []string{"coffee", "sweet"}},
		{"baileys irish cream", []string{"cream", "whiskey", "cocoa"}},

		{"chartreuse", []string{"herbs", "spice"}},
		{"benedictine", []string{"herbs", "honey"}},
		{"st germain", []string{"elderflower"}},

		{"angostura bitters", []string{"spice", "herbs", "bitter"}},
		{"orange bitters", []string{"orange", "bitter"}},
		{"peychauds bitters", []string{"anise", "bitter"}},

		{"simple syrup", []string{"sugar"}},
		{"sugar syrup", []string{"sugar"}},
		{"honey", []string{"honey"}},
		{"agave syrup", []string{"agave", "sweet"}},
		{"agave nectar", []string{"agave", "sweet"}},
		{"maple syrup", []string{"maple", "sweet"}},
		{"grenadine", []string{"pomegranate", "sweet"}},

		{"soda water", []string{"water"}},
		{"club soda", []string{"water"}},
		{"tonic water", []string{"water", "bitter"}},
		{"ginger beer", []string{"ginger", "sweet"}},
		{"ginger ale", []string{"ginger", "sweet"}},
		{"cola", []string{"caramel", "sweet"}},

		{"orange juice", []string{"orange", "citrus"}},
		{"lemon juice", []string{"lemon", "citrus"}},
		{"lime juice", []string{"lime", "citrus"}},
		{"grapefruit juice", []string{"grapefruit", "citrus"}},
		{"pineapple juice", []string{"pineapple"}},
		{"cranberry juice", []string{"cranberry"}},
		{"tomato juice", []string{"tomato"}},

		{"vermouth", []string{"wine", "herbs"}},
		{"dry vermouth", []string{"wine", "herbs"}},
		{"sweet vermouth", []string{"wine", "herbs", "caramel"}},
		{"port", []string{"grape", "sweet"}},
		{"sherry", []string{"grape", "oak"}},
	}
}

// DefaultKeywordRules is the built-in keyword-substring fallback table.
func DefaultKeywordRules() []KeywordRule {
	return []KeywordRule{
		{"lemon", []string{"citrus", "lemon"}},
		{"lime", []string{"citrus", "lime"}},
		{"orange", []string{"citrus", "orange"}},
		{"gin", []string{"juniper"}},
		{"vodka", []string{"grain", "potato"}},
		{"rum", []string{"sugar cane", "molasses"}},
		{"whiskey", []string{"grain", "malt"}},
		{"whisky", []string{"grain", "malt"}},
		{"tequila", []string{"agave"}},
		{"brandy", []string{"grape"}},
		{"cognac", []string{"grape"}},
		{"vermouth", []string{"wine", "herbs"}},
		{"coffee", []string{"coffee"}},
		{"tea", []string{"tea"}},
		{"mint", []string{"mint"}},
		{"sugar", []string{"sugar"}},
		{"honey", []string{"honey"}},
		{"chocolate", []string{"cocoa"}},
		{"cocoa", []string{"cocoa"}},
		{"vanilla", []string{"vanilla"}},
		{"cinnamon", []string{"cinnamon"}},
		{"ginger", []string{"ginger"}},
		{"apple", []string{"apple"}},
		{"pineapple", []string{"pineapple"}},
		{"coconut", []string{"coconut"}},
		{"cherry", []string{"cherry"}},
		{"cranberry", []string{"cranberry"}},
		{"grape", []string{"grape"}},
		{"peach", []string{"peach"}},
		{"strawberry", []string{"strawberry"}},
		{"raspberry", []string{"raspberry"}},
		{"blackberry", []string{"blackberry"}},
		{"cream", []string{"milk", "dairy"}},
		{"milk", []string{"milk", "dairy"}},
		{"butter", []string{"milk", "dairy"}},
	}
}
