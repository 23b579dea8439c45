package xiv

// Classification is the discipline a job belongs to. War and Magic cover
// combat jobs and classes; Land and Hand cover non-combat jobs.
type Classification uint8

type classificationRow struct {
	label
}

var classificationIndex = newIndex(domainClassification, numClassifications, func(c Classification) label {
	return classificationRows[c].label
})

// Classifications returns every classification in declaration order.
func Classifications() []Classification { return values[Classification](numClassifications) }

// ParseClassification accepts the code ("War"), the name ("Disciple of
// War"), or the abbreviation ("DoW"), in any case.
func ParseClassification(s string) (Classification, error) { return classificationIndex.parse(s) }

func (c Classification) IsValid() bool { return valid(c, numClassifications) }

func (c Classification) row() classificationRow {
	if !c.IsValid() {
		return classificationRow{}
	}
	return classificationRows[c]
}

func (c Classification) Code() string         { return c.row().code }
func (c Classification) Name() string         { return c.row().name }
func (c Classification) Abbreviation() string { return c.row().abbr }
func (c Classification) String() string       { return c.Name() }

// IsCombat reports whether the classification covers combat jobs.
func (c Classification) IsCombat() bool {
	return c == ClassificationWar || c == ClassificationMagic
}
