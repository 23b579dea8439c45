package xiv

// NonCombatJob is a Disciple of the Land (gatherer) or Disciple of the Hand
// (crafter) job.
type NonCombatJob uint8

type nonCombatJobRow struct {
	label
	classification Classification
}

var nonCombatJobIndex = newIndex(domainNonCombatJob, numNonCombatJobs, func(j NonCombatJob) label {
	return nonCombatJobRows[j].label
})

// NonCombatJobs returns every gatherer and crafter in declaration order.
func NonCombatJobs() []NonCombatJob { return values[NonCombatJob](numNonCombatJobs) }

// ParseNonCombatJob accepts the code or the abbreviation ("CRP").
func ParseNonCombatJob(s string) (NonCombatJob, error) { return nonCombatJobIndex.parse(s) }

func (j NonCombatJob) IsValid() bool { return valid(j, numNonCombatJobs) }

func (j NonCombatJob) row() nonCombatJobRow {
	if !j.IsValid() {
		return nonCombatJobRow{}
	}
	return nonCombatJobRows[j]
}

func (j NonCombatJob) Code() string         { return j.row().code }
func (j NonCombatJob) Name() string         { return j.row().name }
func (j NonCombatJob) Abbreviation() string { return j.row().abbr }
func (j NonCombatJob) String() string       { return j.Name() }

// Classification returns ClassificationLand or ClassificationHand.
func (j NonCombatJob) Classification() Classification { return j.row().classification }
