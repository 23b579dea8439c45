package xiv

// Job is a Disciple of War or Disciple of Magic job.
type Job uint8

type jobRow struct {
	label
	role           Role
	classification Classification
	class          Class // zero when the job starts without a base class
}

var jobIndex = newIndex(domainJob, numJobs, func(j Job) label { return jobRows[j].label })

// Jobs returns every combat job in declaration order (grouped by role).
func Jobs() []Job { return values[Job](numJobs) }

// ParseJob resolves s case-insensitively. It accepts the code
// ("BlackMage"), the spaced name ("Black Mage"), and the abbreviation
// ("BLM").
func ParseJob(s string) (Job, error) { return jobIndex.parse(s) }

func (j Job) IsValid() bool { return valid(j, numJobs) }

func (j Job) row() jobRow {
	if !j.IsValid() {
		return jobRow{}
	}
	return jobRows[j]
}

// Code returns the space-free identifier, e.g. "BlackMage".
func (j Job) Code() string { return j.row().code }

// Name returns the display name, e.g. "Black Mage".
func (j Job) Name() string { return j.row().name }

// Abbreviation returns the upper-case short code, e.g. "BLM".
func (j Job) Abbreviation() string { return j.row().abbr }

func (j Job) String() string { return j.Name() }

// Role returns the party role of the job.
func (j Job) Role() Role { return j.row().role }

// Classification returns ClassificationWar or ClassificationMagic.
func (j Job) Classification() Classification { return j.row().classification }

// BaseClass returns the class the job is unlocked from. Jobs introduced in
// expansions have none and report false.
func (j Job) BaseClass() (Class, bool) {
	c := j.row().class
	return c, c.IsValid()
}
