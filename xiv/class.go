package xiv

// Class is a base combat class, the form a job takes before it is unlocked.
type Class uint8

type classRow struct {
	label
	role           Role
	classification Classification
}

var classIndex = newIndex(domainClass, numClasses, func(c Class) label { return classRows[c].label })

// classJobs is the reverse of Job.BaseClass. Arcanist is the only class
// with more than one job.
var classJobs = func() [numClasses + 1][]Job {
	var out [numClasses + 1][]Job
	for _, j := range Jobs() {
		if c := jobRows[j].class; c.IsValid() {
			out[c] = append(out[c], j)
		}
	}
	return out
}()

// Classes returns every class in declaration order.
func Classes() []Class { return values[Class](numClasses) }

// ParseClass accepts the code or the abbreviation ("GLA"), in any case.
func ParseClass(s string) (Class, error) { return classIndex.parse(s) }

func (c Class) IsValid() bool { return valid(c, numClasses) }

func (c Class) row() classRow {
	if !c.IsValid() {
		return classRow{}
	}
	return classRows[c]
}

func (c Class) Code() string                   { return c.row().code }
func (c Class) Name() string                   { return c.row().name }
func (c Class) Abbreviation() string           { return c.row().abbr }
func (c Class) String() string                 { return c.Name() }
func (c Class) Role() Role                     { return c.row().role }
func (c Class) Classification() Classification { return c.row().classification }

// Jobs returns the jobs unlocked from this class.
func (c Class) Jobs() []Job {
	if !c.IsValid() {
		return nil
	}
	return append([]Job(nil), classJobs[c]...)
}
