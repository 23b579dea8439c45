package xiv

// Role is the party role of a combat job or class.
type Role uint8

type roleRow struct {
	label
}

var roleIndex = newIndex(domainRole, numRoles, func(r Role) label { return roleRows[r].label })

var roleJobs = func() [numRoles + 1][]Job {
	var out [numRoles + 1][]Job
	for _, j := range Jobs() {
		r := jobRows[j].role
		out[r] = append(out[r], j)
	}
	return out
}()

// Roles returns every role in declaration order.
func Roles() []Role { return values[Role](numRoles) }

// ParseRole resolves s case-insensitively.
func ParseRole(s string) (Role, error) { return roleIndex.parse(s) }

func (r Role) IsValid() bool { return valid(r, numRoles) }

func (r Role) row() roleRow {
	if !r.IsValid() {
		return roleRow{}
	}
	return roleRows[r]
}

func (r Role) Code() string   { return r.row().code }
func (r Role) Name() string   { return r.row().name }
func (r Role) String() string { return r.Name() }

// Jobs returns the combat jobs that fill this role.
func (r Role) Jobs() []Job {
	if !r.IsValid() {
		return nil
	}
	return append([]Job(nil), roleJobs[r]...)
}
