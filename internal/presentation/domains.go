package presentation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zjrosen/xivtypes/xiv"
)

// ErrUnknownDomain is returned by FindDomain for names that match no domain.
var ErrUnknownDomain = errors.New("unknown domain")

// Domain adapts one xiv type to a uniform list/lookup surface.
type Domain struct {
	Key    string // lowercase command-line name, e.g. "datacenter"
	Name   string // Go type name, e.g. "DataCenter"
	List   func() []VariantDTO
	Lookup func(input string) (VariantDTO, error)
}

func newDomain[T any](key, name string, all func() []T, parse func(string) (T, error), dto func(T) VariantDTO) Domain {
	return Domain{
		Key:  key,
		Name: name,
		List: func() []VariantDTO {
			vs := all()
			out := make([]VariantDTO, len(vs))
			for i, v := range vs {
				out[i] = dto(v)
			}
			return out
		},
		Lookup: func(input string) (VariantDTO, error) {
			v, err := parse(input)
			if err != nil {
				return VariantDTO{}, err
			}
			return dto(v), nil
		},
	}
}

// Domains returns every domain, leaves first.
func Domains() []Domain {
	return []Domain{
		newDomain("role", "Role", xiv.Roles, xiv.ParseRole, FromRole),
		newDomain("classification", "Classification", xiv.Classifications, xiv.ParseClassification, FromClassification),
		newDomain("region", "Region", xiv.Regions, xiv.ParseRegion, FromRegion),
		newDomain("datacenter", "DataCenter", xiv.DataCenters, xiv.ParseDataCenter, FromDataCenter),
		newDomain("world", "World", xiv.Worlds, xiv.ParseWorld, FromWorld),
		newDomain("race", "Race", xiv.Races, xiv.ParseRace, FromRace),
		newDomain("clan", "Clan", xiv.Clans, xiv.ParseClan, FromClan),
		newDomain("job", "Job", xiv.Jobs, xiv.ParseJob, FromJob),
		newDomain("class", "Class", xiv.Classes, xiv.ParseClass, FromClass),
		newDomain("noncombatjob", "NonCombatJob", xiv.NonCombatJobs, xiv.ParseNonCombatJob, FromNonCombatJob),
		newDomain("guardian", "Guardian", xiv.Guardians, xiv.ParseGuardian, FromGuardian),
	}
}

// DomainKeys returns the command-line names of all domains.
func DomainKeys() []string {
	ds := Domains()
	keys := make([]string, len(ds))
	for i, d := range ds {
		keys[i] = d.Key
	}
	return keys
}

// FindDomain matches name against each domain's key and Go type name,
// ignoring case.
func FindDomain(name string) (Domain, error) {
	for _, d := range Domains() {
		if strings.EqualFold(name, d.Key) || strings.EqualFold(name, d.Name) {
			return d, nil
		}
	}
	return Domain{}, fmt.Errorf("%w %q (want one of: %s)", ErrUnknownDomain, name, strings.Join(DomainKeys(), ", "))
}

// DomainDTO is one domain inside a snapshot dump.
type DomainDTO struct {
	Name     string       `json:"name" yaml:"name"`
	Variants []VariantDTO `json:"variants" yaml:"variants"`
}

// SnapshotDTO is the full compiled-in reference data.
type SnapshotDTO struct {
	Patch   string      `json:"patch" yaml:"patch"`
	Domains []DomainDTO `json:"domains" yaml:"domains"`
}

// BuildSnapshot collects every domain of the compiled-in snapshot.
func BuildSnapshot() SnapshotDTO {
	ds := Domains()
	snap := SnapshotDTO{Patch: xiv.SnapshotPatch, Domains: make([]DomainDTO, len(ds))}
	for i, d := range ds {
		snap.Domains[i] = DomainDTO{Name: d.Name, Variants: d.List()}
	}
	return snap
}
