// Package presentation converts xiv variants into output DTOs and renders
// them as JSON, YAML, aligned tables, and snapshot diffs.
package presentation

import (
	"github.com/zjrosen/xivtypes/xiv"
)

// VariantDTO represents one variant of any domain for presentation.
// Relationship fields are omitted when the domain has no such relationship.
type VariantDTO struct {
	Code           string   `json:"code" yaml:"code"`
	Name           string   `json:"name" yaml:"name"`
	Abbreviation   string   `json:"abbreviation,omitempty" yaml:"abbreviation,omitempty"`
	Region         string   `json:"region,omitempty" yaml:"region,omitempty"`
	DataCenter     string   `json:"data_center,omitempty" yaml:"data_center,omitempty"`
	DataCenters    []string `json:"data_centers,omitempty" yaml:"data_centers,omitempty"`
	Worlds         []string `json:"worlds,omitempty" yaml:"worlds,omitempty"`
	Race           string   `json:"race,omitempty" yaml:"race,omitempty"`
	Clans          []string `json:"clans,omitempty" yaml:"clans,omitempty"`
	Role           string   `json:"role,omitempty" yaml:"role,omitempty"`
	Classification string   `json:"classification,omitempty" yaml:"classification,omitempty"`
	BaseClass      string   `json:"base_class,omitempty" yaml:"base_class,omitempty"`
	Jobs           []string `json:"jobs,omitempty" yaml:"jobs,omitempty"`
	Epithet        string   `json:"epithet,omitempty" yaml:"epithet,omitempty"`
	Moon           int      `json:"moon,omitempty" yaml:"moon,omitempty"`
}

type coded interface {
	Code() string
}

func codes[T coded](vs []T) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.Code()
	}
	return out
}

// FromRole converts a role, listing the jobs that fill it.
func FromRole(r xiv.Role) VariantDTO {
	return VariantDTO{Code: r.Code(), Name: r.Name(), Jobs: codes(r.Jobs())}
}

func FromClassification(c xiv.Classification) VariantDTO {
	return VariantDTO{Code: c.Code(), Name: c.Name(), Abbreviation: c.Abbreviation()}
}

func FromRegion(r xiv.Region) VariantDTO {
	return VariantDTO{
		Code:         r.Code(),
		Name:         r.Name(),
		Abbreviation: r.Abbreviation(),
		DataCenters:  codes(r.DataCenters()),
	}
}

func FromDataCenter(dc xiv.DataCenter) VariantDTO {
	return VariantDTO{
		Code:   dc.Code(),
		Name:   dc.Name(),
		Region: dc.Region().Code(),
		Worlds: codes(dc.Worlds()),
	}
}

func FromWorld(w xiv.World) VariantDTO {
	return VariantDTO{
		Code:       w.Code(),
		Name:       w.Name(),
		DataCenter: w.DataCenter().Code(),
		Region:     w.Region().Code(),
	}
}

func FromRace(r xiv.Race) VariantDTO {
	clans := r.Clans()
	return VariantDTO{Code: r.Code(), Name: r.Name(), Clans: codes(clans[:])}
}

func FromClan(c xiv.Clan) VariantDTO {
	return VariantDTO{Code: c.Code(), Name: c.Name(), Race: c.Race().Code()}
}

// FromJob converts a combat job. BaseClass is empty for jobs that start
// without a class.
func FromJob(j xiv.Job) VariantDTO {
	dto := VariantDTO{
		Code:           j.Code(),
		Name:           j.Name(),
		Abbreviation:   j.Abbreviation(),
		Role:           j.Role().Code(),
		Classification: j.Classification().Code(),
	}
	if c, ok := j.BaseClass(); ok {
		dto.BaseClass = c.Code()
	}
	return dto
}

func FromClass(c xiv.Class) VariantDTO {
	return VariantDTO{
		Code:           c.Code(),
		Name:           c.Name(),
		Abbreviation:   c.Abbreviation(),
		Role:           c.Role().Code(),
		Classification: c.Classification().Code(),
		Jobs:           codes(c.Jobs()),
	}
}

func FromNonCombatJob(j xiv.NonCombatJob) VariantDTO {
	return VariantDTO{
		Code:           j.Code(),
		Name:           j.Name(),
		Abbreviation:   j.Abbreviation(),
		Classification: j.Classification().Code(),
	}
}

func FromGuardian(g xiv.Guardian) VariantDTO {
	return VariantDTO{Code: g.Code(), Name: g.Name(), Epithet: g.Epithet(), Moon: g.Moon()}
}
