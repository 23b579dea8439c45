// Package audit checks the compiled-in xiv snapshot for the properties a
// content patch must preserve: exhaustive tables, parse round trips, and
// total, partitioning relationships. It only uses the public xiv API.
package audit

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/zjrosen/xivtypes/internal/log"
	"github.com/zjrosen/xivtypes/xiv"
)

// Check names reported in Violation.Check.
const (
	CheckCardinality  = "cardinality"
	CheckDuplicate    = "duplicate"
	CheckValidity     = "validity"
	CheckCode         = "code"
	CheckRoundTrip    = "round-trip"
	CheckTotality     = "totality"
	CheckPartition    = "partition"
	CheckConsistency  = "consistency"
	CheckGuardianMoon = "guardian-moon"
)

// Violation is one failed check.
type Violation struct {
	Domain string `json:"domain" yaml:"domain"`
	Check  string `json:"check" yaml:"check"`
	Detail string `json:"detail" yaml:"detail"`
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s: %s", v.Domain, v.Check, v.Detail)
}

// Cardinalities is the declared size of every domain in the current snapshot.
// A content patch that adds or retires a variant updates this table too.
var Cardinalities = map[string]int{
	"Role":           3,
	"Classification": 4,
	"Region":         5,
	"DataCenter":     12,
	"World":          90,
	"Race":           8,
	"Clan":           16,
	"Job":            22,
	"Class":          9,
	"NonCombatJob":   11,
	"Guardian":       12,
}

type variant interface {
	comparable
	Code() string
	Name() string
	IsValid() bool
}

// enumeration is one closed domain as seen through the public API.
type enumeration[T variant] struct {
	name  string
	all   func() []T
	parse func(string) (T, error)
}

// Run executes every check and returns the violations in check order.
func Run() []Violation {
	var out []Violation
	out = append(out, checkEnumeration(enumeration[xiv.Role]{"Role", xiv.Roles, xiv.ParseRole})...)
	out = append(out, checkEnumeration(enumeration[xiv.Classification]{"Classification", xiv.Classifications, xiv.ParseClassification})...)
	out = append(out, checkEnumeration(enumeration[xiv.Region]{"Region", xiv.Regions, xiv.ParseRegion})...)
	out = append(out, checkEnumeration(enumeration[xiv.DataCenter]{"DataCenter", xiv.DataCenters, xiv.ParseDataCenter})...)
	out = append(out, checkEnumeration(enumeration[xiv.World]{"World", xiv.Worlds, xiv.ParseWorld})...)
	out = append(out, checkEnumeration(enumeration[xiv.Race]{"Race", xiv.Races, xiv.ParseRace})...)
	out = append(out, checkEnumeration(enumeration[xiv.Clan]{"Clan", xiv.Clans, xiv.ParseClan})...)
	out = append(out, checkEnumeration(enumeration[xiv.Job]{"Job", xiv.Jobs, xiv.ParseJob})...)
	out = append(out, checkEnumeration(enumeration[xiv.Class]{"Class", xiv.Classes, xiv.ParseClass})...)
	out = append(out, checkEnumeration(enumeration[xiv.NonCombatJob]{"NonCombatJob", xiv.NonCombatJobs, xiv.ParseNonCombatJob})...)
	out = append(out, checkEnumeration(enumeration[xiv.Guardian]{"Guardian", xiv.Guardians, xiv.ParseGuardian})...)

	out = append(out, checkWorldPartition()...)
	out = append(out, checkRegionPartition()...)
	out = append(out, checkClanPartition()...)
	out = append(out, checkJobs()...)
	out = append(out, checkNonCombatJobs()...)
	out = append(out, checkGuardianMoons()...)

	if len(out) == 0 {
		log.Info(log.CatAudit, "Snapshot audit passed", "patch", xiv.SnapshotPatch)
	} else {
		log.Warn(log.CatAudit, "Snapshot audit failed", "patch", xiv.SnapshotPatch, "violations", len(out))
	}
	return out
}

func violation(domain, check, format string, args ...any) Violation {
	v := Violation{Domain: domain, Check: check, Detail: fmt.Sprintf(format, args...)}
	log.Debug(log.CatAudit, "Violation", "domain", domain, "check", check, "detail", v.Detail)
	return v
}

func checkEnumeration[T variant](e enumeration[T]) []Violation {
	log.Debug(log.CatAudit, "Checking enumeration", "domain", e.name)

	var out []Violation
	values := e.all()

	if want, ok := Cardinalities[e.name]; !ok {
		out = append(out, violation(e.name, CheckCardinality, "no declared cardinality"))
	} else if len(values) != want {
		out = append(out, violation(e.name, CheckCardinality, "have %d variants, declared %d", len(values), want))
	}

	seen := make(map[T]bool, len(values))
	seenCode := make(map[string]bool, len(values))
	for _, v := range values {
		code := v.Code()
		if seen[v] {
			out = append(out, violation(e.name, CheckDuplicate, "variant %q listed twice", code))
		}
		seen[v] = true
		if seenCode[code] {
			out = append(out, violation(e.name, CheckDuplicate, "code %q used twice", code))
		}
		seenCode[code] = true

		if !v.IsValid() {
			out = append(out, violation(e.name, CheckValidity, "listed variant %q reports invalid", code))
		}
		if code == "" || v.Name() == "" {
			out = append(out, violation(e.name, CheckCode, "variant has empty code or name (code %q, name %q)", code, v.Name()))
			continue
		}
		if strings.IndexFunc(code, unicode.IsSpace) >= 0 {
			out = append(out, violation(e.name, CheckCode, "code %q contains whitespace", code))
		}

		for _, input := range []string{code, v.Name(), strings.ToLower(code), strings.ToUpper(v.Name())} {
			got, err := e.parse(input)
			if err != nil {
				out = append(out, violation(e.name, CheckRoundTrip, "parse(%q) failed: %v", input, err))
			} else if got != v {
				out = append(out, violation(e.name, CheckRoundTrip, "parse(%q) = %q, want %q", input, got.Code(), code))
			}
		}
	}

	if _, err := e.parse(""); err == nil {
		out = append(out, violation(e.name, CheckRoundTrip, "parse(\"\") succeeded"))
	}
	return out
}

// checkPartition verifies that groups of members cover members exactly once
// and that no group is empty.
func checkPartition[G, M variant](domain string, groups []G, members []M, of func(G) []M, owner func(M) G) []Violation {
	var out []Violation
	count := make(map[M]int, len(members))
	for _, g := range groups {
		ms := of(g)
		if len(ms) == 0 {
			out = append(out, violation(domain, CheckPartition, "%q has no members", g.Code()))
		}
		for _, m := range ms {
			count[m]++
			if owner(m) != g {
				out = append(out, violation(domain, CheckPartition, "%q listed under %q but belongs to %q", m.Code(), g.Code(), owner(m).Code()))
			}
		}
	}
	for _, m := range members {
		if !owner(m).IsValid() {
			out = append(out, violation(domain, CheckTotality, "%q has no valid owner", m.Code()))
		}
		if n := count[m]; n != 1 {
			out = append(out, violation(domain, CheckPartition, "%q appears in %d groups", m.Code(), n))
		}
	}
	if len(count) != len(members) {
		out = append(out, violation(domain, CheckPartition, "groups list %d members, want %d", len(count), len(members)))
	}
	return out
}

func checkWorldPartition() []Violation {
	log.Debug(log.CatAudit, "Checking world partition")
	return checkPartition("World", xiv.DataCenters(), xiv.Worlds(), xiv.DataCenter.Worlds, xiv.World.DataCenter)
}

func checkRegionPartition() []Violation {
	log.Debug(log.CatAudit, "Checking region partition")
	return checkPartition("DataCenter", xiv.Regions(), xiv.DataCenters(), xiv.Region.DataCenters, xiv.DataCenter.Region)
}

func checkClanPartition() []Violation {
	log.Debug(log.CatAudit, "Checking clan partition")
	clans := func(r xiv.Race) []xiv.Clan {
		pair := r.Clans()
		return pair[:]
	}
	return checkPartition("Clan", xiv.Races(), xiv.Clans(), clans, xiv.Clan.Race)
}

func checkJobs() []Violation {
	log.Debug(log.CatAudit, "Checking job relationships")

	var out []Violation
	for _, j := range xiv.Jobs() {
		if !j.Role().IsValid() {
			out = append(out, violation("Job", CheckTotality, "%q has no role", j.Code()))
		}
		if !j.Classification().IsCombat() {
			out = append(out, violation("Job", CheckConsistency, "%q is classified %q, want a combat discipline", j.Code(), j.Classification().Code()))
		}
		if j.Abbreviation() == "" {
			out = append(out, violation("Job", CheckCode, "%q has no abbreviation", j.Code()))
		}

		c, ok := j.BaseClass()
		if !ok {
			continue
		}
		if c.Classification() != j.Classification() {
			out = append(out, violation("Job", CheckConsistency, "%q is %q but base class %q is %q",
				j.Code(), j.Classification().Code(), c.Code(), c.Classification().Code()))
		}
		found := false
		for _, cj := range c.Jobs() {
			found = found || cj == j
		}
		if !found {
			out = append(out, violation("Class", CheckConsistency, "%q does not list job %q", c.Code(), j.Code()))
		}
	}

	for _, c := range xiv.Classes() {
		if !c.Role().IsValid() {
			out = append(out, violation("Class", CheckTotality, "%q has no role", c.Code()))
		}
		if len(c.Jobs()) == 0 {
			out = append(out, violation("Class", CheckConsistency, "%q leads to no job", c.Code()))
		}
		for _, j := range c.Jobs() {
			if base, ok := j.BaseClass(); !ok || base != c {
				out = append(out, violation("Class", CheckConsistency, "%q lists job %q whose base class differs", c.Code(), j.Code()))
			}
		}
	}

	for _, r := range xiv.Roles() {
		for _, j := range r.Jobs() {
			if j.Role() != r {
				out = append(out, violation("Role", CheckConsistency, "%q lists job %q of role %q", r.Code(), j.Code(), j.Role().Code()))
			}
		}
	}
	return out
}

func checkNonCombatJobs() []Violation {
	log.Debug(log.CatAudit, "Checking non-combat jobs")

	var out []Violation
	for _, j := range xiv.NonCombatJobs() {
		c := j.Classification()
		if !c.IsValid() || c.IsCombat() {
			out = append(out, violation("NonCombatJob", CheckConsistency, "%q is classified %q, want Land or Hand", j.Code(), c.Code()))
		}
		if j.Abbreviation() == "" {
			out = append(out, violation("NonCombatJob", CheckCode, "%q has no abbreviation", j.Code()))
		}
	}
	return out
}

func checkGuardianMoons() []Violation {
	log.Debug(log.CatAudit, "Checking guardian moons")

	var out []Violation
	for moon := 1; moon <= xiv.NumMoons; moon++ {
		g, ok := xiv.GuardianOfMoon(moon)
		if !ok {
			out = append(out, violation("Guardian", CheckGuardianMoon, "no guardian for moon %d", moon))
			continue
		}
		if g.Moon() != moon {
			out = append(out, violation("Guardian", CheckGuardianMoon, "moon %d maps to %q whose moon is %d", moon, g.Code(), g.Moon()))
		}
	}
	for _, g := range xiv.Guardians() {
		if g.Epithet() == "" {
			out = append(out, violation("Guardian", CheckCode, "%q has no epithet", g.Code()))
		}
	}
	return out
}
