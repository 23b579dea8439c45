package xiv

import "fmt"

// Guardian is one of the Twelve, the deities a character picks through
// their nameday.
type Guardian uint8

type guardianRow struct {
	label
	epithet string
	moon    int
}

var guardianIndex = newIndex(domainGuardian, numGuardians, func(g Guardian) label { return guardianRows[g].label })

// NumMoons is the number of moons in the Eorzean year.
const NumMoons = 12

var guardianByMoon = func() [NumMoons + 1]Guardian {
	var out [NumMoons + 1]Guardian
	for _, g := range Guardians() {
		m := guardianRows[g].moon
		if m < 1 || m > NumMoons || out[m] != 0 {
			panic(fmt.Sprintf("xiv: guardian %s has bad moon %d", guardianRows[g].code, m))
		}
		out[m] = g
	}
	return out
}()

// Guardians returns every guardian in declaration order.
func Guardians() []Guardian { return values[Guardian](numGuardians) }

// ParseGuardian resolves s case-insensitively, e.g. "naldthal" or "Nald'thal".
func ParseGuardian(s string) (Guardian, error) { return guardianIndex.parse(s) }

// GuardianOfMoon returns the guardian presiding over moon, numbered 1
// (First Astral Moon) to 12 (Sixth Umbral Moon).
func GuardianOfMoon(moon int) (Guardian, bool) {
	if moon < 1 || moon > NumMoons {
		return 0, false
	}
	return guardianByMoon[moon], true
}

func (g Guardian) IsValid() bool { return valid(g, numGuardians) }

func (g Guardian) row() guardianRow {
	if !g.IsValid() {
		return guardianRow{}
	}
	return guardianRows[g]
}

func (g Guardian) Code() string   { return g.row().code }
func (g Guardian) Name() string   { return g.row().name }
func (g Guardian) String() string { return g.Name() }

// Epithet returns the guardian's title, e.g. "the Traders".
func (g Guardian) Epithet() string { return g.row().epithet }

// Moon returns the nameday moon (1-12) the guardian presides over, or 0 for
// an invalid guardian.
func (g Guardian) Moon() int { return g.row().moon }
