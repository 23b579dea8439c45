package xiv

import "fmt"

// Race is a playable race. Every race has exactly two clans.
type Race uint8

type raceRow struct {
	label
}

var raceIndex = newIndex(domainRace, numRaces, func(r Race) label { return raceRows[r].label })

// raceClans is the reverse of Clan.Race. Building it panics unless every
// race ends up with exactly two clans.
var raceClans = func() [numRaces + 1][2]Clan {
	var out [numRaces + 1][2]Clan
	var n [numRaces + 1]int
	for _, c := range Clans() {
		r := clanRows[c].race
		if !r.IsValid() {
			panic(fmt.Sprintf("xiv: clan %d has no race", c))
		}
		if n[r] == len(out[r]) {
			panic(fmt.Sprintf("xiv: race %s has more than two clans", raceRows[r].code))
		}
		out[r][n[r]] = c
		n[r]++
	}
	for _, r := range Races() {
		if n[r] != len(out[r]) {
			panic(fmt.Sprintf("xiv: race %s has %d clans, want 2", raceRows[r].code, n[r]))
		}
	}
	return out
}()

// Races returns every race in declaration order.
func Races() []Race { return values[Race](numRaces) }

// ParseRace resolves s case-insensitively, e.g. "aura", "Au Ra", "MIQO'TE".
func ParseRace(s string) (Race, error) { return raceIndex.parse(s) }

func (r Race) IsValid() bool { return valid(r, numRaces) }

func (r Race) row() raceRow {
	if !r.IsValid() {
		return raceRow{}
	}
	return raceRows[r]
}

func (r Race) Code() string   { return r.row().code }
func (r Race) Name() string   { return r.row().name }
func (r Race) String() string { return r.Name() }

// Clans returns the race's two clans in declaration order. The zero array
// is returned for an invalid race.
func (r Race) Clans() [2]Clan {
	if !r.IsValid() {
		return [2]Clan{}
	}
	return raceClans[r]
}
