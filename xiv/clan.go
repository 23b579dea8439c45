package xiv

// Clan is a sub-group of a playable race.
type Clan uint8

type clanRow struct {
	label
	race Race
}

var clanIndex = newIndex(domainClan, numClans, func(c Clan) label { return clanRows[c].label })

// Clans returns every clan in declaration order.
func Clans() []Clan { return values[Clan](numClans) }

// ParseClan resolves s case-insensitively, e.g. "seawolf" or "Sea Wolf".
func ParseClan(s string) (Clan, error) { return clanIndex.parse(s) }

func (c Clan) IsValid() bool { return valid(c, numClans) }

func (c Clan) row() clanRow {
	if !c.IsValid() {
		return clanRow{}
	}
	return clanRows[c]
}

func (c Clan) Code() string   { return c.row().code }
func (c Clan) Name() string   { return c.row().name }
func (c Clan) String() string { return c.Name() }

// Race returns the race the clan belongs to.
func (c Clan) Race() Race { return c.row().race }
