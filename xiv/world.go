package xiv

// World is a game server, sometimes just called a server. Every world
// belongs to exactly one DataCenter.
type World uint8

type worldRow struct {
	label
	dataCenter DataCenter
}

var worldIndex = newIndex(domainWorld, numWorlds, func(w World) label { return worldRows[w].label })

// Worlds returns every world in declaration order.
func Worlds() []World { return values[World](numWorlds) }

// ParseWorld resolves s case-insensitively.
func ParseWorld(s string) (World, error) { return worldIndex.parse(s) }

// IsValid reports whether w is one of the declared worlds.
func (w World) IsValid() bool { return valid(w, numWorlds) }

func (w World) row() worldRow {
	if !w.IsValid() {
		return worldRow{}
	}
	return worldRows[w]
}

// Code returns the world's stable identifier.
func (w World) Code() string { return w.row().code }

// Name returns the display name. For worlds it always equals Code.
func (w World) Name() string { return w.row().name }

func (w World) String() string { return w.Name() }

// DataCenter returns the data center the world is on.
func (w World) DataCenter() DataCenter { return w.row().dataCenter }

// Region is shorthand for w.DataCenter().Region().
func (w World) Region() Region { return w.DataCenter().Region() }
