package xiv

// DataCenter is a named group of worlds. Characters can travel freely
// between the worlds of one data center.
type DataCenter uint8

type dataCenterRow struct {
	label
	region Region
}

var dataCenterIndex = newIndex(domainDataCenter, numDataCenters, func(dc DataCenter) label {
	return dataCenterRows[dc].label
})

// dataCenterWorlds is the reverse of World.DataCenter.
var dataCenterWorlds = func() [numDataCenters + 1][]World {
	var out [numDataCenters + 1][]World
	for _, w := range Worlds() {
		dc := worldRows[w].dataCenter
		out[dc] = append(out[dc], w)
	}
	return out
}()

// DataCenters returns every data center in declaration order.
func DataCenters() []DataCenter { return values[DataCenter](numDataCenters) }

// ParseDataCenter resolves s case-insensitively. Non-Latin codes such as
// "한국" match exactly, since case folding leaves them unchanged.
func ParseDataCenter(s string) (DataCenter, error) { return dataCenterIndex.parse(s) }

func (dc DataCenter) IsValid() bool { return valid(dc, numDataCenters) }

func (dc DataCenter) row() dataCenterRow {
	if !dc.IsValid() {
		return dataCenterRow{}
	}
	return dataCenterRows[dc]
}

func (dc DataCenter) Code() string   { return dc.row().code }
func (dc DataCenter) Name() string   { return dc.row().name }
func (dc DataCenter) String() string { return dc.Name() }

// Region returns the region hosting the data center.
func (dc DataCenter) Region() Region { return dc.row().region }

// Worlds returns the worlds of the data center in declaration order.
func (dc DataCenter) Worlds() []World {
	if !dc.IsValid() {
		return nil
	}
	return append([]World(nil), dataCenterWorlds[dc]...)
}
