package xiv

// Region is the geographic grouping of data centers.
type Region uint8

type regionRow struct {
	label
}

var regionIndex = newIndex(domainRegion, numRegions, func(r Region) label { return regionRows[r].label })

var regionDataCenters = func() [numRegions + 1][]DataCenter {
	var out [numRegions + 1][]DataCenter
	for _, dc := range DataCenters() {
		r := dataCenterRows[dc].region
		out[r] = append(out[r], dc)
	}
	return out
}()

// Regions returns every region in declaration order.
func Regions() []Region { return values[Region](numRegions) }

// ParseRegion accepts the code, the name, or the abbreviation ("NA").
func ParseRegion(s string) (Region, error) { return regionIndex.parse(s) }

func (r Region) IsValid() bool { return valid(r, numRegions) }

func (r Region) row() regionRow {
	if !r.IsValid() {
		return regionRow{}
	}
	return regionRows[r]
}

func (r Region) Code() string         { return r.row().code }
func (r Region) Name() string         { return r.row().name }
func (r Region) Abbreviation() string { return r.row().abbr }
func (r Region) String() string       { return r.Name() }

// DataCenters returns the data centers hosted in this region.
func (r Region) DataCenters() []DataCenter {
	if !r.IsValid() {
		return nil
	}
	return append([]DataCenter(nil), regionDataCenters[r]...)
}
