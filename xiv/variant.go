package xiv

import (
	"database/sql/driver"
	"fmt"
	"strconv"

	"golang.org/x/text/cases"
	"gopkg.in/yaml.v3"
)

// Domain names carried by UnknownVariantError.
const (
	domainRole           = "Role"
	domainClassification = "Classification"
	domainRegion         = "Region"
	domainDataCenter     = "DataCenter"
	domainWorld          = "World"
	domainRace           = "Race"
	domainClan           = "Clan"
	domainJob            = "Job"
	domainClass          = "Class"
	domainNonCombatJob   = "NonCombatJob"
	domainGuardian       = "Guardian"
)

// variant is satisfied by every enum type in this package. Valid tags run
// from 1 to the domain's cardinality; 0 is never a variant.
type variant interface {
	~uint8
}

// label is the string half of a table row.
type label struct {
	code    string
	name    string
	abbr    string   // short form ("BLM"), empty when the domain has none
	aliases []string // extra parse keys
}

// fold normalizes case only. A Caser is stateful, so one is made per call.
func fold(s string) string {
	return cases.Fold().String(s)
}

// index resolves folded strings to variants for one domain.
type index[T variant] struct {
	domain string
	keys   map[string]T
}

// newIndex builds the parse index for tags 1..n. Two variants claiming the
// same folded key is a data error and panics at package init.
func newIndex[T variant](domain string, n int, at func(T) label) index[T] {
	keys := make(map[string]T, n*3)
	for i := 1; i <= n; i++ {
		v := T(i)
		l := at(v)
		all := append([]string{l.code, l.name, l.abbr}, l.aliases...)
		for _, s := range all {
			if s == "" {
				continue
			}
			k := fold(s)
			if prev, ok := keys[k]; ok && prev != v {
				panic(fmt.Sprintf("xiv: %s key %q claimed by tags %d and %d", domain, s, prev, v))
			}
			keys[k] = v
		}
	}
	return index[T]{domain: domain, keys: keys}
}

func (ix index[T]) parse(s string) (T, error) {
	if v, ok := ix.keys[fold(s)]; ok {
		return v, nil
	}
	return 0, &UnknownVariantError{Domain: ix.domain, Input: s}
}

func valid[T variant](v T, n int) bool {
	return v >= 1 && int(v) <= n
}

// values returns tags 1..n in declaration order.
func values[T variant](n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = T(i + 1)
	}
	return out
}

func invalid[T variant](domain string, v T) error {
	return &UnknownVariantError{Domain: domain, Input: strconv.Itoa(int(v))}
}

func encodeText[T variant](domain string, v T, ok bool, code string) ([]byte, error) {
	if !ok {
		return nil, invalid(domain, v)
	}
	return []byte(code), nil
}

func encodeYAML[T variant](domain string, v T, ok bool, code string) (any, error) {
	if !ok {
		return nil, invalid(domain, v)
	}
	return code, nil
}

func encodeValue[T variant](domain string, v T, ok bool, code string) (driver.Value, error) {
	if !ok {
		return nil, invalid(domain, v)
	}
	return code, nil
}

func decodeText[T variant](ix index[T], dst *T, text []byte) error {
	v, err := ix.parse(string(text))
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

func decodeYAML[T variant](ix index[T], dst *T, node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return &UnknownVariantError{Domain: ix.domain, Input: node.Value}
	}
	return decodeText(ix, dst, []byte(node.Value))
}

// decodeValue accepts TEXT (string) and BLOB ([]byte) columns. NULL and
// other column types are rejected rather than mapped to a default.
func decodeValue[T variant](ix index[T], dst *T, src any) error {
	switch s := src.(type) {
	case string:
		return decodeText(ix, dst, []byte(s))
	case []byte:
		return decodeText(ix, dst, s)
	case nil:
		return &UnknownVariantError{Domain: ix.domain, Input: "NULL"}
	default:
		return &UnknownVariantError{Domain: ix.domain, Input: fmt.Sprint(src)}
	}
}
