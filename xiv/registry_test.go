package xiv

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// enum is the surface every domain type shares.
type enum interface {
	comparable
	Code() string
	Name() string
	IsValid() bool
}

type domainCheck struct {
	name string
	run  func(t *testing.T)
}

func checkDomain[T enum](domain string, want int, all func() []T, parse func(string) (T, error)) domainCheck {
	return domainCheck{name: domain, run: func(t *testing.T) {
		values := all()
		require.Len(t, values, want, "cardinality")

		seen := make(map[T]bool, len(values))
		codes := make(map[string]bool, len(values))
		for _, v := range values {
			require.True(t, v.IsValid(), "%v should be valid", v)
			require.False(t, seen[v], "duplicate variant %v", v)
			seen[v] = true

			require.NotEmpty(t, v.Code(), "variant %v has no row", v)
			require.NotEmpty(t, v.Name(), "variant %v has no name", v)
			require.False(t, codes[v.Code()], "duplicate code %q", v.Code())
			codes[v.Code()] = true

			require.NotContains(t, v.Code(), " ", "codes are space-free")
			if !strings.ContainsAny(v.Name(), " '") {
				require.Equal(t, v.Code(), v.Name(), "unadorned name must equal code")
			}

			for _, s := range []string{v.Code(), v.Name(), strings.ToLower(v.Code()), strings.ToUpper(v.Name())} {
				got, err := parse(s)
				require.NoError(t, err, "parse %q", s)
				require.Equal(t, v, got, "parse %q", s)
			}
		}

		// all() hands out a fresh slice each call.
		values[0] = values[len(values)-1]
		require.NotEqual(t, values[0], all()[0])

		var zero T
		require.False(t, zero.IsValid())
		require.Empty(t, zero.Code())

		_, err := parse("not-a-real-value")
		require.Error(t, err)
		require.ErrorIs(t, err, ErrUnknownVariant)
		var uv *UnknownVariantError
		require.True(t, errors.As(err, &uv))
		require.Equal(t, domain, uv.Domain)
		require.Equal(t, "not-a-real-value", uv.Input)
	}}
}

func TestDomains(t *testing.T) {
	checks := []domainCheck{
		checkDomain("Role", 3, Roles, ParseRole),
		checkDomain("Classification", 4, Classifications, ParseClassification),
		checkDomain("Region", 5, Regions, ParseRegion),
		checkDomain("DataCenter", 12, DataCenters, ParseDataCenter),
		checkDomain("World", 90, Worlds, ParseWorld),
		checkDomain("Race", 8, Races, ParseRace),
		checkDomain("Clan", 16, Clans, ParseClan),
		checkDomain("Job", 22, Jobs, ParseJob),
		checkDomain("Class", 9, Classes, ParseClass),
		checkDomain("NonCombatJob", 11, NonCombatJobs, ParseNonCombatJob),
		checkDomain("Guardian", 12, Guardians, ParseGuardian),
	}
	for _, c := range checks {
		t.Run(c.name, c.run)
	}
}

func TestParseRole(t *testing.T) {
	for _, in := range []string{"dps", "DPS", "Dps"} {
		got, err := ParseRole(in)
		require.NoError(t, err)
		require.Equal(t, RoleDPS, got)
	}
}

func TestParseJob(t *testing.T) {
	tests := []struct {
		input string
		want  Job
	}{
		{input: "blm", want: JobBlackMage},
		{input: "BLM", want: JobBlackMage},
		{input: "BlackMage", want: JobBlackMage},
		{input: "black mage", want: JobBlackMage},
		{input: "Black Mage", want: JobBlackMage},
		{input: "war", want: JobWarrior},
		{input: "pct", want: JobPictomancer},
		{input: "dark knight", want: JobDarkKnight},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseJob(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}

	require.Equal(t, "BlackMage", JobBlackMage.Code())
	require.Equal(t, "Black Mage", JobBlackMage.Name())
	require.Equal(t, "BLM", JobBlackMage.Abbreviation())
	require.Equal(t, "Black Mage", JobBlackMage.String())
}

func TestParse_RejectsNearMisses(t *testing.T) {
	tests := []struct {
		name  string
		parse func(string) error
		input string
	}{
		{"leading space", func(s string) error { _, err := ParseJob(s); return err }, " BLM"},
		{"trailing space", func(s string) error { _, err := ParseWorld(s); return err }, "Balmung "},
		{"missing apostrophe space", func(s string) error { _, err := ParseRace(s); return err }, "miqo te"},
		{"empty", func(s string) error { _, err := ParseClan(s); return err }, ""},
		{"other domain", func(s string) error { _, err := ParseDataCenter(s); return err }, "Balmung"},
		{"job name as class", func(s string) error { _, err := ParseClass(s); return err }, "Paladin"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.parse(tt.input)
			require.ErrorIs(t, err, ErrUnknownVariant)
			var uv *UnknownVariantError
			require.ErrorAs(t, err, &uv)
			require.Equal(t, tt.input, uv.Input)
		})
	}
}

func TestUnknownVariantError_Message(t *testing.T) {
	_, err := ParseDataCenter("my invalid input")
	require.EqualError(t, err, `unknown variant "my invalid input" for type DataCenter`)
}

func TestParseGuardian(t *testing.T) {
	got, err := ParseGuardian("nald'thal")
	require.NoError(t, err)
	require.Equal(t, GuardianNaldThal, got)
	require.Equal(t, "the Traders", got.Epithet())
	require.Equal(t, "Nald'thal", got.Name())
	require.Equal(t, "NaldThal", got.Code())

	got, err = ParseGuardian("NALDTHAL")
	require.NoError(t, err)
	require.Equal(t, GuardianNaldThal, got)
}

func TestParseNonLatin(t *testing.T) {
	dc, err := ParseDataCenter("한국")
	require.NoError(t, err)
	require.Equal(t, DataCenterKorea, dc)

	dc, err = ParseDataCenter("korea")
	require.NoError(t, err)
	require.Equal(t, DataCenterKorea, dc)

	w, err := ParseWorld("카벙클")
	require.NoError(t, err)
	require.Equal(t, WorldKrCarbuncle, w)
	require.Equal(t, DataCenterKorea, w.DataCenter())

	// The Japanese Carbuncle is a different world.
	w, err = ParseWorld("carbuncle")
	require.NoError(t, err)
	require.Equal(t, WorldCarbuncle, w)
	require.Equal(t, DataCenterElemental, w.DataCenter())
}

func TestInvalidValues(t *testing.T) {
	require.Empty(t, World(0).Name())
	require.Empty(t, World(255).Code())
	require.Zero(t, World(255).DataCenter())
	require.Zero(t, Job(0).Role())
	require.Nil(t, DataCenter(0).Worlds())
	require.Equal(t, [2]Clan{}, Race(99).Clans())
	require.Zero(t, Guardian(0).Moon())

	_, ok := Job(0).BaseClass()
	require.False(t, ok)
}
