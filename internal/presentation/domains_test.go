package presentation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/xivtypes/xiv"
)

func TestFindDomain(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "world", want: "World"},
		{input: "World", want: "World"},
		{input: "datacenter", want: "DataCenter"},
		{input: "DataCenter", want: "DataCenter"},
		{input: "NONCOMBATJOB", want: "NonCombatJob"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			d, err := FindDomain(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.want, d.Name)
		})
	}
}

func TestFindDomain_Unknown(t *testing.T) {
	_, err := FindDomain("mount")
	require.ErrorIs(t, err, ErrUnknownDomain)
	require.Contains(t, err.Error(), `"mount"`)
	require.Contains(t, err.Error(), "noncombatjob")
}

func TestDomains_ListMatchesRegistry(t *testing.T) {
	counts := map[string]int{
		"role":           len(xiv.Roles()),
		"classification": len(xiv.Classifications()),
		"region":         len(xiv.Regions()),
		"datacenter":     len(xiv.DataCenters()),
		"world":          len(xiv.Worlds()),
		"race":           len(xiv.Races()),
		"clan":           len(xiv.Clans()),
		"job":            len(xiv.Jobs()),
		"class":          len(xiv.Classes()),
		"noncombatjob":   len(xiv.NonCombatJobs()),
		"guardian":       len(xiv.Guardians()),
	}
	require.Len(t, Domains(), len(counts))
	for _, d := range Domains() {
		want, ok := counts[d.Key]
		require.True(t, ok, "unexpected domain %s", d.Key)
		assert.Len(t, d.List(), want, d.Key)
	}
}

func TestDomains_LookupEveryCode(t *testing.T) {
	for _, d := range Domains() {
		for _, v := range d.List() {
			got, err := d.Lookup(v.Code)
			require.NoError(t, err, "%s %s", d.Key, v.Code)
			assert.Equal(t, v, got)
		}
	}
}

func TestDomains_LookupUnknown(t *testing.T) {
	d, err := FindDomain("job")
	require.NoError(t, err)

	_, err = d.Lookup("Mime")
	require.ErrorIs(t, err, xiv.ErrUnknownVariant)

	var uv *xiv.UnknownVariantError
	require.ErrorAs(t, err, &uv)
	require.Equal(t, "Job", uv.Domain)
	require.Equal(t, "Mime", uv.Input)
}

func TestDTO_Relationships(t *testing.T) {
	world := FromWorld(xiv.WorldBalmung)
	assert.Equal(t, VariantDTO{Code: "Balmung", Name: "Balmung", DataCenter: "Crystal", Region: "NorthAmerica"}, world)

	job := FromJob(xiv.JobBlackMage)
	assert.Equal(t, "BLM", job.Abbreviation)
	assert.Equal(t, "Black Mage", job.Name)
	assert.Equal(t, "DPS", job.Role)
	assert.Equal(t, "Magic", job.Classification)
	assert.Equal(t, "Thaumaturge", job.BaseClass)

	assert.Empty(t, FromJob(xiv.JobViper).BaseClass)

	race := FromRace(xiv.RaceAuRa)
	assert.Equal(t, []string{"Raen", "Xaela"}, race.Clans)

	guardian := FromGuardian(xiv.GuardianNaldThal)
	assert.Equal(t, "the Traders", guardian.Epithet)
	assert.Equal(t, 10, guardian.Moon)

	class := FromClass(xiv.ClassArcanist)
	assert.ElementsMatch(t, []string{"Scholar", "Summoner"}, class.Jobs)
}

func TestBuildSnapshot(t *testing.T) {
	snap := BuildSnapshot()
	require.Equal(t, xiv.SnapshotPatch, snap.Patch)
	require.Len(t, snap.Domains, len(Domains()))
	require.Equal(t, "Role", snap.Domains[0].Name)
	require.Equal(t, "Guardian", snap.Domains[len(snap.Domains)-1].Name)
}
