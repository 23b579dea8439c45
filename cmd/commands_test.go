package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/xivtypes/internal/config"
	"github.com/zjrosen/xivtypes/internal/presentation"
	"github.com/zjrosen/xivtypes/xiv"
)

func TestList_World(t *testing.T) {
	out, err := execute(t, "list", "world", "-f", "json")
	require.NoError(t, err)

	var got []presentation.VariantDTO
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, len(xiv.Worlds()))
	require.Equal(t, xiv.Worlds()[0].Code(), got[0].Code)
}

func TestList_Table(t *testing.T) {
	out, err := execute(t, "list", "DataCenter", "-f", "table")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, len(xiv.DataCenters())+1)
	require.True(t, strings.HasPrefix(lines[0], "CODE"))
}

// relationsColumn returns the display column where marker starts in line.
func relationsColumn(t *testing.T, line, marker string) int {
	t.Helper()
	i := strings.Index(line, marker)
	require.GreaterOrEqual(t, i, 0, "%q not in %q", marker, line)
	return runewidth.StringWidth(line[:i])
}

func TestList_TableAlignsHangulRow(t *testing.T) {
	out, err := execute(t, "list", "datacenter", "--format", "table")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	col := relationsColumn(t, lines[0], "RELATIONS")

	var korea string
	for _, line := range lines[1:] {
		require.Equal(t, col, relationsColumn(t, line, "region="), line)
		if strings.HasPrefix(line, "한국") {
			korea = line
		}
	}
	require.NotEmpty(t, korea, "table has no 한국 row")
	require.Contains(t, korea, "region=Korea")
}

func TestLookup_Table(t *testing.T) {
	out, err := execute(t, "lookup", "datacenter", "한국", "-f", "table")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 2)
	require.True(t, strings.HasPrefix(lines[1], "한국"))
	require.Equal(t, relationsColumn(t, lines[0], "RELATIONS"), relationsColumn(t, lines[1], "region="))
	require.Contains(t, lines[1], "worlds=카벙클,")
}

func TestDump_Table(t *testing.T) {
	t.Setenv("XIVTYPES_FORMAT", "table")

	out, err := execute(t, "dump")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "patch "+xiv.SnapshotPatch+"\n"), out)
	require.Contains(t, out, "\nWorld (90)\n")
	require.Contains(t, out, "\nDataCenter (12)\n")
	require.Regexp(t, `(?m)^펜리르\s+펜리르\s+region=Korea data_center=한국$`, out)
}

func TestConfigSet_TableFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	_, err := execute(t, "config", "set", "format", "table", "--config", path)
	require.NoError(t, err)

	out, err := execute(t, "list", "role", "--config", path)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "CODE"), out)
}

func TestList_UnknownDomain(t *testing.T) {
	_, err := execute(t, "list", "mount")
	require.ErrorIs(t, err, presentation.ErrUnknownDomain)
}

func TestList_NeedsDomain(t *testing.T) {
	_, err := execute(t, "list")
	require.Error(t, err)
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "job abbreviation", args: []string{"job", "blm"}, want: "code: BlackMage"},
		{name: "job spaced name", args: []string{"job", "Black Mage"}, want: "base_class: Thaumaturge"},
		{name: "world", args: []string{"world", "BALMUNG"}, want: "data_center: Crystal"},
		{name: "korean data center alias", args: []string{"datacenter", "korea"}, want: "code: 한국"},
		{name: "guardian apostrophe", args: []string{"guardian", "nald'thal"}, want: "epithet: the Traders"},
		{name: "clan", args: []string{"clan", "raen"}, want: "race: AuRa"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, append([]string{"lookup"}, tt.args...)...)
			require.NoError(t, err)
			require.Contains(t, out, tt.want)
		})
	}
}

func TestLookup_Unknown(t *testing.T) {
	out, err := execute(t, "lookup", "job", "Mime")
	require.ErrorIs(t, err, xiv.ErrUnknownVariant)
	require.Contains(t, out, `unknown variant "Mime" for type Job`)
}

func TestDump_RoundTrips(t *testing.T) {
	out, err := execute(t, "dump")
	require.NoError(t, err)

	snap, err := presentation.ParseSnapshotYAML([]byte(out))
	require.NoError(t, err)
	require.Equal(t, presentation.BuildSnapshot(), snap)
}

func TestDump_OutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	out, err := execute(t, "dump", "--output", path)
	require.NoError(t, err)
	require.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(data), "patch: "))
}

func writeDump(t *testing.T, snap presentation.SnapshotDTO) string {
	t.Helper()
	text, err := presentation.MarshalSnapshotYAML(snap)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "old.yaml")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o600))
	return path
}

func TestDiff_NoChanges(t *testing.T) {
	path := writeDump(t, presentation.BuildSnapshot())

	out, err := execute(t, "diff", path, "--exit-code")
	require.NoError(t, err)
	require.Contains(t, out, "no changes")
}

func TestDiff_ShowsContentPatch(t *testing.T) {
	old := presentation.BuildSnapshot()
	old.Patch = "6.5"
	for i, d := range old.Domains {
		if d.Name == "World" {
			old.Domains[i].Variants = d.Variants[:len(d.Variants)-1]
		}
	}
	path := writeDump(t, old)

	out, err := execute(t, "diff", path, "--color", "never")
	require.NoError(t, err)
	require.Contains(t, out, `-patch: "6.5"`)
	require.Contains(t, out, `+patch: "7.0"`)
	require.Regexp(t, `(?m)^\+\s+- code: 펜리르$`, out)
	require.Contains(t, out, "line(s) added")

	_, err = execute(t, "diff", path, "--exit-code")
	require.ErrorIs(t, err, ErrSnapshotsDiffer)
}

func TestDiff_BadInput(t *testing.T) {
	_, err := execute(t, "diff", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "reading dump")

	path := filepath.Join(t.TempDir(), "junk.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: json\n"), 0o600))
	_, err = execute(t, "diff", path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "missing patch or domains")
}

func TestValidate(t *testing.T) {
	out, err := execute(t, "validate", "--color", "never")
	require.NoError(t, err)
	require.Equal(t, "ok snapshot "+xiv.SnapshotPatch+": all checks passed\n", out)
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	out, err := execute(t, "config", "init", "--config", path)
	require.NoError(t, err)
	require.Contains(t, out, "wrote "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, config.DefaultConfigTemplate(), string(data))

	_, err = execute(t, "config", "init", "--config", path)
	require.ErrorIs(t, err, ErrConfigExists)

	_, err = execute(t, "config", "init", "--config", path, "--force")
	require.NoError(t, err)
}

func TestConfigSet_ChangesOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	_, err := execute(t, "config", "set", "format", "json", "--config", path)
	require.NoError(t, err)

	out, err := execute(t, "lookup", "role", "dps", "--config", path)
	require.NoError(t, err)
	require.True(t, json.Valid([]byte(out)), out)
}

func TestConfigSet_Rejects(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	_, err := execute(t, "config", "set", "format", "xml", "--config", path)
	require.ErrorIs(t, err, config.ErrInvalidFormat)

	_, err = execute(t, "config", "set", "theme", "dark", "--config", path)
	require.ErrorIs(t, err, config.ErrUnknownKey)
}
