package presentation

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/zjrosen/xivtypes/xiv"
)

func TestFormatter_JSON(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(&buf, "JSON")
	require.Equal(t, FormatJSON, f.Format())

	require.NoError(t, f.FormatVariant(FromWorld(xiv.WorldBalmung)))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Equal(t, "Balmung", got["code"])
	require.Equal(t, "Crystal", got["data_center"])
	require.NotContains(t, got, "epithet", "empty relationships are omitted")
}

func TestFormatter_YAML(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(&buf, FormatYAML)

	require.NoError(t, f.FormatVariants([]VariantDTO{FromClan(xiv.ClanRaen), FromClan(xiv.ClanXaela)}))

	var got []VariantDTO
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	require.Equal(t, "AuRa", got[0].Race)
	require.Equal(t, "Xaela", got[1].Code)
}

func TestFormatter_UnknownFormatFallsBackToYAML(t *testing.T) {
	f := NewFormatter(&bytes.Buffer{}, "xml")
	require.Equal(t, FormatYAML, f.Format())
}

func TestFormatter_TableAlignsWideRunes(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(&buf, FormatTable)

	dc, err := xiv.ParseDataCenter("Korea")
	require.NoError(t, err)
	worlds := dc.Worlds()
	variants := make([]VariantDTO, len(worlds))
	for i, w := range worlds {
		variants[i] = FromWorld(w)
	}
	require.NoError(t, f.FormatVariants(variants))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, len(worlds)+1)
	require.True(t, strings.HasPrefix(lines[0], "CODE"))

	// RELATIONS starts at the same display column on every row.
	col := displayColumn(t, lines[0], "RELATIONS")
	for _, line := range lines[1:] {
		require.Equal(t, col, displayColumn(t, line, "region="), line)
	}
}

func displayColumn(t *testing.T, line, marker string) int {
	t.Helper()
	i := strings.Index(line, marker)
	require.GreaterOrEqual(t, i, 0, "%q not in %q", marker, line)
	width := 0
	for _, r := range line[:i] {
		if r >= 0xAC00 && r <= 0xD7A3 {
			width += 2
		} else {
			width++
		}
	}
	return width
}

func TestFormatter_SnapshotTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(&buf, FormatTable).FormatSnapshot(BuildSnapshot()))

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "patch "+xiv.SnapshotPatch+"\n"))
	require.Contains(t, out, "\nWorld (90)\n")
	require.Contains(t, out, "\nGuardian (12)\n")
}

func TestSnapshotYAML_RoundTrip(t *testing.T) {
	text, err := MarshalSnapshotYAML(BuildSnapshot())
	require.NoError(t, err)

	snap, err := ParseSnapshotYAML([]byte(text))
	require.NoError(t, err)
	require.Equal(t, BuildSnapshot(), snap)
}

func TestParseSnapshotYAML_Rejects(t *testing.T) {
	_, err := ParseSnapshotYAML([]byte("patch: [unclosed"))
	require.Error(t, err)

	_, err = ParseSnapshotYAML([]byte("format: yaml\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "missing patch or domains")
}
