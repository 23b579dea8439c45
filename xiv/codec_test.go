package xiv_test

import (
	"database/sql"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/zjrosen/xivtypes/internal/testutil"
	"github.com/zjrosen/xivtypes/xiv"
)

type character struct {
	Name       string         `json:"name" yaml:"name"`
	World      xiv.World      `json:"world" yaml:"world"`
	DataCenter xiv.DataCenter `json:"data_center" yaml:"data_center"`
	Clan       xiv.Clan       `json:"clan" yaml:"clan"`
	Job        xiv.Job        `json:"job" yaml:"job"`
	Guardian   xiv.Guardian   `json:"guardian" yaml:"guardian"`
}

var sample = character{
	Name:       "Thancred Waters",
	World:      xiv.WorldKrTonberry,
	DataCenter: xiv.DataCenterKorea,
	Clan:       xiv.ClanMidlander,
	Job:        xiv.JobGunbreaker,
	Guardian:   xiv.GuardianNaldThal,
}

func TestJSON_RoundTrip(t *testing.T) {
	data, err := json.Marshal(sample)
	require.NoError(t, err)
	require.JSONEq(t, `{"name":"Thancred Waters","world":"톤베리","data_center":"한국","clan":"Midlander","job":"Gunbreaker","guardian":"NaldThal"}`, string(data))

	var got character
	require.NoError(t, json.Unmarshal(data, &got))
	require.Equal(t, sample, got)
}

func TestJSON_MapKeys(t *testing.T) {
	in := map[xiv.Role]int{xiv.RoleTank: 2, xiv.RoleHealer: 2, xiv.RoleDPS: 4}
	data, err := json.Marshal(in)
	require.NoError(t, err)
	require.JSONEq(t, `{"Tank":2,"Healer":2,"DPS":4}`, string(data))

	var got map[xiv.Role]int
	require.NoError(t, json.Unmarshal(data, &got))
	require.Equal(t, in, got)
}

func TestJSON_DecodeAcceptsAliases(t *testing.T) {
	var got struct {
		Job xiv.Job `json:"job"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"job":"black mage"}`), &got))
	require.Equal(t, xiv.JobBlackMage, got.Job)
}

func TestJSON_DecodeRejectsUnknown(t *testing.T) {
	var got character
	err := json.Unmarshal([]byte(`{"world":"Atlantis"}`), &got)
	require.ErrorIs(t, err, xiv.ErrUnknownVariant)

	var uv *xiv.UnknownVariantError
	require.ErrorAs(t, err, &uv)
	require.Equal(t, "World", uv.Domain)
	require.Equal(t, "Atlantis", uv.Input)
}

func TestJSON_EncodeRejectsInvalid(t *testing.T) {
	_, err := json.Marshal(character{Name: "nobody"})
	require.ErrorIs(t, err, xiv.ErrUnknownVariant)
}

func TestYAML_RoundTrip(t *testing.T) {
	data, err := yaml.Marshal(sample)
	require.NoError(t, err)
	require.Contains(t, string(data), "job: Gunbreaker")
	require.Contains(t, string(data), "clan: Midlander")

	var got character
	require.NoError(t, yaml.Unmarshal(data, &got))
	require.Equal(t, sample, got)
}

func TestYAML_DecodeRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "unknown scalar", doc: "job: Freelancer\n"},
		{name: "sequence", doc: "job: [BLM]\n"},
		{name: "mapping", doc: "job: {name: BLM}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got character
			err := yaml.Unmarshal([]byte(tt.doc), &got)
			require.ErrorIs(t, err, xiv.ErrUnknownVariant)
		})
	}
}

func TestSQL_RoundTrip(t *testing.T) {
	db := testutil.NewTestDB(t)

	_, err := db.Exec(`INSERT INTO characters (name, world, data_center, clan, job, guardian) VALUES (?, ?, ?, ?, ?, ?)`,
		sample.Name, sample.World, sample.DataCenter, sample.Clan, sample.Job, sample.Guardian)
	require.NoError(t, err)

	var raw string
	require.NoError(t, db.QueryRow(`SELECT job FROM characters`).Scan(&raw))
	require.Equal(t, "Gunbreaker", raw)

	var got character
	err = db.QueryRow(`SELECT name, world, data_center, clan, job, guardian FROM characters`).
		Scan(&got.Name, &got.World, &got.DataCenter, &got.Clan, &got.Job, &got.Guardian)
	require.NoError(t, err)
	require.Equal(t, sample, got)
}

func TestSQL_ScanRejects(t *testing.T) {
	db := testutil.NewTestDB(t)

	_, err := db.Exec(`INSERT INTO characters (name, world, job) VALUES ('ghost', 'Atlantis', NULL)`)
	require.NoError(t, err)

	var w xiv.World
	err = db.QueryRow(`SELECT world FROM characters`).Scan(&w)
	require.ErrorIs(t, err, xiv.ErrUnknownVariant)

	var j xiv.Job
	err = db.QueryRow(`SELECT job FROM characters`).Scan(&j)
	require.ErrorIs(t, err, xiv.ErrUnknownVariant)

	// A nullable column still works through sql.Null.
	var nj sql.Null[xiv.Job]
	require.NoError(t, db.QueryRow(`SELECT job FROM characters`).Scan(&nj))
	require.False(t, nj.Valid)
}

func TestSQL_ValueRejectsInvalid(t *testing.T) {
	_, err := xiv.World(0).Value()
	require.ErrorIs(t, err, xiv.ErrUnknownVariant)
}

func TestNull_KeepsValueInJSONAndYAML(t *testing.T) {
	type home struct {
		World    xiv.World  `json:"world" yaml:"world"`
		Previous *xiv.World `json:"previous" yaml:"previous"`
	}
	balmung := xiv.WorldBalmung

	t.Run("json", func(t *testing.T) {
		got := home{World: xiv.WorldBalmung, Previous: &balmung}
		require.NoError(t, json.Unmarshal([]byte(`{"world":null,"previous":null}`), &got))
		require.Equal(t, xiv.WorldBalmung, got.World)
		require.Nil(t, got.Previous)
	})

	t.Run("yaml", func(t *testing.T) {
		got := home{World: xiv.WorldBalmung, Previous: &balmung}
		require.NoError(t, yaml.Unmarshal([]byte("world: ~\nprevious: ~\n"), &got))
		require.Equal(t, xiv.WorldBalmung, got.World)
		require.Nil(t, got.Previous)
	})

	t.Run("sql", func(t *testing.T) {
		w := xiv.WorldBalmung
		err := w.Scan(nil)
		require.ErrorIs(t, err, xiv.ErrUnknownVariant)
		require.Contains(t, err.Error(), `"NULL"`)
		require.Equal(t, xiv.WorldBalmung, w)
	})
}
