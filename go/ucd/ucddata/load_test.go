package ucddata

import (
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ucdkit/ucdkit/go/ucd"
	"github.com/ucdkit/ucdkit/go/ucd/flattab"
)

func fixtureFS(files map[string]string) fstest.MapFS {
	fsys := make(fstest.MapFS, len(files))
	for name, data := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(data)}
	}
	return fsys
}

func TestLoadRangeMap(t *testing.T) {
	fsys := fixtureFS(map[string]string{
		"gc.json": `{
			"0020": "Zs",
			"0000..001F": "Cc",
			"0041..005A": "Lu"
		}`,
	})

	m, err := LoadRangeMap(fsys, "gc.json")
	require.NoError(t, err)

	want := ucd.RangeMap{
		{Range: ucd.CodepointRange{First: 0x0, Last: 0x1F}, Value: "Cc"},
		{Range: ucd.Single(0x20), Value: "Zs"},
		{Range: ucd.CodepointRange{First: 0x41, Last: 0x5A}, Value: "Lu"},
	}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Errorf("mapping mismatch (-want +got):\n%s", diff)
	}
	require.NoError(t, m.Validate("gc"))
}

func TestLoadRangeMapErrors(t *testing.T) {
	fsys := fixtureFS(map[string]string{
		"bad_range.json": `{"xyz": "Cc"}`,
		"bad_json.json":  `{"0020": `,
	})

	_, err := LoadRangeMap(fsys, "missing.json")
	require.Error(t, err)
	_, err = LoadRangeMap(fsys, "bad_range.json")
	require.Error(t, err)
	_, err = LoadRangeMap(fsys, "bad_json.json")
	require.Error(t, err)
}

func TestLoadPatchMap(t *testing.T) {
	fsys := fixtureFS(map[string]string{
		"bc.missing.json": `{
			"0600..06FF": "Arabic_Letter",
			"0590..05FF": "Right_To_Left"
		}`,
	})
	aliases := ucd.NewAliasTable("bc", map[string]string{
		"AL": "Arabic_Letter",
		"R":  "Right_To_Left",
	})

	patch, err := LoadPatchMap(fsys, "bc.missing.json", aliases)
	require.NoError(t, err)
	require.Len(t, patch, 2)
	require.Equal(t, "R", patch[0].Value)
	require.Equal(t, "AL", patch[1].Value)
}

func TestLoadPatchMapMissingAlias(t *testing.T) {
	fsys := fixtureFS(map[string]string{
		"bc.missing.json": `{"0600..06FF": "Unknown_Token"}`,
	})
	aliases := ucd.NewAliasTable("bc", map[string]string{"AL": "Arabic_Letter"})

	_, err := LoadPatchMap(fsys, "bc.missing.json", aliases)
	var missing *ucd.MissingAliasError
	require.ErrorAs(t, err, &missing)
	require.Equal(t, "Unknown_Token", missing.Value)
}

func TestLoadGrouped(t *testing.T) {
	fsys := fixtureFS(map[string]string{
		"emoji-data.json": `{
			"Emoji": ["0023", "002A", "1F600..1F64F"],
			"Emoji_Presentation": ["1F600..1F64F"]
		}`,
	})

	props, err := LoadGrouped(fsys, "emoji-data.json")
	require.NoError(t, err)
	require.Len(t, props, 2)

	// Document order decides the group's primary property.
	require.Equal(t, "Emoji", props[0].Name)
	require.Equal(t, "Emoji_Presentation", props[1].Name)

	require.Len(t, props[0].Ranges, 3)
	for _, rv := range props[0].Ranges {
		require.Equal(t, True, rv.Value)
	}
	require.NoError(t, props[0].Ranges.Validate("Emoji"))
}

func TestLoadNames(t *testing.T) {
	fsys := fixtureFS(map[string]string{
		"names.json": `{
			"0041": "LATIN CAPITAL LETTER A",
			"20AC": "EURO SIGN"
		}`,
	})

	entries, err := LoadNames(fsys, "names.json")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Contains(t, entries, flattab.NameEntry{Codepoint: 0x41, Name: "LATIN CAPITAL LETTER A"})
	assert.Contains(t, entries, flattab.NameEntry{Codepoint: 0x20AC, Name: "EURO SIGN"})
}

func TestLoadDecompositions(t *testing.T) {
	fsys := fixtureFS(map[string]string{
		"unicodedata.json": `{
			"0041": {"na": "LATIN CAPITAL LETTER A", "dm": ""},
			"00C0": {"na": "LATIN CAPITAL LETTER A WITH GRAVE", "dm": "0041 0300"},
			"00A0": {"na": "NO-BREAK SPACE", "dm": "<noBreak> 0020"}
		}`,
	})

	entries, err := LoadDecompositions(fsys, "unicodedata.json")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	tbl := flattab.NewDecompositionTable(entries)
	m, ok := tbl.Decomposition(0xC0)
	require.True(t, ok)
	require.Equal(t, "À", m)

	m, ok = tbl.Decomposition(0xA0)
	require.True(t, ok)
	require.Equal(t, " ", m)

	// The compatibility mapping must not compose back.
	_, ok = tbl.Composition(" ")
	require.False(t, ok)
	cp, ok := tbl.Composition("À")
	require.True(t, ok)
	require.Equal(t, rune(0xC0), cp)
}

func TestLoadCompositionExclusions(t *testing.T) {
	fsys := fixtureFS(map[string]string{
		"ce.json": `["0958", "0F43", "FB1D"]`,
	})

	set, err := LoadCompositionExclusions(fsys, "ce.json")
	require.NoError(t, err)
	assert.True(t, set.Contains(0x0958))
	assert.True(t, set.Contains(0xFB1D))
	assert.False(t, set.Contains(0x0959))
}

func TestLoadAliases(t *testing.T) {
	fsys := fixtureFS(map[string]string{
		"PropertyAliases.json": `{"WSpace": "White_Space", "ExtPict": "Extended_Pictographic"}`,
	})

	aliases, err := LoadAliases(fsys, "PropertyAliases.json")
	require.NoError(t, err)
	require.Equal(t, "White_Space", aliases["WSpace"])
	require.Equal(t, "Extended_Pictographic", aliases["ExtPict"])
}

func TestLoadValueAliases(t *testing.T) {
	fsys := fixtureFS(map[string]string{
		"PropertyValueAliases.json": `{
			"sc": {"Latn": "Latin", "Grek": "Greek"},
			"ccc": {"0": "NR", "230": "A"}
		}`,
	})

	tables, err := LoadValueAliases(fsys, "PropertyValueAliases.json")
	require.NoError(t, err)
	require.Len(t, tables, 2)

	abbr, err := tables["sc"].Abbr("Latin")
	require.NoError(t, err)
	require.Equal(t, "Latn", abbr)

	v, err := tables["ccc"].Value("230")
	require.NoError(t, err)
	require.Equal(t, "A", v)
}
