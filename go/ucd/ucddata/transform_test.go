package ucddata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ucdkit/ucdkit/go/ucd"
)

func TestAbbrValues(t *testing.T) {
	aliases := ucd.NewAliasTable("sc", map[string]string{
		"Latn": "Latin",
		"Grek": "Greek",
	})
	m := ucd.RangeMap{
		{Range: ucd.CodepointRange{First: 0x41, Last: 0x5A}, Value: "Latin"},
		{Range: ucd.CodepointRange{First: 0x370, Last: 0x3FF}, Value: "Greek"},
	}

	got, err := AbbrValues(m, aliases)
	require.NoError(t, err)
	require.Equal(t, "Latn", got[0].Value)
	require.Equal(t, "Grek", got[1].Value)

	m[0].Value = "Klingon"
	_, err = AbbrValues(m, aliases)
	var missing *ucd.MissingAliasError
	require.ErrorAs(t, err, &missing)
}

func TestKeyedValues(t *testing.T) {
	aliases := ucd.NewAliasTable("ccc", map[string]string{
		"0":   "NR",
		"230": "A",
	})
	m := ucd.RangeMap{
		{Range: ucd.Single(0x300), Value: "230"},
	}

	got, err := KeyedValues(m, aliases)
	require.NoError(t, err)
	require.Equal(t, "A", got[0].Value)
}

func TestBlockValues(t *testing.T) {
	aliases := ucd.NewAliasTable("blk", map[string]string{
		"ASCII":       "Basic_Latin",
		"Greek_Coptic": "Greek_And_Coptic",
	})
	m := ucd.RangeMap{
		{Range: ucd.CodepointRange{First: 0x0, Last: 0x7F}, Value: "Basic Latin"},
		{Range: ucd.CodepointRange{First: 0x370, Last: 0x3FF}, Value: "Greek and Coptic"},
	}

	got, err := BlockValues(m, aliases)
	require.NoError(t, err)
	require.Equal(t, "Ascii", got[0].Value)
	require.Equal(t, "GreekCoptic", got[1].Value)
}

func TestAgeValues(t *testing.T) {
	m := ucd.RangeMap{
		{Range: ucd.Single(0x41), Value: "1.1"},
		{Range: ucd.Single(0x20AC), Value: "2.1"},
		{Range: ucd.Single(0x1F600), Value: "6.0"},
	}
	got := AgeValues(m)
	require.Equal(t, "V1_1", got[0].Value)
	require.Equal(t, "V2_1", got[1].Value)
	require.Equal(t, "V6_0", got[2].Value)
}

func TestPascalCase(t *testing.T) {
	var cases = []struct {
		in   string
		want string
	}{
		{"Basic_Latin", "BasicLatin"},
		{"ASCII", "Ascii"},
		{"Greek_Coptic", "GreekCoptic"},
		{"CJK_Symbols", "CjkSymbols"},
		{"ext_pict", "ExtPict"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, PascalCase(tc.in), "input %q", tc.in)
	}
}

func TestParseDecomposition(t *testing.T) {
	var cases = []struct {
		in     string
		want   string
		compat bool
	}{
		{"0041 0300", "À", false},
		{"<noBreak> 0020", " ", true},
		{"<compat> 0041 0042", "AB", true},
		{"1E0B", "ḋ", false},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, compat, err := parseDecomposition(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
			require.Equal(t, tc.compat, compat)
		})
	}

	for _, in := range []string{"", "<noBreak>", "xyz", "<compat> xyz"} {
		t.Run("bad "+in, func(t *testing.T) {
			_, _, err := parseDecomposition(in)
			require.Error(t, err)
		})
	}
}
