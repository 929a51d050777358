// Package ucddata loads JSON-shaped Unicode Character Database
// snapshots into the range mappings and flat entries the table builders
// consume. One snapshot directory holds one UCD version; every loader
// takes an fs.FS so tests can feed synthetic fixtures.
package ucddata

import (
	"fmt"
	"io/fs"

	"github.com/buger/jsonparser"

	"github.com/ucdkit/ucdkit/go/ucd"
	"github.com/ucdkit/ucdkit/go/ucd/flattab"
)

// True is the value assigned to every range of a boolean property.
const True = "true"

// LoadRangeMap reads a data file keyed by code point range with one
// property value per range, e.g. extracted/DerivedGeneralCategory.json.
func LoadRangeMap(fsys fs.FS, path string) (ucd.RangeMap, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, err
	}
	var m ucd.RangeMap
	err = jsonparser.ObjectEach(data, func(key, value []byte, _ jsonparser.ValueType, _ int) error {
		r, err := ucd.ParseCodepointRange(string(key))
		if err != nil {
			return err
		}
		v, err := jsonparser.ParseString(value)
		if err != nil {
			return err
		}
		m.Add(r, v)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	m.Sort()
	return m, nil
}

// LoadPatchMap reads a companion ".missing" data file. Its values are
// full value names; they resolve to short aliases before use so the
// patch speaks the same tokens as the primary mapping.
func LoadPatchMap(fsys fs.FS, path string, aliases *ucd.AliasTable) (ucd.RangeMap, error) {
	m, err := LoadRangeMap(fsys, path)
	if err != nil {
		return nil, err
	}
	return AbbrValues(m, aliases)
}

// GroupedProperty is one boolean property of a grouped data file.
type GroupedProperty struct {
	Name   string
	Ranges ucd.RangeMap
}

// LoadGrouped reads a data file that groups boolean property ranges by
// property name, e.g. emoji/emoji-data.json or PropList.json. The
// properties keep the document order of the file; the first one is the
// group's primary property.
func LoadGrouped(fsys fs.FS, path string) ([]GroupedProperty, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, err
	}
	var props []GroupedProperty
	err = jsonparser.ObjectEach(data, func(key, value []byte, _ jsonparser.ValueType, _ int) error {
		p := GroupedProperty{Name: string(key)}
		var rerr error
		if _, err := jsonparser.ArrayEach(value, func(item []byte, _ jsonparser.ValueType, _ int, _ error) {
			if rerr != nil {
				return
			}
			r, err := ucd.ParseCodepointRange(string(item))
			if err != nil {
				rerr = err
				return
			}
			p.Ranges.Add(r, True)
		}); err != nil {
			return err
		}
		if rerr != nil {
			return rerr
		}
		p.Ranges.Sort()
		props = append(props, p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return props, nil
}

// LoadNames reads extracted/DerivedName.json. Multi-point ranges carry
// the name of their first code point, matching the flat table's
// one-point granularity.
func LoadNames(fsys fs.FS, path string) ([]flattab.NameEntry, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, err
	}
	var entries []flattab.NameEntry
	err = jsonparser.ObjectEach(data, func(key, value []byte, _ jsonparser.ValueType, _ int) error {
		r, err := ucd.ParseCodepointRange(string(key))
		if err != nil {
			return err
		}
		name, err := jsonparser.ParseString(value)
		if err != nil {
			return err
		}
		entries = append(entries, flattab.NameEntry{Codepoint: r.First, Name: name})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return entries, nil
}

// LoadDecompositions reads the dm field of UnicodeData.json into
// decomposition entries. Entries with an empty mapping are skipped; a
// "<tag>" prefix marks a compatibility decomposition.
func LoadDecompositions(fsys fs.FS, path string) ([]flattab.DecompEntry, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, err
	}
	var entries []flattab.DecompEntry
	err = jsonparser.ObjectEach(data, func(key, value []byte, _ jsonparser.ValueType, _ int) error {
		r, err := ucd.ParseCodepointRange(string(key))
		if err != nil {
			return err
		}
		raw, err := jsonparser.GetString(value, "dm")
		if err != nil {
			if err == jsonparser.KeyPathNotFoundError {
				return nil
			}
			return err
		}
		if raw == "" {
			return nil
		}
		mapping, compat, err := parseDecomposition(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", r, err)
		}
		entries = append(entries, flattab.DecompEntry{
			Codepoint: r.First,
			Mapping:   mapping,
			Compat:    compat,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return entries, nil
}

// LoadCompositionExclusions reads CompositionExclusions.json, an array
// of code point ranges.
func LoadCompositionExclusions(fsys fs.FS, path string) (*flattab.ExclusionSet, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, err
	}
	var cps []rune
	var rerr error
	_, err = jsonparser.ArrayEach(data, func(item []byte, _ jsonparser.ValueType, _ int, _ error) {
		if rerr != nil {
			return
		}
		r, err := ucd.ParseCodepointRange(string(item))
		if err != nil {
			rerr = err
			return
		}
		for cp := r.First; cp <= r.Last; cp++ {
			cps = append(cps, cp)
		}
	})
	if err == nil {
		err = rerr
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return flattab.NewExclusionSet(cps), nil
}

// LoadAliases reads a flat alias table, e.g. PropertyAliases.json:
// a JSON object of alias -> full name.
func LoadAliases(fsys fs.FS, path string) (map[string]string, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, err
	}
	aliases := make(map[string]string)
	err = jsonparser.ObjectEach(data, func(key, value []byte, _ jsonparser.ValueType, _ int) error {
		v, err := jsonparser.ParseString(value)
		if err != nil {
			return err
		}
		aliases[string(key)] = v
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return aliases, nil
}

// LoadValueAliases reads PropertyValueAliases.json: one alias table per
// property.
func LoadValueAliases(fsys fs.FS, path string) (map[string]*ucd.AliasTable, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, err
	}
	tables := make(map[string]*ucd.AliasTable)
	err = jsonparser.ObjectEach(data, func(key, value []byte, _ jsonparser.ValueType, _ int) error {
		prop := string(key)
		aliases := make(map[string]string)
		if err := jsonparser.ObjectEach(value, func(k, v []byte, _ jsonparser.ValueType, _ int) error {
			name, err := jsonparser.ParseString(v)
			if err != nil {
				return err
			}
			aliases[string(k)] = name
			return nil
		}); err != nil {
			return err
		}
		tables[prop] = ucd.NewAliasTable(prop, aliases)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tables, nil
}
