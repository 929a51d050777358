package ucd

import "strings"

// AliasTable resolves property values between their short alias and
// full name forms. The table is built once per property at load time so
// that resolution is a constant-time lookup in either direction.
type AliasTable struct {
	property string
	byKey    map[string]string // alias -> full name
	byName   map[string]string // full name -> alias
	loose    map[string]string // folded full name -> alias
}

// NewAliasTable builds the bidirectional alias table for a property
// from the alias -> name pairs of its PropertyValueAliases entry.
func NewAliasTable(property string, aliases map[string]string) *AliasTable {
	t := &AliasTable{
		property: property,
		byKey:    make(map[string]string, len(aliases)),
		byName:   make(map[string]string, len(aliases)),
		loose:    make(map[string]string, len(aliases)),
	}
	for alias, name := range aliases {
		t.byKey[alias] = name
		t.byName[name] = alias
		t.loose[foldValueName(name)] = alias
	}
	return t
}

// Property returns the property this table resolves values for.
func (t *AliasTable) Property() string {
	return t.property
}

// Abbr resolves a full value name to its short alias.
func (t *AliasTable) Abbr(name string) (string, error) {
	if alias, ok := t.byName[name]; ok {
		return alias, nil
	}
	return "", &MissingAliasError{Property: t.property, Value: name}
}

// AbbrLoose resolves a full value name using Unicode loose matching:
// case, hyphens, underscores and spaces are not significant. The Blocks
// data file spells names differently from PropertyValueAliases, so its
// values resolve through this form.
func (t *AliasTable) AbbrLoose(name string) (string, error) {
	if alias, ok := t.loose[foldValueName(name)]; ok {
		return alias, nil
	}
	return "", &MissingAliasError{Property: t.property, Value: name}
}

// Value resolves an alias key to its full form. The ccc alias table is
// keyed by the numeric combining class, which resolves in this
// direction.
func (t *AliasTable) Value(key string) (string, error) {
	if v, ok := t.byKey[key]; ok {
		return v, nil
	}
	return "", &MissingAliasError{Property: t.property, Value: key}
}

func foldValueName(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")
	return strings.ToUpper(s)
}
