package schedule

import "strings"

// lookup is one step of a first-match-wins resolution chain.
type lookup[T any] func() (T, bool)

// resolve evaluates the steps in order and returns the first hit, keeping
// the precedence order of layered configuration auditable in one place.
func resolve[T any](steps ...lookup[T]) (T, bool) {
	for _, step := range steps {
		if v, ok := step(); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func inDict(dict map[string]string, key string) lookup[string] {
	return func() (string, bool) {
		v, ok := dict[key]
		return v, ok
	}
}

// Labels holds the merged display dictionaries: clothing codes, pack item
// codes and the club-name abbreviation table.
type Labels struct {
	clothing  map[string]string
	pack      map[string]string
	clubShort map[string]string
}

// NewLabels merges the built-in default dictionaries with per-dataset
// overrides; the dataset wins on key collision.
func NewLabels(defaults LabelDefaults, clothing, pack, clubShort map[string]string) Labels {
	return Labels{
		clothing:  mergeDict(defaults.Clothing, clothing),
		pack:      mergeDict(defaults.Pack, pack),
		clubShort: mergeDict(defaults.ClubShortNames, clubShort),
	}
}

// LabelDefaults carries the compiled-in dictionaries injected at startup.
type LabelDefaults struct {
	Clothing       map[string]string
	Pack           map[string]string
	ClubShortNames map[string]string
}

func mergeDict(base, override map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(override))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range override {
		out[k] = v
	}
	return out
}

// Clothing resolves a clothing code to its display label: dictionary entry,
// else the raw code, else empty when no code is set at all.
func (l Labels) Clothing(code string) string {
	if code == "" {
		return ""
	}
	v, _ := resolve(
		inDict(l.clothing, code),
		func() (string, bool) { return code, true },
	)
	return v
}

// Pack resolves a pack-item code to its display label, falling back to the
// raw code.
func (l Labels) Pack(code string) string {
	v, _ := resolve(
		inDict(l.pack, code),
		func() (string, bool) { return code, true },
	)
	return v
}

// ClubShort returns the display-friendly short name for a full activity
// name. Parenthetical "(selective)" qualifiers are stripped before the
// abbreviation table lookup; names absent from the table keep their cleaned
// full form.
func (l Labels) ClubShort(fullName string) string {
	clean := stripSelective(fullName)
	v, _ := resolve(
		inDict(l.clubShort, clean),
		func() (string, bool) { return clean, true },
	)
	return v
}

func stripSelective(name string) string {
	name = strings.ReplaceAll(name, "(selective)", "")
	name = strings.ReplaceAll(name, "(Selective)", "")
	return strings.Join(strings.Fields(name), " ")
}
