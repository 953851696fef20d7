package curation

// CuratedSet is the selection to materialize: at most one key per (icon, style) pair.
type CuratedSet struct {
	Keys []IconKey
}

// Len returns the number of curated keys.
func (c CuratedSet) Len() int {
	return len(c.Keys)
}

// CountByStyle returns how many keys were curated for each style.
func (c CuratedSet) CountByStyle() map[string]int {
	counts := make(map[string]int)
	for _, k := range c.Keys {
		counts[k.Style]++
	}
	return counts
}

// Lookup returns the curated key for an (icon, style) pair.
func (c CuratedSet) Lookup(icon, style string) (IconKey, bool) {
	for _, k := range c.Keys {
		if k.Icon == icon && k.Style == style {
			return k, true
		}
	}
	return IconKey{}, false
}

type iconStyle struct {
	icon  string
	style string
}

// Select picks one representative asset per (icon, style) pair for the given styles.
//
// Icons that ship at defaultSize in any style are taken at that size only. Where
// such an icon lacks a defaultSize file for a style, that pair gets no entry.
// Icons that never ship at defaultSize fall back to the largest size available for
// each (icon, style) pair. Styles outside styles are ignored. Keys are returned in
// IconKey order.
func Select(index AssetIndex, styles []string, defaultSize int) CuratedSet {
	wanted := toSet(styles)
	defaultSized := defaultSizedIcons(index, defaultSize)

	chosen := make(map[iconStyle]IconKey)
	for key := range index {
		if _, ok := wanted[key.Style]; !ok {
			continue
		}
		pair := iconStyle{icon: key.Icon, style: key.Style}

		if _, ok := defaultSized[key.Icon]; ok {
			if key.Size == defaultSize {
				chosen[pair] = key
			}
			continue
		}

		if cur, ok := chosen[pair]; !ok || key.Size > cur.Size {
			chosen[pair] = key
		}
	}

	keys := make([]IconKey, 0, len(chosen))
	for _, k := range chosen {
		keys = append(keys, k)
	}
	sortKeys(keys)
	return CuratedSet{Keys: keys}
}
