package domain

// MaterialIndex builds an id-keyed lookup map, deduplicating by id with the
// first occurrence winning (source list order is meaningful for the rule
// engine's suggestion tie-break).
func MaterialIndex(materials []Material) map[string]Material {
	index := make(map[string]Material, len(materials))
	for _, m := range materials {
		if _, ok := index[m.ID]; !ok {
			index[m.ID] = m
		}
	}
	return index
}

// AccessoryIndex builds an id-keyed lookup map for accessory items.
func AccessoryIndex(items []AccessoryItem) map[string]AccessoryItem {
	index := make(map[string]AccessoryItem, len(items))
	for _, a := range items {
		if _, ok := index[a.ID]; !ok {
			index[a.ID] = a
		}
	}
	return index
}
