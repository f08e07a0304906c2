package handlers

import (
	"sort"

	"github.com/pennyhelp/esep-self-employment-hub/models"
)

// categoryDisplayOrder fixes the position of the scheme offerings on the
// public page. Names not in the list render after the known block, keeping
// their fetched relative order.
var categoryDisplayOrder = []string{
	"Pennyekart Free Registration",
	"Pennyekart Paid Registration",
	"Farmelife",
	"Organelife",
	"Foodelife",
	"Entrelife",
	"Job Card",
}

var categoryDisplayRank = func() map[string]int {
	rank := make(map[string]int, len(categoryDisplayOrder))
	for i, name := range categoryDisplayOrder {
		rank[name] = i
	}
	return rank
}()

func orderForDisplay(categories []models.Category) {
	unknown := len(categoryDisplayOrder)
	sort.SliceStable(categories, func(i, j int) bool {
		ri, ok := categoryDisplayRank[categories[i].Name]
		if !ok {
			ri = unknown
		}
		rj, ok := categoryDisplayRank[categories[j].Name]
		if !ok {
			rj = unknown
		}
		return ri < rj
	})
}
