package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pennyhelp/esep-self-employment-hub/models"
)

func namesOf(categories []models.Category) []string {
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.Name
	}
	return names
}

func TestOrderForDisplayPriorityNamesFirst(t *testing.T) {
	// Alphabetical order, as fetched from the database.
	categories := []models.Category{
		{Name: "Entrelife"},
		{Name: "Farmelife"},
		{Name: "Foodelife"},
		{Name: "Job Card"},
		{Name: "Organelife"},
		{Name: "Pennyekart Free Registration"},
		{Name: "Pennyekart Paid Registration"},
	}

	orderForDisplay(categories)

	assert.Equal(t, categoryDisplayOrder, namesOf(categories))
}

func TestOrderForDisplayUnknownNamesKeepStableOrderAtEnd(t *testing.T) {
	categories := []models.Category{
		{Name: "Aqua Farming"},
		{Name: "Banana Chips Unit"},
		{Name: "Farmelife"},
		{Name: "Job Card"},
		{Name: "Pennyekart Free Registration"},
	}

	orderForDisplay(categories)

	assert.Equal(t, []string{
		"Pennyekart Free Registration",
		"Farmelife",
		"Job Card",
		"Aqua Farming",
		"Banana Chips Unit",
	}, namesOf(categories))
}

func TestOrderForDisplayEmpty(t *testing.T) {
	var categories []models.Category
	orderForDisplay(categories)
	assert.Empty(t, categories)
}
