package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awardpool/awardpool/internal/entities"
	"github.com/awardpool/awardpool/internal/parsers"
)

func TestExtractUniquePeopleFirstSeenWins(t *testing.T) {
	event := &parsers.ParsedEvent{
		Categories: []parsers.ParsedCategory{
			{
				Name: "Best Actor",
				Nominations: []parsers.ParsedNomination{
					{PersonName: "Person X", PersonSlug: "Person_X", PersonImageURL: "https://img/x.jpg"},
					{PersonName: "Person Y", PersonSlug: "Person_Y"},
				},
			},
			{
				Name: "Best Director",
				Nominations: []parsers.ParsedNomination{
					// same slug, different rendering of the name
					{PersonName: "Person X.", PersonSlug: "Person_X"},
					{WorkTitle: "Work A", WorkSlug: "Work_A"},
				},
			},
		},
	}

	people := ExtractUniquePeople(event)
	require.Len(t, people, 2)
	assert.Equal(t, "Person_X", people[0].Slug)
	assert.Equal(t, "Person X", people[0].Name, "first occurrence wins")
	assert.Equal(t, "https://img/x.jpg", people[0].ImageURL)
	assert.Equal(t, "Person_Y", people[1].Slug)
}

func TestExtractUniqueWorks(t *testing.T) {
	event := &parsers.ParsedEvent{
		Categories: []parsers.ParsedCategory{
			{
				Name: "Best Original Song",
				Nominations: []parsers.ParsedNomination{
					{WorkTitle: "Work A", WorkSlug: "Work_A", WorkYear: 2023},
					{WorkTitle: "Work B", WorkSlug: "Work_B"},
				},
			},
			{
				Name: "Best Picture",
				Nominations: []parsers.ParsedNomination{
					{WorkTitle: "Work A", WorkSlug: "Work_A"},
					{WorkTitle: "Work A", WorkSlug: "Work_A"},
				},
			},
		},
	}

	works := ExtractUniqueWorks(event)
	require.Len(t, works, 2, "repeated slugs collapse to one record")
	assert.Equal(t, "Work_A", works[0].Slug)
	assert.Equal(t, 2023, works[0].Year)
	assert.Equal(t, entities.WorkTypeSong, works[0].Type, "type comes from the first category seen")
	assert.Equal(t, "Work_B", works[1].Slug)
}

func TestInferWorkType(t *testing.T) {
	tests := []struct {
		category string
		want     entities.WorkType
	}{
		{"Best Original Song", entities.WorkTypeSong},
		{"Best Original Score", entities.WorkTypeAlbum},
		{"Album of the Year", entities.WorkTypeAlbum},
		{"Outstanding Drama Series", entities.WorkTypeTVShow},
		{"Best Television Movie", entities.WorkTypeTVShow},
		{"Best Play", entities.WorkTypePlay},
		{"Best Musical", entities.WorkTypePlay},
		{"Best Novel", entities.WorkTypeBook},
		{"Best Picture", entities.WorkTypeFilm},
		{"Best Actor", entities.WorkTypeFilm},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			assert.Equal(t, tt.want, InferWorkType(tt.category))
		})
	}
}

func TestBuildNominationText(t *testing.T) {
	assert.Equal(t, "Person X for Work A", BuildNominationText("Person X", "Work A"))
	assert.Equal(t, "Person X", BuildNominationText("Person X", ""))
	assert.Equal(t, "Work A", BuildNominationText("", "Work A"))
	assert.Equal(t, "Unknown Nomination", BuildNominationText("", ""))
}

func TestBuildPreview(t *testing.T) {
	event := &parsers.ParsedEvent{
		Name: "1st Example Awards",
		Slug: "1st_Example_Awards",
		Categories: []parsers.ParsedCategory{
			{
				Name:       "Best Picture",
				PointValue: 2,
				Nominations: []parsers.ParsedNomination{
					{WorkTitle: "Work A", WorkSlug: "Work_A", IsWinner: true},
					{WorkTitle: "Work B", WorkSlug: "Work_B"},
					{WorkTitle: "Work C", WorkSlug: "Work_C"},
					{WorkTitle: "Work D", WorkSlug: "Work_D"},
					{WorkTitle: "Work E", WorkSlug: "Work_E"},
				},
			},
			{
				Name:       "Best Actor",
				PointValue: 1,
				Nominations: []parsers.ParsedNomination{
					{PersonName: "Person X", PersonSlug: "Person_X", WorkTitle: "Work A", WorkSlug: "Work_A", IsWinner: true},
				},
			},
		},
	}

	preview := BuildPreview(event)

	assert.Equal(t, "1st Example Awards", preview.EventName)
	assert.Equal(t, "1st_Example_Awards", preview.EventSlug)
	assert.Equal(t, 2, preview.CategoryCount)
	assert.Equal(t, 6, preview.NominationCount)

	require.Len(t, preview.Categories, 2)
	picture := preview.Categories[0]
	assert.Equal(t, "Best Picture", picture.Name)
	assert.Equal(t, 2, picture.PointValue)
	assert.Equal(t, 5, picture.NominationCount)
	require.Len(t, picture.Sample, 3, "sample is capped")
	assert.Equal(t, "Work A", picture.Sample[0].Text)
	assert.True(t, picture.Sample[0].IsWinner)

	actor := preview.Categories[1]
	require.Len(t, actor.Sample, 1)
	assert.Equal(t, "Person X for Work A", actor.Sample[0].Text)
}
