package dto

import (
	"encoding/json"
	"testing"

	"portfolio/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillUpdateOnlyTouchesSetFields(t *testing.T) {
	skill := entities.Skill{Name: "Lighting", Level: 80, Years: "10", Category: "Photography"}
	skill.Order = 2

	var patch SkillUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"level": 95}`), &patch))
	patch.Apply(&skill)

	assert.Equal(t, 95, skill.Level)
	assert.Equal(t, "Lighting", skill.Name)
	assert.Equal(t, 2, skill.Order)
}

func TestZeroValuesAreApplied(t *testing.T) {
	img := entities.Image{Title: "Look", Featured: true}
	img.Order = 4

	var patch ImageUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"featured": false, "order": 0, "description": ""}`), &patch))
	patch.Apply(&img)

	assert.False(t, img.Featured)
	assert.Equal(t, 0, img.Order)
	assert.Equal(t, "Look", img.Title)
}

func TestExperienceHighlightsReplaced(t *testing.T) {
	exp := entities.Experience{Title: "Director", Highlights: entities.StringList{"a"}}

	var patch ExperienceUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"highlights": ["b", "c"]}`), &patch))
	patch.Apply(&exp)

	assert.Equal(t, entities.StringList{"b", "c"}, exp.Highlights)
}
