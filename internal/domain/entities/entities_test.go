package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringListValueAndScan(t *testing.T) {
	v, err := StringList{"a", "b"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["a","b"]`, v)

	v, err = StringList(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)

	var s StringList
	require.NoError(t, s.Scan([]byte(`["x"]`)))
	assert.Equal(t, StringList{"x"}, s)

	require.NoError(t, s.Scan(nil))
	assert.Equal(t, StringList{}, s)

	assert.Error(t, s.Scan(42))
	assert.Error(t, s.Scan("not json"))
}

func TestMetaOf(t *testing.T) {
	img := &Image{}
	meta := MetaOf(img)
	require.NotNil(t, meta)
	meta.ID = "abc"
	assert.Equal(t, "abc", img.ID)

	assert.Nil(t, MetaOf(struct{}{}))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		v       Validator
		wantErr bool
	}{
		{"skill ok", Skill{Name: "Lighting", Level: 90}, false},
		{"skill level too high", Skill{Name: "Lighting", Level: 101}, true},
		{"skill level negative", Skill{Name: "Lighting", Level: -1}, true},
		{"skill without name", Skill{Level: 10}, true},
		{"image ok", Image{Title: "Look", Category: "fashion"}, false},
		{"image with video category", Image{Title: "Look", Category: "interview"}, true},
		{"image without title", Image{Category: "fashion"}, true},
		{"video ok", Video{Title: "Ep 1", Category: "tv-show"}, false},
		{"video with photo category", Video{Title: "Ep 1", Category: "covers"}, true},
		{"experience needs company", Experience{Title: "Director"}, true},
		{"project ok", Project{Title: "Book"}, false},
		{"award without title", Award{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.v.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestImageJSONHidesStorageKeys(t *testing.T) {
	img := Image{Title: "Look", Category: "fashion", StorageKey: "images/fashion/x.jpg"}
	img.Order = 3
	b, err := json.Marshal(img)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, float64(3), out["order"])
	assert.Contains(t, out, "id")
	assert.NotContains(t, out, "storage_key")
	assert.NotContains(t, out, "StorageKey")
}

func TestNormalize(t *testing.T) {
	s := Skill{Name: "Retouching"}
	s.Normalize()
	assert.Equal(t, DefaultSkillCategory, s.Category)

	p := Project{Title: "Book"}
	p.Normalize()
	assert.NotNil(t, p.Tags)
}
