// Package category holds the closed sets of photo and video categories.
package category

import (
	"errors"
	"fmt"
)

// Kind is the media kind and doubles as the API resource name.
type Kind string

const (
	KindPhoto Kind = "images"
	KindVideo Kind = "videos"
)

func (k Kind) Valid() bool {
	return k == KindPhoto || k == KindVideo
}

// Noun is the word used in default descriptions.
func (k Kind) Noun() string {
	if k == KindVideo {
		return "video"
	}
	return "photography"
}

type Category string

const (
	Fashion          Category = "fashion"
	Covers           Category = "covers"
	StillLife        Category = "stillLife"
	ArtPhotoPainting Category = "artPhotoPainting"
	Editorial        Category = "editorial"

	TVShow         Category = "tv-show"
	Interview      Category = "interview"
	BehindScenes   Category = "behind-scenes"
	Workshop       Category = "workshop"
	ArtDirection   Category = "art-direction"
	MelroseHeights Category = "melrose-heights"
)

var ErrUnknown = errors.New("unknown category")

type Option struct {
	Value Category `json:"value"`
	Label string   `json:"label"`
}

var photoOptions = []Option{
	{Fashion, "Fashion Photography"},
	{Covers, "Magazine Covers"},
	{StillLife, "Still Life Photography"},
	{ArtPhotoPainting, "Art Photo Painting"},
	{Editorial, "Editorial Photography"},
}

var videoOptions = []Option{
	{TVShow, "TV Show Episodes"},
	{Interview, "Celebrity Interviews"},
	{BehindScenes, "Behind the Scenes"},
	{Workshop, "Photography Workshops"},
	{ArtDirection, "Art Direction Process"},
	{MelroseHeights, "Melrose Heights Content"},
}

// Options returns the categories of k in display order.
func Options(k Kind) []Option {
	var src []Option
	switch k {
	case KindPhoto:
		src = photoOptions
	case KindVideo:
		src = videoOptions
	}
	out := make([]Option, len(src))
	copy(out, src)
	return out
}

func (c Category) lookup() (Kind, Option, bool) {
	for _, o := range photoOptions {
		if o.Value == c {
			return KindPhoto, o, true
		}
	}
	for _, o := range videoOptions {
		if o.Value == c {
			return KindVideo, o, true
		}
	}
	return "", Option{}, false
}

// Kind reports which media kind c belongs to, or "" when c is unknown.
func (c Category) Kind() Kind {
	k, _, _ := c.lookup()
	return k
}

func (c Category) Label() string {
	if _, o, ok := c.lookup(); ok {
		return o.Label
	}
	return string(c)
}

func (c Category) Valid() bool {
	_, _, ok := c.lookup()
	return ok
}

// Parse accepts s only if it is one of k's categories.
func Parse(k Kind, s string) (Category, error) {
	c := Category(s)
	if c.Kind() != k || !k.Valid() {
		return "", fmt.Errorf("%w %q for %s", ErrUnknown, s, k)
	}
	return c, nil
}

// Values returns the raw category strings of k.
func Values(k Kind) []string {
	opts := Options(k)
	out := make([]string, 0, len(opts))
	for _, o := range opts {
		out = append(out, string(o.Value))
	}
	return out
}
