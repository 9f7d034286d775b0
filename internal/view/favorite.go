package view

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// FavoriteField is the name of the form field submitted by the favorite toggle.
const FavoriteField = "favorite"

// Favorite is the single-button form that flips the favorite flag of a contact.
// The button always submits the negation of the flag it was rendered with; the
// server applies it.
type Favorite struct {
	On         bool
	Label      string
	Glyph      string
	Submission Submission
}

// NewFavorite builds the toggle for the given flag, submitting to route.
func NewFavorite(favorite bool, route string) Favorite {
	f := Favorite{
		On:    favorite,
		Label: "Add to favorites",
		Glyph: "☆",
	}
	if favorite {
		f.Label = "Remove from favorites"
		f.Glyph = "★"
	}
	f.Submission = Submission{
		Target: route,
		Method: http.MethodPost,
		Fields: url.Values{FavoriteField: {strconv.FormatBool(!favorite)}},
	}
	return f
}

// Value is the submitted field value, "true" or "false".
func (f Favorite) Value() string {
	return f.Submission.Fields.Get(FavoriteField)
}

// Toggle submits the flip immediately.
func (f Favorite) Toggle(ctx context.Context, submitter Submitter) error {
	return submitter.Submit(ctx, f.Submission)
}

// ParseFavorite reads the submitted value of a favorite toggle. Only "true" and
// "false" are accepted.
func ParseFavorite(value string) (bool, bool) {
	switch value {
	case "true":
		return true, true
	case "false":
		return false, true
	default:
		return false, false
	}
}
