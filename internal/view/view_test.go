package view

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/dirk.krummacker/contacts-web/internal/model"
)

// recordingSubmitter remembers every submission it is asked to dispatch.
type recordingSubmitter struct {
	submissions []Submission
	err         error
}

func (r *recordingSubmitter) Submit(_ context.Context, s Submission) error {
	r.submissions = append(r.submissions, s)
	return r.err
}

func stringPtr(s string) *string {
	return &s
}

func TestNameRendering(t *testing.T) {
	tests := []struct {
		first, last *string
		hasName     bool
		name        string
	}{
		{nil, nil, false, ""},
		{stringPtr(""), stringPtr(""), false, ""},
		{stringPtr("Ada"), stringPtr(""), true, "Ada "},
		{stringPtr("Ada"), nil, true, "Ada "},
		{nil, stringPtr("Lovelace"), true, " Lovelace"},
		{stringPtr("Ada"), stringPtr("Lovelace"), true, "Ada Lovelace"},
	}
	for _, tt := range tests {
		d := NewDetail(model.Contact{Id: "a1", First: tt.first, Last: tt.last})
		assert.Equal(t, tt.hasName, d.HasName)
		assert.Equal(t, tt.name, d.Name)
	}
}

func TestOptionalFields(t *testing.T) {
	d := NewDetail(model.Contact{Id: "a1", Twitter: stringPtr("ada"), Notes: stringPtr("math")})
	assert.Equal(t, "https://twitter.com/ada", d.TwitterURL)
	assert.Equal(t, "ada", d.Twitter)
	assert.Equal(t, "math", d.Notes)
	assert.Equal(t, "", d.Avatar)

	d = NewDetail(model.Contact{Id: "a1"})
	assert.Equal(t, "", d.TwitterURL)
	assert.Equal(t, "", d.Notes)
}

func TestFavorite(t *testing.T) {
	on := NewFavorite(true, "/contacts/a1")
	assert.Equal(t, "false", on.Value())
	assert.Equal(t, "Remove from favorites", on.Label)
	assert.Equal(t, "★", on.Glyph)
	assert.Equal(t, http.MethodPost, on.Submission.Method)
	assert.Equal(t, "/contacts/a1", on.Submission.Target)

	off := NewFavorite(false, "/contacts/a1")
	assert.Equal(t, "true", off.Value())
	assert.Equal(t, "Add to favorites", off.Label)
	assert.Equal(t, "☆", off.Glyph)

	// Applying the submitted value twice returns to the original flag.
	for _, start := range []bool{true, false} {
		once, ok := ParseFavorite(NewFavorite(start, "/").Value())
		require.True(t, ok)
		twice, ok := ParseFavorite(NewFavorite(once, "/").Value())
		require.True(t, ok)
		assert.Equal(t, !start, once)
		assert.Equal(t, start, twice)
	}
}

func TestFavoriteToggle(t *testing.T) {
	submitter := &recordingSubmitter{}
	d := NewDetail(model.Contact{Id: "a1"})
	require.NoError(t, d.Favorite.Toggle(context.Background(), submitter))
	require.Len(t, submitter.submissions, 1)
	assert.Equal(t, "/contacts/a1", submitter.submissions[0].Target)
	assert.Equal(t, "true", submitter.submissions[0].Fields.Get(FavoriteField))
}

func TestParseFavorite(t *testing.T) {
	for _, value := range []string{"", "TRUE", "1", "yes"} {
		_, ok := ParseFavorite(value)
		assert.False(t, ok, value)
	}
}

func TestEditSubmission(t *testing.T) {
	d := NewDetail(model.Contact{Id: "a 1"})
	assert.Equal(t, "/contacts/a%201", d.Route())
	assert.Equal(t, "/contacts/a%201/edit", d.Edit.Target)
	assert.Equal(t, http.MethodGet, d.Edit.Method)
	assert.Empty(t, d.Edit.Fields)
}

func TestDeleteDeclined(t *testing.T) {
	submitter := &recordingSubmitter{}
	d := NewDetail(model.Contact{Id: "a1"})

	var asked string
	sent, err := d.Delete(context.Background(), submitter, func(prompt string) bool {
		asked = prompt
		return false
	})
	assert.NoError(t, err)
	assert.False(t, sent)
	assert.Equal(t, DeletePrompt, asked)
	assert.Empty(t, submitter.submissions)
}

func TestDeleteConfirmed(t *testing.T) {
	submitter := &recordingSubmitter{}
	d := NewDetail(model.Contact{Id: "a1"})

	sent, err := d.Delete(context.Background(), submitter, func(string) bool { return true })
	assert.NoError(t, err)
	assert.True(t, sent)
	require.Len(t, submitter.submissions, 1)
	assert.Equal(t, http.MethodPost, submitter.submissions[0].Method)
	assert.Equal(t, "/contacts/a1/destroy", submitter.submissions[0].Target)
	assert.Empty(t, submitter.submissions[0].Fields)
}

func TestDeleteSubmitError(t *testing.T) {
	submitter := &recordingSubmitter{err: errors.New("connection refused")}
	d := NewDetail(model.Contact{Id: "a1"})

	sent, err := d.Delete(context.Background(), submitter, func(string) bool { return true })
	assert.True(t, sent)
	assert.Error(t, err)
}

func TestConfirmationPending(t *testing.T) {
	pending := NewDetail(model.Contact{Id: "a1"}).RequestDelete()
	assert.Equal(t, DeletePrompt, pending.Prompt)

	_, ok := pending.Confirm(false)
	assert.False(t, ok)
	submission, ok := pending.Confirm(true)
	assert.True(t, ok)
	assert.Equal(t, "/contacts/a1/destroy", submission.Target)
}

func TestRenderFullContact(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, NewDetail(model.Contact{
		Id:       "a1",
		First:    stringPtr("Ada"),
		Last:     stringPtr("Lovelace"),
		Avatar:   stringPtr("https://example.com/ada.png"),
		Twitter:  stringPtr("ada"),
		Notes:    stringPtr("first programmer"),
		Favorite: true,
	}))
	require.NoError(t, err)
	html := buf.String()
	assert.Contains(t, html, `<h1>Ada Lovelace <form method="post" action="/contacts/a1">`)
	assert.Contains(t, html, `src="https://example.com/ada.png"`)
	assert.Contains(t, html, `alt="Ada Lovelace avatar"`)
	assert.Contains(t, html, `<a href="https://twitter.com/ada">ada</a>`)
	assert.Contains(t, html, `<p id="notes">first programmer</p>`)
	assert.Contains(t, html, `aria-label="Remove from favorites" name="favorite" value="false">★</button>`)
	assert.Contains(t, html, `<form action="/contacts/a1/edit">`)
	assert.Contains(t, html, `<form action="/contacts/a1/destroy" method="post" onsubmit="return confirm(`)
}

func TestRenderEmptyContact(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, NewDetail(model.Contact{Id: "a1"})))
	html := buf.String()
	assert.Contains(t, html, `<h1><i>No Name</i> <form`)
	assert.Contains(t, html, `aria-label="Add to favorites" name="favorite" value="true">☆</button>`)
	assert.NotContains(t, html, `id="twitter"`)
	assert.NotContains(t, html, `id="notes"`)
	assert.Contains(t, html, `<img alt="  avatar" src="">`)
}

func TestRenderEscapesUserInput(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, NewDetail(model.Contact{Id: "a1", Notes: stringPtr("<script>alert(1)</script>")})))
	assert.NotContains(t, buf.String(), "<script>alert(1)</script>")
}

func TestNewEditForm(t *testing.T) {
	form := NewEditForm(model.Contact{Id: "a1", First: stringPtr("Ada")})
	assert.Equal(t, "Ada", form.First)
	assert.Equal(t, "", form.Last)
	assert.Equal(t, "/contacts/a1/edit", form.Action)
	assert.Equal(t, "/contacts/a1", form.Cancel)
}

func TestNewIndex(t *testing.T) {
	entries := NewIndex([]model.Contact{
		{Id: "a1", First: stringPtr("Ada"), Last: stringPtr("Lovelace"), Favorite: true},
		{Id: "b2"},
	})
	require.Len(t, entries, 2)
	assert.Equal(t, IndexEntry{Name: "Ada Lovelace", HasName: true, Favorite: true, Path: "/contacts/a1"}, entries[0])
	assert.False(t, entries[1].HasName)
	assert.Equal(t, "/contacts/b2", entries[1].Path)
}

// TestTemplatesParsedOnce expects the router and Render to share one template set.
func TestTemplatesParsedOnce(t *testing.T) {
	assert.Same(t, Templates(), Templates())
	for _, name := range []string{"contact.html", "edit.html", "index.html", "notfound.html", "error.html"} {
		assert.NotNil(t, Templates().Lookup(name), name)
	}
}
