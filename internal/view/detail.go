package view

import (
	"context"
	"net/http"
	"net/url"

	"gitlab.com/dirk.krummacker/contacts-web/internal/model"
)

// DeletePrompt is the question asked before a contact is deleted.
const DeletePrompt = "Please confirm you want to delete this record."

// Detail is everything the contact detail page shows, computed from one contact
// snapshot. It holds no state of its own.
type Detail struct {
	ID        string
	Avatar    string
	AvatarAlt string
	// Name is "first last" and is only meaningful when HasName is set.
	Name       string
	HasName    bool
	Twitter    string
	TwitterURL string
	Notes      string
	Favorite   Favorite
	Edit       Submission

	route string
}

// NewDetail computes the detail page of the contact.
func NewDetail(contact model.Contact) Detail {
	first := model.Value(contact.First)
	last := model.Value(contact.Last)
	route := ContactPath(contact.Id)
	d := Detail{
		ID:        contact.Id,
		Avatar:    model.Value(contact.Avatar),
		AvatarAlt: first + " " + last + " avatar",
		HasName:   first != "" || last != "",
		Twitter:   model.Value(contact.Twitter),
		Notes:     model.Value(contact.Notes),
		Favorite:  NewFavorite(contact.Favorite, route),
		Edit:      navigation(route + "/edit"),
		route:     route,
	}
	if d.HasName {
		d.Name = first + " " + last
	}
	if d.Twitter != "" {
		d.TwitterURL = "https://twitter.com/" + d.Twitter
	}
	return d
}

// Route is the path of the detail page itself.
func (d Detail) Route() string {
	return d.route
}

// DeletePrompt is exposed for the template.
func (d Detail) DeletePrompt() string {
	return DeletePrompt
}

// DeleteSubmission is the submission sent once a delete has been confirmed.
func (d Detail) DeleteSubmission() Submission {
	return Submission{Target: d.route + "/destroy", Method: http.MethodPost, Fields: url.Values{}}
}

// ConfirmationPending is a delete that waits for the user's answer.
type ConfirmationPending struct {
	Prompt     string
	submission Submission
}

// RequestDelete starts the two-step delete.
func (d Detail) RequestDelete() ConfirmationPending {
	return ConfirmationPending{Prompt: DeletePrompt, submission: d.DeleteSubmission()}
}

// Confirm resolves the pending delete. A declined confirmation yields no
// submission and false.
func (p ConfirmationPending) Confirm(accepted bool) (Submission, bool) {
	if !accepted {
		return Submission{}, false
	}
	return p.submission, true
}

// Delete asks confirm and dispatches the delete only if it answers yes. It
// reports whether a submission was sent.
func (d Detail) Delete(ctx context.Context, submitter Submitter, confirm func(prompt string) bool) (bool, error) {
	pending := d.RequestDelete()
	submission, ok := pending.Confirm(confirm(pending.Prompt))
	if !ok {
		return false, nil
	}
	return true, submitter.Submit(ctx, submission)
}

// EditForm is the data of the edit page of a contact.
type EditForm struct {
	ID      string
	First   string
	Last    string
	Avatar  string
	Twitter string
	Notes   string
	Action  string
	Cancel  string
}

// NewEditForm prefills the edit page with the contact's current values.
func NewEditForm(contact model.Contact) EditForm {
	route := ContactPath(contact.Id)
	return EditForm{
		ID:      contact.Id,
		First:   model.Value(contact.First),
		Last:    model.Value(contact.Last),
		Avatar:  model.Value(contact.Avatar),
		Twitter: model.Value(contact.Twitter),
		Notes:   model.Value(contact.Notes),
		Action:  route + "/edit",
		Cancel:  route,
	}
}

// IndexEntry is one line of the contact list.
type IndexEntry struct {
	Name     string
	HasName  bool
	Favorite bool
	Path     string
}

// NewIndex lists the contacts in the given order.
func NewIndex(contacts []model.Contact) []IndexEntry {
	entries := make([]IndexEntry, 0, len(contacts))
	for _, contact := range contacts {
		d := NewDetail(contact)
		entries = append(entries, IndexEntry{
			Name:     d.Name,
			HasName:  d.HasName,
			Favorite: contact.Favorite,
			Path:     d.route,
		})
	}
	return entries
}
