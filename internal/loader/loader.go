// Package loader implements the read path of the contact detail page: it turns
// the contactId route parameter into either a contact snapshot or a not-found
// outcome before anything is rendered.
package loader

import (
	"context"

	"gitlab.com/dirk.krummacker/contacts-web/internal/apperrors"
	"gitlab.com/dirk.krummacker/contacts-web/internal/model"
)

// MissingContactID is the message of the error returned for an empty identifier.
const MissingContactID = "Missing contactId param"

// Store is the record store the loader reads from. It returns a nil contact
// and a nil error when no record matches.
type Store interface {
	GetContact(ctx context.Context, id string) (*model.Contact, error)
}

// Outcome distinguishes the successful results of Load.
type Outcome int

const (
	Found Outcome = iota + 1
	NotFound
)

func (o Outcome) String() string {
	switch o {
	case Found:
		return "found"
	case NotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// Result is the outcome of a lookup. Contact is set only for Found.
type Result struct {
	Outcome Outcome
	Contact *model.Contact
}

// Data is the payload handed to the view, serialized as {"contact": {...}}.
type Data struct {
	Contact model.Contact `json:"contact"`
}

// Data returns the view payload of a Found result.
func (r Result) Data() Data {
	return Data{Contact: *r.Contact}
}

// Load fetches the contact with the given id.
//
// An empty id means the route was wired up wrongly; Load fails with an
// invariant_violation error without touching the store. Store failures are
// returned unchanged.
func Load(ctx context.Context, store Store, contactID string) (Result, error) {
	if contactID == "" {
		return Result{}, apperrors.New(apperrors.CodeInvariantViolation, MissingContactID)
	}
	contact, err := store.GetContact(ctx, contactID)
	if err != nil {
		return Result{}, err
	}
	if contact == nil {
		return Result{Outcome: NotFound}, nil
	}
	return Result{Outcome: Found, Contact: contact}, nil
}
