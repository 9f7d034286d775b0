package view

import (
	"context"
	"net/http"
	"net/url"
)

// Submission describes an outbound form submission: where it goes, with which
// method, and which fields it carries.
type Submission struct {
	Target string
	Method string
	Fields url.Values
}

// Submitter dispatches submissions. The browser does this for rendered pages;
// HTTP clients and tests inject their own implementation.
type Submitter interface {
	Submit(ctx context.Context, s Submission) error
}

// SubmitterFunc adapts a plain function to the Submitter interface.
type SubmitterFunc func(ctx context.Context, s Submission) error

// Submit calls f(ctx, s).
func (f SubmitterFunc) Submit(ctx context.Context, s Submission) error {
	return f(ctx, s)
}

// ContactPath is the route of the detail page of the contact with the given id.
func ContactPath(id string) string {
	return "/contacts/" + url.PathEscape(id)
}

// navigation returns a GET submission without fields.
func navigation(target string) Submission {
	return Submission{Target: target, Method: http.MethodGet, Fields: url.Values{}}
}
