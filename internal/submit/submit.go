// Package submit dispatches view submissions to a running contacts service.
package submit

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"gitlab.com/dirk.krummacker/contacts-web/internal/view"
)

// HTTPSubmitter sends submissions the way a browser sends the forms of the
// contact pages.
type HTTPSubmitter struct {
	BaseURL string
	Client  *http.Client
}

// NewHTTPSubmitter returns a submitter against the service at baseURL.
func NewHTTPSubmitter(baseURL string) *HTTPSubmitter {
	return &HTTPSubmitter{BaseURL: strings.TrimRight(baseURL, "/"), Client: http.DefaultClient}
}

// Submit implements view.Submitter. GET submissions carry their fields in the
// query string, all others as a form-encoded body. Redirects are followed, and a
// final status of 400 or above is an error.
func (h *HTTPSubmitter) Submit(ctx context.Context, s view.Submission) error {
	target := h.BaseURL + s.Target
	var body io.Reader
	if s.Method == http.MethodGet {
		if len(s.Fields) > 0 {
			target += "?" + s.Fields.Encode()
		}
	} else {
		body = strings.NewReader(s.Fields.Encode())
	}
	req, err := http.NewRequestWithContext(ctx, s.Method, target, body)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	res, err := h.Client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	io.Copy(io.Discard, res.Body)
	if res.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("%s %s: %s", s.Method, s.Target, res.Status)
	}
	return nil
}
