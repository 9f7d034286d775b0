package service

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gitlab.com/dirk.krummacker/contacts-web/internal/apperrors"
	"gitlab.com/dirk.krummacker/contacts-web/internal/loader"
	"gitlab.com/dirk.krummacker/contacts-web/internal/model"
	"gitlab.com/dirk.krummacker/contacts-web/internal/view"
)

// index lists all contacts.
func (s *Service) index(c *gin.Context) {
	contacts, err := s.contacts.ListContacts(c.Request.Context())
	if err != nil {
		s.failPage(c, err)
		return
	}
	c.HTML(http.StatusOK, "index.html", view.NewIndex(contacts))
}

// showContact renders the detail page of the contact named by the URL.
//
//	> curl http://localhost:8080/contacts/0b9c1d8e-7f7a-4c59-9a55-1c6f3f0e2a11
func (s *Service) showContact(c *gin.Context) {
	result, err := s.load(c)
	if err != nil {
		s.failPage(c, err)
		return
	}
	if result.Outcome == loader.NotFound {
		notFoundPage(c)
		return
	}
	c.HTML(http.StatusOK, "contact.html", view.NewDetail(*result.Contact))
}

// favoriteContact applies the value submitted by the favorite toggle and sends the
// browser back to the detail page.
//
//	> curl http://localhost:8080/contacts/0b9c1d8e-7f7a-4c59-9a55-1c6f3f0e2a11 --data "favorite=true"
func (s *Service) favoriteContact(c *gin.Context) {
	favorite, ok := view.ParseFavorite(c.PostForm(view.FavoriteField))
	if !ok {
		s.failPage(c, apperrors.New(apperrors.CodeInvalidInput, "invalid favorite value"))
		return
	}
	id := c.Param("contactId")
	found, err := s.contacts.SetFavorite(c.Request.Context(), id, favorite)
	if err != nil {
		s.failPage(c, err)
		return
	}
	if !found {
		notFoundPage(c)
		return
	}
	s.metrics.ObserveSubmission("favorite")
	c.Redirect(http.StatusSeeOther, view.ContactPath(id))
}

// editContact renders the edit form of a contact.
func (s *Service) editContact(c *gin.Context) {
	result, err := s.load(c)
	if err != nil {
		s.failPage(c, err)
		return
	}
	if result.Outcome == loader.NotFound {
		notFoundPage(c)
		return
	}
	c.HTML(http.StatusOK, "edit.html", view.NewEditForm(*result.Contact))
}

// updateContact stores the submitted edit form. Fields missing from the form are
// left untouched, fields submitted empty are cleared.
func (s *Service) updateContact(c *gin.Context) {
	var update model.ContactUpdate
	for field, target := range map[string]**string{
		"first":   &update.First,
		"last":    &update.Last,
		"avatar":  &update.Avatar,
		"twitter": &update.Twitter,
		"notes":   &update.Notes,
	} {
		if value, ok := c.GetPostForm(field); ok {
			*target = &value
		}
	}
	id := c.Param("contactId")
	found, err := s.contacts.UpdateContact(c.Request.Context(), id, update)
	if err != nil {
		s.failPage(c, err)
		return
	}
	if !found {
		notFoundPage(c)
		return
	}
	s.metrics.ObserveSubmission("edit")
	c.Redirect(http.StatusSeeOther, view.ContactPath(id))
}

// destroyContact deletes a contact and sends the browser to the contact list.
func (s *Service) destroyContact(c *gin.Context) {
	found, err := s.contacts.DeleteContact(c.Request.Context(), c.Param("contactId"))
	if err != nil {
		s.failPage(c, err)
		return
	}
	if !found {
		notFoundPage(c)
		return
	}
	s.metrics.ObserveSubmission("destroy")
	c.Redirect(http.StatusSeeOther, "/")
}

// createContact creates an empty contact and opens its edit form.
func (s *Service) createContact(c *gin.Context) {
	contact, err := s.contacts.CreateContact(c.Request.Context(), model.Contact{})
	if err != nil {
		s.failPage(c, err)
		return
	}
	s.metrics.ObserveSubmission("create")
	c.Redirect(http.StatusSeeOther, view.ContactPath(contact.Id)+"/edit")
}
