package service

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gitlab.com/dirk.krummacker/contacts-web/internal/loader"
	"gitlab.com/dirk.krummacker/contacts-web/internal/model"
)

// findContacts responds with the list of all contacts as JSON.
//
// Example REST API call:
//
//	> curl http://localhost:8080/api/contacts
func (s *Service) findContacts(c *gin.Context) {
	contacts, err := s.contacts.ListContacts(c.Request.Context())
	if err != nil {
		s.failJSON(c, err)
		return
	}
	c.IndentedJSON(http.StatusOK, contacts)
}

// createContactJSON inserts the contact specified in the request's JSON into the
// database. It responds with the full contact data including the newly assigned id.
//
// Example REST API call:
//
//	> curl http://localhost:8080/api/contacts --request "POST" --include --header "Content-Type: application/json" --data '{"first": "Ada", "last": "Lovelace", "twitter": "ada"}'
func (s *Service) createContactJSON(c *gin.Context) {
	var newContact model.Contact
	if err := c.ShouldBindJSON(&newContact); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid JSON"})
		return
	}
	created, err := s.contacts.CreateContact(c.Request.Context(), newContact)
	if err != nil {
		s.failJSON(c, err)
		return
	}
	s.metrics.ObserveSubmission("create")
	c.IndentedJSON(http.StatusCreated, created)
}

// findContactByID responds with the loader payload {"contact": {...}} of the
// contact named by the URL. An unknown contact is answered with NOT FOUND and an
// empty body.
//
// Example REST API call:
//
//	> curl http://localhost:8080/api/contacts/0b9c1d8e-7f7a-4c59-9a55-1c6f3f0e2a11
func (s *Service) findContactByID(c *gin.Context) {
	result, err := s.load(c)
	if err != nil {
		s.failJSON(c, err)
		return
	}
	if result.Outcome == loader.NotFound {
		c.Status(http.StatusNotFound)
		return
	}
	c.IndentedJSON(http.StatusOK, result.Data())
}

// updateContactByID updates the values specified in the JSON (and only those), and
// responds with the new version of the contact.
//
// Example REST API call:
//
//	> curl http://localhost:8080/api/contacts/0b9c1d8e-7f7a-4c59-9a55-1c6f3f0e2a11 --request "PUT" --include --header "Content-Type: application/json" --data '{"notes": "first programmer"}'
func (s *Service) updateContactByID(c *gin.Context) {
	var update model.ContactUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid JSON"})
		return
	}
	id := c.Param("contactId")
	found, err := s.contacts.UpdateContact(c.Request.Context(), id, update)
	if err != nil {
		s.failJSON(c, err)
		return
	}
	if !found {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "contact not found"})
		return
	}
	s.metrics.ObserveSubmission("edit")

	// In the HTTP response, return the full contact after the update.
	contact, err := s.contacts.GetContact(c.Request.Context(), id)
	if err != nil {
		s.failJSON(c, err)
		return
	}
	if contact == nil {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "contact not found"})
		return
	}
	c.IndentedJSON(http.StatusOK, contact)
}

// deleteContactByID deletes the contact named by the URL from the database.
//
// Example REST API call:
//
//	> curl http://localhost:8080/api/contacts/0b9c1d8e-7f7a-4c59-9a55-1c6f3f0e2a11 --request "DELETE"
func (s *Service) deleteContactByID(c *gin.Context) {
	deleted, err := s.contacts.DeleteContact(c.Request.Context(), c.Param("contactId"))
	if err != nil {
		s.failJSON(c, err)
		return
	}
	if !deleted {
		c.IndentedJSON(http.StatusNotFound, gin.H{"message": "contact not found"})
		return
	}
	s.metrics.ObserveSubmission("destroy")
	c.IndentedJSON(http.StatusOK, gin.H{"message": "contact deleted"})
}
