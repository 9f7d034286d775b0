package service

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"gitlab.com/dirk.krummacker/contacts-web/internal/apperrors"
	"gitlab.com/dirk.krummacker/contacts-web/internal/config"
	"gitlab.com/dirk.krummacker/contacts-web/internal/loader"
	"gitlab.com/dirk.krummacker/contacts-web/internal/metrics"
	"gitlab.com/dirk.krummacker/contacts-web/internal/model"
	"gitlab.com/dirk.krummacker/contacts-web/internal/view"
	"go.uber.org/zap"
)

// Contacts is the record store behind the service.
type Contacts interface {
	loader.Store
	ListContacts(ctx context.Context) ([]model.Contact, error)
	CreateContact(ctx context.Context, contact model.Contact) (model.Contact, error)
	UpdateContact(ctx context.Context, id string, update model.ContactUpdate) (bool, error)
	SetFavorite(ctx context.Context, id string, favorite bool) (bool, error)
	DeleteContact(ctx context.Context, id string) (bool, error)
	Ping(ctx context.Context) error
}

// Service holds the dependencies of the HTTP handlers.
type Service struct {
	contacts Contacts
	log      *zap.Logger
	metrics  *metrics.Metrics
}

// CreateDatabase opens the MySQL database described by the configuration.
func CreateDatabase(cfg config.Config) (*sql.DB, error) {
	return sql.Open("mysql", cfg.DSN())
}

// New creates the service on top of a record store.
func New(contacts Contacts, log *zap.Logger, m *metrics.Metrics) *Service {
	return &Service{contacts: contacts, log: log, metrics: m}
}

// SetupHttpRouter initializes the router and registers all pages and endpoints.
func SetupHttpRouter(s *Service, requestLogging bool) *gin.Engine {
	router := gin.New()
	if requestLogging {
		router.Use(RequestLogger(s.log))
	} else {
		s.log.Info("turning off HTTP request logging")
	}
	router.Use(gin.Recovery())
	router.SetHTMLTemplate(view.Templates())

	router.GET("/", s.index)
	router.POST("/contacts", s.createContact)
	router.GET("/contacts/:contactId", s.showContact)
	router.POST("/contacts/:contactId", s.favoriteContact)
	router.GET("/contacts/:contactId/edit", s.editContact)
	router.POST("/contacts/:contactId/edit", s.updateContact)
	router.POST("/contacts/:contactId/destroy", s.destroyContact)

	api := router.Group("/api")
	api.GET("/contacts", s.findContacts)
	api.POST("/contacts", s.createContactJSON)
	api.GET("/contacts/:contactId", s.findContactByID)
	api.PUT("/contacts/:contactId", s.updateContactByID)
	api.DELETE("/contacts/:contactId", s.deleteContactByID)

	router.GET("/healthz", s.health)
	router.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	return router
}

// load runs the loader for the contactId route parameter and counts the outcome.
func (s *Service) load(c *gin.Context) (loader.Result, error) {
	result, err := loader.Load(c.Request.Context(), s.contacts, c.Param("contactId"))
	switch {
	case apperrors.HasCode(err, apperrors.CodeInvariantViolation):
		s.metrics.ObserveLoad(metrics.OutcomeInvalid)
	case err != nil:
		s.metrics.ObserveLoad(metrics.OutcomeError)
	default:
		s.metrics.ObserveLoad(result.Outcome.String())
	}
	return result, err
}

// failPage renders the generic error page. Invalid input is answered with BAD
// REQUEST, everything else is logged and answered with INTERNAL SERVER ERROR.
func (s *Service) failPage(c *gin.Context, err error) {
	if apperrors.HasCode(err, apperrors.CodeInvalidInput) {
		c.HTML(http.StatusBadRequest, "error.html", nil)
		return
	}
	s.logFailure(c, err)
	c.HTML(http.StatusInternalServerError, "error.html", nil)
}

// failJSON is the JSON counterpart of failPage.
func (s *Service) failJSON(c *gin.Context, err error) {
	if apperrors.HasCode(err, apperrors.CodeInvalidInput) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	s.logFailure(c, err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
}

// logFailure logs an unexpected error. Errors without a code, such as store
// failures, are reported as internal errors.
func (s *Service) logFailure(c *gin.Context, err error) {
	err = apperrors.Wrap(err, apperrors.CodeInternal, "could not handle "+c.Request.URL.Path)
	s.log.Error("request failed",
		zap.String("path", c.Request.URL.Path),
		zap.String("code", string(apperrors.CodeOf(err))),
		zap.Error(err),
	)
}

// notFoundPage answers with the NOT FOUND page; the contact view is never rendered.
func notFoundPage(c *gin.Context) {
	c.HTML(http.StatusNotFound, "notfound.html", nil)
}

// health pings the database.
func (s *Service) health(c *gin.Context) {
	if err := s.contacts.Ping(c.Request.Context()); err != nil {
		s.log.Warn("database not reachable", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
