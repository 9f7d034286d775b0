package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"gitlab.com/dirk.krummacker/contacts-web/internal/apperrors"
	"gitlab.com/dirk.krummacker/contacts-web/internal/model"
)

// Store is the MySQL backed record store for contacts.
type Store struct {
	// db is a handle to the database.
	db *sqlx.DB

	// insert is a prepared statement for creating a contact on the database.
	insert *sqlx.NamedStmt

	// selectWhereId is a prepared statement for selecting the contact with a given id.
	selectWhereId *sqlx.Stmt

	// updateFavorite is a prepared statement for setting the favorite flag of a contact.
	updateFavorite *sqlx.Stmt

	// deleteWhereId is a prepared statement for deleting a contact with a given id.
	deleteWhereId *sqlx.Stmt
}

// New wraps the specified sql database with sqlx and prepares all statements. The
// database argument can be a real database for production use or a mock database
// within unit tests.
func New(sqlDB *sql.DB) (*Store, error) {
	var err error
	s := &Store{db: sqlx.NewDb(sqlDB, "mysql")}

	// Prepared statements offer a significant speed increase if executed many times.
	s.insert, err = s.db.PrepareNamed(`
		INSERT INTO contacts (id, first, last, avatar, twitter, notes, favorite)
		VALUES (:id, :first, :last, :avatar, :twitter, :notes, :favorite)
	`)
	if err != nil {
		return nil, err
	}
	s.selectWhereId, err = s.db.Preparex(`
		SELECT * FROM contacts WHERE id = ?
	`)
	if err != nil {
		return nil, err
	}
	s.updateFavorite, err = s.db.Preparex(`
		UPDATE contacts SET favorite = ? WHERE id = ?
	`)
	if err != nil {
		return nil, err
	}
	s.deleteWhereId, err = s.db.Preparex(`
		DELETE FROM contacts WHERE id = ?
	`)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Ping verifies that the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// GetContact returns the contact with the given id, or nil if there is none.
func (s *Store) GetContact(ctx context.Context, id string) (*model.Contact, error) {
	var contact model.Contact
	err := s.selectWhereId.GetContext(ctx, &contact, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// ListContacts returns all contacts sorted by last name, then first name.
func (s *Store) ListContacts(ctx context.Context) ([]model.Contact, error) {
	contacts := []model.Contact{}
	err := s.db.SelectContext(ctx, &contacts, `
		SELECT *
		FROM contacts
		ORDER BY last, first, id`)
	if err != nil {
		return nil, err
	}
	return contacts, nil
}

// CreateContact inserts the contact into the database under a newly generated id
// and returns the stored version. An id set by the caller is ignored.
func (s *Store) CreateContact(ctx context.Context, contact model.Contact) (model.Contact, error) {
	contact.Id = uuid.NewString()
	if _, err := s.insert.ExecContext(ctx, &contact); err != nil {
		return model.Contact{}, err
	}
	return contact, nil
}

// UpdateContact writes the values specified in the update (and only those) to the
// contact with the given id. It reports false if no such contact exists.
func (s *Store) UpdateContact(ctx context.Context, id string, update model.ContactUpdate) (bool, error) {
	// It only makes sense to continue if we have at least one value to update.
	if update.IsEmpty() {
		return false, apperrors.New(apperrors.CodeInvalidInput, "no values to be updated")
	}

	var args []interface{}
	var assignments []string
	if update.First != nil {
		args = append(args, *update.First)
		assignments = append(assignments, "first=?")
	}
	if update.Last != nil {
		args = append(args, *update.Last)
		assignments = append(assignments, "last=?")
	}
	if update.Avatar != nil {
		args = append(args, *update.Avatar)
		assignments = append(assignments, "avatar=?")
	}
	if update.Twitter != nil {
		args = append(args, *update.Twitter)
		assignments = append(assignments, "twitter=?")
	}
	if update.Notes != nil {
		args = append(args, *update.Notes)
		assignments = append(assignments, "notes=?")
	}

	query := "UPDATE contacts SET " + strings.Join(assignments, ", ") + " WHERE id=?"
	args = append(args, id)
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return false, err
	}

	// MySQL reports zero affected rows when the values did not change, so the
	// existence check has to go through a select.
	contact, err := s.GetContact(ctx, id)
	if err != nil {
		return false, err
	}
	return contact != nil, nil
}

// SetFavorite sets the favorite flag of the contact with the given id. It reports
// false if no such contact exists.
func (s *Store) SetFavorite(ctx context.Context, id string, favorite bool) (bool, error) {
	if _, err := s.updateFavorite.ExecContext(ctx, favorite, id); err != nil {
		return false, err
	}
	contact, err := s.GetContact(ctx, id)
	if err != nil {
		return false, err
	}
	return contact != nil, nil
}

// DeleteContact removes the contact with the given id. It reports false if no
// such contact exists.
func (s *Store) DeleteContact(ctx context.Context, id string) (bool, error) {
	result, err := s.deleteWhereId.ExecContext(ctx, id)
	if err != nil {
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rowsAffected == 1, nil
}

// Close releases the prepared statements and the database handle. It reports
// every error that occurred along the way.
func (s *Store) Close() error {
	var errs []error
	for _, stmt := range []interface{ Close() error }{s.insert, s.selectWhereId, s.updateFavorite, s.deleteWhereId} {
		errs = append(errs, stmt.Close())
	}
	errs = append(errs, s.db.Close())
	return errors.Join(errs...)
}
