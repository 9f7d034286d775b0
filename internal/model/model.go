package model

// Contact is the data structure for a person that we know.
// All fields with the exception of the Id field are optional. A missing Favorite
// flag is stored and reported as false.
type Contact struct {
	Id       string  `json:"id"                db:"id"`
	First    *string `json:"first,omitempty"   db:"first"`
	Last     *string `json:"last,omitempty"    db:"last"`
	Avatar   *string `json:"avatar,omitempty"  db:"avatar"`
	Twitter  *string `json:"twitter,omitempty" db:"twitter"`
	Notes    *string `json:"notes,omitempty"   db:"notes"`
	Favorite bool    `json:"favorite"          db:"favorite"`
}

// ContactUpdate holds the values of a partial update. Only non-nil fields are
// written to the database.
type ContactUpdate struct {
	First   *string `json:"first,omitempty"   form:"first"`
	Last    *string `json:"last,omitempty"    form:"last"`
	Avatar  *string `json:"avatar,omitempty"  form:"avatar"`
	Twitter *string `json:"twitter,omitempty" form:"twitter"`
	Notes   *string `json:"notes,omitempty"   form:"notes"`
}

// IsEmpty reports whether the update carries no values at all.
func (u ContactUpdate) IsEmpty() bool {
	return u.First == nil && u.Last == nil && u.Avatar == nil && u.Twitter == nil && u.Notes == nil
}

// Value dereferences an optional field, mapping nil to the empty string.
func Value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
