package model

// Contact is the data structure for a person that we know, as it is exchanged
// with HTTP clients of the contacts service.
// All fields with the exception of the Id field are optional.
type Contact struct {
	Id       string  `json:"id"`
	First    *string `json:"first,omitempty"`
	Last     *string `json:"last,omitempty"`
	Avatar   *string `json:"avatar,omitempty"`
	Twitter  *string `json:"twitter,omitempty"`
	Notes    *string `json:"notes,omitempty"`
	Favorite bool    `json:"favorite"`
}

// LoaderData is the response body of a successful contact lookup.
type LoaderData struct {
	Contact Contact `json:"contact"`
}
