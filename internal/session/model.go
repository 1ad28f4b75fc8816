package session

// User is the credential session record: proof that the client signed in with
// email and password. Name is optional and only affects the display label.
type User struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}
