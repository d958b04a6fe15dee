package domain

// User is part of the persisted document layout. There is no
// authentication surface; the collection exists so exported documents
// round-trip completely.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserInsert is the shape for creating a user record.
type UserInsert struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
