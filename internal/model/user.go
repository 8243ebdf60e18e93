package model

// User represents an application user record as stored in the `users`
// table. The json tags are omitted because these structs are used by the
// repository layer; handlers define separate response types with
// appropriate JSON tags so the password hash is never serialized.
//
// Fields:
//
//	ID           – primary key identifier of the user.
//	Name         – display name.
//	Email        – unique email address.
//	PasswordHash – bcrypt hashed password.
type User struct {
	ID           uint64 // users.id
	Name         string // users.name
	Email        string // users.email
	PasswordHash string // users.password_hash
}
