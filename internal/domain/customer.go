package domain

// Customer and credential domain errors.
var (
	ErrCustomerNotFound = &Error{Code: ENOTFOUND, Message: "Customer not found"}
	ErrUsernameTaken    = &Error{Code: ECONFLICT, Message: "Username is already taken"}

	// ErrInvalidCredentials deliberately covers both an unknown username and a
	// wrong password so the response never reveals which half failed.
	ErrInvalidCredentials = &Error{Code: EUNAUTHORIZED, Message: "Invalid username or password"}

	// ErrInvalidToken covers malformed, tampered and expired tokens alike.
	ErrInvalidToken = &Error{Code: EUNAUTHORIZED, Message: "Invalid or expired token"}
)

// PlainPassword is a secret exactly as submitted by the customer. It exists
// only in flight and is never stored or logged.
type PlainPassword string

// EncryptedPassword is the one-way transformed, storable form of a secret.
// The only way to produce one is auth.Encrypt; nothing recovers the
// plaintext. Keeping the two as distinct types makes it a compile error to
// store a plaintext or compare two plaintexts by accident.
type EncryptedPassword string

// Customer is the account record the credential flow reads. Username is the
// external identity; ID is the surrogate key the cart and orders hang off.
type Customer struct {
	ID       int64
	Username string
	Password EncryptedPassword
}
