package types

// User represents a registered account in the system.
// It is addressed solely by email in the underlying key-value store.
//
// The dynamodbav and redis tags carry the attribute names of the original
// Users table, so records written by earlier deployments remain readable.
type User struct {
	// Email is the unique identifier of the user and the store lookup key.
	Email string `json:"email" dynamodbav:"email" redis:"email"`

	// Name is the user's display or full name.
	Name string `json:"name" dynamodbav:"name" redis:"name"`

	// PasswordHash stores the hex-encoded PBKDF2 digest of the user's
	// password. This field is never exposed in API responses.
	PasswordHash string `json:"-" dynamodbav:"password" redis:"password"`

	// Salt is the hex-encoded random salt generated once at signup.
	// It never changes for the lifetime of the record.
	Salt string `json:"-" dynamodbav:"salt" redis:"salt"`

	// ProfileImageURL points at the user's profile image in object
	// storage. It is the only mutable field after signup.
	ProfileImageURL string `json:"profileImageUrl" dynamodbav:"profile_image" redis:"profile_image"`

	// CreatedAt is the ISO-8601 timestamp of account creation.
	CreatedAt string `json:"created_at" dynamodbav:"datetime" redis:"datetime"`
}
