package form

// The password message names four character classes while IsValidPassword
// only requires uppercase and a digit. Both are kept as shipped until product
// decides which one is right.
var fieldMessages = [fieldCount]string{
	"Username must be at least 5 characters",
	"Invalid email",
	"The password must contain a combination of uppercase and lowercase letter, number and a special character",
	"Passwords don't match",
}

// Message returns the user-facing error text for id.
func Message(id FieldID) string {
	if !id.Valid() {
		return ""
	}
	return fieldMessages[id.index()]
}
