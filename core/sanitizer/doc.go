// Package sanitizer normalizes user input before it is validated and sent
// to the PDI API.
//
// Functions can be called directly:
//
//	email := sanitizer.Email("  Ana@Example.COM ") // "ana@example.com"
//
// or applied through `sanitize` struct tags, evaluated left to right:
//
//	type Credentials struct {
//		Email    string `sanitize:"email"`
//		Password string `sanitize:"-"`
//	}
//
//	err := sanitizer.SanitizeStruct(&creds)
//
// Tags support "max:N" to cap the rune length. Unknown names are ignored.
// Nested structs and pointers to structs are walked recursively; string
// slices are sanitized element by element.
package sanitizer
