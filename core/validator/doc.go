// Package validator checks user input before it leaves the client.
//
// Rules are plain values pairing a check with the error to report, so they
// can be composed programmatically:
//
//	err := validator.Apply(
//		validator.Required("email", in.Email),
//		validator.ValidEmail("email", in.Email),
//		validator.StrongPassword("password", in.Password),
//	)
//
// or declared with `validate` struct tags, separated by semicolons:
//
//	type RegisterInput struct {
//		Nickname string `validate:"required;min:2"`
//		Email    string `validate:"required;email"`
//		Password string `validate:"required;password"`
//	}
//
//	err := validator.ValidateStruct(&in)
//
// Failures are returned as ValidationErrors, one entry per failed rule:
//
//	var verrs validator.ValidationErrors
//	if errors.As(err, &verrs) && verrs.Has("email") {
//		// ...
//	}
//
// Every ValidationError carries a TranslationKey ("validation.required",
// "validation.email", ...) for shells that localize messages.
package validator
