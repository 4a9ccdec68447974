// Package auth implements account flows against the PDI API: registration,
// login, session refresh, logout and an authentication check.
//
// Successful login stores the returned token through the API client's
// session manager, so every later request carries it:
//
//	svc := auth.New(client)
//	res, err := svc.Login(ctx, auth.Credentials{Email: "a@b.com", Password: "Secret1!"})
//	if err != nil {
//		var verrs validator.ValidationErrors
//		if errors.As(err, &verrs) {
//			// invalid input, nothing was sent
//		}
//		return err
//	}
//	fmt.Println("logged in as", res.User.Nickname)
//
// Inputs are sanitized and validated before any request is made. The server
// message of a rejected login ("invalid password", ...) is available through
// *apiclient.APIError.
//
// With a cookie transport the server never returns a token; Result.Token is
// empty and Check is the way to learn whether the session is alive.
package auth
