package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/sarthakbiswas97/ecommerce/internal/web/routepath"
)

// SignInPage renders the sign-in form. errMessage, when non-empty, appears
// above the form.
func SignInPage(email, errMessage string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div class="auth-card"><h1>Sign In</h1>`); err != nil {
			return err
		}
		if err := formError(errMessage).Render(ctx, w); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w,
			`<form method="post" action="%s"><label for="email">Email</label><input id="email" type="email" name="email" value="%s" required><label for="password">Password</label><input id="password" type="password" name="password" required><button type="submit">Sign In</button></form><p>Don&#39;t have an account? <a href="%s">Sign Up</a></p></div>`,
			routepath.SignIn,
			templ.EscapeString(email),
			routepath.SignUp,
		)
		return err
	})
}

// SignUpPage renders the registration form.
func SignUpPage(name, email, errMessage string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div class="auth-card"><h1>Sign Up</h1>`); err != nil {
			return err
		}
		if err := formError(errMessage).Render(ctx, w); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w,
			`<form method="post" action="%s"><label for="name">Name</label><input id="name" type="text" name="name" value="%s" required><label for="email">Email</label><input id="email" type="email" name="email" value="%s" required><label for="password">Password</label><input id="password" type="password" name="password" required><button type="submit">Sign Up</button></form><p>Already have an account? <a href="%s">Sign In</a></p></div>`,
			routepath.SignUp,
			templ.EscapeString(name),
			templ.EscapeString(email),
			routepath.SignIn,
		)
		return err
	})
}

func formError(msg string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if msg == "" {
			return nil
		}
		_, err := fmt.Fprintf(w, `<p class="form-error" role="alert">%s</p>`, templ.EscapeString(msg))
		return err
	})
}
