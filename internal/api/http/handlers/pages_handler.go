package handlers

import (
	"bytes"
	"html/template"

	"github.com/gofiber/fiber/v2"

	"github.com/craftside/marketplace/internal/auth"
	"github.com/craftside/marketplace/internal/service"
)

var loginTmpl = template.Must(template.New("login").Parse(`<!DOCTYPE html>
<html>
<head><title>Sign in</title></head>
<body>
<h1>Sign in</h1>
<form method="post" action="/auth/login">
  <input type="hidden" name="next" value="{{.Next}}">
  <label>Email <input type="email" name="email" required></label>
  <label>Password <input type="password" name="password" required></label>
  <button type="submit">Sign in</button>
</form>
</body>
</html>`))

var dashboardTmpl = template.Must(template.New("dashboard").Parse(`<!DOCTYPE html>
<html>
<head><title>Dashboard</title></head>
<body>
<h1>Seller dashboard</h1>
<p>Signed in as {{.Email}}</p>
</body>
</html>`))

// PagesHandler serves the minimal server-rendered pages: the login form and
// the guarded dashboard shell. Dashboard routes sit behind the RouteGuard,
// so a request reaching them always carries a resolved identity.
type PagesHandler struct {
	auth *service.AuthService
}

// NewPagesHandler constructs handler.
func NewPagesHandler(authService *service.AuthService) *PagesHandler {
	return &PagesHandler{auth: authService}
}

// Login GET /login. Preserves the next parameter placed by the guard.
func (h *PagesHandler) Login(c *fiber.Ctx) error {
	c.Type("html")
	return render(c, loginTmpl, fiber.Map{"Next": c.Query("next", "/dashboard")})
}

// Dashboard GET /dashboard and everything under it.
func (h *PagesHandler) Dashboard(c *fiber.Ctx) error {
	identity, _ := auth.IdentityFromContext(c)

	email := ""
	if identity != nil {
		email = identity.Email
		if email == "" {
			if user, err := h.auth.GetUser(c.Context(), identity.UserID); err == nil {
				email = user.Email
			}
		}
	}

	c.Type("html")
	return render(c, dashboardTmpl, fiber.Map{"Email": email})
}

func render(c *fiber.Ctx, tmpl *template.Template, data any) error {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return err
	}
	return c.Send(buf.Bytes())
}
