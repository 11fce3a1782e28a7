package handler

import (
	"html/template"
	"log/slog"
	"net/http"

	"github.com/go-intake-sheets/internal/transport/http/middleware"
)

// PageHandler serves the minimal HTML shell around the JSON workflow.
// The real UI is an external concern; these pages only exist so the
// redirects in the workflow have somewhere to land.
type PageHandler struct {
	login *template.Template
	form  *template.Template
}

func NewPageHandler() *PageHandler {
	return &PageHandler{
		login: template.Must(template.New("login").Parse(loginPage)),
		form:  template.Must(template.New("form").Parse(formPage)),
	}
}

// Index handles GET /: redirect to the login view.
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/login", http.StatusFound)
}

// Login handles GET /login.
func (h *PageHandler) Login(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.login.Execute(w, nil); err != nil {
		slog.Error("render login page", "err", err)
	}
}

// Form handles GET /form. Requires an authenticated session.
func (h *PageHandler) Form(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok || !sess.LoggedIn {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.form.Execute(w, map[string]string{"UserEmail": sess.UserEmail}); err != nil {
		slog.Error("render form page", "err", err)
	}
}

const loginPage = `<!DOCTYPE html>
<html>
<head><title>LinkedIn Intake - Login</title></head>
<body>
  <h1>LinkedIn Intake</h1>
  <form id="send"><input name="email" type="email" placeholder="email"><button>Send code</button></form>
  <form id="verify"><input name="code" placeholder="verification code"><button>Verify</button></form>
</body>
</html>
`

const formPage = `<!DOCTYPE html>
<html>
<head><title>LinkedIn Intake - Submit</title></head>
<body>
  <p>Logged in as {{.UserEmail}} (<a href="/logout">log out</a>)</p>
  <form id="submit"><textarea name="linkedin_urls" placeholder="one LinkedIn link per line"></textarea><button>Submit</button></form>
</body>
</html>
`
