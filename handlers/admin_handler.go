package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"availabilityAPI/internal/types/availability"
	"availabilityAPI/middleware"
	"availabilityAPI/services"
)

type AdminHandler struct {
	availabilityService *services.AvailabilityService
	sessions            *middleware.SessionStore
	adminSlug           string
	secureCookies       bool
}

func NewAdminHandler(availabilityService *services.AvailabilityService, sessions *middleware.SessionStore, adminSlug string, secureCookies bool) *AdminHandler {
	return &AdminHandler{
		availabilityService: availabilityService,
		sessions:            sessions,
		adminSlug:           adminSlug,
		secureCookies:       secureCookies,
	}
}

// Login answers POST /api/admin/login. On success it issues an opaque session
// cookie scoped to the manage prefix and returns the manage slug so the login
// page knows where to redirect.
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req availability.AdminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if !h.availabilityService.CheckAdminPassword(req.Password) {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.AdminCookieName,
		Value:    h.sessions.Create(),
		Path:     "/manage",
		MaxAge:   int(middleware.AdminSessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.secureCookies,
	})

	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(h.adminSlug))
}

// LoginPage serves the admin login form.
func (h *AdminHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, `
<!DOCTYPE html>
<html>
<head>
    <title>Admin Login</title>
    <style>
        body { font-family: sans-serif; max-width: 20rem; margin: 4rem auto; }
        input, button { display: block; width: 100%%; margin: 0.5rem 0; padding: 0.5rem; }
        #err { color: #b00; }
    </style>
</head>
<body>
    <h1>Admin login</h1>
    <input id="pw" type="password" placeholder="Password" autofocus>
    <button onclick="login()">Log in</button>
    <p id="err"></p>
    <script>
        async function login() {
            const res = await fetch('/api/admin/login', {
                method: 'POST',
                headers: {'Content-Type': 'application/json'},
                body: JSON.stringify({password: document.getElementById('pw').value})
            });
            if (!res.ok) {
                document.getElementById('err').textContent = 'Wrong password';
                return;
            }
            const slug = await res.text();
            const params = new URLSearchParams(location.search);
            location.href = params.get('r') || ('/manage/' + slug);
        }
    </script>
</body>
</html>
    `)
}

// ManagePage serves the management calendar. The page reads the public month
// endpoint and writes through PUT /api/availability, cycling each day through
// available, limited and finished. The cycle is a UI convention only.
func (h *AdminHandler) ManagePage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, `
<!DOCTYPE html>
<html>
<head>
    <title>Manage Availability</title>
    <style>
        body { font-family: sans-serif; max-width: 30rem; margin: 2rem auto; }
        #grid { display: grid; grid-template-columns: repeat(7, 1fr); gap: 4px; }
        .day { padding: 0.75rem 0; text-align: center; cursor: pointer; border-radius: 4px; }
        .available { background: #c8e6c9; }
        .limited { background: #ffe0b2; }
        .finished { background: #ffcdd2; }
        #nav { display: flex; justify-content: space-between; align-items: center; }
    </style>
</head>
<body>
    <div id="nav">
        <button onclick="shift(-1)">&lt;</button>
        <h2 id="title"></h2>
        <button onclick="shift(1)">&gt;</button>
    </div>
    <input id="pw" type="password" placeholder="Admin password">
    <div id="grid"></div>
    <script>
        const cycle = {available: 'limited', limited: 'finished', finished: 'available'};
        let now = new Date();
        let year = now.getFullYear(), month = now.getMonth() + 1;

        async function load() {
            document.getElementById('title').textContent = year + '-' + String(month).padStart(2, '0');
            const res = await fetch('/api/availability?year=' + year + '&month=' + month);
            const data = await res.json();
            const grid = document.getElementById('grid');
            grid.innerHTML = '';
            for (const [date, status] of Object.entries(data.days).sort()) {
                const cell = document.createElement('div');
                cell.className = 'day ' + status;
                cell.textContent = Number(date.slice(8));
                cell.onclick = () => update(date, cycle[status]);
                grid.appendChild(cell);
            }
        }

        async function update(date, status) {
            const res = await fetch('/api/availability', {
                method: 'PUT',
                headers: {'Content-Type': 'application/json'},
                body: JSON.stringify({date, status, password: document.getElementById('pw').value})
            });
            if (res.status === 401) { alert('Wrong password'); return; }
            if (!res.ok) { alert('Update failed'); return; }
            load();
        }

        function shift(delta) {
            month += delta;
            if (month < 1) { month = 12; year--; }
            if (month > 12) { month = 1; year++; }
            load();
        }

        load();
    </script>
</body>
</html>
    `)
}
