package handlers_test

import (
	"net/http"
	"testing"
)

// The admin gate lives in the request-handling layer: a client-supplied
// admin flag is worthless without a server-verified session.
func TestAdminRoutesRequireAdminSession(t *testing.T) {
	app, _ := newTestApp(t)

	// Anonymous
	respAnon, err := app.Test(jsonReq("GET", "/api/admin/users", ""))
	if err != nil {
		t.Fatal(err)
	}
	if respAnon.StatusCode != http.StatusUnauthorized {
		t.Fatalf("anonymous: expected 401, got %d", respAnon.StatusCode)
	}

	// Logged-in customer
	sidUser := login(t, app, "client@innovtech.test", "Passw0rd!")
	reqUser := jsonReq("GET", "/api/admin/users", "")
	reqUser.AddCookie(&http.Cookie{Name: "sid", Value: sidUser})
	respUser, err := app.Test(reqUser)
	if err != nil {
		t.Fatal(err)
	}
	if respUser.StatusCode != http.StatusForbidden {
		t.Fatalf("customer: expected 403, got %d", respUser.StatusCode)
	}

	// Admin
	sidAdmin := login(t, app, "admin@innovtech.test", "Passw0rd!")
	reqAdmin := jsonReq("GET", "/api/admin/users", "")
	reqAdmin.AddCookie(&http.Cookie{Name: "sid", Value: sidAdmin})
	respAdmin, err := app.Test(reqAdmin)
	if err != nil {
		t.Fatal(err)
	}
	if respAdmin.StatusCode != http.StatusOK {
		t.Fatalf("admin: expected 200, got %d", respAdmin.StatusCode)
	}
}

func TestCheckoutRequiresUser(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(jsonReq("POST", "/api/orders", `{"items":[{"productId":1,"quantity":1}]}`))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("anonymous checkout: expected 401, got %d", resp.StatusCode)
	}
}
