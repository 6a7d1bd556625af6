package handlers_test

import (
	"io"
	"net/http"
	"strings"
	"testing"
)

func TestLoginMissingFieldsRejectedBeforeQuery(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(jsonReq("POST", "/api/auth/login", `{"email":"client@innovtech.test"}`))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("missing password: expected 400, got %d", resp.StatusCode)
	}
}

func TestLoginWrongPasswordAndUnknownEmailIndistinguishable(t *testing.T) {
	app, _ := newTestApp(t)

	readBody := func(body string) (int, string) {
		resp, err := app.Test(jsonReq("POST", "/api/auth/login", body))
		if err != nil {
			t.Fatal(err)
		}
		b, _ := io.ReadAll(resp.Body)
		return resp.StatusCode, string(b)
	}

	codeWrong, bodyWrong := readBody(`{"email":"client@innovtech.test","password":"not-the-one"}`)
	codeUnknown, bodyUnknown := readBody(`{"email":"nobody@innovtech.test","password":"whatever1"}`)

	if codeWrong != http.StatusUnauthorized || codeUnknown != http.StatusUnauthorized {
		t.Fatalf("expected 401/401, got %d/%d", codeWrong, codeUnknown)
	}
	if bodyWrong != bodyUnknown {
		t.Fatalf("error bodies must not reveal which factor failed: %q vs %q", bodyWrong, bodyUnknown)
	}
}

func TestLoginSuccessReturnsUserWithoutPassword(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(jsonReq("POST", "/api/auth/login", `{"email":"client@innovtech.test","password":"Passw0rd!"}`))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if extractCookie(resp, "sid") == "" {
		t.Fatal("sid cookie not set")
	}
	b, _ := io.ReadAll(resp.Body)
	s := string(b)
	if !strings.Contains(s, `"email":"client@innovtech.test"`) {
		t.Fatalf("user missing from response: %s", s)
	}
	if strings.Contains(s, "mdp") || strings.Contains(s, "$2") {
		t.Fatalf("password material leaked: %s", s)
	}
}

func TestSignupThenLogin(t *testing.T) {
	app, db := newTestApp(t)

	resp, err := app.Test(jsonReq("POST", "/api/auth/signup",
		`{"email":"new@innovtech.test","password":"S3cret-pass","firstName":"Nadia","lastName":"Neuve"}`))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	// Stored hash never equals the plaintext.
	var hash string
	if err := db.Get(&hash, `SELECT mdp FROM utilisateurs WHERE email='new@innovtech.test'`); err != nil {
		t.Fatal(err)
	}
	if hash == "S3cret-pass" || !strings.HasPrefix(hash, "$2") {
		t.Fatalf("password stored incorrectly: %q", hash)
	}

	login(t, app, "new@innovtech.test", "S3cret-pass")
}

func TestSignupDuplicateEmailConflict(t *testing.T) {
	app, db := newTestApp(t)

	body := `{"email":"a@b.com","password":"S3cret-pass","firstName":"Ana","lastName":"Premiere"}`
	respFirst, err := app.Test(jsonReq("POST", "/api/auth/signup", body))
	if err != nil {
		t.Fatal(err)
	}
	if respFirst.StatusCode != http.StatusCreated {
		t.Fatalf("first signup: expected 201, got %d", respFirst.StatusCode)
	}

	respSecond, err := app.Test(jsonReq("POST", "/api/auth/signup", body))
	if err != nil {
		t.Fatal(err)
	}
	if respSecond.StatusCode != http.StatusConflict {
		t.Fatalf("second signup: expected 409, got %d", respSecond.StatusCode)
	}

	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM utilisateurs WHERE email='a@b.com'`); err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("expected exactly one row for a@b.com, got %d", n)
	}
}

func TestMeAndLogout(t *testing.T) {
	app, _ := newTestApp(t)
	sid := login(t, app, "client@innovtech.test", "Passw0rd!")

	reqMe := jsonReq("GET", "/api/auth/me", "")
	reqMe.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	respMe, err := app.Test(reqMe)
	if err != nil {
		t.Fatal(err)
	}
	if respMe.StatusCode != http.StatusOK {
		t.Fatalf("me: expected 200, got %d", respMe.StatusCode)
	}

	reqOut := jsonReq("POST", "/api/auth/logout", "")
	reqOut.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	if _, err := app.Test(reqOut); err != nil {
		t.Fatal(err)
	}

	reqMe2 := jsonReq("GET", "/api/auth/me", "")
	reqMe2.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	respMe2, err := app.Test(reqMe2)
	if err != nil {
		t.Fatal(err)
	}
	if respMe2.StatusCode != http.StatusUnauthorized {
		t.Fatalf("me after logout: expected 401, got %d", respMe2.StatusCode)
	}
}
