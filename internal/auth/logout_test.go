package auth_test

import (
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/saulo-duarte/careerpilot-lambda/internal/auth"
)

func TestLogout(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/logout", auth.NewHandler().Logout)
	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("Failed to create cookie jar: %v", err)
	}

	base, err := url.Parse(srv.URL)
	if err != nil {
		t.Fatalf("Failed to parse server URL: %v", err)
	}
	jar.SetCookies(base, []*http.Cookie{
		{Name: "jwt", Value: "access", Path: "/", Secure: true},
		{Name: "refresh_token", Value: "refresh", Path: "/auth", Secure: true},
	})

	client := srv.Client()
	client.Jar = jar

	resp, err := client.Post(srv.URL+"/auth/logout", "application/json", nil)
	if err != nil {
		t.Fatalf("Logout request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	refreshURL, err := url.Parse(srv.URL + "/auth/refresh")
	if err != nil {
		t.Fatalf("Failed to parse refresh URL: %v", err)
	}
	for _, c := range jar.Cookies(refreshURL) {
		if c.Name == "refresh_token" {
			t.Errorf("refresh_token cookie survived logout: %q", c.Value)
		}
		if c.Name == "jwt" {
			t.Errorf("jwt cookie survived logout: %q", c.Value)
		}
	}
}
