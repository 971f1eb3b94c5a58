package gcalendar_test

import (
	"context"
	"os"
	"testing"

	"calendarize/pkg/gcalendar"
)

func TestCalendarClient(t *testing.T) {
	// Fake OAuth installed-app credentials for local parsing flows
	mockCreds := `{
		"installed": {
			"client_id": "test-client-id.apps.googleusercontent.com",
			"project_id": "test-project",
			"auth_uri": "https://accounts.google.com/o/oauth2/auth",
			"token_uri": "https://oauth2.googleapis.com/token",
			"client_secret": "test-secret",
			"redirect_uris": ["http://localhost"]
		}
	}`

	t.Run("Initialize with broken JWT/OAuth config", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(`{"broken":true}`))
		if err == nil {
			t.Errorf("expected decoding failure")
		}
	})

	t.Run("Initialize from installed app config", func(t *testing.T) {
		// Native oauth load requires token.json
		os.WriteFile("token.json", []byte(`{"access_token": "dummy", "token_type": "Bearer", "expiry": "2030-01-01T00:00:00Z"}`), 0644)
		defer os.Remove("token.json")

		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds))
		if err != nil {
			t.Fatalf("expected parsing to succeed: %v", err)
		}
	})

	t.Run("Initialize from installed app config without token", func(t *testing.T) {
		os.Remove("token.json")

		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds))
		if err == nil {
			t.Errorf("expected missing token.json failure")
		}
	})

	t.Run("Initialize from missing file", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsFile(context.Background(), "no-such-file.json")
		if err == nil {
			t.Errorf("expected read failure")
		}
	})
}
