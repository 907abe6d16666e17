package mockapi

import (
	"context"
	"strings"
	"testing"
)

func TestClient_HealthAndReset(t *testing.T) {
	srv, _ := startServer(t, true)
	client := NewClient(srv.Addr())

	srv.State().Register("runner-1", "linux")

	health, err := client.Health(context.Background())
	if err != nil {
		t.Fatalf("Health: %v", err)
	}
	if health.Status != "healthy" {
		t.Errorf("expected healthy, got %q", health.Status)
	}
	if health.RegisteredRunners != 1 {
		t.Errorf("expected 1 registered runner, got %d", health.RegisteredRunners)
	}

	if err := client.Reset(context.Background()); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	health, err = client.Health(context.Background())
	if err != nil {
		t.Fatalf("Health after reset: %v", err)
	}
	if health.RegisteredRunners != 0 {
		t.Errorf("expected empty registry after reset, got %d", health.RegisteredRunners)
	}
}

func TestClient_RegistrationToken(t *testing.T) {
	srv, _ := startServer(t, true)
	client := NewClient(srv.Addr())

	token, err := client.RegistrationToken(context.Background(), "acme", testAuthHeader)
	if err != nil {
		t.Fatalf("RegistrationToken: %v", err)
	}
	if !strings.HasPrefix(token.Token, TokenPrefix) {
		t.Errorf("expected mock token, got %q", token.Token)
	}

	if _, err := client.RegistrationToken(context.Background(), "acme", ""); err == nil {
		t.Error("expected error without credentials")
	}
}

func TestClient_Runners(t *testing.T) {
	srv, _ := startServer(t, true)
	client := NewClient(srv.Addr())

	srv.State().Register("runner-1", "linux")
	srv.State().Register("runner-2", "linux,gpu")

	list, err := client.Runners(context.Background(), "acme", testAuthHeader)
	if err != nil {
		t.Fatalf("Runners: %v", err)
	}
	if list.TotalCount != 2 || len(list.Runners) != 2 {
		t.Fatalf("unexpected list %+v", list)
	}
}

func TestClient_LatestRelease(t *testing.T) {
	srv, _ := startServer(t, true)
	client := NewClient(srv.Addr())

	release, err := client.LatestRelease(context.Background())
	if err != nil {
		t.Fatalf("LatestRelease: %v", err)
	}
	if release.TagName == "" || len(release.Assets) == 0 {
		t.Errorf("unexpected release %+v", release)
	}
}

func TestClient_ConnectionError(t *testing.T) {
	client := NewClient("127.0.0.1:1")
	if _, err := client.Health(context.Background()); err == nil {
		t.Error("expected connection error")
	}
}
