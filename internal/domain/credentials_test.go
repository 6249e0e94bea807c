package domain

import "testing"

// TestNewCredentialsRejectsRelativeAddress tests that the login server address
// must be an absolute URL
func TestNewCredentialsRejectsRelativeAddress(t *testing.T) {
	if _, err := NewCredentials("user@example.com", "pw", "login.example.com"); err == nil {
		t.Error("expected an error for a login address without a scheme")
	}
}

// TestLoginEndpointAppendsVersionedPath tests that the login endpoint is the
// fixed versioned SOAP path on the configured host
func TestLoginEndpointAppendsVersionedPath(t *testing.T) {
	credentials, err := NewCredentials("user@example.com", "pw", "https://login.example.com")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	endpoint, err := credentials.LoginEndpoint()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if endpoint != "https://login.example.com/services/Soap/u/21.0" {
		t.Errorf("unexpected login endpoint %q", endpoint)
	}
}

// TestLoginEndpointReplacesExistingPath tests that any path on the configured
// address is replaced by the versioned login path
func TestLoginEndpointReplacesExistingPath(t *testing.T) {
	credentials, err := NewCredentials("user@example.com", "pw", "https://login.example.com/some/other/path")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	endpoint, err := credentials.LoginEndpoint()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if endpoint != "https://login.example.com/services/Soap/u/21.0" {
		t.Errorf("unexpected login endpoint %q", endpoint)
	}
}

// TestCredentialsAreComparableByValue tests that credentials behave as a map
// key: equal fields collide, any differing field does not
func TestCredentialsAreComparableByValue(t *testing.T) {
	a, _ := NewCredentials("user@example.com", "pw", "https://login.example.com")
	b, _ := NewCredentials("user@example.com", "pw", "https://login.example.com")
	c, _ := NewCredentials("user@example.com", "other", "https://login.example.com")

	seen := map[Credentials]int{}
	seen[a]++
	seen[b]++
	seen[c]++

	if seen[a] != 2 {
		t.Errorf("expected value-equal credentials to share a key, got count %d", seen[a])
	}
	if seen[c] != 1 {
		t.Errorf("expected credentials with a different password to be a distinct key, got count %d", seen[c])
	}
}
