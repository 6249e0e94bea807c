package domain

import (
	"errors"
	"net/url"
)

// loginPath is the versioned partner SOAP endpoint appended to the login server address
const loginPath = "/services/Soap/u/21.0"

// Credentials struct - Core domain value: the identity used to log in to Salesforce.
// Comparable by value on all three fields; it is the session store key, so two
// clients configured identically share one session.
type Credentials struct {
	Username  string
	Password  string
	LoginHost string
}

// NewCredentials func - Creates credentials after checking the login server address
func NewCredentials(username, password, loginHost string) (Credentials, error) {
	u, err := url.Parse(loginHost)
	if err != nil {
		return Credentials{}, err
	}
	if u.Scheme == "" || u.Host == "" {
		return Credentials{}, errors.New("login server address must be an absolute http(s) url")
	}
	return Credentials{
		Username:  username,
		Password:  password,
		LoginHost: loginHost,
	}, nil
}

// LoginEndpoint resolves the versioned SOAP login path against the login server address.
// Any path on the configured address is replaced, matching how the service publishes
// its login endpoint per host rather than per path.
func (c Credentials) LoginEndpoint() (string, error) {
	base, err := url.Parse(c.LoginHost)
	if err != nil {
		return "", err
	}
	endpoint, err := base.Parse(loginPath)
	if err != nil {
		return "", err
	}
	return endpoint.String(), nil
}
