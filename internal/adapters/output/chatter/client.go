package chatter

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"chatter-notify/configs"
	"chatter-notify/internal/domain"
	"chatter-notify/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// Compile-time check to ensure ClientAdapter implements the ChatterClient interface
var _ output.ChatterClient = (*ClientAdapter)(nil)

// ClientAdapter struct - Output adapter for the Chatter SOAP API.
// One adapter holds one set of credentials; the session store is shared, so
// adapters configured with equal credentials reuse a single login. Sessions
// are threaded through each call as values, never kept on the adapter, which
// keeps concurrent calls on one adapter safe.
type ClientAdapter struct {
	httpClient  *http.Client
	credentials domain.Credentials
	sessions    output.SessionStore
}

// NewClientAdapter func - Creates new Chatter client adapter
func NewClientAdapter(config configs.Salesforce, sessions output.SessionStore) (*ClientAdapter, error) {
	credentials, err := domain.NewCredentials(config.Username, config.Password, config.LoginURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create chatter client: %w", err)
	}

	timeout := time.Duration(config.Timeout) * time.Second
	if config.Timeout <= 0 {
		timeout = 60 * time.Second
	}

	httpClient := &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   30 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 100,
			IdleConnTimeout:     90 * time.Second,
		},
	}

	adapter := &ClientAdapter{
		httpClient:  httpClient,
		credentials: credentials,
		sessions:    sessions,
	}

	logrus.Infof("Chatter client adapter initialized for user %s against %s, timeout: %v",
		config.Username, config.LoginURL, timeout)

	return adapter, nil
}

// EstablishSession returns the session for this adapter's credentials,
// performing a login round-trip only when the store has none.
func (a *ClientAdapter) EstablishSession(ctx context.Context) (domain.Session, error) {
	session, err := a.sessions.Get(a.credentials)
	if err != nil {
		return domain.Session{}, fmt.Errorf("failed to read session store: %w", err)
	}
	if session != nil {
		return *session, nil
	}
	return a.PerformLogin(ctx)
}

// PerformLogin always performs a fresh login round-trip and stores the
// resulting session, replacing any cached one.
func (a *ClientAdapter) PerformLogin(ctx context.Context) (domain.Session, error) {
	endpoint, err := a.credentials.LoginEndpoint()
	if err != nil {
		return domain.Session{}, fmt.Errorf("failed to resolve login endpoint: %w", err)
	}

	var session domain.Session
	err = a.roundTrip(ctx, endpoint, loginRequest(a.credentials.Username, a.credentials.Password),
		func(dec *xml.Decoder, start xml.StartElement) error {
			s, err := parseLoginResponse(dec, start)
			if err != nil {
				return err
			}
			session = *s
			return nil
		})
	if err != nil {
		return domain.Session{}, err
	}

	if err := a.sessions.Put(a.credentials, session); err != nil {
		return domain.Session{}, fmt.Errorf("failed to store session: %w", err)
	}

	logrus.Infof("Logged in to %s as user %s", session.InstanceURL, session.UserID)

	return session, nil
}

// PostBuild posts a build status update and returns the id of the created
// feed post. Retries the whole operation exactly once with a fresh login if
// the service rejects the cached session.
func (a *ClientAdapter) PostBuild(ctx context.Context, notification domain.BuildNotification) (string, error) {
	return a.postBuild(ctx, notification, true)
}

func (a *ClientAdapter) postBuild(ctx context.Context, notification domain.BuildNotification, retryOnInvalidSession bool) (string, error) {
	session, err := a.EstablishSession(ctx)
	if err != nil {
		return "", err
	}

	recordID := notification.RecordID
	if recordID == "" {
		recordID = session.UserID
	}

	postID, err := a.createFeedPost(ctx, session, recordID, notification)
	if err != nil {
		// A cached session may have expired since it was stored. On the
		// first INVALID_SESSION fault, flush it and run the operation once
		// more with a fresh login; any other failure propagates as-is.
		var fault *domain.SoapFault
		if retryOnInvalidSession && errors.As(err, &fault) && fault.IsInvalidSession() {
			if rerr := a.sessions.Revoke(a.credentials); rerr != nil {
				return "", fmt.Errorf("failed to revoke session: %w", rerr)
			}
			logrus.Warnf("Session for %s was rejected as expired, retrying once with a fresh login", a.credentials.Username)
			return a.postBuild(ctx, notification, false)
		}
		return "", err
	}

	return postID, nil
}

// Delete removes a feed post by id. A success=false result is returned as a
// SaveFailedError; DeleteResult shares the SaveResult wire shape.
func (a *ClientAdapter) Delete(ctx context.Context, id string) error {
	session, err := a.EstablishSession(ctx)
	if err != nil {
		return err
	}

	result, err := a.saveCall(ctx, session.InstanceURL, deleteRequest(session.Token, id))
	if err != nil {
		return err
	}
	if !result.success {
		return &domain.SaveFailedError{ID: result.id, StatusCode: result.statusCode, Message: result.message}
	}

	logrus.Infof("Deleted feed post %s", id)

	return nil
}

func (a *ClientAdapter) createFeedPost(ctx context.Context, session domain.Session, recordID string, notification domain.BuildNotification) (string, error) {
	body := feedPostRequest(session.Token, recordID, notification.Title, notification.ResultsURL, notification.Body())
	result, err := a.saveCall(ctx, session.InstanceURL, body)
	if err != nil {
		return "", err
	}
	if !result.success {
		return "", &domain.SaveFailedError{ID: result.id, StatusCode: result.statusCode, Message: result.message}
	}

	logrus.Infof("Created feed post %s on record %s", result.id, recordID)

	return result.id, nil
}

// saveCall issues a request whose acknowledgement has the save/delete shape.
func (a *ClientAdapter) saveCall(ctx context.Context, serverURL string, reqBody []byte) (*saveResult, error) {
	var result *saveResult
	err := a.roundTrip(ctx, serverURL, reqBody, func(dec *xml.Decoder, start xml.StartElement) error {
		r, err := parseSaveResult(dec, start)
		if err != nil {
			return err
		}
		result = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// roundTrip posts a SOAP envelope and walks the response through the
// Envelope/Body wrappers before handing the first body child to parse.
// A Fault as the first child short-circuits into a typed SoapFault.
func (a *ClientAdapter) roundTrip(ctx context.Context, serverURL string, reqBody []byte, parse func(dec *xml.Decoder, start xml.StartElement) error) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, serverURL, bytes.NewReader(reqBody))
	if err != nil {
		return fmt.Errorf("failed to create soap request: %w", err)
	}
	req.Header.Set("Content-Type", requestContentType)
	req.Header.Set("SOAPAction", `""`)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send soap request: %w", err)
	}
	defer resp.Body.Close()

	// The service signals faults over HTTP 500; both 200 and 500 carry a
	// parseable envelope. Anything else never reaches the parser.
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusInternalServerError {
		return &domain.UnexpectedStatusError{URL: serverURL, Status: resp.StatusCode}
	}

	dec := xml.NewDecoder(resp.Body)
	if err := requireStart(dec, soapNS, "Envelope"); err != nil {
		return err
	}
	// TODO: tolerate a response Header element appearing before Body.
	if err := requireStart(dec, soapNS, "Body"); err != nil {
		return err
	}
	first, err := nextStart(dec)
	if err != nil {
		return err
	}

	if first.Name.Local == "Fault" {
		fault, err := parseFault(dec)
		if err != nil {
			return err
		}
		return fault
	}

	return parse(dec, first)
}
