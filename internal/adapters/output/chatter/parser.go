package chatter

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"chatter-notify/internal/domain"
)

// Response parsing is a single forward scan over the decoder's token stream,
// never a materialized document. Field elements may arrive in any order and
// unrecognized elements are skipped, not errors. Each parser is handed the
// decoder positioned at the first child element of the SOAP Body.

// saveResult mirrors the save/delete acknowledgement shape.
// DeleteResult is wire-identical to SaveResult.
type saveResult struct {
	id         string
	statusCode string
	message    string
	success    bool
}

// parseSaveResult consumes a *Response element wrapping a result element and
// scans to the end of the document collecting the result fields.
func parseSaveResult(dec *xml.Decoder, start xml.StartElement) (*saveResult, error) {
	if start.Name.Space != partnerNS || !strings.HasSuffix(start.Name.Local, "Response") {
		return nil, fmt.Errorf("%w: expected element named *Response but was %s", domain.ErrMalformedResponse, start.Name.Local)
	}
	if err := requireStart(dec, partnerNS, "result"); err != nil {
		return nil, err
	}

	var r saveResult
	err := scanElements(dec, func(name string) error {
		switch name {
		case "id":
			return captureText(dec, &r.id)
		case "statusCode":
			return captureText(dec, &r.statusCode)
		case "message":
			return captureText(dec, &r.message)
		case "success":
			var v string
			if err := captureText(dec, &v); err != nil {
				return err
			}
			r.success = v == "1" || strings.EqualFold(v, "true")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// parseLoginResponse consumes a loginResponse element and scans to the end of
// the document collecting the session fields.
func parseLoginResponse(dec *xml.Decoder, start xml.StartElement) (*domain.Session, error) {
	if start.Name.Space != partnerNS || start.Name.Local != "loginResponse" {
		return nil, fmt.Errorf("%w: expected loginResponse but was %s", domain.ErrMalformedResponse, start.Name.Local)
	}

	var session domain.Session
	err := scanElements(dec, func(name string) error {
		switch name {
		case "sessionId":
			return captureText(dec, &session.Token)
		case "serverUrl":
			return captureText(dec, &session.InstanceURL)
		case "userId":
			return captureText(dec, &session.UserID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if session.Token == "" {
		return nil, fmt.Errorf("%w: login response missing sessionId", domain.ErrMalformedResponse)
	}
	return &session, nil
}

// parseFault scans the remainder of a Fault element into a typed fault.
// Called instead of a response parser when the first body child is a Fault.
func parseFault(dec *xml.Decoder) (*domain.SoapFault, error) {
	var fault domain.SoapFault
	err := scanElements(dec, func(name string) error {
		switch name {
		case "faultcode":
			return captureText(dec, &fault.Code)
		case "faultstring":
			return captureText(dec, &fault.Message)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &fault, nil
}

// scanElements pulls tokens until the end of the document, invoking visit
// with the local name of every start element it meets.
func scanElements(dec *xml.Decoder, visit func(name string) error) error {
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
		}
		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if err := visit(se.Name.Local); err != nil {
			return err
		}
	}
}

// captureText stores the text content of the element just opened, leaving the
// decoder positioned after its end tag.
func captureText(dec *xml.Decoder, out *string) error {
	var sb strings.Builder
	for {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
		}
		switch t := tok.(type) {
		case xml.CharData:
			sb.Write(t)
		case xml.EndElement:
			*out = sb.String()
			return nil
		case xml.StartElement:
			return fmt.Errorf("%w: unexpected child element %s", domain.ErrMalformedResponse, t.Name.Local)
		}
	}
}

// nextStart advances to the next start element.
func nextStart(dec *xml.Decoder) (xml.StartElement, error) {
	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return xml.StartElement{}, fmt.Errorf("%w: unexpected end of document", domain.ErrMalformedResponse)
			}
			return xml.StartElement{}, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			return t, nil
		case xml.EndElement:
			return xml.StartElement{}, fmt.Errorf("%w: expected a child element before </%s>", domain.ErrMalformedResponse, t.Name.Local)
		}
	}
}

// requireStart asserts the next start element has the given namespace and name.
func requireStart(dec *xml.Decoder, space, local string) error {
	se, err := nextStart(dec)
	if err != nil {
		return err
	}
	if se.Name.Space != space || se.Name.Local != local {
		return fmt.Errorf("%w: expected {%s}%s but was {%s}%s",
			domain.ErrMalformedResponse, space, local, se.Name.Space, se.Name.Local)
	}
	return nil
}
