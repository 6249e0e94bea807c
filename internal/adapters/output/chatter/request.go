package chatter

import (
	"bytes"
	"encoding/xml"
)

// Wire protocol constants: SOAP 1.1 over HTTP POST against the partner API
const (
	soapNS    = "http://schemas.xmlsoap.org/soap/envelope/"
	partnerNS = "urn:partner.soap.sforce.com"
	sobjectNS = "urn:sobject.partner.soap.sforce.com"

	requestContentType = "text/xml; charset=UTF-8"
)

// Request builders. Pure functions: given non-nil inputs they always emit a
// syntactically valid envelope with every caller value XML-escaped. Business
// rules (id formats, field limits) are the service's responsibility.

// loginRequest builds the login envelope. No session header exists yet.
func loginRequest(username, password string) []byte {
	var b bytes.Buffer
	openEnvelope(&b, "")
	b.WriteString(`<login xmlns="` + partnerNS + `">`)
	writeElement(&b, "username", username)
	writeElement(&b, "password", password)
	b.WriteString(`</login>`)
	closeEnvelope(&b)
	return b.Bytes()
}

// feedPostRequest builds the create-FeedPost envelope, authenticated by the
// session token carried in the SessionHeader.
func feedPostRequest(token, recordID, title, linkURL, body string) []byte {
	var b bytes.Buffer
	openEnvelope(&b, token)
	b.WriteString(`<create xmlns="` + partnerNS + `">`)
	b.WriteString(`<sObjects xmlns:so="` + sobjectNS + `">`)
	writeElement(&b, "so:type", "FeedPost")
	writeElement(&b, "so:ParentId", recordID)
	writeElement(&b, "so:Title", title)
	writeElement(&b, "so:LinkUrl", linkURL)
	writeElement(&b, "so:Body", body)
	b.WriteString(`</sObjects>`)
	b.WriteString(`</create>`)
	closeEnvelope(&b)
	return b.Bytes()
}

// deleteRequest builds the delete-by-id envelope.
func deleteRequest(token, id string) []byte {
	var b bytes.Buffer
	openEnvelope(&b, token)
	b.WriteString(`<delete xmlns="` + partnerNS + `">`)
	writeElement(&b, "ids", id)
	b.WriteString(`</delete>`)
	closeEnvelope(&b)
	return b.Bytes()
}

// openEnvelope writes the envelope and body opening, with a SessionHeader
// when a token is given.
func openEnvelope(b *bytes.Buffer, token string) {
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	b.WriteString(`<s:Envelope xmlns:s="` + soapNS + `">`)
	if token != "" {
		b.WriteString(`<s:Header><SessionHeader xmlns="` + partnerNS + `">`)
		writeElement(b, "sessionId", token)
		b.WriteString(`</SessionHeader></s:Header>`)
	}
	b.WriteString(`<s:Body>`)
}

func closeEnvelope(b *bytes.Buffer) {
	b.WriteString(`</s:Body></s:Envelope>`)
}

// writeElement writes <name>value</name> with the value XML-escaped
func writeElement(b *bytes.Buffer, name, value string) {
	b.WriteString("<" + name + ">")
	// EscapeText never fails against a bytes.Buffer
	_ = xml.EscapeText(b, []byte(value))
	b.WriteString("</" + name + ">")
}
