package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/Achamanp/ProjectManagentApp/internal/domain"
)

// Payload is a response body after envelope normalization.
type Payload struct {
	Status    int
	Data      gjson.Result // the payload proper; zero when the body was empty
	Message   string       // envelope or body "message", if any
	Enveloped bool
}

// Empty reports whether the response carried no payload.
func (p *Payload) Empty() bool {
	return !p.Data.Exists() || p.Data.Type == gjson.Null
}

// Unwrap normalizes a response. The server answers either with an envelope
// {success, message, data} or with the raw payload; callers above the
// adapter only ever see the payload.
func Unwrap(status int, body []byte) (*Payload, error) {
	var res gjson.Result
	if len(body) > 0 && gjson.ValidBytes(body) {
		res = gjson.ParseBytes(body)
	}

	if status < 200 || status >= 300 {
		kind := domain.KindServer
		if status == http.StatusUnauthorized || status == http.StatusForbidden {
			kind = domain.KindAuth
		}
		return nil, &domain.APIError{Kind: kind, Status: status, Message: errorMessage(res)}
	}

	p := &Payload{Status: status}
	if len(body) > 0 && !res.Exists() {
		// Plain-text confirmations such as "Project deleted successfully".
		p.Message = strings.TrimSpace(string(body))
		return p, nil
	}
	if !res.IsObject() {
		p.Data = res
		return p, nil
	}

	p.Message = res.Get("message").String()

	success := res.Get("success")
	if success.Type != gjson.True && success.Type != gjson.False {
		p.Data = res
		return p, nil
	}

	p.Enveloped = true
	if !success.Bool() {
		return nil, &domain.APIError{Kind: domain.KindDomain, Status: status, Message: errorMessage(res)}
	}

	if data := res.Get("data"); data.Exists() {
		p.Data = data
		return p, nil
	}
	p.Data = res
	return p, nil
}

// errorMessage picks the server's message field, then its error field.
func errorMessage(res gjson.Result) string {
	if !res.IsObject() {
		return ""
	}
	if m := res.Get("message").String(); m != "" {
		return m
	}
	return res.Get("error").String()
}

// decode unmarshals the payload into T. An empty payload yields the zero T.
func decode[T any](p *Payload) (T, error) {
	var v T
	if p.Empty() {
		return v, nil
	}
	if err := json.Unmarshal([]byte(p.Data.Raw), &v); err != nil {
		return v, fmt.Errorf("api: decode payload: %w", err)
	}
	return v, nil
}

// decodeList unmarshals an array payload. Anything that is not an array
// yields an empty, non-nil slice.
func decodeList[T any](p *Payload) ([]T, error) {
	if !p.Data.IsArray() {
		return []T{}, nil
	}
	out := make([]T, 0, len(p.Data.Array()))
	if err := json.Unmarshal([]byte(p.Data.Raw), &out); err != nil {
		return nil, fmt.Errorf("api: decode list: %w", err)
	}
	return out, nil
}
