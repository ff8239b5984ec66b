package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

var authGenerate = Endpoint{http.MethodGet, "oauth/v1/generate?grant_type=client_credentials"}

// tokens are refreshed this long before the server-reported expiry so an
// in-flight request never carries one about to lapse.
const tokenExpirySkew = 30 * time.Second

const defaultTokenTtl = time.Hour

type AuthResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   string `json:"expires_in"`
}

type bearerToken struct {
	value     string
	expiresAt time.Time
}

func (t bearerToken) valid() bool {
	return t.value != "" && time.Now().Before(t.expiresAt)
}

// Auth returns a bearer token for the client identity, exchanging the
// consumer key and secret at the token endpoint when no unexpired token
// is held. Every failure mode of the exchange surfaces as an auth error.
func (m *Mpesa) Auth(ctx context.Context) (out string, err error) {
	m.tokenMu.Lock()
	defer m.tokenMu.Unlock()
	if m.token.valid() {
		return m.token.value, nil
	}

	var req *http.Request
	var res *http.Response
	var body []byte
	var parsed AuthResponse
	url := authGenerate.Url(m.baseUrl)
	if req, err = http.NewRequestWithContext(ctx, authGenerate.Method, url, nil); err != nil {
		return out, authError("auth", err)
	}
	req.SetBasicAuth(m.conf.ConsumerKey, m.conf.ConsumerSecret)

	if res, err = m.http.Do(req); err != nil {
		return out, authError("auth", errors.Wrapf(err, "token request failed"))
	}
	defer res.Body.Close()
	if body, err = io.ReadAll(res.Body); err != nil {
		return out, authError("auth", errors.Wrapf(err, "failed to read token response"))
	}
	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return out, authError("auth", errors.Errorf("token endpoint replied %d: %s", res.StatusCode, string(body)))
	}
	if err = json.Unmarshal(body, &parsed); err != nil {
		return out, authError("auth", errors.Wrapf(err, "failed to parse token response"))
	}
	if parsed.AccessToken == "" {
		return out, authError("auth", errors.Errorf("token response carried no access_token"))
	}

	m.token = bearerToken{value: parsed.AccessToken, expiresAt: time.Now().Add(parsed.ttl() - tokenExpirySkew)}
	return m.token.value, nil
}

func (r AuthResponse) ttl() time.Duration {
	// expires_in arrives as a string of seconds, e.g. "3599"
	seconds, err := strconv.Atoi(r.ExpiresIn)
	if err != nil || seconds <= 0 {
		return defaultTokenTtl
	}
	return time.Duration(seconds) * time.Second
}
