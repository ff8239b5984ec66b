package client

import (
	"bytes"
	"context"
	"crypto/rsa"
	"crypto/tls"
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const defaultTimeout = 30 * time.Second

type MpesaClientOption func(*Mpesa)

func WithMpesaConfig(conf *MpesaConfig) MpesaClientOption {
	return func(m *Mpesa) {
		m.conf = conf
	}
}

func WithMpesaCredentials(consumerKey, consumerSecret, initiatorPassword string, env Environment) MpesaClientOption {
	return WithMpesaConfig(&MpesaConfig{
		Environment:       string(env),
		ConsumerKey:       consumerKey,
		ConsumerSecret:    consumerSecret,
		InitiatorPassword: initiatorPassword,
	})
}

// WithBaseUrl points the client at a custom host, overriding the
// environment-pinned base URL. Payload shapes are unaffected.
func WithBaseUrl(url string) MpesaClientOption {
	return func(m *Mpesa) {
		m.baseUrl = url
	}
}

// WithCertificate overrides the environment-pinned encryption certificate.
func WithCertificate(pemBytes []byte) MpesaClientOption {
	return func(m *Mpesa) {
		m.certPem = pemBytes
	}
}

func WithHttpClient(httpClient *http.Client) MpesaClientOption {
	return func(m *Mpesa) {
		m.http = httpClient
	}
}

// MpesaClient constructs a client around an immutable identity
// {consumer key, consumer secret, environment, initiator password}.
// An unknown environment fails here, never at call time.
func MpesaClient(ctx context.Context, log *logrus.Entry, opts ...MpesaClientOption) (out *Mpesa, err error) {
	out = &Mpesa{log: &mpesaLogger{Entry: log}}
	for i := range opts {
		opts[i](out)
	}
	if out.conf == nil {
		return nil, errors.Errorf("mpesa configuration not initialised")
	}
	err = out.init(ctx)
	return
}

// Mpesa facilitates communication with the remote mobile-money API. Its
// identity is read-only after construction; the only mutable state is the
// bearer-token cache behind tokenMu, so instances are safe to share
// across concurrent callers.
type Mpesa struct {
	log     *mpesaLogger
	conf    *MpesaConfig
	env     Environment
	http    *http.Client
	baseUrl string

	certPem     []byte
	certificate *rsa.PublicKey

	tokenMu sync.Mutex
	token   bearerToken

	credentialOnce sync.Once
	credential     string
	credentialErr  error
}

func (m *Mpesa) Config() MpesaConfig {
	return *m.conf
}

func (m *Mpesa) Environment() Environment {
	return m.env
}

func (m *Mpesa) init(ctx context.Context) (err error) {
	if m.env, err = ParseEnvironment(m.conf.Environment); err != nil {
		return
	}
	if m.baseUrl == "" {
		m.baseUrl = m.env.BaseUrl()
	}
	g, _ := errgroup.WithContext(ctx)
	g.Go(m.loadTransport)
	g.Go(m.loadCertificate)
	return g.Wait()
}

func (m *Mpesa) loadTransport() (err error) {
	if m.http != nil {
		return
	}
	timeout := m.conf.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	m.http = &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{MinVersion: tls.VersionTLS12},
		},
	}
	return
}

func (m *Mpesa) loadCertificate() (err error) {
	pemBytes := m.certPem
	if pemBytes == nil {
		pemBytes = m.env.CertificatePem()
	}
	if m.certificate, err = parseCertificate(pemBytes); err != nil {
		return cryptoError("load_certificate", err)
	}
	return
}

// Send runs one request/response cycle against endpoint: acquire a bearer
// token, post the payload as JSON, and parse the reply into R. A reply
// that parses cleanly is returned as data whatever its ResponseCode; only
// transport, status, parse and auth failures come back as errors.
func Send[R any](m *Mpesa, ctx context.Context, payload any, endpoint Endpoint) (out R, err error) {
	var token string
	var req *http.Request
	var res *http.Response
	var data []byte
	var body io.Reader
	requestId := m.log.getRequestID(ctx)

	if token, err = m.Auth(ctx); err != nil {
		return
	}
	if payload != nil {
		var encoded []byte
		if encoded, err = json.Marshal(payload); err != nil {
			return out, errors.Wrapf(err, "failed to encode %T payload", payload)
		}
		body = bytes.NewReader(encoded)
	}

	url := endpoint.Url(m.baseUrl)
	if req, err = http.NewRequestWithContext(ctx, endpoint.Method, url, body); err != nil {
		return out, transportError(endpoint.Uri, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	m.log.Request(requestId, endpoint.Method, url, payload)
	if res, err = m.http.Do(req); err != nil {
		return out, transportError(endpoint.Uri, err)
	}
	defer res.Body.Close()
	if data, err = io.ReadAll(res.Body); err != nil {
		return out, transportError(endpoint.Uri, err)
	}
	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		m.log.Response(requestId, res.StatusCode, string(data))
		return out, httpStatusError(endpoint.Uri, res.StatusCode, data)
	}
	if err = json.Unmarshal(data, &out); err != nil {
		return out, deserializationError(endpoint.Uri, err)
	}
	m.log.Response(requestId, res.StatusCode, out)
	return
}
