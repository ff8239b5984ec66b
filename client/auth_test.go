package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sokopay/mpesa/client"
)

var _ = Describe("Token Acquisition", func() {

	var err error
	var hits atomic.Int64
	var server *httptest.Server
	var certPem []byte

	newClient := func() *client.Mpesa {
		mpesa, e := client.MpesaClient(context.Background(), testLog(),
			client.WithMpesaCredentials("test-key", "test-secret", "pass", client.Sandbox),
			client.WithBaseUrl(server.URL),
			client.WithCertificate(certPem))
		Expect(e).To(BeNil())
		return mpesa
	}

	BeforeEach(func() {
		hits.Store(0)
		certPem, _ = testCertificate()
	})

	AfterEach(func() {
		if server != nil {
			server.Close()
			server = nil
		}
	})

	Context("against a well-behaved token endpoint", func() {

		BeforeEach(func() {
			server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				hits.Add(1)
				user, pass, ok := r.BasicAuth()
				Expect(ok).To(BeTrue())
				Expect(user).To(Equal("test-key"))
				Expect(pass).To(Equal("test-secret"))
				Expect(r.URL.Query().Get("grant_type")).To(Equal("client_credentials"))
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"access_token":"abc","expires_in":"3599"}`))
			}))
		})

		It("exchanges the consumer key and secret for a bearer token", func() {
			var token string
			token, err = newClient().Auth(context.Background())
			Expect(err).To(BeNil())
			Expect(token).To(Equal("abc"))
		})

		It("reuses an unexpired token instead of re-authenticating", func() {
			mpesa := newClient()
			for i := 0; i < 3; i++ {
				_, err = mpesa.Auth(context.Background())
				Expect(err).To(BeNil())
			}
			Expect(hits.Load()).To(Equal(int64(1)))
		})
	})

	It("surfaces a 401 as an auth error", func() {
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"errorMessage":"Invalid Authentication passed"}`))
		}))
		_, err = newClient().Auth(context.Background())
		Expect(err).ToNot(BeNil())
		Expect(client.KindOf(err)).To(Equal(client.ErrAuth))
	})

	It("surfaces a missing access_token field as an auth error", func() {
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"expires_in":"3599"}`))
		}))
		_, err = newClient().Auth(context.Background())
		Expect(err).ToNot(BeNil())
		Expect(client.KindOf(err)).To(Equal(client.ErrAuth))
	})

	It("surfaces a malformed body as an auth error", func() {
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{not json`))
		}))
		_, err = newClient().Auth(context.Background())
		Expect(err).ToNot(BeNil())
		Expect(client.KindOf(err)).To(Equal(client.ErrAuth))
	})

	It("surfaces an unreachable endpoint as an auth error", func() {
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		mpesa := newClient()
		server.Close()
		server = nil
		_, err = mpesa.Auth(context.Background())
		Expect(err).ToNot(BeNil())
		Expect(client.KindOf(err)).To(Equal(client.ErrAuth))
	})
})
