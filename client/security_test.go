package client_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sokopay/mpesa/client"
)

var _ = Describe("Security Credential", func() {

	var err error
	var key *rsa.PrivateKey
	var certPem []byte

	BeforeEach(func() {
		certPem, key = testCertificate()
	})

	It("encrypts the password so only the certificate owner can read it", func() {
		var credential string
		var ciphertext, plaintext []byte

		credential, err = client.EncryptCredential(&key.PublicKey, "Safaricom868!")
		Expect(err).To(BeNil())
		Expect(credential).ToNot(BeEmpty())

		ciphertext, err = base64.StdEncoding.DecodeString(credential)
		Expect(err).To(BeNil())

		plaintext, err = rsa.DecryptPKCS1v15(rand.Reader, key, ciphertext)
		Expect(err).To(BeNil())
		Expect(string(plaintext)).To(Equal("Safaricom868!"))
	})

	It("fails without a public key", func() {
		_, err = client.EncryptCredential(nil, "Safaricom868!")
		Expect(err).ToNot(BeNil())
	})

	Context("on a constructed client", func() {

		var mpesa *client.Mpesa

		BeforeEach(func() {
			mpesa, err = client.MpesaClient(context.Background(), testLog(),
				client.WithMpesaCredentials("key", "secret", "Safaricom868!", client.Sandbox),
				client.WithCertificate(certPem))
			Expect(err).To(BeNil())
		})

		It("derives a credential that decrypts back to the initiator password", func() {
			var credential string
			var ciphertext, plaintext []byte

			credential, err = mpesa.SecurityCredential()
			Expect(err).To(BeNil())

			ciphertext, err = base64.StdEncoding.DecodeString(credential)
			Expect(err).To(BeNil())
			plaintext, err = rsa.DecryptPKCS1v15(rand.Reader, key, ciphertext)
			Expect(err).To(BeNil())
			Expect(string(plaintext)).To(Equal("Safaricom868!"))
		})

		It("computes the credential once and reuses it", func() {
			var first, second string
			first, err = mpesa.SecurityCredential()
			Expect(err).To(BeNil())
			second, err = mpesa.SecurityCredential()
			Expect(err).To(BeNil())
			Expect(second).To(Equal(first))
		})
	})

	It("rejects a client built on an unparseable certificate", func() {
		_, err = client.MpesaClient(context.Background(), testLog(),
			client.WithMpesaCredentials("key", "secret", "Safaricom868!", client.Sandbox),
			client.WithCertificate([]byte("not a certificate")))
		Expect(err).ToNot(BeNil())
		Expect(client.KindOf(err)).To(Equal(client.ErrCrypto))
	})
})

var _ = Describe("Environment", func() {

	It("parses known environments case-insensitively", func() {
		Expect(client.ParseEnvironment("sandbox")).To(Equal(client.Sandbox))
		Expect(client.ParseEnvironment("Production")).To(Equal(client.Production))
		Expect(client.ParseEnvironment(" SANDBOX ")).To(Equal(client.Sandbox))
	})

	It("rejects anything else at construction time", func() {
		_, err := client.ParseEnvironment("staging")
		Expect(err).ToNot(BeNil())

		_, err = client.MpesaClient(context.Background(), testLog(),
			client.WithMpesaCredentials("key", "secret", "pass", client.Environment("staging")))
		Expect(err).ToNot(BeNil())
	})

	It("pins a base url per environment", func() {
		Expect(client.Sandbox.BaseUrl()).To(Equal("https://sandbox.safaricom.co.ke"))
		Expect(client.Production.BaseUrl()).To(Equal("https://api.safaricom.co.ke"))
	})

	It("carries a parseable certificate per environment", func() {
		for _, env := range []client.Environment{client.Sandbox, client.Production} {
			pub, err := env.Certificate()
			Expect(err).To(BeNil())
			Expect(pub).ToNot(BeNil())
		}
		Expect(client.Sandbox.CertificatePem()).ToNot(Equal(client.Production.CertificatePem()))
	})
})
