package client

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"

	"github.com/pkg/errors"
)

// EncryptCredential encrypts the initiator password under the given RSA
// public key and base64-encodes the ciphertext, producing the
// SecurityCredential value privileged operations carry. The padding
// scheme (PKCS#1 v1.5) is mandated by the remote API; anything else is
// rejected server-side.
func EncryptCredential(pub *rsa.PublicKey, password string) (out string, err error) {
	var ciphertext []byte
	if pub == nil {
		return out, errors.Errorf("required certificate public key not set")
	}
	if ciphertext, err = rsa.EncryptPKCS1v15(rand.Reader, pub, []byte(password)); err != nil {
		return out, errors.Wrapf(err, "failed to encrypt initiator password")
	}
	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

// SecurityCredential derives the credential from the client's initiator
// password and the environment certificate. The result is computed once
// per client; identity is immutable so the cached value never goes stale.
func (m *Mpesa) SecurityCredential() (out string, err error) {
	m.credentialOnce.Do(func() {
		m.credential, m.credentialErr = EncryptCredential(m.certificate, m.conf.InitiatorPassword)
	})
	if m.credentialErr != nil {
		return out, cryptoError("security_credential", m.credentialErr)
	}
	return m.credential, nil
}
