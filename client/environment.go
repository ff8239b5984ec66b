package client

import (
	"crypto/rsa"
	"crypto/x509"
	_ "embed"
	"encoding/pem"
	"strings"

	"github.com/pkg/errors"
)

//go:embed certs/sandbox.cer
var sandboxCertificate []byte

//go:embed certs/production.cer
var productionCertificate []byte

const (
	sandboxBaseUrl    = "https://sandbox.safaricom.co.ke"
	productionBaseUrl = "https://api.safaricom.co.ke"
)

// Environment selects the deployment target of the remote API. Each
// environment pins a base URL and the public certificate used when
// encrypting the initiator password into a security credential.
type Environment string

const (
	Sandbox    Environment = "sandbox"
	Production Environment = "production"
)

func ParseEnvironment(name string) (out Environment, err error) {
	switch Environment(strings.ToLower(strings.TrimSpace(name))) {
	case Sandbox:
		return Sandbox, nil
	case Production:
		return Production, nil
	}
	return out, errors.Errorf("unknown mpesa environment '%s', expected one of [%s, %s]", name, Sandbox, Production)
}

func (e Environment) BaseUrl() string {
	if e == Production {
		return productionBaseUrl
	}
	return sandboxBaseUrl
}

func (e Environment) CertificatePem() []byte {
	if e == Production {
		return productionCertificate
	}
	return sandboxCertificate
}

// Certificate parses the environment-pinned certificate and returns its
// RSA public key.
func (e Environment) Certificate() (out *rsa.PublicKey, err error) {
	return parseCertificate(e.CertificatePem())
}

func parseCertificate(pemBytes []byte) (out *rsa.PublicKey, err error) {
	var ok bool
	var cert *x509.Certificate
	block, _ := pem.Decode(pemBytes)
	if block == nil {
		return nil, errors.Errorf("failed to decode certificate PEM")
	} else if cert, err = x509.ParseCertificate(block.Bytes); err != nil {
		return nil, errors.Wrapf(err, "failed to parse x509 certificate")
	} else if out, ok = cert.PublicKey.(*rsa.PublicKey); !ok {
		return nil, errors.Errorf("certificate public key is %T, expected *rsa.PublicKey", cert.PublicKey)
	}
	return
}
