package api

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sokopay/mpesa/client"
)

type MpesaApi interface {
	B2c(ctx context.Context, param B2cRequest) (B2cResponse, error)
	B2b(ctx context.Context, param B2bRequest) (B2bResponse, error)
	C2bRegister(ctx context.Context, param C2bRegisterRequest) (C2bRegisterResponse, error)
	C2bSimulate(ctx context.Context, param C2bSimulateRequest) (C2bSimulateResponse, error)
	AccountBalance(ctx context.Context, param AccountBalanceRequest) (AccountBalanceResponse, error)
}

type MpesaApiOption func(*mpesa)

func WithMpesaClientConfig(conf *client.MpesaConfig) MpesaApiOption {
	return func(m *mpesa) {
		var err error
		if m.client, err = client.MpesaClient(m.ctx, m.log, client.WithMpesaConfig(conf)); err != nil {
			m.log.WithError(err).Fatal("failed to initialise mpesa client using config")
		}
	}
}

func WithMpesaClient(client *client.Mpesa) MpesaApiOption {
	return func(m *mpesa) {
		m.client = client
	}
}

type mpesa struct {
	client *client.Mpesa
	ctx    context.Context
	log    *logrus.Entry
}

func Mpesa(ctx context.Context, log *logrus.Entry, opts ...MpesaApiOption) (out *mpesa, err error) {
	out = &mpesa{log: log, ctx: ctx}
	if len(opts) == 0 {
		return
	}
	for i := range opts {
		opts[i](out)
	}
	if out.client == nil {
		return nil, errors.Errorf("client not initialised")
	}
	return
}
