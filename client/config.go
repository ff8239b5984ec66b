package client

import (
	"time"

	"github.com/kod2ulz/gostart/utils"
)

type MpesaConfig struct {
	Environment       string
	ConsumerKey       string
	ConsumerSecret    string
	InitiatorPassword string
	Timeout           time.Duration
}

func NewMpesaClientConfig(prefix ...string) *MpesaConfig {
	env := utils.Env.Helper(prefix...).OrDefault("MPESA_CLIENT")
	return &MpesaConfig{
		Environment:       env.Get("ENVIRONMENT", string(Sandbox)).String(),
		ConsumerKey:       env.MustGet("CONSUMER_KEY").String(),
		ConsumerSecret:    env.MustGet("CONSUMER_SECRET").String(),
		InitiatorPassword: env.MustGet("INITIATOR_PASSWORD").String(),
		Timeout:           env.Get("TIMEOUT", "30s").Duration(),
	}
}
