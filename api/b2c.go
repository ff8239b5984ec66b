package api

import (
	"context"
	"net/http"

	"github.com/sokopay/mpesa/client"
)

var mpesaB2cPaymentRequest = client.Endpoint{Method: http.MethodPost, Uri: "mpesa/b2c/v1/paymentrequest"}

// B2cRequest is a business-to-customer payment. Field tags are the exact
// keys of the remote contract and must not be renamed.
type B2cRequest struct {
	InitiatorName      string    `json:"InitiatorName"`
	SecurityCredential string    `json:"SecurityCredential"`
	CommandID          CommandId `json:"CommandID"`
	Amount             uint      `json:"Amount"`
	PartyA             string    `json:"PartyA"`
	PartyB             string    `json:"PartyB"`
	Remarks            string    `json:"Remarks"`
	QueueTimeOutURL    string    `json:"QueueTimeOutURL"`
	ResultURL          string    `json:"ResultURL"`
	Occasion           string    `json:"Occasion"`
}

func (r *B2cRequest) loadClientParams(mpesa *client.Mpesa) (err error) {
	if r.CommandID == "" {
		r.CommandID = CommandBusinessPayment
	}
	r.SecurityCredential, err = mpesa.SecurityCredential()
	return
}

type B2cResponse struct {
	ConversationID           string `json:"ConversationID,omitempty"`
	OriginatorConversationID string `json:"OriginatorConversationID,omitempty"`
	ResponseCode             string `json:"ResponseCode,omitempty"`
	ResponseDescription      string `json:"ResponseDescription,omitempty"`
}

// Accepted reports whether the remote system acknowledged the request.
// A false return is still a successfully parsed outcome.
func (r B2cResponse) Accepted() bool {
	return r.ResponseCode == "0"
}

// B2c sends a payment from a business shortcode to a customer phone
// number. Requires the security credential.
func (s *mpesa) B2c(ctx context.Context, param B2cRequest) (out B2cResponse, err error) {
	if err = param.loadClientParams(s.client); err != nil {
		return
	}
	return client.Send[B2cResponse](s.client, ctx, param, mpesaB2cPaymentRequest)
}
