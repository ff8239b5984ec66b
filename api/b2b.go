package api

import (
	"context"
	"net/http"

	"github.com/sokopay/mpesa/client"
)

var mpesaB2bPaymentRequest = client.Endpoint{Method: http.MethodPost, Uri: "mpesa/b2b/v1/paymentrequest"}

// B2bRequest is a business-to-business transfer. RecieverIdentifierType
// reproduces a typo in the upstream contract; the remote service rejects
// the correctly-spelt key.
type B2bRequest struct {
	Initiator              string    `json:"Initiator"`
	SecurityCredential     string    `json:"SecurityCredential"`
	CommandID              CommandId `json:"CommandID"`
	SenderIdentifierType   uint      `json:"SenderIdentifierType"`
	RecieverIdentifierType uint      `json:"RecieverIdentifierType"`
	Amount                 uint      `json:"Amount"`
	PartyA                 string    `json:"PartyA"`
	PartyB                 string    `json:"PartyB"`
	AccountReference       string    `json:"AccountReference"`
	Remarks                string    `json:"Remarks"`
	QueueTimeOutURL        string    `json:"QueueTimeOutURL"`
	ResultURL              string    `json:"ResultURL"`
}

func (r *B2bRequest) loadClientParams(mpesa *client.Mpesa) (err error) {
	if r.CommandID == "" {
		r.CommandID = CommandBusinessToBusinessTransfer
	}
	r.SecurityCredential, err = mpesa.SecurityCredential()
	return
}

type B2bResponse struct {
	ConversationID           string `json:"ConversationID,omitempty"`
	OriginatorConversationID string `json:"OriginatorConversationID,omitempty"`
	ResponseCode             string `json:"ResponseCode,omitempty"`
	ResponseDescription      string `json:"ResponseDescription,omitempty"`
}

func (r B2bResponse) Accepted() bool {
	return r.ResponseCode == "0"
}

// B2b moves money between two business shortcodes. Requires the security
// credential.
func (s *mpesa) B2b(ctx context.Context, param B2bRequest) (out B2bResponse, err error) {
	if err = param.loadClientParams(s.client); err != nil {
		return
	}
	return client.Send[B2bResponse](s.client, ctx, param, mpesaB2bPaymentRequest)
}
