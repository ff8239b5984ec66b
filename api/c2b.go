package api

import (
	"context"
	"net/http"

	"github.com/sokopay/mpesa/client"
)

var (
	mpesaC2bRegisterUrl = client.Endpoint{Method: http.MethodPost, Uri: "mpesa/c2b/v1/registerurl"}
	mpesaC2bSimulate    = client.Endpoint{Method: http.MethodPost, Uri: "mpesa/c2b/v1/simulate"}
)

// C2bRegisterRequest maps validation and confirmation URLs to a
// shortcode, so customer-initiated payments get relayed to the caller.
type C2bRegisterRequest struct {
	ValidationURL   string       `json:"ValidationURL"`
	ConfirmationURL string       `json:"ConfirmationURL"`
	ResponseType    ResponseType `json:"ResponseType"`
	ShortCode       string       `json:"ShortCode"`
}

func (r *C2bRegisterRequest) loadRequestDefaults() {
	if r.ResponseType == "" {
		r.ResponseType = ResponseTypeCompleted
	}
}

type C2bSimulateRequest struct {
	CommandID     CommandId `json:"CommandID"`
	Amount        uint      `json:"Amount"`
	Msisdn        string    `json:"Msisdn"`
	BillRefNumber string    `json:"BillRefNumber"`
	ShortCode     string    `json:"ShortCode"`
}

func (r *C2bSimulateRequest) loadRequestDefaults() {
	if r.CommandID == "" {
		r.CommandID = CommandCustomerPayBillOnline
	}
}

// C2B replies spell the originator key without the 'n'; that is the
// upstream contract, not a local mistake.
type C2bRegisterResponse struct {
	ConversationID          string `json:"ConversationID,omitempty"`
	OriginatorCoversationID string `json:"OriginatorCoversationID,omitempty"`
	ResponseCode            string `json:"ResponseCode,omitempty"`
	ResponseDescription     string `json:"ResponseDescription,omitempty"`
}

func (r C2bRegisterResponse) Accepted() bool {
	return r.ResponseCode == "0"
}

type C2bSimulateResponse struct {
	ConversationID          string `json:"ConversationID,omitempty"`
	OriginatorCoversationID string `json:"OriginatorCoversationID,omitempty"`
	ResponseCode            string `json:"ResponseCode,omitempty"`
	ResponseDescription     string `json:"ResponseDescription,omitempty"`
}

func (r C2bSimulateResponse) Accepted() bool {
	return r.ResponseCode == "0"
}

// C2bRegister registers the caller's validation and confirmation URLs
// against a shortcode. No security credential involved.
func (s *mpesa) C2bRegister(ctx context.Context, param C2bRegisterRequest) (out C2bRegisterResponse, err error) {
	param.loadRequestDefaults()
	return client.Send[C2bRegisterResponse](s.client, ctx, param, mpesaC2bRegisterUrl)
}

// C2bSimulate fakes a customer-initiated payment against a sandbox
// shortcode.
func (s *mpesa) C2bSimulate(ctx context.Context, param C2bSimulateRequest) (out C2bSimulateResponse, err error) {
	param.loadRequestDefaults()
	return client.Send[C2bSimulateResponse](s.client, ctx, param, mpesaC2bSimulate)
}
