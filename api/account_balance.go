package api

import (
	"context"
	"net/http"

	"github.com/sokopay/mpesa/client"
)

var mpesaAccountBalanceQuery = client.Endpoint{Method: http.MethodPost, Uri: "mpesa/accountbalance/v1/query"}

type AccountBalanceRequest struct {
	CommandID          CommandId      `json:"CommandID"`
	PartyA             string         `json:"PartyA"`
	IdentifierType     IdentifierType `json:"IdentifierType"`
	Remarks            string         `json:"Remarks"`
	Initiator          string         `json:"Initiator"`
	SecurityCredential string         `json:"SecurityCredential"`
	QueueTimeOutURL    string         `json:"QueueTimeOutURL"`
	ResultURL          string         `json:"ResultURL"`
}

func (r *AccountBalanceRequest) loadClientParams(mpesa *client.Mpesa) (err error) {
	// the query only supports shortcode parties
	r.CommandID = CommandAccountBalance
	r.IdentifierType = IdentifierShortCode
	r.SecurityCredential, err = mpesa.SecurityCredential()
	return
}

type AccountBalanceResponse struct {
	ConversationID           string `json:"ConversationID,omitempty"`
	OriginatorConversationID string `json:"OriginatorConversationID,omitempty"`
	ResponseCode             string `json:"ResponseCode,omitempty"`
	ResponseDescription      string `json:"ResponseDescription,omitempty"`
}

func (r AccountBalanceResponse) Accepted() bool {
	return r.ResponseCode == "0"
}

// AccountBalance queries the working balance of a shortcode. Requires
// the security credential; the result arrives on ResultURL.
func (s *mpesa) AccountBalance(ctx context.Context, param AccountBalanceRequest) (out AccountBalanceResponse, err error) {
	if err = param.loadClientParams(s.client); err != nil {
		return
	}
	return client.Send[AccountBalanceResponse](s.client, ctx, param, mpesaAccountBalanceQuery)
}
