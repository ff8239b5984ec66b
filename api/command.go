package api

// CommandId is the operation sub-type several payloads carry. Values are
// the literal strings the remote API matches on.
type CommandId string

const (
	CommandBusinessPayment            CommandId = "BusinessPayment"
	CommandSalaryPayment              CommandId = "SalaryPayment"
	CommandPromotionPayment           CommandId = "PromotionPayment"
	CommandBusinessToBusinessTransfer CommandId = "BusinessToBusinessTransfer"
	CommandBusinessPayBill            CommandId = "BusinessPayBill"
	CommandBusinessBuyGoods           CommandId = "BusinessBuyGoods"
	CommandCustomerPayBillOnline      CommandId = "CustomerPayBillOnline"
	CommandCustomerBuyGoodsOnline     CommandId = "CustomerBuyGoodsOnline"
	CommandAccountBalance             CommandId = "AccountBalance"
)

// IdentifierType is the party-identification scheme of account-balance
// queries. The remote API expects the numeric code as a string.
type IdentifierType string

const (
	IdentifierMsisdn     IdentifierType = "1"
	IdentifierTillNumber IdentifierType = "2"
	IdentifierShortCode  IdentifierType = "4"
)

type ResponseType string

const (
	ResponseTypeCompleted ResponseType = "Completed"
	ResponseTypeCancelled ResponseType = "Cancelled"
)
