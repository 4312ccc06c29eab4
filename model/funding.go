package model

// DepositDetails is the result of a deposit-address request
type DepositDetails struct {
	Address string
	Symbol  string
}

// FundingRecord is one entry of a deposit or withdrawal history
type FundingRecord struct {
	Asset     Asset
	Amount    *Number
	Address   string
	Timestamp *Timestamp
}

// WithdrawRequest describes a withdrawal to an external address
type WithdrawRequest struct {
	Symbol  string
	Amount  *Number
	Address string
}

// WithdrawalResponse is the result of a Withdraw call
type WithdrawalResponse struct {
	Success bool
}
