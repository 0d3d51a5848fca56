package entities

// InstallmentOption is one row of the installment plan offered for a card payment.
type InstallmentOption struct {
	Count             int     `json:"count"`
	InstallmentAmount float64 `json:"installment_amount"`
	FeeRatePercent    float64 `json:"fee_rate_percent"`
	TotalAmount       float64 `json:"total_amount"`
}

// InstallmentRate is the fee applied to a given installment count.
type InstallmentRate struct {
	Count          int
	FeeRatePercent float64
}
