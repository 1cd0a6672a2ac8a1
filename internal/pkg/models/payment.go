package models

// Payment is an installment paid against an order
type Payment struct {
	ID        string `json:"id"`
	Method    string `json:"method"`
	Date      string `json:"date"`
	Amount    string `json:"amount"`
	Remaining string `json:"remaining"`
	Customer  string `json:"customer"`
	Collector string `json:"collector"`
	Admin     string `json:"admin"`
}

// PaymentRequest records a new payment
type PaymentRequest struct {
	Method string  `json:"method"`
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}
