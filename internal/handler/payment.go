package handler

import "strings"

// allowedCurrencies holds the normalized (upper-case) currency codes.
var allowedCurrencies = map[string]bool{
	"BHD": true,
	"USD": true,
	"EUR": true,
}

// feeRate is the flat processing fee applied to every payment.
const feeRate = 0.02

// PaymentData is the normalized output of a PAYMENT event. Amount, Fee and
// NetAmount are each rounded to 3 decimal places, half to even; Fee is
// computed from the rounded amount and NetAmount from the two rounded
// values, so net + fee matches amount only up to that rounding.
type PaymentData struct {
	PaymentID string  `json:"payment_id"`
	UserID    int64   `json:"user_id"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	Fee       float64 `json:"fee"`
	NetAmount float64 `json:"net_amount"`
}

// handlePayment validates and normalizes a PAYMENT event.
func handlePayment(rec map[string]interface{}) Envelope {
	var errs []string

	paymentID, paymentIDOK := stringValue(rec["payment_id"])
	userID, userIDOK := intValue(rec["user_id"])
	amount, amountOK := numberValue(rec["amount"])
	currency, currencyOK := stringValue(rec["currency"])

	if !paymentIDOK {
		errs = append(errs, "payment_id must be a string")
	}
	if !userIDOK {
		errs = append(errs, "user_id must be an integer")
	}
	if !amountOK {
		errs = append(errs, "amount must be a number")
	}
	if !currencyOK {
		errs = append(errs, "currency must be a string")
	}

	if amountOK && amount <= 0 {
		errs = append(errs, "amount must be greater than 0")
	}

	// Normalize before the membership check.
	if currencyOK {
		currency = strings.ToUpper(currency)
		if !allowedCurrencies[currency] {
			errs = append(errs, "Unsupported currency")
		}
	}

	if len(errs) > 0 {
		return reject(errs...)
	}

	amount = round3(amount)
	fee := round3(amount * feeRate)
	net := round3(amount - fee)

	return ok("Payment processed", PaymentData{
		PaymentID: paymentID,
		UserID:    userID,
		Amount:    amount,
		Currency:  currency,
		Fee:       fee,
		NetAmount: net,
	})
}
