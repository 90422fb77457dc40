package domain

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Pricing is in whole rupiah; IDR has no subunit in this domain.
type Pricing struct {
	UnitPrice int64 `json:"unit_price"`
	AdminFee  int64 `json:"admin_fee"`
}

// Quote breaks a payable total into its parts.
type Quote struct {
	UnitPrice int64 `json:"unit_price"`
	Quantity  int   `json:"quantity"`
	Subtotal  int64 `json:"subtotal"`
	AdminFee  int64 `json:"admin_fee"`
	Total     int64 `json:"total"`
}

// Total returns unitPrice*count + adminFee. Negative inputs count as zero.
func Total(unitPrice int64, count int, adminFee int64) int64 {
	return NewQuote(Pricing{UnitPrice: unitPrice, AdminFee: adminFee}, count).Total
}

func NewQuote(p Pricing, count int) Quote {
	unit := max(p.UnitPrice, 0)
	fee := max(p.AdminFee, 0)
	qty := max(count, 0)

	subtotal := unit * int64(qty)
	return Quote{
		UnitPrice: unit,
		Quantity:  qty,
		Subtotal:  subtotal,
		AdminFee:  fee,
		Total:     subtotal + fee,
	}
}

var idrPrinter = message.NewPrinter(language.Indonesian)

// FormatIDR renders an amount the way the booking screens show it, e.g. "Rp 50.000".
func FormatIDR(amount int64) string {
	if amount < 0 {
		return idrPrinter.Sprintf("-Rp %d", -amount)
	}
	return idrPrinter.Sprintf("Rp %d", amount)
}
