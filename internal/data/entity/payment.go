package entity

type PaymentMethod struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	IconURL string `json:"icon_url"`
}

const DefaultPaymentMethod = "qris"

// PaymentMethods is the checkout screen's fixed catalogue.
var PaymentMethods = []PaymentMethod{
	{ID: "qris", Name: "QRIS", IconURL: "https://upload.wikimedia.org/wikipedia/commons/d/d7/Commons_QR_code.png"},
	{ID: "dana", Name: "DANA", IconURL: "https://upload.wikimedia.org/wikipedia/commons/7/72/Logo_dana_blue.svg"},
	{ID: "gopay", Name: "GoPay", IconURL: "https://upload.wikimedia.org/wikipedia/commons/8/86/Gopay_logo.svg"},
}
