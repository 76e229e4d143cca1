package utils

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	GeneralEnquiryMessage = "Hi! I'm interested in your macramé products from Poppy and Teal. Could you please share more details?"
	CustomPieceMessage    = "Hi! I'm interested in a custom macramé piece. Could we discuss my requirements?"
	QuickContactMessage   = "Hi! I'd like to know more about your macramé products."
)

// WhatsAppLink builds a wa.me click-to-chat link. phone is the international number
// without "+" or spaces. The text is percent-encoded with url.QueryEscape, spaces as %20
// rather than "+". Unlike encodeURIComponent this also escapes !'()*.
func WhatsAppLink(phone, message string) string {
	phone = strings.TrimPrefix(strings.ReplaceAll(phone, " ", ""), "+")
	text := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return fmt.Sprintf("https://wa.me/%s?text=%s", phone, text)
}

func ProductEnquiryMessage(name string, price decimal.Decimal) string {
	return fmt.Sprintf(
		"Hi! I'm interested in the %s (₹%s) from your Poppy and Teal collection. Could you please share more details?",
		name, price.String(),
	)
}

func ContactFormMessage(name, email, message string) string {
	return fmt.Sprintf("Hi! I'm %s\nEmail: %s\n\nMessage: %s", name, email, message)
}
