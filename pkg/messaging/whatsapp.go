package messaging

import (
	"net/url"
	"strings"
)

const DefaultHost = "api.whatsapp.com"

// WhatsApp composes click-to-chat links for a fixed country code.
type WhatsApp struct {
	Host        string
	CountryCode string
}

func NewWhatsApp(host, countryCode string) *WhatsApp {
	if host == "" {
		host = DefaultHost
	}
	return &WhatsApp{Host: host, CountryCode: countryCode}
}

// Link returns https://<host>/send?phone=<cc><mobile>&text=<message>.
func (w *WhatsApp) Link(mobile, message string) string {
	return "https://" + w.Host + "/send?phone=" + w.CountryCode + strings.TrimSpace(mobile) + "&text=" + EncodeComponent(message)
}

// EncodeComponent escapes s the way browsers' encodeURIComponent does.
func EncodeComponent(s string) string {
	escaped := strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
	// encodeURIComponent leaves these unescaped.
	for _, c := range []string{"!", "'", "(", ")", "*"} {
		escaped = strings.ReplaceAll(escaped, url.QueryEscape(c), c)
	}
	return escaped
}
