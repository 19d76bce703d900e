package messaging

import (
	"net/url"
	"strings"
	"testing"
)

func TestEncodeComponent(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Hello Asha", "Hello%20Asha"},
		{"a+b=c&d", "a%2Bb%3Dc%26d"},
		{"ready!", "ready!"},
		{"(10%)", "(10%25)"},
		{"₹550.00", "%E2%82%B9550.00"},
		{"line\nbreak", "line%0Abreak"},
	}
	for _, tt := range tests {
		if got := EncodeComponent(tt.in); got != tt.want {
			t.Errorf("EncodeComponent(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLink(t *testing.T) {
	w := NewWhatsApp("", "91")
	link := w.Link("9876543210", "Hello Asha, total ₹550.00")

	if !strings.HasPrefix(link, "https://api.whatsapp.com/send?phone=919876543210&text=") {
		t.Fatalf("unexpected link prefix: %s", link)
	}
	if strings.Contains(link, "+") {
		t.Fatalf("spaces must be encoded as %%20: %s", link)
	}

	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("parse link: %v", err)
	}
	if got := u.Query().Get("text"); got != "Hello Asha, total ₹550.00" {
		t.Fatalf("decoded text = %q", got)
	}
}
