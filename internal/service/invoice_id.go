package service

import (
	"fmt"
	"time"
)

// Invoice id styles
const (
	IDStyleDated      = "dated"       // INV-YYMMDD-HHMMSS
	IDStyleMonthToken = "month-token" // PREFIX-YY<MT>HHMMSS
)

var monthTokens = [...]string{"", "JA", "FE", "MR", "AP", "MY", "JN", "JL", "AU", "SE", "OC", "NO", "DE"}

// IDGenerator derives invoice ids from the wall clock. Two ids minted within the
// same second collide; nothing is persisted to prevent that.
type IDGenerator struct {
	Prefix   string
	Style    string
	Location *time.Location
	Clock    func() time.Time
}

func NewIDGenerator(prefix, style string, loc *time.Location) *IDGenerator {
	if prefix == "" {
		prefix = "INV"
	}
	if loc == nil {
		loc = time.Local
	}
	return &IDGenerator{Prefix: prefix, Style: style, Location: loc, Clock: time.Now}
}

// Now returns the generator's current time in its location.
func (g *IDGenerator) Now() time.Time {
	return g.Clock().In(g.Location)
}

// Next formats an id for the current time.
func (g *IDGenerator) Next() string {
	return g.Format(g.Now())
}

// Format formats an id for t.
func (g *IDGenerator) Format(t time.Time) string {
	switch g.Style {
	case IDStyleMonthToken:
		return fmt.Sprintf("%s-%s%s%s", g.Prefix, t.Format("06"), monthTokens[t.Month()], t.Format("150405"))
	default:
		return fmt.Sprintf("%s-%s-%s", g.Prefix, t.Format("060102"), t.Format("150405"))
	}
}
