package web

import "embed"

// Templates holds the embedded page and invoice preview templates.
//
//go:embed templates
var Templates embed.FS
