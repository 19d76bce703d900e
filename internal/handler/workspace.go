package handler

import (
	"sync"

	"invoicedesk/internal/service"
)

// Workspace is the single form and its export. Handlers hold the lock for the
// whole request so form edits and exports never interleave.
type Workspace struct {
	mu     sync.Mutex
	Form   service.FormService
	Export service.ExportService
}

func NewWorkspace(form service.FormService, export service.ExportService) *Workspace {
	return &Workspace{Form: form, Export: export}
}

func (w *Workspace) Lock()   { w.mu.Lock() }
func (w *Workspace) Unlock() { w.mu.Unlock() }
