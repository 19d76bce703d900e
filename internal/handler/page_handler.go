package handler

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"

	"invoicedesk/internal/model"
	"invoicedesk/internal/service"
	webui "invoicedesk/web"

	"github.com/gin-gonic/gin"
)

// PageHandler serves the single-page form.
type PageHandler struct {
	page *template.Template
	data pageData
}

type pageData struct {
	Business        model.Business
	Currency        string
	SurchargeLabel  string
	PaymentModes    []string
	PaymentStatuses []statusOption
}

type statusOption struct {
	Value string
	Label string
}

func NewPageHandler(business model.Business, currency string) (*PageHandler, error) {
	tmpl, err := template.ParseFS(webui.Templates, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse page template: %w", err)
	}

	statuses := make([]statusOption, 0, len(model.PaymentStatuses))
	for _, s := range model.PaymentStatuses {
		statuses = append(statuses, statusOption{Value: s, Label: model.PaymentStatusLabel(s)})
	}

	return &PageHandler{
		page: tmpl,
		data: pageData{
			Business:        business,
			Currency:        currency,
			SurchargeLabel:  service.SurchargeLabel(),
			PaymentModes:    model.PaymentModes,
			PaymentStatuses: statuses,
		},
	}, nil
}

func (h *PageHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/", h.Index)
}

func (h *PageHandler) Index(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.page.Execute(&buf, h.data); err != nil {
		writeError(c, fmt.Errorf("failed to render page: %w", err))
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}
