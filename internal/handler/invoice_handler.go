package handler

import (
	"net/http"

	"invoicedesk/internal/service"
	"invoicedesk/pkg/response"

	"github.com/gin-gonic/gin"
)

type InvoiceHandler struct {
	ws *Workspace
}

func NewInvoiceHandler(ws *Workspace) *InvoiceHandler {
	return &InvoiceHandler{ws: ws}
}

type CloseResponse struct {
	State service.ExportState `json:"state"`
}

func (h *InvoiceHandler) RegisterRoutes(router *gin.RouterGroup) {
	invoice := router.Group("/api/invoice")
	{
		invoice.POST("/generate", h.Generate)
		invoice.GET("/preview", h.Preview)
		invoice.POST("/download", h.Download)
		invoice.POST("/whatsapp", h.SendWhatsApp)
		invoice.POST("/share-image", h.ShareImage)
		invoice.POST("/email", h.SendEmail)
		invoice.POST("/send-all", h.SendAll)
		invoice.POST("/close", h.Close)
	}
}

// Generate validates the form and produces the preview, PDF and image
// @Summary      Generate invoice
// @Description  Assigns a new invoice id. Any previously generated export is released.
// @Tags         invoice
// @Produce      json
// @Success      200  {object}  response.Response{data=service.ExportResponse}
// @Failure      422  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /api/invoice/generate [post]
func (h *InvoiceHandler) Generate(c *gin.Context) {
	h.ws.Lock()
	defer h.ws.Unlock()

	resp, err := h.ws.Export.Generate(c.Request.Context(), h.ws.Form.Draft(), h.ws.Form.Revision())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, resp))
}

// Preview returns the currently generated export
// @Summary      Get preview
// @Tags         invoice
// @Produce      json
// @Success      200  {object}  response.Response{data=service.ExportResponse}
// @Failure      409  {object}  response.Response
// @Router       /api/invoice/preview [get]
func (h *InvoiceHandler) Preview(c *gin.Context) {
	h.ws.Lock()
	defer h.ws.Unlock()

	resp, err := h.ws.Export.Current()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, resp))
}

// Download returns the PDF download action
// @Summary      Download PDF
// @Tags         invoice
// @Produce      json
// @Success      200  {object}  response.Response{data=service.Action}
// @Failure      409  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Router       /api/invoice/download [post]
func (h *InvoiceHandler) Download(c *gin.Context) {
	h.ws.Lock()
	defer h.ws.Unlock()

	action, err := h.ws.Export.Download(h.ws.Form.Draft(), h.ws.Form.Revision())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, action))
}

// SendWhatsApp composes the WhatsApp link with the full invoice text
// @Summary      Send via WhatsApp
// @Tags         invoice
// @Produce      json
// @Success      200  {object}  response.Response{data=service.Action}
// @Failure      400  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Router       /api/invoice/whatsapp [post]
func (h *InvoiceHandler) SendWhatsApp(c *gin.Context) {
	h.ws.Lock()
	defer h.ws.Unlock()

	action, err := h.ws.Export.SendWhatsApp(h.ws.Form.Draft(), h.ws.Form.Revision())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, action))
}

// ShareImage downloads the invoice image and then opens WhatsApp with a short summary
// @Summary      Share invoice image
// @Tags         invoice
// @Produce      json
// @Success      200  {object}  response.Response{data=[]service.Action}
// @Failure      400  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /api/invoice/share-image [post]
func (h *InvoiceHandler) ShareImage(c *gin.Context) {
	h.ws.Lock()
	defer h.ws.Unlock()

	actions, err := h.ws.Export.ShareImage(h.ws.Form.Draft(), h.ws.Form.Revision())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, actions))
}

// SendEmail opens a mailto link or sends through the configured email provider
// @Summary      Send via email
// @Tags         invoice
// @Produce      json
// @Success      200  {object}  response.Response{data=service.Action}
// @Failure      400  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Failure      502  {object}  response.Response
// @Router       /api/invoice/email [post]
func (h *InvoiceHandler) SendEmail(c *gin.Context) {
	h.ws.Lock()
	defer h.ws.Unlock()

	action, err := h.ws.Export.SendEmail(c.Request.Context(), h.ws.Form.Draft(), h.ws.Form.Revision())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, action))
}

// SendAll runs download, WhatsApp and email with staggered delays
// @Summary      Send to all channels
// @Description  Channels that cannot be used are listed in failures; the rest still run
// @Tags         invoice
// @Produce      json
// @Success      200  {object}  response.Response{data=service.SendAllResponse}
// @Failure      409  {object}  response.Response
// @Router       /api/invoice/send-all [post]
func (h *InvoiceHandler) SendAll(c *gin.Context) {
	h.ws.Lock()
	defer h.ws.Unlock()

	resp, err := h.ws.Export.SendAll(c.Request.Context(), h.ws.Form.Draft(), h.ws.Form.Revision())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, resp))
}

// Close dismisses the preview and releases its files
// @Summary      Close preview
// @Tags         invoice
// @Produce      json
// @Success      200  {object}  response.Response{data=CloseResponse}
// @Router       /api/invoice/close [post]
func (h *InvoiceHandler) Close(c *gin.Context) {
	h.ws.Lock()
	defer h.ws.Unlock()

	if err := h.ws.Export.Close(c.Request.Context()); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, CloseResponse{State: h.ws.Export.State()}))
}
