package handler

import (
	"net/http"
	"strconv"

	"invoicedesk/internal/service"
	"invoicedesk/pkg/response"

	"github.com/gin-gonic/gin"
)

type FormHandler struct {
	ws *Workspace
}

func NewFormHandler(ws *Workspace) *FormHandler {
	return &FormHandler{ws: ws}
}

type SetRemainingRequest struct {
	Amount string `json:"amount"`
}

type AddLineItemResponse struct {
	Index int                       `json:"index"`
	Form  service.FormStateResponse `json:"form"`
}

func (h *FormHandler) RegisterRoutes(router *gin.RouterGroup) {
	form := router.Group("/api/form")
	{
		form.GET("", h.GetForm)
		form.PUT("/customer", h.UpdateCustomer)
		form.PUT("/payment", h.UpdatePayment)
		form.PUT("/remaining", h.SetRemaining)
		form.DELETE("/remaining", h.UseDefaultRemaining)
		form.POST("/services", h.AddLineItem)
		form.PUT("/services/:index", h.UpdateLineItem)
		form.DELETE("/services/:index", h.RemoveLineItem)
		form.POST("/reset", h.Reset)
	}
}

// GetForm returns the current draft with its live totals
// @Summary      Get form
// @Tags         form
// @Produce      json
// @Success      200  {object}  response.Response{data=service.FormStateResponse}
// @Router       /api/form [get]
func (h *FormHandler) GetForm(c *gin.Context) {
	h.ws.Lock()
	defer h.ws.Unlock()

	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.ws.Form.State()))
}

// UpdateCustomer edits the customer block and note
// @Summary      Update customer details
// @Description  Fields left out of the payload are unchanged
// @Tags         form
// @Accept       json
// @Produce      json
// @Param        payload  body      service.UpdateCustomerRequest  true  "Customer fields"
// @Success      200      {object}  response.Response{data=service.FormStateResponse}
// @Failure      400      {object}  response.Response
// @Router       /api/form/customer [put]
func (h *FormHandler) UpdateCustomer(c *gin.Context) {
	var req service.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	h.ws.Lock()
	defer h.ws.Unlock()

	h.ws.Form.UpdateCustomer(req)
	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.ws.Form.State()))
}

// UpdatePayment sets the payment mode and status
// @Summary      Update payment
// @Description  Changing the status clears the remaining amount; half-paid re-derives it from the total
// @Tags         form
// @Accept       json
// @Produce      json
// @Param        payload  body      service.UpdatePaymentRequest  true  "Payment mode and status"
// @Success      200      {object}  response.Response{data=service.FormStateResponse}
// @Failure      422      {object}  response.Response
// @Router       /api/form/payment [put]
func (h *FormHandler) UpdatePayment(c *gin.Context) {
	var req service.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	h.ws.Lock()
	defer h.ws.Unlock()

	if err := h.ws.Form.UpdatePayment(req); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.ws.Form.State()))
}

// SetRemaining pins a user-entered remaining amount
// @Summary      Set remaining amount
// @Tags         form
// @Accept       json
// @Produce      json
// @Param        payload  body      SetRemainingRequest  true  "Remaining amount"
// @Success      200      {object}  response.Response{data=service.FormStateResponse}
// @Failure      422      {object}  response.Response
// @Router       /api/form/remaining [put]
func (h *FormHandler) SetRemaining(c *gin.Context) {
	var req SetRemainingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	h.ws.Lock()
	defer h.ws.Unlock()

	if err := h.ws.Form.SetRemainingAmount(req.Amount); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.ws.Form.State()))
}

// UseDefaultRemaining drops the override so the remaining amount follows half the total again
// @Summary      Reset remaining amount to default
// @Tags         form
// @Produce      json
// @Success      200  {object}  response.Response{data=service.FormStateResponse}
// @Failure      422  {object}  response.Response
// @Router       /api/form/remaining [delete]
func (h *FormHandler) UseDefaultRemaining(c *gin.Context) {
	h.ws.Lock()
	defer h.ws.Unlock()

	if err := h.ws.Form.UseDefaultRemaining(); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.ws.Form.State()))
}

// AddLineItem appends an empty service row
// @Summary      Add service
// @Tags         form
// @Produce      json
// @Success      201  {object}  response.Response{data=AddLineItemResponse}
// @Router       /api/form/services [post]
func (h *FormHandler) AddLineItem(c *gin.Context) {
	h.ws.Lock()
	defer h.ws.Unlock()

	index := h.ws.Form.AddLineItem()
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, AddLineItemResponse{
		Index: index,
		Form:  h.ws.Form.State(),
	}))
}

// UpdateLineItem edits one service row
// @Summary      Update service
// @Tags         form
// @Accept       json
// @Produce      json
// @Param        index    path      int                            true  "Zero-based row index"
// @Param        payload  body      service.UpdateLineItemRequest  true  "Description and amount"
// @Success      200      {object}  response.Response{data=service.FormStateResponse}
// @Failure      404      {object}  response.Response
// @Router       /api/form/services/{index} [put]
func (h *FormHandler) UpdateLineItem(c *gin.Context) {
	index, ok := lineIndex(c)
	if !ok {
		return
	}
	var req service.UpdateLineItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	h.ws.Lock()
	defer h.ws.Unlock()

	if err := h.ws.Form.UpdateLineItem(index, req); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.ws.Form.State()))
}

// RemoveLineItem deletes one service row; the last row cannot be removed
// @Summary      Remove service
// @Tags         form
// @Produce      json
// @Param        index  path      int  true  "Zero-based row index"
// @Success      200    {object}  response.Response{data=service.FormStateResponse}
// @Failure      404    {object}  response.Response
// @Failure      409    {object}  response.Response
// @Router       /api/form/services/{index} [delete]
func (h *FormHandler) RemoveLineItem(c *gin.Context) {
	index, ok := lineIndex(c)
	if !ok {
		return
	}

	h.ws.Lock()
	defer h.ws.Unlock()

	if err := h.ws.Form.RemoveLineItem(index); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.ws.Form.State()))
}

// Reset clears the form and closes any open preview
// @Summary      Reset form
// @Description  A form with unsaved edits is only reset with confirm=true
// @Tags         form
// @Produce      json
// @Param        confirm  query     bool  false  "Discard unsaved changes"
// @Success      200      {object}  response.Response{data=service.FormStateResponse}
// @Failure      400      {object}  response.Response
// @Router       /api/form/reset [post]
func (h *FormHandler) Reset(c *gin.Context) {
	confirmed, _ := strconv.ParseBool(c.DefaultQuery("confirm", "false"))

	h.ws.Lock()
	defer h.ws.Unlock()

	if err := h.ws.Form.Reset(confirmed); err != nil {
		writeError(c, err)
		return
	}
	if err := h.ws.Export.Close(c.Request.Context()); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.ws.Form.State()))
}

func lineIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		badRequest(c, "Invalid service index")
		return 0, false
	}
	return index, true
}
