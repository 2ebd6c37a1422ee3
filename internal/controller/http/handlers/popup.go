package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"PaymentGatewayPractice/internal/domain/checkout"
	"PaymentGatewayPractice/internal/provider/popup"
	"PaymentGatewayPractice/internal/session"

	"github.com/gin-gonic/gin"
)

// PopupPage is the static configuration of the popup checkout page.
type PopupPage struct {
	KeyID     string
	ScriptURL string
	Amount    int64
	Currency  string
}

type PopupHandler struct {
	page PopupPage
}

func NewPopupHandler(page PopupPage) *PopupHandler {
	return &PopupHandler{page: page}
}

type popupView struct {
	formView
	KeyID     string
	ScriptURL string
	Amount    int64
	Currency  string
}

type checkoutView struct {
	ID      string        `json:"id"`
	Options popup.Options `json:"options"`
}

type unavailableRequest struct {
	CheckoutID string `json:"checkout_id" binding:"required"`
}

type completeRequest struct {
	CheckoutID string `json:"checkout_id" binding:"required"`
	popup.Response
}

func (h *PopupHandler) Show(c *gin.Context) {
	h.render(c, http.StatusOK, nil)
}

// Submit moves the form to Pending and returns right away; the page then
// polls Status for the modal options and opens the provider's popup.
func (h *PopupHandler) Submit(c *gin.Context) {
	sess := session.From(c)

	if err := applyForm(c, sess.Popup); err != nil {
		h.fail(c, err)
		return
	}

	// The payer may close the page; the checkout still runs to completion.
	if err := sess.Popup.SubmitAsync(context.WithoutCancel(c.Request.Context())); err != nil {
		h.fail(c, err)
		return
	}

	if wantsJSON(c) {
		c.JSON(http.StatusAccepted, newStatusResponse(sess.Popup))
		return
	}
	c.Redirect(http.StatusSeeOther, "/razorpay")
}

func (h *PopupHandler) UpdateField(c *gin.Context) {
	updateField(c, session.From(c).Popup)
}

func (h *PopupHandler) Status(c *gin.Context) {
	sess := session.From(c)

	resp := newStatusResponse(sess.Popup)
	if id, options, ok := sess.Modal.Current(); ok {
		resp.Checkout = &checkoutView{ID: id, Options: options}
	}
	c.JSON(http.StatusOK, resp)
}

// Complete receives the provider's success handler payload from the page.
func (h *PopupHandler) Complete(c *gin.Context) {
	var req completeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing checkout_id or razorpay_payment_id"})
		return
	}

	h.resolved(c, session.From(c).Modal.Complete(req.CheckoutID, req.Response))
}

// Unavailable is posted by the page when the provider script failed to load,
// so the waiting checkout fails now instead of after the provider timeout.
func (h *PopupHandler) Unavailable(c *gin.Context) {
	var req unavailableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing checkout_id"})
		return
	}

	err := session.From(c).Modal.Fail(req.CheckoutID, fmt.Errorf("%w: checkout script not loaded", checkout.ErrSDKNotReady))
	h.resolved(c, err)
}

func (h *PopupHandler) resolved(c *gin.Context, err error) {
	switch {
	case err == nil:
		c.Status(http.StatusNoContent)
	case errors.Is(err, popup.ErrNoOpenCheckout):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
	}
}

func (h *PopupHandler) fail(c *gin.Context, err error) {
	_ = c.Error(err)
	if wantsJSON(c) {
		c.JSON(errorStatus(err), gin.H{"message": errorMessage(err)})
		return
	}
	h.render(c, errorStatus(err), err)
}

func (h *PopupHandler) render(c *gin.Context, code int, err error) {
	c.HTML(code, "popup.tmpl", popupView{
		formView:  newFormView("Razorpay Payment", session.From(c).Popup, err),
		KeyID:     h.page.KeyID,
		ScriptURL: h.page.ScriptURL,
		Amount:    h.page.Amount,
		Currency:  h.page.Currency,
	})
}
