package handlers

import (
	"errors"
	"net/http"

	"PaymentGatewayPractice/internal/domain/checkout"
	"PaymentGatewayPractice/internal/presenter"

	"github.com/gin-gonic/gin"
)

const inFlightMessage = "A payment is already being processed."

type fieldUpdateRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

type statusResponse struct {
	Status    checkout.Status         `json:"status"`
	Indicator presenter.Indicator     `json:"indicator"`
	Details   checkout.BillingDetails `json:"details"`
	Checkout  *checkoutView           `json:"checkout,omitempty"`
}

func newStatusResponse(form *checkout.Form) statusResponse {
	status := form.Status()
	return statusResponse{
		Status:    status,
		Indicator: presenter.Present(status),
		Details:   form.Details(),
	}
}

// formView is what every checkout page template receives.
type formView struct {
	Title     string
	Details   checkout.BillingDetails
	Layout    checkout.Layout
	Countries []checkout.Country
	Indicator presenter.Indicator
	Error     string
}

func newFormView(title string, form *checkout.Form, err error) formView {
	return formView{
		Title:     title,
		Details:   form.Details(),
		Layout:    form.Layout(),
		Countries: checkout.Countries,
		Indicator: presenter.Present(form.Status()),
		Error:     errorMessage(err),
	}
}

// applyForm writes the posted fields as one update, so a rejected value
// leaves every field of the form untouched.
func applyForm(c *gin.Context, form *checkout.Form) error {
	var values []checkout.FieldValue
	for _, field := range checkout.AvailableFields {
		if value, ok := c.GetPostForm(string(field)); ok {
			values = append(values, checkout.FieldValue{Field: field, Value: value})
		}
	}
	return form.Apply(values...)
}

func updateField(c *gin.Context, form *checkout.Form) {
	var req fieldUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing field"})
		return
	}

	field, err := checkout.NewField(req.Field)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if err := form.Update(field, req.Value); err != nil {
		c.JSON(errorStatus(err), gin.H{"message": errorMessage(err)})
		return
	}

	c.Status(http.StatusNoContent)
}

func wantsJSON(c *gin.Context) bool {
	return c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON
}

func errorStatus(err error) int {
	var validationErr *checkout.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return http.StatusUnprocessableEntity
	case errors.Is(err, checkout.ErrSubmissionInFlight):
		return http.StatusConflict
	case errors.Is(err, checkout.ErrUnknownField):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func errorMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, checkout.ErrSubmissionInFlight):
		return inFlightMessage
	default:
		return checkout.MessageFor(err)
	}
}
