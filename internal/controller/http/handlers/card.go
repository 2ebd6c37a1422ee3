package handlers

import (
	"net/http"

	"PaymentGatewayPractice/internal/session"

	"github.com/gin-gonic/gin"
)

// CardPage is the static configuration of the card form page.
type CardPage struct {
	PublishableKey string
	ScriptURL      string
}

type CardHandler struct {
	page CardPage
}

func NewCardHandler(page CardPage) *CardHandler {
	return &CardHandler{page: page}
}

type cardView struct {
	formView
	PublishableKey string
	ScriptURL      string
}

func (h *CardHandler) Show(c *gin.Context) {
	h.render(c, http.StatusOK, nil)
}

// Submit applies the posted billing fields, mounts the card reference the
// hosted widget produced and waits for the provider. The page posts
// sdk_unavailable when the widget script failed to load.
func (h *CardHandler) Submit(c *gin.Context) {
	sess := session.From(c)

	if err := applyForm(c, sess.Card); err != nil {
		h.fail(c, err)
		return
	}
	if c.PostForm("sdk_unavailable") != "" {
		sess.CardElement.MarkUnavailable()
	} else {
		sess.CardElement.Mount(c.PostForm("card_token"))
	}

	if _, err := sess.Card.Submit(c.Request.Context()); err != nil {
		h.fail(c, err)
		return
	}

	if wantsJSON(c) {
		c.JSON(http.StatusOK, newStatusResponse(sess.Card))
		return
	}
	c.Redirect(http.StatusSeeOther, "/stripe")
}

func (h *CardHandler) UpdateField(c *gin.Context) {
	updateField(c, session.From(c).Card)
}

func (h *CardHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, newStatusResponse(session.From(c).Card))
}

func (h *CardHandler) fail(c *gin.Context, err error) {
	_ = c.Error(err)
	if wantsJSON(c) {
		c.JSON(errorStatus(err), gin.H{"message": errorMessage(err)})
		return
	}
	h.render(c, errorStatus(err), err)
}

func (h *CardHandler) render(c *gin.Context, code int, err error) {
	c.HTML(code, "card.tmpl", cardView{
		formView:       newFormView("Secure Payment", session.From(c).Card, err),
		PublishableKey: h.page.PublishableKey,
		ScriptURL:      h.page.ScriptURL,
	})
}
