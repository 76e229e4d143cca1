package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/diyahomestylist/poppyandteal/models"
	"github.com/diyahomestylist/poppyandteal/services"
)

type ContactController struct {
	Contacts *services.ContactService
}

// @Summary Send a message
// @Description Submit the contact form; returns a WhatsApp link to continue the conversation
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body models.ContactRequest true "Message"
// @Success 201 {object} models.Response{data=models.ContactResult}
// @Failure 400 {object} models.ErrorResponse
// @Router /contact [post]
func (ctrl *ContactController) Submit(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request", err)
		return
	}
	result := ctrl.Contacts.Submit(c.Request.Context(), req)
	ok(c, http.StatusCreated, "Thank you for your message! We'll get back to you soon.", result)
}

// @Summary WhatsApp link
// @Tags Contact
// @Produce json
// @Param kind query string false "general, custom or quick" default(general)
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /whatsapp [get]
func (ctrl *ContactController) WhatsApp(c *gin.Context) {
	link, err := ctrl.Contacts.Link(c.Query("kind"))
	if err != nil {
		failFrom(c, err)
		return
	}
	ok(c, http.StatusOK, "WhatsApp link", gin.H{"url": link})
}
