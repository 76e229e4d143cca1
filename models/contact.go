package models

import "time"

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

type Contact struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type ContactStatusUpdate struct {
	Status string `json:"status" binding:"required,oneof=new read replied"`
}

type ContactResult struct {
	Contact     *Contact `json:"contact,omitempty"`
	WhatsAppURL string   `json:"whatsapp_url"`
}
