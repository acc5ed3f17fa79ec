package mail

import (
	"context"
	"fmt"
	"strings"

	"github.com/swayogurja/swayog-backend/internal/entity"
)

const (
	NewInquiry     = "new_inquiry.gohtml"
	ContactMessage = "contact_message.gohtml"
)

type inquiryTemplateData struct {
	Name        string
	Email       string
	Phone       string
	CustomerNo  string
	ProjectType string
	Message     string
}

type contactTemplateData struct {
	FirstName string
	LastName  string
	Email     string
	Subject   string
	Message   string
}

// SendNewInquiry emails the stored inquiry to the configured receiver with
// the requester's address as Reply-To.
func (m *Mailer) SendNewInquiry(ctx context.Context, inq *entity.Inquiry) error {
	to, err := m.ReceiverEmail()
	if err != nil {
		return err
	}

	customerNo := inq.CustomerNo
	if customerNo == "" {
		customerNo = "N/A"
	}

	text := fmt.Sprintf("New Inquiry Details:\nName: %s\nEmail: %s\nPhone: %s\nConsumer ID: %s\nProject Type: %s\nMessage: %s",
		inq.Name, inq.Email, inq.Phone, customerNo, inq.ProjectType, inq.Message)

	html, err := m.execTemplate(NewInquiry, inquiryTemplateData{
		Name:        inq.Name,
		Email:       inq.Email,
		Phone:       inq.Phone,
		CustomerNo:  customerNo,
		ProjectType: string(inq.ProjectType),
		Message:     strings.ReplaceAll(inq.Message, "\n", "<br>"),
	})
	if err != nil {
		return err
	}

	return m.Send(ctx, Message{
		To:      to,
		ReplyTo: inq.Email,
		Subject: fmt.Sprintf("New Solar Inquiry from %s", inq.Name),
		Text:    text,
		HTML:    html,
	})
}

// SendContactMessage emails a contact form submission to the configured
// receiver. Nothing is persisted for contact messages; a failed send means
// the message is gone.
func (m *Mailer) SendContactMessage(ctx context.Context, msg *entity.ContactMessage) error {
	to, err := m.ReceiverEmail()
	if err != nil {
		return err
	}

	text := fmt.Sprintf(`New Contact Form Message Received

Name: %s %s
Email: %s
Subject: %s

Message:
%s

---
This message was sent from the Swayog Energy website contact form.`,
		msg.FirstName, msg.LastName, msg.Email, msg.Subject, msg.Message)

	html, err := m.execTemplate(ContactMessage, contactTemplateData{
		FirstName: msg.FirstName,
		LastName:  msg.LastName,
		Email:     msg.Email,
		Subject:   msg.Subject,
		Message:   strings.ReplaceAll(msg.Message, "\n", "<br>"),
	})
	if err != nil {
		return err
	}

	return m.Send(ctx, Message{
		To:      to,
		ReplyTo: msg.Email,
		Subject: fmt.Sprintf("Contact Form: %s", msg.Subject),
		Text:    text,
		HTML:    html,
	})
}
