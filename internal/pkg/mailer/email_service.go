// FILE: internal/pkg/mailer/email_service.go
package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"qrcapture-be/internal/entity"
)

type IEmailService interface {
	SendWelcome(venue *entity.Venue, baseURL string) error
	SendLeadNotification(venue *entity.Venue, lead *entity.Lead) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
}

func NewEmailService(host string, port int, username, password, senderName string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: username,
		senderName:  senderName,
	}
}

func (s *emailService) SendWelcome(venue *entity.Venue, baseURL string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.senderEmail, s.senderName)
	m.SetHeader("To", venue.Email)
	m.SetHeader("Subject", fmt.Sprintf("Welcome to QR Lead Capture, %s!", venue.Name))

	captureURL := baseURL + venue.CaptureURL()
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Welcome aboard, %s!</h2>
			<p>Your capture page is live. Print the QR code below and your customers can start leaving their contact info right away:</p>
			<p><a href="%s">%s</a></p>
			<p>Log in with this email address to see your leads.</p>
		</div>
	`, venue.Name, captureURL, captureURL)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send welcome to %s: %v\n", venue.Email, err)
		return err
	}

	fmt.Printf("[MAILER] Welcome sent to %s\n", venue.Email)
	return nil
}

func (s *emailService) SendLeadNotification(venue *entity.Venue, lead *entity.Lead) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.senderEmail, s.senderName)
	m.SetHeader("To", venue.Email)
	m.SetHeader("Subject", fmt.Sprintf("New Lead Captured at %s!", venue.Name))

	contact := lead.Email
	if contact == "" {
		contact = lead.Phone
	}
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>You have a new lead</h2>
			<p><strong>Name:</strong> %s</p>
			<p><strong>Contact:</strong> %s</p>
			<p>Log in to your dashboard to see all your leads.</p>
		</div>
	`, lead.Name, contact)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send lead notification to %s: %v\n", venue.Email, err)
		return err
	}

	fmt.Printf("[MAILER] Lead notification sent to %s\n", venue.Email)
	return nil
}
