package mailer

import (
	"fmt"
	"os"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendQuizInvite(toEmail, freelancerName, quizTitle, quizLink string) error
	SendStageUpdate(toEmail, freelancerName, stage string) error
	SendDocumentRequest(toEmail, freelancerName, documentTitle, signLink string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	frontendURL string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	frontendURL := os.Getenv("FRONTEND_URL")

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		frontendURL: frontendURL,
	}
}

func (s *emailService) SendQuizInvite(toEmail, freelancerName, quizTitle, quizLink string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Translation Test: %s", quizTitle))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Hello %s,</h2>
			<p>You have been invited to take the following test:</p>
			<h3>%s</h3>
			<a href="%s" style="background-color: #007BFF; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Start Test</a>
			<p>Or copy this link:</p>
			<p>%s</p>
		</div>
	`, freelancerName, quizTitle, quizLink, quizLink)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send quiz invite to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Quiz invite sent to %s\n", toEmail)
	return nil
}

func (s *emailService) SendStageUpdate(toEmail, freelancerName, stage string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Your Application Status")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Hello %s,</h2>
			<p>Your application has moved to a new stage:</p>
			<h3 style="color: #4CAF50;">%s</h3>
			<p>We will contact you with further details shortly.</p>
		</div>
	`, freelancerName, stage)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send stage update to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Stage update sent to %s\n", toEmail)
	return nil
}

func (s *emailService) SendDocumentRequest(toEmail, freelancerName, documentTitle, signLink string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Document to Sign: %s", documentTitle))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Hello %s,</h2>
			<p>Please review and sign the following document:</p>
			<h3>%s</h3>
			<a href="%s" style="background-color: #007BFF; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Review &amp; Sign</a>
			<p>Or copy this link:</p>
			<p>%s</p>
		</div>
	`, freelancerName, documentTitle, signLink, signLink)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send document request to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Document request sent to %s\n", toEmail)
	return nil
}
