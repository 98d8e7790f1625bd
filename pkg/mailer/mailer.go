package mailer

import (
	"fmt"
	"time"

	"github.com/wneessen/go-mail"
)

//go:generate mockgen -destination=../mocks/mock_mailer.go -package=pkgmocks github.com/oneclicktag/oneclicktag/pkg/mailer Mailer

// Message is a fully rendered email ready for transport.
type Message struct {
	To       string
	Subject  string
	HTMLBody string
	TextBody string
}

// Mailer is the interface for sending emails
type Mailer interface {
	Send(msg *Message) error
}

// Config holds the configuration for the SMTP mailer
type Config struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPSecure   bool
	FromEmail    string
	FromName     string
}

// SMTPMailer implements the Mailer interface using SMTP
type SMTPMailer struct {
	config   *Config
	testMode bool
}

// NewSMTPMailer creates a new SMTP mailer
func NewSMTPMailer(config *Config) *SMTPMailer {
	return &SMTPMailer{
		config:   config,
		testMode: false,
	}
}

// NewTestSMTPMailer creates a new SMTP mailer in test mode (won't connect to SMTP server)
func NewTestSMTPMailer(config *Config) *SMTPMailer {
	return &SMTPMailer{
		config:   config,
		testMode: true,
	}
}

// Send delivers a rendered message over SMTP.
func (m *SMTPMailer) Send(message *Message) error {
	msg := mail.NewMsg(mail.WithNoDefaultUserAgent())

	if err := msg.FromFormat(m.config.FromName, m.config.FromEmail); err != nil {
		return fmt.Errorf("failed to set email from address: %w", err)
	}

	if err := msg.To(message.To); err != nil {
		return fmt.Errorf("failed to set email recipient: %w", err)
	}

	msg.Subject(message.Subject)
	msg.SetBodyString(mail.TypeTextHTML, message.HTMLBody)
	if message.TextBody != "" {
		msg.AddAlternativeString(mail.TypeTextPlain, message.TextBody)
	}

	client, err := m.createSMTPClient()
	if err != nil {
		return err
	}

	// Test mode has no client
	if client == nil {
		return nil
	}

	if err := client.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// createSMTPClient creates and configures a new SMTP client
func (m *SMTPMailer) createSMTPClient() (*mail.Client, error) {
	// In test mode, return nil client to avoid SMTP connections
	if m.testMode {
		return nil, nil
	}

	clientOptions := []mail.Option{
		mail.WithPort(m.config.SMTPPort),
		mail.WithTimeout(10 * time.Second),
	}

	if m.config.SMTPSecure {
		clientOptions = append(clientOptions, mail.WithTLSPolicy(mail.TLSMandatory))
	} else {
		clientOptions = append(clientOptions, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}

	// Only add authentication if username and password are provided
	// This allows for unauthenticated SMTP servers (e.g., local relays, port 25)
	if m.config.SMTPUsername != "" && m.config.SMTPPassword != "" {
		clientOptions = append(clientOptions,
			mail.WithUsername(m.config.SMTPUsername),
			mail.WithPassword(m.config.SMTPPassword),
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
		)
	}

	client, err := mail.NewClient(m.config.SMTPHost, clientOptions...)
	if err != nil {
		return nil, fmt.Errorf("failed to create SMTP client: %w", err)
	}

	return client, nil
}

// ConsoleMailer is a development implementation that just logs emails
type ConsoleMailer struct{}

// NewConsoleMailer creates a new console mailer for development
func NewConsoleMailer() *ConsoleMailer {
	return &ConsoleMailer{}
}

// Send prints the message to stdout instead of delivering it.
func (m *ConsoleMailer) Send(message *Message) error {
	fmt.Println("==============================================================")
	fmt.Println("                        OUTGOING EMAIL                        ")
	fmt.Println("==============================================================")
	fmt.Printf("To: %s\n", message.To)
	fmt.Printf("Subject: %s\n\n", message.Subject)
	if message.TextBody != "" {
		fmt.Println(message.TextBody)
	} else {
		fmt.Println(message.HTMLBody)
	}
	fmt.Println("==============================================================")

	return nil
}
