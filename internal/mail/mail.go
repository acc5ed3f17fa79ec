package mail

import (
	"context"
	"embed"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"log/slog"

	gomail "github.com/wneessen/go-mail"

	"github.com/swayogurja/swayog-backend/internal/dependency"
)

//go:embed templates/*.gohtml
var templatesFS embed.FS

const (
	gmailHost = "smtp.gmail.com"
	gmailPort = 587

	// Transactional volume is a handful of messages a day; one bounded
	// synchronous attempt per call, tens-of-seconds timeouts.
	transportTimeout = 60 * time.Second
)

type Config struct {
	Host        string `mapstructure:"host"`
	Port        int    `mapstructure:"port"`
	Secure      bool   `mapstructure:"secure"`
	Username    string `mapstructure:"username"`
	Password    string `mapstructure:"password"`
	FromEmail   string `mapstructure:"from_email"`
	FromName    string `mapstructure:"from_email_name"`
	NotifyEmail string `mapstructure:"notify_email"`
}

// Mailer composes and transmits notification emails over SMTP. It is built
// once at process start; missing receiver or credentials surface as
// per-request configuration errors, not construction failures.
type Mailer struct {
	c         *Config
	templates map[string]*template.Template
}

func New(c *Config) (dependency.Mailer, error) {
	m := &Mailer{
		c:         c,
		templates: make(map[string]*template.Template),
	}
	if err := m.parseTemplates(); err != nil {
		return nil, fmt.Errorf("error parsing templates: %w", err)
	}
	return m, nil
}

func (m *Mailer) parseTemplates() error {
	dirEntries, err := templatesFS.ReadDir("templates")
	if err != nil {
		return fmt.Errorf("error reading template directory: %w", err)
	}
	for _, entry := range dirEntries {
		if entry.IsDir() {
			continue
		}
		templatePath := filepath.Join("templates", entry.Name())
		tmpl, err := template.ParseFS(templatesFS, templatePath)
		if err != nil {
			return fmt.Errorf("error parsing template '%s': %w", entry.Name(), err)
		}
		m.templates[entry.Name()] = tmpl
	}
	return nil
}

// ReceiverEmail resolves the single configured inbox all notifications go
// to. Its absence is a per-request configuration error: the caller decides
// whether to degrade or fail.
func (m *Mailer) ReceiverEmail() (string, error) {
	if m.c.NotifyEmail == "" {
		return "", fmt.Errorf("%w: NOTIFY_EMAIL is not set, notification emails have nowhere to go", ErrNotConfigured)
	}
	return m.c.NotifyEmail, nil
}

func (m *Mailer) senderEmail() (string, error) {
	if m.c.FromEmail != "" {
		return m.c.FromEmail, nil
	}
	if m.c.Username != "" {
		return m.c.Username, nil
	}
	return "", fmt.Errorf("%w: EMAIL_USER is not set", ErrNotConfigured)
}

// transport is a resolved set of SMTP connection parameters.
type transport struct {
	host string
	port int
	ssl  bool
}

// resolveTransport picks the transport profile: a host carrying a Gmail
// domain marker (or no host at all) selects the managed Gmail profile,
// anything else is used as given.
func (m *Mailer) resolveTransport() transport {
	host := m.c.Host
	if host == "" || strings.Contains(host, "gmail.com") || strings.Contains(host, "googlemail.com") {
		return transport{host: gmailHost, port: gmailPort}
	}
	t := transport{host: host, port: m.c.Port, ssl: m.c.Secure}
	if t.port == 0 {
		t.port = 587
	}
	return t
}

func (m *Mailer) client() (*gomail.Client, error) {
	if m.c.Username == "" || m.c.Password == "" {
		return nil, fmt.Errorf("%w: EMAIL_USER and EMAIL_PASS must be set", ErrNotConfigured)
	}

	t := m.resolveTransport()

	opts := []gomail.Option{
		gomail.WithPort(t.port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(m.c.Username),
		gomail.WithPassword(m.c.Password),
		gomail.WithTimeout(transportTimeout),
	}
	if t.ssl {
		opts = append(opts, gomail.WithSSL())
	} else {
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSMandatory))
	}

	cli, err := gomail.NewClient(t.host, opts...)
	if err != nil {
		return nil, fmt.Errorf("error creating smtp client: %w", err)
	}
	return cli, nil
}

// Message is a single outbound notification. The sender address comes from
// the config; ReplyTo carries the requester's address so the receiver can
// answer directly.
type Message struct {
	To      string
	ReplyTo string
	Subject string
	Text    string
	HTML    string
}

// Send verifies a live transport connection, transmits the message and logs
// the generated message id. One synchronous attempt, no queue, no retry;
// recovery is the caller's decision.
func (m *Mailer) Send(ctx context.Context, msg Message) error {
	from, err := m.senderEmail()
	if err != nil {
		return err
	}

	cli, err := m.client()
	if err != nil {
		return err
	}

	mm := gomail.NewMsg()
	if m.c.FromName != "" {
		err = mm.FromFormat(m.c.FromName, from)
	} else {
		err = mm.From(from)
	}
	if err != nil {
		return fmt.Errorf("invalid sender address %q: %w", from, err)
	}
	if err := mm.To(msg.To); err != nil {
		return fmt.Errorf("invalid recipient address %q: %w", msg.To, err)
	}
	if msg.ReplyTo != "" {
		if err := mm.ReplyTo(msg.ReplyTo); err != nil {
			return fmt.Errorf("invalid reply-to address %q: %w", msg.ReplyTo, err)
		}
	}
	mm.Subject(msg.Subject)
	mm.SetMessageID()
	mm.SetBodyString(gomail.TypeTextPlain, msg.Text)
	if msg.HTML != "" {
		mm.AddAlternativeString(gomail.TypeTextHTML, msg.HTML)
	}

	// Verify the connection before sending so credential and reachability
	// problems fail fast and classify cleanly.
	if err := cli.DialWithContext(ctx); err != nil {
		return fmt.Errorf("smtp dial: %w", err)
	}
	defer cli.Close()

	if err := cli.Send(mm); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}

	slog.Default().InfoContext(ctx, "email sent",
		slog.String("message_id", mm.GetMessageID()),
		slog.String("to", msg.To),
	)
	return nil
}

func (m *Mailer) execTemplate(name string, data any) (string, error) {
	tmpl, ok := m.templates[name]
	if !ok {
		return "", fmt.Errorf("template not found: %v", name)
	}
	body := &strings.Builder{}
	if err := tmpl.Execute(body, data); err != nil {
		return "", fmt.Errorf("error executing template: %w", err)
	}
	return body.String(), nil
}
