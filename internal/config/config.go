package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"slices"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Mail transports selectable with MAIL_TRANSPORT.
const (
	TransportSMTP       = "smtp"
	TransportMailerSend = "mailersend"
	TransportSMTP2GO    = "smtp2go"
	TransportLog        = "log"
)

var transports = []string{TransportSMTP, TransportMailerSend, TransportSMTP2GO, TransportLog}

// Config is the process configuration.
type Config struct {
	Port           int      `mapstructure:"port"`
	Host           string   `mapstructure:"host"`
	AppName        string   `mapstructure:"app_name"`
	Debug          bool     `mapstructure:"debug"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	MaxBodyBytes   int64    `mapstructure:"max_body_bytes"`
	Mail           Mail     `mapstructure:",squash"`
}

// Mail configures outbound delivery. Credentials are not checked at load time;
// a transport that needs them fails when it is constructed.
type Mail struct {
	Transport       string        `mapstructure:"mail_transport"`
	User            string        `mapstructure:"mail_user"`
	Password        string        `mapstructure:"mail_password"`
	SMTPHost        string        `mapstructure:"smtp_host"`
	SMTPPort        int           `mapstructure:"smtp_port"`
	APIKey          string        `mapstructure:"mail_api_key"`
	OperatorEmail   string        `mapstructure:"operator_email"`
	OperatorPersona string        `mapstructure:"operator_persona"`
	SenderName      string        `mapstructure:"form_sender_name"`
	SendTimeout     time.Duration `mapstructure:"mail_send_timeout"`
}

// Operator returns the operator mailbox, falling back to the sending account.
func (m Mail) Operator() string {
	if m.OperatorEmail != "" {
		return m.OperatorEmail
	}
	return m.User
}

// Addr is the listen address.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Validate rejects values the server cannot start with.
func (c *Config) Validate() error {
	var errs []error
	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT out of range: %d", c.Port))
	}
	if c.MaxBodyBytes <= 0 {
		errs = append(errs, fmt.Errorf("MAX_BODY_BYTES must be positive: %d", c.MaxBodyBytes))
	}
	if c.Mail.SendTimeout <= 0 {
		errs = append(errs, fmt.Errorf("MAIL_SEND_TIMEOUT must be positive: %s", c.Mail.SendTimeout))
	}
	if !slices.Contains(transports, c.Mail.Transport) {
		errs = append(errs, fmt.Errorf("MAIL_TRANSPORT must be one of %v: %q", transports, c.Mail.Transport))
	}
	return errors.Join(errs...)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 8080)
	v.SetDefault("host", "")
	v.SetDefault("app_name", "Inquiry Relay API")
	v.SetDefault("debug", false)
	v.SetDefault("allowed_origins", []string{"*"})
	v.SetDefault("max_body_bytes", 10<<20)
	v.SetDefault("mail_transport", TransportSMTP)
	v.SetDefault("mail_user", "")
	v.SetDefault("mail_password", "")
	v.SetDefault("smtp_host", "smtp.gmail.com")
	v.SetDefault("smtp_port", 587)
	v.SetDefault("mail_api_key", "")
	v.SetDefault("operator_email", "")
	v.SetDefault("operator_persona", "ハディズ")
	v.SetDefault("form_sender_name", "Website Form")
	v.SetDefault("mail_send_timeout", 30*time.Second)
}

// Load reads .env files (missing ones are ignored), the optional YAML file named by
// CONFIG_FILE, and the environment, in increasing order of precedence.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()
	// GMAIL_* are the names the site was first deployed with.
	if err := v.BindEnv("mail_user", "MAIL_USER", "GMAIL_USER"); err != nil {
		return nil, err
	}
	if err := v.BindEnv("mail_password", "MAIL_PASSWORD", "GMAIL_PASS"); err != nil {
		return nil, err
	}
	if err := v.BindEnv("config_file", "CONFIG_FILE"); err != nil {
		return nil, err
	}

	if file := v.GetString("config_file"); file != "" {
		v.SetConfigFile(file)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", file, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
