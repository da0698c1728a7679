package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Site        SiteConfig        `mapstructure:"site"`
	Submission  SubmissionConfig  `mapstructure:"submission"`
	Server      ServerConfig      `mapstructure:"server"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Redis       RedisConfig       `mapstructure:"redis"`
	ErrorReport ErrorReportConfig `mapstructure:"error_report"`
}

// Language is one configured interface language
type Language struct {
	Code string `mapstructure:"code"`
	Name string `mapstructure:"name"`
}

// SiteConfig describes the public face of the site
type SiteConfig struct {
	Name               string            `mapstructure:"name"`
	NameIntl           map[string]string `mapstructure:"name_intl"`
	URL                string            `mapstructure:"url"`
	SecureURL          string            `mapstructure:"secure_url"`
	SupportEmail       string            `mapstructure:"support_email"`
	AdminEmail         string            `mapstructure:"admin_email"`
	Version            string            `mapstructure:"version"`
	SoftwareName       string            `mapstructure:"software_name"`
	SoftwareURL        string            `mapstructure:"software_url"`
	TemplateSkin       string            `mapstructure:"template_skin"`
	InspectTemplates   bool              `mapstructure:"inspect_templates"`
	DefaultLanguage    string            `mapstructure:"default_language"`
	Languages          []Language        `mapstructure:"languages"`
	RecordPath         string            `mapstructure:"record_path"`
	HideSimilarRecords bool              `mapstructure:"hide_similar_records"`
	CatalogueFiles     []string          `mapstructure:"catalogue_files"`
}

// LocalName returns the site name for the given language, falling back to Name
func (s SiteConfig) LocalName(lang string) string {
	if name, ok := s.NameIntl[lang]; ok && name != "" {
		return name
	}
	return s.Name
}

// SubmissionConfig holds the submission workflow settings
type SubmissionConfig struct {
	CopyMailsToAdmin    bool   `mapstructure:"copy_mails_to_admin"`
	RecordOwnerEmailTag string `mapstructure:"record_owner_email_tag"`
	TmpDir              string `mapstructure:"tmp_dir"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port int    `mapstructure:"port"`
	Host string `mapstructure:"host"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Name     string `mapstructure:"name"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
}

// DSN builds the pgx connection string
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		d.Host, d.Port, d.User, d.Password, d.Name)
}

// RedisConfig holds Redis connection details
type RedisConfig struct {
	Host              string `mapstructure:"host"`
	Port              int    `mapstructure:"port"`
	Password          string `mapstructure:"password"`
	Database          int    `mapstructure:"database"`
	StreamPrefix      string `mapstructure:"stream_prefix"`
	MaxTasksPerSecond int    `mapstructure:"max_tasks_per_second"`
	SequenceKey       string `mapstructure:"sequence_key"`
}

// ErrorReportConfig controls how registered exceptions reach the administrator
type ErrorReportConfig struct {
	AlertAdmin bool   `mapstructure:"alert_admin"`
	Endpoint   string `mapstructure:"endpoint"`
	Timeout    int    `mapstructure:"timeout"`
}

// Load loads configuration from a YAML file with environment variable overrides.
// An empty path means config.yaml in the current directory.
func Load(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil, fmt.Errorf("config.yaml file not found in current directory")
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if config.Site.SecureURL == "" {
		config.Site.SecureURL = config.Site.URL
	}
	if config.ErrorReport.Endpoint == "" {
		config.ErrorReport.Endpoint = strings.TrimRight(config.Site.URL, "/") + "/error/send"
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("site.name", "Digital Library")
	v.SetDefault("site.url", "http://localhost:8080")
	v.SetDefault("site.support_email", "info@localhost")
	v.SetDefault("site.admin_email", "admin@localhost")
	v.SetDefault("site.version", "1.0.0")
	v.SetDefault("site.software_name", "WebSubmit Portal")
	v.SetDefault("site.software_url", "http://localhost:8080/about")
	v.SetDefault("site.template_skin", "default")
	v.SetDefault("site.inspect_templates", false)
	v.SetDefault("site.default_language", "en")
	v.SetDefault("site.languages", []map[string]string{{"code": "en", "name": "English"}})
	v.SetDefault("site.record_path", "record")
	v.SetDefault("site.hide_similar_records", false)

	v.SetDefault("submission.copy_mails_to_admin", false)
	v.SetDefault("submission.record_owner_email_tag", "8560_f")
	v.SetDefault("submission.tmp_dir", "/tmp")

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.host", "localhost")

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.name", "library")
	v.SetDefault("database.user", "library_user")
	v.SetDefault("database.password", "library_pass")

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.database", 0)
	v.SetDefault("redis.stream_prefix", "websubmit:stream:")
	v.SetDefault("redis.max_tasks_per_second", 50)
	v.SetDefault("redis.sequence_key", "websubmit:sequence")

	v.SetDefault("error_report.alert_admin", false)
	v.SetDefault("error_report.timeout", 10)
}
