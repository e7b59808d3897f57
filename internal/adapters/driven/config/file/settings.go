package file

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/shopspring/decimal"

	"github.com/cbvtrading/quotegen-cli/internal/core/domain"
)

// Settings is the on-disk configuration. Absent keys keep their
// defaults, so a config file only needs the values it overrides.
type Settings struct {
	Company   CompanySettings   `toml:"company"`
	Manager   string            `toml:"manager"`
	Output    OutputSettings    `toml:"output"`
	Converter ConverterSettings `toml:"converter"`
	Options   OptionSettings    `toml:"options"`
}

// CompanySettings is the letterhead block.
type CompanySettings struct {
	Name        string `toml:"name"`
	Location    string `toml:"location"`
	Phone       string `toml:"phone"`
	MobileSun   string `toml:"mobile_sun"`
	MobileGlobe string `toml:"mobile_globe"`
	Services    string `toml:"services"`
}

// OutputSettings controls where artifacts land.
type OutputSettings struct {
	Dir string `toml:"dir"`
}

// ConverterSettings configures the external document converter.
type ConverterSettings struct {
	Command        string `toml:"command"`
	Format         string `toml:"format"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	Disabled       bool   `toml:"disabled"`
}

// OptionSettings overrides the interactive option tables.
type OptionSettings struct {
	Warranties    []string               `toml:"warranties"`
	Payments      []string               `toml:"payments"`
	TaskTemplates []TaskTemplateSettings `toml:"task_templates"`
}

// TaskTemplateSettings is one predefined task offered by the wizard.
type TaskTemplateSettings struct {
	Key  string  `toml:"key"`
	Name string  `toml:"name"`
	Cost float64 `toml:"cost"`
}

// DefaultSettings returns the settings used when no config file exists.
func DefaultSettings() Settings {
	company := domain.DefaultCompanyInfo()
	tables := domain.DefaultOptionTables()

	templates := make([]TaskTemplateSettings, 0, len(tables.TaskTemplates))
	for _, t := range tables.TaskTemplates {
		templates = append(templates, TaskTemplateSettings{
			Key:  t.Key,
			Name: t.Name,
			Cost: t.Cost.InexactFloat64(),
		})
	}

	return Settings{
		Company: CompanySettings{
			Name:        company.Name,
			Location:    company.Location,
			Phone:       company.Phone,
			MobileSun:   company.MobileSun,
			MobileGlobe: company.MobileGlobe,
			Services:    company.Services,
		},
		Manager: domain.DefaultManager,
		Output:  OutputSettings{Dir: "quotations"},
		Converter: ConverterSettings{
			Command:        "soffice",
			Format:         "docx",
			TimeoutSeconds: 60,
		},
		Options: OptionSettings{
			Warranties:    tables.Warranties,
			Payments:      tables.Payments,
			TaskTemplates: templates,
		},
	}
}

// CompanyInfo converts the letterhead block to its domain form.
func (s Settings) CompanyInfo() domain.CompanyInfo {
	return domain.CompanyInfo{
		Name:        s.Company.Name,
		Location:    s.Company.Location,
		Phone:       s.Company.Phone,
		MobileSun:   s.Company.MobileSun,
		MobileGlobe: s.Company.MobileGlobe,
		Services:    s.Company.Services,
	}
}

// OptionTables converts the option overrides to their domain form.
func (s Settings) OptionTables() domain.OptionTables {
	templates := make([]domain.TaskTemplate, 0, len(s.Options.TaskTemplates))
	for _, t := range s.Options.TaskTemplates {
		templates = append(templates, domain.TaskTemplate{
			Key:  t.Key,
			Name: t.Name,
			Cost: decimal.NewFromFloat(t.Cost),
		})
	}
	return domain.OptionTables{
		Warranties:    s.Options.Warranties,
		Payments:      s.Options.Payments,
		TaskTemplates: templates,
	}
}

// ConverterTimeout returns the configured conversion deadline.
func (s Settings) ConverterTimeout() time.Duration {
	return time.Duration(s.Converter.TimeoutSeconds) * time.Second
}

// Store loads and saves Settings from a TOML file.
type Store struct {
	filePath string
	settings Settings
}

// NewStore creates a settings store rooted at configDir.
// If configDir is empty, defaults to ~/.quotegen/config.toml.
func NewStore(configDir string) (*Store, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".quotegen")
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	s := &Store{
		filePath: filepath.Join(configDir, "config.toml"),
		settings: DefaultSettings(),
	}

	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Settings returns the current settings.
func (s *Store) Settings() Settings {
	return s.settings
}

// Load reads the config file, layering it over the defaults. A missing
// file leaves the defaults untouched.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			s.settings = DefaultSettings()
			return nil
		}
		return err
	}

	settings := DefaultSettings()
	if err := toml.Unmarshal(data, &settings); err != nil {
		return err
	}
	s.settings = settings
	return nil
}

// Save persists the current settings to disk.
func (s *Store) Save() error {
	data, err := toml.Marshal(s.settings)
	if err != nil {
		return err
	}
	return os.WriteFile(s.filePath, data, 0600)
}

// Path returns the configuration file path.
func (s *Store) Path() string {
	return s.filePath
}
