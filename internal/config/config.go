package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// ConfigFile is the optional repository-level configuration file.
	ConfigFile = ".pr-review/config.yml"
)

// Config is built once at process start and passed by reference into every
// component. It is never mutated after Load returns.
type Config struct {
	GitHub GitHubSettings `yaml:"github"`
	Gemini GeminiSettings `yaml:"gemini"`
	Review ReviewSettings `yaml:"review"`
}

type GitHubSettings struct {
	Token     string `yaml:"-"` // env only, never read from file
	EventPath string `yaml:"-"`
	EventName string `yaml:"-"`
}

type GeminiSettings struct {
	APIKey          string  `yaml:"-"` // env only, never read from file
	Model           string  `yaml:"model"`
	Temperature     float64 `yaml:"temperature"`
	TopP            float64 `yaml:"top_p"`
	ThinkingBudget  int     `yaml:"thinking_budget"`
	MaxOutputTokens int     `yaml:"max_output_tokens"`
}

type ReviewSettings struct {
	Language        string   `yaml:"language"`         // natural language for review comments
	ExcludePatterns []string `yaml:"exclude_patterns"` // glob patterns removed before analysis
	GuidelinePaths  []string `yaml:"guideline_paths"`  // project guideline documents
	TemplateDir     string   `yaml:"template_dir"`     // custom review template directory
}

func defaultConfig() *Config {
	return &Config{
		Gemini: GeminiSettings{
			Model:           "gemini-2.5-flash",
			Temperature:     0.8,
			TopP:            0.95,
			ThinkingBudget:  1024,
			MaxOutputTokens: 4096,
		},
		Review: ReviewSettings{
			Language:    "English",
			TemplateDir: ".pr-review/templates",
		},
	}
}

// Load builds the configuration from the optional config file merged with
// defaults, then overlays environment variables. Missing credentials are the
// only fatal condition here; everything else falls back to a default.
func Load() (*Config, error) {
	config := defaultConfig()

	if data, err := os.ReadFile(ConfigFile); err == nil {
		var fileConfig Config
		if err := yaml.Unmarshal(data, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", ConfigFile, err)
		}
		mergeFileConfig(config, &fileConfig)
	}

	applyEnv(config)

	if config.GitHub.Token == "" {
		return nil, fmt.Errorf("GITHUB_TOKEN environment variable is not set")
	}
	if config.Gemini.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY (or GOOGLE_API_KEY) environment variable is not set")
	}

	return config, nil
}

// mergeFileConfig overlays non-zero file values onto the defaults.
func mergeFileConfig(config, file *Config) {
	if file.Gemini.Model != "" {
		config.Gemini.Model = file.Gemini.Model
	}
	if file.Gemini.Temperature != 0 {
		config.Gemini.Temperature = file.Gemini.Temperature
	}
	if file.Gemini.TopP != 0 {
		config.Gemini.TopP = file.Gemini.TopP
	}
	if file.Gemini.ThinkingBudget != 0 {
		config.Gemini.ThinkingBudget = file.Gemini.ThinkingBudget
	}
	if file.Gemini.MaxOutputTokens != 0 {
		config.Gemini.MaxOutputTokens = file.Gemini.MaxOutputTokens
	}
	if file.Review.Language != "" {
		config.Review.Language = file.Review.Language
	}
	if len(file.Review.ExcludePatterns) > 0 {
		config.Review.ExcludePatterns = file.Review.ExcludePatterns
	}
	if len(file.Review.GuidelinePaths) > 0 {
		config.Review.GuidelinePaths = file.Review.GuidelinePaths
	}
	if file.Review.TemplateDir != "" {
		config.Review.TemplateDir = file.Review.TemplateDir
	}
}

// applyEnv overlays environment variables. Workflow inputs arrive as
// INPUT_* variables the way GitHub Actions passes them.
func applyEnv(config *Config) {
	config.GitHub.Token = os.Getenv("GITHUB_TOKEN")
	config.GitHub.EventPath = os.Getenv("GITHUB_EVENT_PATH")
	config.GitHub.EventName = os.Getenv("GITHUB_EVENT_NAME")

	config.Gemini.APIKey = os.Getenv("GEMINI_API_KEY")
	if config.Gemini.APIKey == "" {
		config.Gemini.APIKey = os.Getenv("GOOGLE_API_KEY")
	}
	if model := os.Getenv("INPUT_MODEL"); model != "" {
		config.Gemini.Model = model
	}

	if lang := os.Getenv("LANGUAGE"); lang != "" {
		config.Review.Language = lang
	}
	if exclude := splitList(os.Getenv("INPUT_EXCLUDE")); len(exclude) > 0 {
		config.Review.ExcludePatterns = exclude
	}
	if guidelines := splitList(os.Getenv("INPUT_GUIDELINES")); len(guidelines) > 0 {
		config.Review.GuidelinePaths = guidelines
	}
}

// splitList parses a comma-separated workflow input into trimmed entries.
func splitList(value string) []string {
	var result []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
