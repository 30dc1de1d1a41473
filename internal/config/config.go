// Package config loads and schema-validates the team settings file.
// It is the input collaborator of the assigner: it parses the TOML document,
// checks types and required fields, and hands over a roster.Settings value.
// Semantic invariants (leader counts, team count bounds) are deliberately not
// checked here; those belong to the assigner.
package config

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"

	"teamgen/internal/errors"
	"teamgen/internal/roster"
)

// Attendee is one entry of the attendees table in the settings file.
type Attendee struct {
	// Name identifies the attendee in the generated roster.
	Name string `mapstructure:"name"`
	// Leader marks the attendee as a leader candidate (default: false).
	Leader bool `mapstructure:"leader"`
}

// Config is the parsed settings file.
type Config struct {
	// NumTeams is the number of teams to form. Required.
	NumTeams int `mapstructure:"num_of_teams"`
	// Flat disables leader-eligibility restrictions: every attendee becomes
	// a leader candidate (default: false).
	Flat bool `mapstructure:"flat"`
	// Attendees lists everyone to assign, in source order.
	Attendees []Attendee `mapstructure:"attendees"`
}

// setDefaults registers default values with the viper instance.
func setDefaults(v *viper.Viper) {
	v.SetDefault("flat", false)
}

// LoadFile reads, parses, and schema-validates the settings file at path.
// Environment variables prefixed with TEAMGEN_ override file values,
// e.g. TEAMGEN_NUM_OF_TEAMS=3.
//
// Load failures return a ConfigError wrapping ErrConfigNotFound or
// ErrConfigMalformed; schema failures return ValidationErrors with
// field-level detail.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	setDefaults(v)

	v.SetEnvPrefix("TEAMGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		cause := fmt.Errorf("%w: %v", errors.ErrConfigMalformed, err)
		if errors.Is(err, fs.ErrNotExist) {
			cause = fmt.Errorf("%w: %v", errors.ErrConfigNotFound, err)
		}
		return nil, errors.NewConfigError("reading settings file", cause).WithPath(path)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		cause := fmt.Errorf("%w: %v", errors.ErrConfigMalformed, err)
		return nil, errors.NewConfigError("decoding settings file", cause).WithPath(path)
	}

	errs := cfg.Validate()
	if !v.IsSet("num_of_teams") {
		errs = append([]ValidationError{{
			Field:   "num_of_teams",
			Value:   nil,
			Message: "required field is missing",
		}}, errs...)
	}
	if len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Settings converts the parsed configuration into the assigner's input.
func (c *Config) Settings() roster.Settings {
	attendees := make([]roster.Attendee, len(c.Attendees))
	for i, a := range c.Attendees {
		attendees[i] = roster.Attendee{Name: a.Name, Leader: a.Leader}
	}
	return roster.Settings{
		NumTeams:  c.NumTeams,
		Flat:      c.Flat,
		Attendees: attendees,
	}
}

// Sample returns a commented example settings file, used by the init command.
func Sample() string {
	return `# teamgen settings
#
# num_of_teams: how many teams to form. Each team gets exactly one leader.
# flat: when true, every attendee is a leader candidate regardless of the
#       per-attendee leader flag.

num_of_teams = 2
flat = false

[[attendees]]
name = "alice"
leader = true

[[attendees]]
name = "bob"
leader = true

[[attendees]]
name = "carol"

[[attendees]]
name = "dave"

[[attendees]]
name = "erin"
`
}
