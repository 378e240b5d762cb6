package configs

// Industry points at an optional keyword rule file that replaces the
// built-in table and is reloaded when it changes.
type Industry struct {
	RulesPath string `env:"RULES_PATH"`
	Watch     bool   `env:"WATCH" envDefault:"true"`
}
