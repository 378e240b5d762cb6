package configs

// Warehouse selects an external SQL warehouse as the campaign source instead
// of the service database. Driver is "snowflake" or "postgres"; an empty DSN
// keeps the service database.
type Warehouse struct {
	Driver string `env:"DRIVER" envDefault:"snowflake"`
	DSN    string `env:"DSN"`
	Table  string `env:"TABLE" envDefault:"historical_campaigns"`
}

func (c Warehouse) Enabled() bool {
	return c.DSN != ""
}
