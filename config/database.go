package config

import (
	"quicknotes/utils"
)

type DatabaseConfig struct {
	Path        string
	ForeignKeys bool
}

func LoadDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Path:        utils.GetEnvAsString("SQLITE_PATH", "quicknotes.db"),
		ForeignKeys: utils.GetEnvAsBool("SQLITE_FOREIGN_KEYS", true),
	}
}

// DSN builds the sqlite connection string
func (c DatabaseConfig) DSN() string {
	dsn := c.Path
	if c.ForeignKeys {
		dsn += "?_foreign_keys=on"
	}
	return dsn
}
