package server

import "strconv"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables the check.
	ApiKey string `mapstructure:"api_key" default:""`
}

// Address returns the listen address for the configured port.
func (c Config) Address() string {
	return ":" + c.Port
}

// IsValidPort checks if the configured port is a usable TCP port number.
func (c Config) IsValidPort() bool {
	p, err := strconv.Atoi(c.Port)
	return err == nil && p > 0 && p <= 65535
}
