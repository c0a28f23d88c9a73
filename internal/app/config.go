package app

import (
	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
)

// Config holds the demo configuration, loadable from environment variables
// (CHECKOUT_ prefix), flags, or YAML config files.
type Config struct {
	CustomerID        string `default:"c-0001" usage:"Customer identifier" flag:"customer-id"`
	CustomerName      string `default:"Ana" usage:"Customer display name" flag:"customer-name"`
	CustomerBirthDate string `default:"1990-04-12" usage:"Customer date of birth (YYYY-MM-DD)" flag:"customer-birth-date"`
	Zipcode           string `default:"45678-979" usage:"Shipping/billing zipcode"`
}

// LoadConfig loads configuration from environment variables and YAML config
// files.
func LoadConfig() (*Config, error) {
	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix: "CHECKOUT",
		Files:     []string{"config.yaml", "/etc/checkout/config.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	return &cfg, nil
}
