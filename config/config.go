package config

import (
	"encoding/json"
	"os"
	"sync"
)

type Config struct {
	BackendBaseURL        string  `json:"backendBaseURL"`
	FreeShippingThreshold float64 `json:"freeShippingThreshold"`
	FlatShippingFee       float64 `json:"flatShippingFee"`
	TaxRate               float64 `json:"taxRate"`
	RequestTimeoutSeconds int     `json:"requestTimeoutSeconds"`
}

var (
	cfg Config
	mu  sync.RWMutex
)

const configFilePath = "./minicart_config.json"

// Defaults returns the configuration used when no config file exists. The
// shipping and tax figures mirror the backend's storefront terms: subtotals
// over 50 ship free, otherwise a 5.99 flat fee, plus 8% tax on the subtotal.
func Defaults() Config {
	return Config{
		BackendBaseURL:        "http://localhost:5000",
		FreeShippingThreshold: 50,
		FlatShippingFee:       5.99,
		TaxRate:               0.08,
		RequestTimeoutSeconds: 30,
	}
}

func LoadConfig() (Config, error) {
	mu.Lock()
	defer mu.Unlock()

	file, err := os.ReadFile(configFilePath)
	if err != nil {
		if os.IsNotExist(err) {
			cfg = Defaults()
			return cfg, nil
		}
		return Config{}, err
	}

	var tempCfg Config
	if err := json.Unmarshal(file, &tempCfg); err != nil {
		return Config{}, err
	}
	cfg = applyDefaults(tempCfg)

	return cfg, nil
}

func SaveConfig(newCfg Config) error {
	mu.Lock()
	defer mu.Unlock()

	newCfg = applyDefaults(newCfg)

	file, err := json.MarshalIndent(newCfg, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(configFilePath, file, 0644); err != nil {
		return err
	}
	cfg = newCfg
	return nil
}

func GetConfig() Config {
	mu.RLock()
	defer mu.RUnlock()
	return cfg
}

// applyDefaults fills zero-valued fields so a partially edited config file
// never zeroes out a rate. A genuinely zero tax rate is not representable
// through the file; that matches how the storefront is priced.
func applyDefaults(c Config) Config {
	d := Defaults()
	if c.BackendBaseURL == "" {
		c.BackendBaseURL = d.BackendBaseURL
	}
	if c.FreeShippingThreshold == 0 {
		c.FreeShippingThreshold = d.FreeShippingThreshold
	}
	if c.FlatShippingFee == 0 {
		c.FlatShippingFee = d.FlatShippingFee
	}
	if c.TaxRate == 0 {
		c.TaxRate = d.TaxRate
	}
	if c.RequestTimeoutSeconds == 0 {
		c.RequestTimeoutSeconds = d.RequestTimeoutSeconds
	}
	return c
}
