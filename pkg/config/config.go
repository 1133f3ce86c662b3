package config

import (
	"fmt"
	"os"
)

const EnvProd = "production"
const EnvLocal = "local"

const prefix = "SCOUT_"

var Config BaseConfig

func init() {

	// Set configs from environment variables
	Config.IGDBClientID.Set("IGDB_CLIENT_ID")
	Config.IGDBClientSecret.Set("IGDB_CLIENT_SECRET")
	Config.ITADKey.Set("ITAD_KEY")

	Config.Environment.Set("ENV")
	Config.WebServerPort.Set("PORT")
	Config.ShortName.Set("SHORT_NAME")

	// Fallbacks
	Config.ShortName.SetFallback("GameScout")
	Config.Environment.SetFallback(EnvLocal)

	if Config.IsLocal() {

		Config.WebServerPort.SetFallback("8080")

	} else if Config.IsProd() {

		Config.WebServerPort.SetFallback("80")

	} else {
		fmt.Println("Unknown env: " + Config.Environment.Get())
		os.Exit(1)
	}
}

type BaseConfig struct {
	IGDBClientID     ConfigItem
	IGDBClientSecret ConfigItem
	ITADKey          ConfigItem
	WebServerPort    ConfigItem
	ShortName        ConfigItem
	Environment      ConfigItem
}

func (c BaseConfig) ListenOn() string {
	return "0.0.0.0:" + c.WebServerPort.Get()
}

func (c BaseConfig) IsLocal() bool {
	return c.Environment.Get() == EnvLocal
}

func (c BaseConfig) IsProd() bool {
	return c.Environment.Get() == EnvProd
}

func IsLocal() bool {
	return Config.IsLocal()
}

func IsProd() bool {
	return Config.IsProd()
}

// ConfigItem
type ConfigItem struct {
	Value    string
	Fallback string
}

func (ci *ConfigItem) Set(environment string) {
	env := os.Getenv(prefix + environment)
	if env != "" {
		ci.Value = env
	} else {
		ci.Value = os.Getenv(environment)
	}
}

func (ci *ConfigItem) SetFallback(fallback string) {
	ci.Fallback = fallback
}

func (ci ConfigItem) Get() string {
	if ci.Value != "" {
		return ci.Value
	}
	return ci.Fallback
}
