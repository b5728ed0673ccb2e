package aldicrawler

import (
	"fmt"

	"github.com/spf13/viper"
)

// configService wraps a Viper instance reading .env style configuration.
type configService struct {
	v *viper.Viper
}

// newConfig creates a new instance of configService.
func newConfig() *configService {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AllowEmptyEnv(true)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		fmt.Printf("Error reading Config file: %v\n", err)
	}

	return &configService{v: v}
}

// EnvString retrieves a string configuration value from environment variables.
func (c *configService) EnvString(envName string, defaultValue ...string) string {
	value := c.v.Get(envName)
	if value != nil {
		return fmt.Sprint(value)
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}

	return ""
}

// EnvBool retrieves a boolean configuration value from environment variables.
func (c *configService) EnvBool(envName string, defaultValue ...bool) bool {
	if c.v.Get(envName) != nil {
		return c.v.GetBool(envName)
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}

	return false
}

// EnvInt retrieves an integer configuration value from environment variables.
func (c *configService) EnvInt(envName string, defaultValue ...int) int {
	if c.v.Get(envName) != nil {
		return c.v.GetInt(envName)
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}

	return 0
}

// GetString retrieves a string type configuration value from the application.
func (c *configService) GetString(path string) string {
	return c.v.GetString(path)
}
