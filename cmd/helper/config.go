/*
Copyright 2025 Codenotary Inc. All rights reserved.

SPDX-License-Identifier: BUSL-1.1
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://mariadb.com/bsl11/

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package helper

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config loads settings for a command from, by increasing precedence,
// defaults, a config file, NAME_* environment variables and flags.
type Config struct {
	Name  string
	CfgFn string

	v *viper.Viper
}

func NewConfig(name string) *Config {
	return &Config{Name: name, v: viper.New()}
}

// Viper returns the settings store backing this config.
func (c *Config) Viper() *viper.Viper {
	if c.v == nil {
		c.v = viper.New()
	}
	return c.v
}

// BindFlags makes explicitly set flags override every other source.
func (c *Config) BindFlags(fs *pflag.FlagSet) error {
	return c.Viper().BindPFlags(fs)
}

// LoadConfig binds the command flags and reads the config file, if any.
// An explicitly requested config file must exist.
func (c *Config) LoadConfig(cmd *cobra.Command) error {
	v := c.Viper()

	err := c.BindFlags(cmd.Flags())
	if err != nil {
		return err
	}

	v.SetEnvPrefix(strings.ToUpper(c.Name))
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if c.CfgFn != "" {
		v.SetConfigFile(c.CfgFn)

		err = v.ReadInConfig()
		if err != nil {
			return fmt.Errorf("unable to read config file %s: %w", c.CfgFn, err)
		}

		return nil
	}

	v.SetConfigName(c.Name)
	v.AddConfigPath("configs")
	if runtime.GOOS != "windows" {
		v.AddConfigPath(filepath.Join("/etc", c.Name))
	}
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}

	err = v.ReadInConfig()

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}

	return err
}
