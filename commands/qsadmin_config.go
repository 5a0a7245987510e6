/*
 (c) Copyright [2023] Open Text.
 Licensed under the Apache License, Version 2.0 (the "License");
 You may not use this file except in compliance with the License.
 You may obtain a copy of the License at

 http://www.apache.org/licenses/LICENSE-2.0

 Unless required by applicable law or agreed to in writing, software
 distributed under the License is distributed on an "AS IS" BASIS,
 WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 See the License for the specific language governing permissions and
 limitations under the License.
*/

package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/qsadmin/qsadmin/qsops/util"
	"github.com/qsadmin/qsadmin/qsops/vlog"
)

const (
	qsadminConfigEnv = "QSADMIN_CONFIG"
	defConfigDirName = "qsadmin"
	defLogFileName   = "qsadmin.log"
	// If no config file was provided, we will pick a default one. This is the
	// default file name that we'll use.
	defConfigFileName        = "qsadmin.yaml"
	currentConfigFileVersion = "1.0"
	configBackupName         = "qsadmin.yaml.backup"
)

// Config is the struct of qsadmin.yaml
type Config struct {
	Version string        `yaml:"configFileVersion"`
	Account AccountConfig `yaml:",inline"`
}

// AccountConfig holds the defaults applied to every command
type AccountConfig struct {
	AwsAccountID string `yaml:"awsAccountId,omitempty" json:"awsAccountId,omitempty" mapstructure:"awsAccountId"`
	Region       string `yaml:"region,omitempty" json:"region,omitempty" mapstructure:"region"`
	Profile      string `yaml:"profile,omitempty" json:"profile,omitempty" mapstructure:"profile"`
	Endpoint     string `yaml:"endpoint,omitempty" json:"endpoint,omitempty" mapstructure:"endpoint"`
	LogPath      string `yaml:"logPath,omitempty" json:"logPath,omitempty" mapstructure:"logPath"`
}

// initConfig will initialize globals.configPath for the qsadmin exe.
func initConfig() {
	// If using the user config director ($HOME/.config), we will ensure the necessary dir exists.
	const ensureUserConfigDirExists = true
	initConfigImpl(ensureUserConfigDirExists)
}

// initConfigImpl will initialize globals.configPath. It will make an
// attempt to figure out the best value. In certain circumstances, it may fail
// to have a config path at all. In that case globals.configPath will be left
// as an empty string.
func initConfigImpl(ensureUserConfigDirExists bool) {
	// We need to find the path to the config. The order of precedence is as follows:
	// 1. Option
	// 2. Environment variable
	// 3. $HOME/.config/qsadmin/qsadmin.yaml
	//
	// If none of these things are true, then we run the cli without a config file.

	// If option is set, nothing else to do in here
	if globals.configPath != "" {
		return
	}

	// Check environment variable
	val, ok := os.LookupEnv(qsadminConfigEnv)
	if ok && val != "" {
		globals.configPath = val
		return
	}

	// Finally default to the .config directory in the users home. This is used
	// by many CLI applications.
	cfgDir, err := os.UserConfigDir()
	if err != nil {
		return
	}

	// Ensure the config directory exists.
	path := filepath.Join(cfgDir, defConfigDirName)
	if ensureUserConfigDirExists {
		err = os.MkdirAll(path, util.ConfigDirPerm)
		if err != nil {
			// Just abort if we don't have write access to the config path
			return
		}
	}
	globals.configPath = filepath.Join(path, defConfigFileName)
}

// loadConfigToViper can fill viper keys using qsadmin.yaml. A missing
// config file is not an error.
func loadConfigToViper() {
	if globals.configPath == "" || !util.CheckPathExist(globals.configPath) {
		return
	}
	viper.SetConfigFile(globals.configPath)
	viper.SetConfigType("yaml")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: fail to read configuration file %q for viper: %v\n", globals.configPath, err)
		return
	}

	// check the content decodes into the known keys
	accountConfig := AccountConfig{}
	err = viper.Unmarshal(&accountConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: fail to unmarshal config file into AccountConfig: %v\n", err)
	}
}

// readConfig reads information from configFilePath to an AccountConfig object.
// It returns any read error encountered.
func readConfig(configFilePath string) (*AccountConfig, error) {
	if configFilePath == "" {
		return nil, fmt.Errorf("no config file provided")
	}
	configBytes, err := os.ReadFile(configFilePath)
	if err != nil {
		return nil, fmt.Errorf("fail to read config file, details: %w", err)
	}

	var config Config
	err = yaml.Unmarshal(configBytes, &config)
	if err != nil {
		return nil, fmt.Errorf("fail to unmarshal config file, details: %w", err)
	}

	return &config.Account, nil
}

// write writes configuration information to configFilePath. It returns
// any write error encountered. The viper in-built write function cannot
// work well(the order of keys cannot be customized) so we used yaml.Marshal()
// and os.WriteFile() to write the config file.
func (c *AccountConfig) write(configFilePath string) error {
	var config Config
	config.Version = currentConfigFileVersion
	config.Account = *c

	configBytes, err := yaml.Marshal(&config)
	if err != nil {
		return fmt.Errorf("fail to marshal config data, details: %w", err)
	}
	err = os.MkdirAll(filepath.Dir(configFilePath), util.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("fail to create config directory, details: %w", err)
	}
	err = os.WriteFile(configFilePath, configBytes, util.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("fail to write config file, details: %w", err)
	}

	return nil
}

// backupConfigFile backs up config file before we update it.
// This function will add ".backup" suffix to previous config file.
func backupConfigFile(configFilePath string, logger vlog.Printer) error {
	content, err := os.ReadFile(configFilePath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("fail to read config file %q for backup: %w", configFilePath, err)
	}
	configFileBackup := filepath.Join(filepath.Dir(configFilePath), configBackupName)
	logger.Info("Config file exists, creating a backup", "config file", configFilePath,
		"backup file", configFileBackup)
	err = os.WriteFile(configFileBackup, content, util.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("fail to write backup config file %q: %w", configFileBackup, err)
	}
	return nil
}
