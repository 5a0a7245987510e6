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
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/qsadmin/qsadmin/qsops"
	"github.com/qsadmin/qsadmin/qsops/util"
	"github.com/qsadmin/qsadmin/qsops/vlog"
)

func makeCmdConfig() *cobra.Command {
	cmd := makeSimpleCobraCmd(
		configSubCmd,
		"Show or write the config file",
		`This command prints or writes the qsadmin config file.

The config file holds the defaults used when a flag is not given:
awsAccountId, region, profile, endpoint and logPath.`,
	)
	cmd.AddCommand(makeCmdConfigShow())
	cmd.AddCommand(makeCmdConfigInit())
	return cmd
}

/* CmdConfigShow
 *
 * A subcommand printing the content of the config file
 */
type CmdConfigShow struct {
	CmdBase
}

func makeCmdConfigShow() *cobra.Command {
	newCmd := &CmdConfigShow{}
	return makeBasicCobraCmd(
		newCmd,
		configShowSubCmd,
		"Show the content of the config file",
		`This subcommand prints the content of the config file.

Examples:
  # Show the default config file
  qsadmin config show

  # Show a config file at a given path
  qsadmin config show --config /opt/qsadmin/qsadmin.yaml
`,
	)
}

func (c *CmdConfigShow) Parse(inputArgv []string, logger vlog.Printer) error {
	c.argv = inputArgv
	logger.LogArgParse(&c.argv)
	return nil
}

func (c *CmdConfigShow) Run(_ context.Context, vcc *qsops.QSCommands) error {
	vcc.Log.Info("Called method Run()")
	if !util.CheckPathExist(globals.configPath) {
		return fmt.Errorf("config file %q does not exist", globals.configPath)
	}
	accountConfig, err := readConfig(globals.configPath)
	if err != nil {
		return err
	}
	out, err := renderOutput(accountConfig, globals.output)
	if err != nil {
		return err
	}
	c.writeCmdOutput(c.out, out, vcc.Log)
	return nil
}

/* CmdConfigInit
 *
 * A subcommand writing the config file from the
 * given flags and environment variables
 */
type CmdConfigInit struct {
	CmdBase
	overwrite bool
}

func makeCmdConfigInit() *cobra.Command {
	newCmd := &CmdConfigInit{}
	cmd := makeBasicCobraCmd(
		newCmd,
		configInitSubCmd,
		"Write the config file",
		`This subcommand writes the config file. Only the values given through flags
or QSADMIN_* environment variables are written.

Examples:
  # Write the default config file
  qsadmin config init --aws-account-id 111122223333 --region us-west-2

  # Replace an existing config file, keeping a backup of it
  qsadmin config init --aws-account-id 111122223333 --profile admin --overwrite
`,
	)
	cmd.Flags().String(
		accountIDFlag,
		"",
		util.GetOptionalFlagMsg("The ID of the AWS account used by default"),
	)
	cmd.Flags().BoolVar(
		&newCmd.overwrite,
		overwriteFlag,
		false,
		util.GetOptionalFlagMsg("Replace the config file if it exists. The old one is kept as "+configBackupName),
	)
	return cmd
}

func (c *CmdConfigInit) Parse(inputArgv []string, logger vlog.Printer) error {
	c.argv = inputArgv
	logger.LogArgParse(&c.argv)
	if globals.configPath == "" {
		return fmt.Errorf("cannot determine the config file path, use --%s", configFlag)
	}
	return nil
}

func (c *CmdConfigInit) Run(_ context.Context, vcc *qsops.QSCommands) error {
	vcc.Log.Info("Called method Run()")
	if util.CheckPathExist(globals.configPath) {
		if !c.overwrite {
			return fmt.Errorf("config file %q already exists, use --%s to replace it", globals.configPath, overwriteFlag)
		}
		if err := backupConfigFile(globals.configPath, vcc.Log); err != nil {
			return err
		}
	}

	accountConfig := AccountConfig{}
	if viper.IsSet(accountIDKey) {
		accountConfig.AwsAccountID = viper.GetString(accountIDKey)
	}
	if viper.IsSet(regionKey) {
		accountConfig.Region = viper.GetString(regionKey)
	}
	if viper.IsSet(profileKey) {
		accountConfig.Profile = viper.GetString(profileKey)
	}
	if viper.IsSet(endpointKey) {
		accountConfig.Endpoint = viper.GetString(endpointKey)
	}
	if viper.IsSet(logPathKey) {
		accountConfig.LogPath = viper.GetString(logPathKey)
	}
	if err := accountConfig.write(globals.configPath); err != nil {
		return err
	}
	vcc.Log.PrintInfo("Wrote the config file %s", globals.configPath)
	return nil
}
