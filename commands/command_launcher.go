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
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/qsadmin/qsadmin/qsops"
	"github.com/qsadmin/qsadmin/qsops/util"
	"github.com/qsadmin/qsadmin/qsops/vlog"
)

const CLIVersion = "1.0.0"

const (
	qsadminLogPathEnv   = "QSADMIN_LOG_PATH"
	qsadminRegionEnv    = "QSADMIN_REGION"
	qsadminProfileEnv   = "QSADMIN_PROFILE"
	qsadminEndpointEnv  = "QSADMIN_ENDPOINT"
	qsadminAccountIDEnv = "QSADMIN_ACCOUNT_ID"
)

// exit code used when the user interrupts a command
const exitCodeInterrupted = 130

// *Flag is for the flag name, *Key is for viper key name
// They are bound together
const (
	configFlag     = "config"
	configKey      = "config"
	regionFlag     = "region"
	regionKey      = "region"
	profileFlag    = "profile"
	profileKey     = "profile"
	endpointFlag   = "endpoint"
	endpointKey    = "endpoint"
	logPathFlag    = "log-path"
	logPathKey     = "logPath"
	verboseFlag    = "verbose"
	verboseKey     = "verbose"
	outputFlag     = "output"
	outputKey      = "output"
	accountIDFlag  = "aws-account-id"
	accountIDKey   = "awsAccountId"
	selectFlag     = "select"
	passThruFlag   = "pass-thru"
	forceFlag      = "force"
	outputFileFlag = "output-file"
	overwriteFlag  = "overwrite"
)

// flags to viper key map
var flagKeyMap = map[string]string{
	regionFlag:    regionKey,
	profileFlag:   profileKey,
	endpointFlag:  endpointKey,
	logPathFlag:   logPathKey,
	verboseFlag:   verboseKey,
	outputFlag:    outputKey,
	accountIDFlag: accountIDKey,
}

// viper key to environment variable map
var keyEnvMap = map[string]string{
	logPathKey:   qsadminLogPathEnv,
	regionKey:    qsadminRegionEnv,
	profileKey:   qsadminProfileEnv,
	endpointKey:  qsadminEndpointEnv,
	accountIDKey: qsadminAccountIDEnv,
}

const (
	configSubCmd     = "config"
	configShowSubCmd = "show"
	configInitSubCmd = "init"
)

// cmdGlobals holds global variables shared by multiple
// commands
type cmdGlobals struct {
	configPath string
	region     string
	profile    string
	endpoint   string
	logPath    string
	verbose    bool
	output     string
}

var (
	globals = cmdGlobals{}
	rootCmd = makeRootCmd()
)

func makeRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "qsadmin",
		Short: "Administer QuickSight account resources",
		Long: `This CLI manages the administrative resources of a QuickSight account through
the service's REST API.

Each subcommand calls exactly one service operation:
- Create, describe, update, delete and list topics
- Create, describe, delete and list folders
- Create, describe, delete and list namespaces
- Describe and update account settings and IP restrictions
- Tag, untag and list the tags of a resource

Operations that change state ask for confirmation unless --force is given.`,
		Version:           CLIVersion,
		SilenceUsage:      true,
		PersistentPreRunE: configViper,
	}
	setPersistentFlags(cmd)
	cmd.AddCommand(constructCmds()...)
	return cmd
}

// logPath is the log file used when --log-path is not given. Execute sets
// it; an empty path logs to stdout.
var logPath = ""

// clientPool hands out one service client per profile, region and endpoint.
// It is built on first use unless a test has already set it.
var clientPool *qsops.ClientPool

// cmdInterface is an interface that every qsadmin command needs to implement
// for making a basic cobra command
type cmdInterface interface {
	Parse(inputArgv []string, logger vlog.Printer) error
	Run(ctx context.Context, vcc *qsops.QSCommands) error
	SetParser(parser *pflag.FlagSet)
	initCmdOutput(cmd *cobra.Command) (*cmdOutput, error)
}

func Execute() {
	setLogPath()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Printf("Error during execution: %s\n", err)
		if errors.Is(err, qsops.ErrInvocationCancelled) {
			os.Exit(exitCodeInterrupted)
		}
		os.Exit(1)
	}
}

// setPersistentFlags sets the flags every subcommand inherits
func setPersistentFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(
		&globals.configPath,
		configFlag,
		"c",
		"",
		"Path to the config file",
	)
	markPersistentFlagsFileName(cmd, map[string][]string{configFlag: {"yaml"}})
	cmd.PersistentFlags().StringVar(
		&globals.region,
		regionFlag,
		"",
		"The AWS region of the service. Default value is "+util.DefaultRegion,
	)
	cmd.PersistentFlags().StringVar(
		&globals.profile,
		profileFlag,
		"",
		util.GetOptionalFlagMsg("The shared configuration profile to load credentials from"),
	)
	cmd.PersistentFlags().StringVar(
		&globals.endpoint,
		endpointFlag,
		"",
		util.GetOptionalFlagMsg("Send requests to this endpoint instead of the regional one"),
	)
	cmd.PersistentFlags().StringVarP(
		&globals.logPath,
		logPathFlag,
		"l",
		"",
		"Path location used for the debug logs. Default value is $HOME/.config/qsadmin/qsadmin.log",
	)
	markPersistentFlagsFileName(cmd, map[string][]string{logPathFlag: {"log"}})
	cmd.PersistentFlags().BoolVar(
		&globals.verbose,
		verboseFlag,
		false,
		"Write debug messages to the log",
	)
	cmd.PersistentFlags().StringVar(
		&globals.output,
		outputFlag,
		util.DefaultOutputFormat,
		fmt.Sprintf("Output format, one of %v", util.OutputFormatList),
	)
}

// initVcc will initialize a qsops.QSCommands which contains a logger
func initVcc(cmd *cobra.Command) *qsops.QSCommands {
	// setup logs
	logger := vlog.Printer{ForCli: true}
	verbosity := 0
	if globals.verbose {
		verbosity = 1
	}
	logger.SetupOrDie(globals.logPath, verbosity)

	vcc := &qsops.QSCommands{
		Log:       logger.WithName(cmd.CalledAs()),
		Confirmer: newTerminalConfirmer(os.Stdin, cmd.ErrOrStderr()),
	}
	vcc.Log.Info("New qsadmin command initialization")

	return vcc
}

// getClient returns the pooled client for the region, profile and endpoint
// resolved for this run
func getClient(ctx context.Context, logger vlog.Printer) (qsops.Client, error) {
	if clientPool == nil {
		clientPool = qsops.NewClientPool(qsops.DefaultClientFactory(logger))
	}
	return clientPool.Get(ctx, qsops.ClientKey{
		Profile:  globals.profile,
		Region:   globals.region,
		Endpoint: globals.endpoint,
	})
}

// configViper configures viper to load the global options using this order:
// user input -> environment variables -> qsadmin config file -> default
func configViper(cmd *cobra.Command, _ []string) error {
	viper.Reset()
	// initialize config file
	initConfig()
	if globals.configPath != "" {
		absPath, err := util.ResolveToAbsPath(globals.configPath)
		if err != nil {
			return fmt.Errorf("invalid config file path %q: %w", globals.configPath, err)
		}
		globals.configPath = absPath
	}

	// bind viper keys to cobra flags
	for flag, key := range flagKeyMap {
		pf := cmd.Flags().Lookup(flag)
		if pf == nil {
			// aws-account-id only exists on the account-scoped commands
			continue
		}
		err := viper.BindPFlag(key, pf)
		if err != nil {
			return fmt.Errorf("fail to bind viper key %q to flag %q: %w", key, flag, err)
		}
	}

	// bind viper keys to env vars
	for key, env := range keyEnvMap {
		err := viper.BindEnv(key, env)
		if err != nil {
			return fmt.Errorf("fail to bind viper key %q to environment variable %q: %w", key, env, err)
		}
	}

	// config show and config init work on the file themselves
	if cmd.CalledAs() != configShowSubCmd && cmd.CalledAs() != configInitSubCmd {
		loadConfigToViper()
	}

	return handleViperUserInput()
}

// handleViperUserInput copies viper values into the globals. viper picks the
// value in this order:
// 1. user input
// 2. environment variable
// 3. config file
// if a key is not set in viper, the flag default stays in place
func handleViperUserInput() error {
	if viper.IsSet(regionKey) {
		globals.region = viper.GetString(regionKey)
	}
	if viper.IsSet(profileKey) {
		globals.profile = viper.GetString(profileKey)
	}
	if viper.IsSet(endpointKey) {
		globals.endpoint = viper.GetString(endpointKey)
	}
	if viper.IsSet(logPathKey) {
		globals.logPath = viper.GetString(logPathKey)
	} else {
		globals.logPath = logPath
	}
	if viper.IsSet(verboseKey) {
		globals.verbose = viper.GetBool(verboseKey)
	}
	if viper.IsSet(outputKey) {
		globals.output = viper.GetString(outputKey)
	}
	if globals.region == "" {
		globals.region = util.DefaultRegion
	}
	format, ok := util.StringInArrayFold(globals.output, util.OutputFormatList)
	if !ok {
		return fmt.Errorf("unsupported output format %q, must be one of %v", globals.output, util.OutputFormatList)
	}
	globals.output = format
	return nil
}

// makeBasicCobraCmd can make a basic cobra command for all qsadmin commands.
func makeBasicCobraCmd(i cmdInterface, use, short, long string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Long:  long,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			vcc := initVcc(cmd)
			i.SetParser(cmd.Flags())
			out, err := i.initCmdOutput(cmd)
			if err != nil {
				return err
			}
			defer out.close(vcc.Log)
			// parseError and runError will be printed by the command invoker.
			// we silence them in cobra for not printing duplicate error messages.
			cmd.SilenceErrors = true
			parseError := i.Parse(os.Args[1:], vcc.Log)
			if parseError != nil {
				vcc.Log.Error(parseError, "fail to parse command")
				return parseError
			}
			runError := i.Run(cmd.Context(), vcc)
			if runError != nil {
				vcc.Log.Error(runError, "fail to run command")
			}

			return runError
		},
	}

	return cmd
}

// makeSimpleCobraCmd can make a simple cobra command that only groups
// subcommands, such as config
func makeSimpleCobraCmd(use, short, long string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Long:  long,
		Args:  cobra.NoArgs,
	}
}

// constructCmds returns a list of commands that will be executed
// by the command launcher.
func constructCmds() []*cobra.Command {
	var cmds []*cobra.Command
	// one command per service operation
	for _, desc := range qsops.Operations() {
		cmds = append(cmds, makeCmdOperation(desc))
	}
	// others
	cmds = append(cmds, makeCmdConfig())
	return cmds
}

// markFlagsRequired will mark local flags as required
func markFlagsRequired(cmd *cobra.Command, flags []string) {
	for _, flag := range flags {
		err := cmd.MarkFlagRequired(flag)
		if err != nil {
			fmt.Printf("Warning: fail to mark flag %q required, details: %v\n", flag, err)
		}
	}
}

// markFlagsFileName will require some local flags to be file name
func markFlagsFileName(cmd *cobra.Command, flagsWithExts map[string][]string) {
	for flag, ext := range flagsWithExts {
		err := cmd.MarkFlagFilename(flag, ext...)
		if err != nil {
			fmt.Printf("Warning: fail to mark flag %q to be a file name, details: %v\n", flag, err)
		}
	}
}

func markPersistentFlagsFileName(cmd *cobra.Command, flagsWithExts map[string][]string) {
	for flag, ext := range flagsWithExts {
		err := cmd.MarkPersistentFlagFilename(flag, ext...)
		if err != nil {
			fmt.Printf("Warning: fail to mark flag %q to be a file name, details: %v\n", flag, err)
		}
	}
}

// operatingSystem is an interface for testing purpose
type operatingSystem interface {
	UserConfigDir() (string, error)
	MkdirAll(path string, perm os.FileMode) error
}

type realOperatingSystem struct{}

func (realOperatingSystem) UserConfigDir() (string, error) {
	return os.UserConfigDir()
}

func (realOperatingSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

func setLogPath() {
	logPath = setLogPathImpl(realOperatingSystem{})
}

// setLogPathImpl picks $HOME/.config/qsadmin/qsadmin.log. An empty path
// sends the log to stdout.
func setLogPathImpl(opsys operatingSystem) string {
	cfgDir, err := opsys.UserConfigDir()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Cannot determine user config directory path:", err)
		return ""
	}
	// ensure the config directory exists.
	path := filepath.Join(cfgDir, defConfigDirName)
	err = opsys.MkdirAll(path, util.ConfigDirPerm)
	if err != nil {
		// print warning and continue execution
		// no need to error exit because user may set log path
		// which overwrites the default log path
		fmt.Fprintln(os.Stderr, "Cannot gain write access to user config directory path:", err)
		return ""
	}
	if util.CanWriteAccessDir(path) != util.FileExist {
		fmt.Fprintln(os.Stderr, "Cannot write to user config directory path:", path)
		return ""
	}
	return filepath.Join(path, defLogFileName)
}
