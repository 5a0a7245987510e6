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
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/qsadmin/qsadmin/qsops"
	"github.com/qsadmin/qsadmin/qsops/util"
	"github.com/qsadmin/qsadmin/qsops/vlog"
)

// name of the parameter that falls back to the config file and environment
const accountIDParamName = "AwsAccountId"

/* CmdOperation
 *
 * Parses the flags of one service operation and
 * calls the operation through qsops.QSCommands.
 *
 * One CmdOperation backs each operation command,
 * e.g. create-topic or list-folders.
 */
type CmdOperation struct {
	CmdBase
	desc *qsops.OperationDescriptor
	opts qsops.InvocationOptions
}

func makeCmdOperation(desc *qsops.OperationDescriptor) *cobra.Command {
	newCmd := &CmdOperation{desc: desc}

	cmd := makeBasicCobraCmd(
		newCmd,
		desc.Command,
		desc.Short,
		operationLongHelp(desc),
	)

	// flags generated from the operation parameters
	newCmd.setParamFlags(cmd)

	// local flags
	newCmd.setLocalFlags(cmd)
	newCmd.setOutputFileFlag(cmd)

	// aws-account-id may come from the environment or the config file,
	// the other required parameters must be given on the command line
	var required []string
	for i := range desc.Params {
		p := &desc.Params[i]
		if p.Required && p.Name != accountIDParamName {
			required = append(required, p.Flag)
		}
	}
	markFlagsRequired(cmd, required)
	markFlagsFileName(cmd, map[string][]string{outputFileFlag: {"json", "yaml", "txt"}})

	return cmd
}

func operationLongHelp(desc *qsops.OperationDescriptor) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Calls the %s operation of the service.\n\n", desc.Name)
	if desc.Mutating {
		fmt.Fprintf(&b, "This operation changes state. You are asked for confirmation unless --%s is given.\n\n", forceFlag)
	}
	if desc.PrimaryField == "" {
		b.WriteString("By default the whole response is printed.")
	} else {
		fmt.Fprintf(&b, "By default the %s field of the response is printed.", desc.PrimaryField)
	}
	fmt.Fprintf(&b, " Use --%s to pick another field: %s.\n\n", selectFlag, strings.Join(desc.Fields, ", "))
	b.WriteString("Example:\n  qsadmin " + desc.Command)
	for i := range desc.Params {
		p := &desc.Params[i]
		if p.Required {
			fmt.Fprintf(&b, " --%s <%s>", p.Flag, p.Flag)
		}
	}
	b.WriteString("\n")
	return b.String()
}

// setParamFlags adds one flag per operation parameter
func (c *CmdOperation) setParamFlags(cmd *cobra.Command) {
	for i := range c.desc.Params {
		p := &c.desc.Params[i]
		help := p.Help
		if p.Kind == qsops.KindEnum {
			help = fmt.Sprintf("%s. One of %s", help, strings.Join(p.EnumValues, ", "))
		}
		if p.Name == accountIDParamName {
			help += ". Defaults to the value in the config file or " + qsadminAccountIDEnv
		}
		if !p.Required {
			help = util.GetOptionalFlagMsg(help)
		}
		switch p.Kind {
		case qsops.KindString, qsops.KindEnum:
			cmd.Flags().String(p.Flag, "", help)
		case qsops.KindBool:
			cmd.Flags().Bool(p.Flag, false, help)
		case qsops.KindInt64:
			cmd.Flags().Int64(p.Flag, 0, help)
		case qsops.KindMap:
			cmd.Flags().StringArray(p.Flag, nil, help)
		case qsops.KindList:
			cmd.Flags().StringSlice(p.Flag, nil, help)
		}
	}
}

// setLocalFlags will set the local flags the command has
func (c *CmdOperation) setLocalFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(
		&c.opts.Select,
		selectFlag,
		"",
		util.GetOptionalFlagMsg(`Part of the result to print: "*" for the whole response, `+
			`a response field name, or "^" followed by a parameter name`),
	)
	cmd.Flags().BoolVar(
		&c.opts.PassThru,
		passThruFlag,
		false,
		util.GetDeprecatedFlagMsg("Print the value of "+c.desc.PassThruParam+" instead of the response."+
			" Only --"+selectFlag+" '*' may be given with it.",
			"--"+selectFlag+" ^"+c.desc.PassThruParam),
	)
	if c.desc.Mutating {
		cmd.Flags().BoolVar(
			&c.opts.Force,
			forceFlag,
			false,
			util.GetOptionalFlagMsg("Do not ask for confirmation"),
		)
	}
}

func (c *CmdOperation) Parse(inputArgv []string, logger vlog.Printer) error {
	c.argv = inputArgv
	logger.LogArgParse(&c.argv)

	params, err := c.collectParams()
	if err != nil {
		return err
	}
	c.opts.Params = params
	return c.validateParse(logger)
}

// all validations of the arguments should go in here
func (c *CmdOperation) validateParse(logger vlog.Printer) error {
	logger.Info("Called validateParse()")
	if c.opts.PassThru && c.opts.Select != "" && c.opts.Select != "*" {
		logger.Info("Both --select and --pass-thru given, the operation will reject them")
	}
	return nil
}

// collectParams reads the parameter flags given on the command line.
// Flags left unset are not passed on.
func (c *CmdOperation) collectParams() (map[string]any, error) {
	if c.parser == nil {
		return nil, fmt.Errorf("unexpected nil - the parser was nil")
	}
	params := make(map[string]any)
	for i := range c.desc.Params {
		p := &c.desc.Params[i]
		if p.Name == accountIDParamName {
			// the flag is bound to viper so the environment and the
			// config file are looked up when it is not given
			if v := viper.GetString(accountIDKey); v != "" {
				params[p.Name] = v
			}
			continue
		}
		if !c.parser.Changed(p.Flag) {
			continue
		}
		v, err := c.flagValue(p)
		if err != nil {
			return nil, fmt.Errorf("invalid value for --%s: %w", p.Flag, err)
		}
		params[p.Name] = v
	}
	return params, nil
}

func (c *CmdOperation) flagValue(p *qsops.ParamSpec) (any, error) {
	switch p.Kind {
	case qsops.KindString, qsops.KindEnum:
		return c.parser.GetString(p.Flag)
	case qsops.KindBool:
		return c.parser.GetBool(p.Flag)
	case qsops.KindInt64:
		return c.parser.GetInt64(p.Flag)
	case qsops.KindMap:
		pairs, err := c.parser.GetStringArray(p.Flag)
		if err != nil {
			return nil, err
		}
		return qsops.ParseKeyValuePairs(pairs)
	case qsops.KindList:
		return c.parser.GetStringSlice(p.Flag)
	}
	return nil, fmt.Errorf("unsupported parameter kind %s", p.Kind)
}

func (c *CmdOperation) Run(ctx context.Context, vcc *qsops.QSCommands) error {
	vcc.Log.Info("Called method Run()")

	client, err := getClient(ctx, vcc.Log)
	if err != nil {
		return err
	}
	res, err := vcc.Run(ctx, client, c.desc.Name, &c.opts)
	if err != nil {
		vcc.Log.Error(err, "failed to run the operation", "operation", c.desc.Name)
		return err
	}
	out, err := renderOutput(res.Value, globals.output)
	if err != nil {
		return err
	}
	c.writeCmdOutput(c.out, out, vcc.Log)
	vcc.Log.Info("Wrote the result", "invocation", res.InvocationID, "format", globals.output)
	return nil
}
