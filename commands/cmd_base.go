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
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/qsadmin/qsadmin/qsops/util"
	"github.com/qsadmin/qsadmin/qsops/vlog"
)

const (
	outputFilePerm = 0600
)

/* CmdBase
 *
 * Basic/common fields of qsadmin commands
 */
type CmdBase struct {
	argv   []string
	parser *pflag.FlagSet

	// the command output can be written to a file instead of being displayed
	// in stdout. This is the file the output will be written to
	output string
	out    *cmdOutput
}

// SetParser can assign a pflag parser to CmdBase
func (c *CmdBase) SetParser(parser *pflag.FlagSet) {
	c.parser = parser
}

// setOutputFileFlag adds --output-file to a command
func (c *CmdBase) setOutputFileFlag(cmd *cobra.Command) {
	cmd.Flags().StringVarP(
		&c.output,
		outputFileFlag,
		"o",
		"",
		"Write output to this file instead of stdout",
	)
}

// cmdOutput is where a command writes its result
type cmdOutput struct {
	w    io.Writer
	f    *os.File
	path string
}

func (o *cmdOutput) Write(p []byte) (int, error) {
	return o.w.Write(p)
}

func (o *cmdOutput) close(logger vlog.Printer) {
	if o == nil || o.f == nil {
		return
	}
	if err := o.f.Close(); err != nil {
		logger.PrintError("Could not close output file %s, details: %s", o.path, err)
	}
}

// writeCmdOutput writes the output of the command to the output file
// if output-file is set, otherwise to stdout
func (c *CmdBase) writeCmdOutput(out *cmdOutput, output []byte, logger vlog.Printer) {
	_, err := out.Write(output)
	if err != nil {
		if out.f == nil {
			logger.PrintWarning("%s", err)
		} else {
			logger.PrintError("Could not write command output to file %s, details: %s", out.path, err)
		}
	}
}

// initCmdOutput returns the destination of the command output: the
// output file when --output-file is set, or the command's stdout
func (c *CmdBase) initCmdOutput(cmd *cobra.Command) (*cmdOutput, error) {
	if c.parser == nil || c.parser.Lookup(outputFileFlag) == nil || !c.parser.Changed(outputFileFlag) {
		c.out = &cmdOutput{w: cmd.OutOrStdout()}
		return c.out, nil
	}
	if c.output == "" {
		return nil, fmt.Errorf("output-file cannot be empty")
	}
	path, err := util.ResolveToAbsPath(c.output)
	if err != nil {
		return nil, fmt.Errorf("invalid output file path %q: %w", c.output, err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, outputFilePerm)
	if err != nil {
		return nil, fmt.Errorf("fail to open output file %q: %w", path, err)
	}
	c.out = &cmdOutput{w: f, f: f, path: path}
	return c.out, nil
}
