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
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/qsadmin/qsadmin/qsops"
)

// terminalConfirmer asks the user on the terminal before a mutating
// operation is sent
type terminalConfirmer struct {
	in         *os.File
	out        io.Writer
	isTerminal func(fd int) bool
}

func newTerminalConfirmer(in *os.File, out io.Writer) *terminalConfirmer {
	return &terminalConfirmer{in: in, out: out, isTerminal: term.IsTerminal}
}

// Confirm prompts for a yes or no answer. Without a terminal there is nobody
// to answer, so it refuses. It gives up waiting once ctx is done.
func (c *terminalConfirmer) Confirm(ctx context.Context, operation, target string) (bool, error) {
	if c.in == nil || !c.isTerminal(int(c.in.Fd())) {
		return false, fmt.Errorf("cannot ask for confirmation without a terminal, use --%s: %w",
			forceFlag, qsops.ErrConfirmationDeclined)
	}
	if target == "" {
		fmt.Fprintf(c.out, "Run %s? [y/N]: ", operation)
	} else {
		fmt.Fprintf(c.out, "Run %s on %q? [y/N]: ", operation, target)
	}

	type answer struct {
		yes bool
		err error
	}
	// the read cannot be interrupted, so it is left behind on cancellation
	answered := make(chan answer, 1)
	go func() {
		yes, err := readConfirmation(c.in)
		answered <- answer{yes: yes, err: err}
	}()
	select {
	case a := <-answered:
		return a.yes, a.err
	case <-ctx.Done():
		fmt.Fprintln(c.out)
		return false, ctx.Err()
	}
}

// readConfirmation reads one line and accepts "y" or "yes" in any case
func readConfirmation(r io.Reader) (bool, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("fail to read the confirmation: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
