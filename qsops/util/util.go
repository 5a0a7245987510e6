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

package util

import (
	"fmt"
	"log"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/sys/unix"
)

// SortedKeys returns the keys of m in ascending order
func SortedKeys[M ~map[K]V, K constraints.Ordered, V any](m M) []K {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}

func CheckPathExist(filePath string) bool {
	_, err := os.Stat(filePath)
	return !os.IsNotExist(err)
}

// StringInArrayFold tells if str is in list, ignoring case. It returns the
// matching element as spelled in list.
func StringInArrayFold(str string, list []string) (string, bool) {
	idx := slices.IndexFunc(list, func(s string) bool { return strings.EqualFold(s, str) })
	if idx < 0 {
		return "", false
	}
	return list[idx], true
}

// ResolveToAbsPath makes path absolute. A leading "~" is the home directory
// of the current user.
func ResolveToAbsPath(path string) (string, error) {
	if !strings.Contains(path, "~") {
		return filepath.Abs(path)
	}
	// needed for resolving '~' in relative paths
	usr, err := user.Current()
	if err != nil {
		return "", err
	}
	homeDir := usr.HomeDir

	if path == "~" {
		return homeDir, nil
	} else if strings.HasPrefix(path, "~/") {
		return filepath.Join(homeDir, path[2:]), nil
	} else {
		return "", fmt.Errorf("invalid path")
	}
}

const (
	FileExist    = 0
	FileNotExist = 1
	NoWritePerm  = 2
)

// Check whether the directory is write accessible
func CanWriteAccessDir(dirPath string) int {
	// check whether the path exists
	_, err := os.Stat(dirPath)
	if err != nil {
		if os.IsNotExist(err) {
			return FileNotExist
		}
	}

	// check whether the path has write access
	if err := unix.Access(dirPath, unix.W_OK); err != nil {
		log.Printf("Path '%s' is not writable.\n", dirPath)
		return NoWritePerm
	}

	return FileExist
}

func GetOptionalFlagMsg(message string) string {
	return message + " [Optional]"
}

func GetDeprecatedFlagMsg(message, replacement string) string {
	return fmt.Sprintf("[Deprecated] %s Use %s instead.", message, replacement)
}

// Endpoint returns the service endpoint for a region
func Endpoint(region string) string {
	if region == "" {
		region = DefaultRegion
	}
	return fmt.Sprintf(EndpointTemplate, region)
}
