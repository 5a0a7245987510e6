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

// this file defines basic default values
const (
	DefaultRegion       = "us-east-1"
	EndpointTemplate    = "https://quicksight.%s.amazonaws.com"
	DefaultOutputFormat = "json"
	ConfigDirPerm       = 0755
	ConfigFilePerm      = 0600
)

var OutputFormatList = []string{DefaultOutputFormat, "yaml", "text"}
