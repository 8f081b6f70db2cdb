// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package configdiag_test

import (
	"fmt"

	"rivaas.dev/configdiag"
)

func ExampleBuildReport() {
	root := configdiag.MustNew(
		configdiag.WithValues("defaults", map[string]any{
			"db": map[string]any{"host": "localhost"},
		}),
		configdiag.WithValues("overrides", map[string]any{
			"db": map[string]any{"host": "prod-db"},
		}),
	)

	fmt.Println(configdiag.BuildReport(root.Providers(), "Db:Host", false, nil))
	// Output:
	// Provider sources for value of Db:Host
	// * defaults ==> "localhost"
	// * overrides ==> "prod-db"
}

func ExampleBuildReport_sensitive() {
	root := configdiag.MustNew(
		configdiag.WithValues("defaults", map[string]any{}),
		configdiag.WithValues("secrets", map[string]any{
			"db": map[string]any{"password": "hunter2"},
		}),
	)

	fmt.Println(configdiag.BuildReport(root.Providers(), "Db:Password", true, nil))
	// Output:
	// Provider sources for value of Db:Password
	// * secrets ==> ***
}

func ExamplePlaceholder() {
	fmt.Println(configdiag.Placeholder("Section", "1Key"))
	// Output: {Section___Key}
}
