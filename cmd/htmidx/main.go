// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package main

import "github.com/2dChan/htmindex/cmd/htmidx/cmd"

func main() {
	cmd.Execute()
}
