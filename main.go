// Copyright 2026 NoteDrill
// SPDX-License-Identifier: AGPL-3.0

package main

import "github.com/matheuspuca/NoteDrill-sub001/cmd"

func main() {
	cmd.Execute()
}
