/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package main

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/untillpro/goutils/cobrau"
)

//go:embed version
var version string

func main() {
	if err := execRootCmd(os.Args, version); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func execRootCmd(args []string, ver string) error {
	rootCmd := cobrau.PrepareRootCmd(
		"ndl",
		"nyan data language tool",
		args,
		ver,
		newCheckCmd(),
		newDumpCmd(),
		newGetCmd(),
	)

	return cobrau.ExecCommandAndCatchInterrupt(rootCmd)
}
