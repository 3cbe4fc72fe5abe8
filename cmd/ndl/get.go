/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ndllang/ndl/pkg/ndl"
)

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <file> <fqon> <member>",
		Short: "print one folded member value",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := loadDatabase(args[0])
			if err != nil {
				return err
			}
			obj, err := db.NewView().Get(ndl.FQON(args[1]))
			if err != nil {
				return err
			}
			val, err := obj.Value(args[2], ndl.Latest)
			if err != nil {
				return err
			}
			fmt.Println(val)
			return nil
		},
	}
}
