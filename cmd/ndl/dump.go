/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ndllang/ndl/pkg/database"
	"github.com/ndllang/ndl/pkg/ndl"
)

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <file>",
		Short: "print all objects with parents, linearization and folded member values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := loadDatabase(args[0])
			if err != nil {
				return err
			}
			view := db.NewView()
			for _, name := range db.Objects() {
				obj, err := view.Get(name)
				if err != nil {
					return err
				}
				if err := dumpObject(obj); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func dumpObject(obj database.IObject) error {
	header := obj.Name().String()
	if target, ok := obj.Target(); ok {
		header += fmt.Sprintf(" <%s>", target)
	}
	parents, err := obj.Parents(ndl.Latest)
	if err != nil {
		return err
	}
	lin, err := obj.Linearized(ndl.Latest)
	if err != nil {
		return err
	}
	fmt.Printf("%s(%s):\n", header, joinNames(parents))
	fmt.Printf("    # linearization: %s\n", joinNames(lin))

	members, err := obj.Members(ndl.Latest)
	if err != nil {
		return err
	}
	for _, member := range members {
		val, err := obj.Value(member, ndl.Latest)
		if err != nil {
			fmt.Printf("    %s = <%v>\n", member, err)
			continue
		}
		fmt.Printf("    %s = %s\n", member, val)
	}
	return nil
}

func joinNames(names []ndl.FQON) string {
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = n.String()
	}
	return strings.Join(parts, ", ")
}
