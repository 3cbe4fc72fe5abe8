/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"

	"github.com/ndllang/ndl/pkg/database"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "load an ndl file and report errors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := loadDatabase(args[0])
			if err != nil {
				return err
			}
			logger.Info(args[0], "ok:", len(db.Objects()), "objects")
			return nil
		},
	}
}

// Loads a database rooted at the given path. Imported namespaces resolve
// to files relative to the root file's directory.
func loadDatabase(path string) (database.IDatabase, error) {
	dir := filepath.Dir(path)
	root := filepath.Base(path)
	return database.Load(root, func(fileName string) ([]byte, error) {
		content, err := os.ReadFile(filepath.Join(dir, fileName))
		if err != nil {
			return nil, fmt.Errorf("can not fetch «%s»: %w", fileName, err)
		}
		return content, nil
	})
}
