// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/goutils/src/configfile"
	"github.com/H0llyW00dzZ/goutils/src/jsonobject"
)

func newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Read JSON, JSONC and YAML configuration files",
	}
	cmd.AddCommand(newConfigGetCommand(), newConfigKeysCommand(), newConfigCheckCommand())
	return cmd
}

func newConfigGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get CONFIG_FILE [KEY]",
		Short: "Print the value at a dotted key, or the whole file as JSON",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ns, err := configfile.Load(args[0])
			if err != nil {
				return err
			}

			var value any
			if len(args) == 1 {
				var all map[string]any
				if err := ns.Decode(&all); err != nil {
					return err
				}
				value = all
			} else {
				v, ok := ns.Get(args[1])
				if !ok {
					return fmt.Errorf("%w: %s", configfile.ErrKeyNotFound, args[1])
				}
				value = v
			}

			if s, ok := value.(string); ok {
				fmt.Fprintln(cmd.OutOrStdout(), s)
				return nil
			}
			out, err := json.MarshalIndent(value, "", "  ")
			if err != nil {
				return err
			}
			return writeOutput(cmd, "", append(out, '\n'), 0)
		},
	}
}

func newConfigKeysCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "keys CONFIG_FILE [KEY]",
		Short: "List the keys of the file or of the object at KEY",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ns, err := configfile.Load(args[0])
			if err != nil {
				return err
			}
			if len(args) == 2 {
				if ns, err = ns.Sub(args[1]); err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(ns.Keys(), "\n"))
			return nil
		},
	}
}

func newConfigCheckCommand() *cobra.Command {
	var (
		sf  schemaFlags
		key string
	)

	cmd := &cobra.Command{
		Use:   "check CONFIG_FILE",
		Short: "Decode a configuration file, or the object at --key, against a schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := sf.resolve()
			if err != nil {
				return err
			}
			ns, err := configfile.Load(args[0])
			if err != nil {
				return err
			}
			if key != "" {
				if ns, err = ns.Sub(key); err != nil {
					return err
				}
			}

			rec, err := ns.Object(schema)
			if err != nil {
				return err
			}
			out, err := jsonobject.Marshal(rec, jsonobject.Indent(2))
			if err != nil {
				return err
			}
			return writeOutput(cmd, "", append(out, '\n'), 0)
		},
	}

	sf.register(cmd)
	cmd.Flags().StringVar(&key, "key", "", "dotted key of the object to check")
	return cmd
}
