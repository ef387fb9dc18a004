// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/goutils/src/jsonobject"
)

type schemaFlags struct {
	file     string
	typeName string
}

func (f *schemaFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.file, "schema", "s", "", "schema document (YAML or JSON)")
	cmd.Flags().StringVarP(&f.typeName, "type", "t", "", "type to use (default: the document's root type)")
	_ = cmd.MarkFlagRequired("schema")
}

func (f *schemaFlags) resolve() (*jsonobject.Schema, error) {
	reg, err := jsonobject.LoadSchemas(f.file)
	if err != nil {
		return nil, err
	}
	return reg.Resolve(f.typeName)
}

func newJSONCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "json",
		Short: "Normalize, describe and validate schema-typed JSON documents",
	}
	cmd.AddCommand(newJSONNormalizeCommand(), newJSONSchemaCommand(), newJSONValidateCommand())
	return cmd
}

func newJSONNormalizeCommand() *cobra.Command {
	var (
		sf          schemaFlags
		excludeNull bool
		nullIfEmpty bool
		indent      int
		output      string
	)

	cmd := &cobra.Command{
		Use:   "normalize [INPUT_FILE]",
		Short: "Decode a document against a schema and encode it again",
		Long: "Decodes INPUT_FILE (default: stdin) with the selected type, rejecting keys the\n" +
			"schema does not declare, then encodes it with fields in declaration order.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := sf.resolve()
			if err != nil {
				return err
			}

			data, err := readInput(cmd, firstArg(args))
			if err != nil {
				return err
			}
			rec, err := jsonobject.Unmarshal(data, schema)
			if err != nil {
				return err
			}
			if rec == nil {
				return writeOutput(cmd, output, []byte("null\n"), 0o644)
			}

			opts := []jsonobject.Option{
				jsonobject.ExcludeNull(excludeNull),
				jsonobject.NullIfEmpty(nullIfEmpty),
			}
			if cmd.Flags().Changed("indent") {
				opts = append(opts, jsonobject.Indent(indent))
			}

			out, err := jsonobject.Marshal(rec, opts...)
			if err != nil {
				return err
			}
			return writeOutput(cmd, output, append(out, '\n'), 0o644)
		},
	}

	sf.register(cmd)
	cmd.Flags().BoolVar(&excludeNull, "exclude-null", false, "omit null fields")
	cmd.Flags().BoolVar(&nullIfEmpty, "null-if-empty", false, "collapse empty objects and lists to null")
	cmd.Flags().IntVar(&indent, "indent", 0, "pretty-print with this many spaces per level")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output to OUTPUT_FILE (default: stdout)")
	return cmd
}

func newJSONSchemaCommand() *cobra.Command {
	var sf schemaFlags

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema (draft-07) of a type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			schema, err := sf.resolve()
			if err != nil {
				return err
			}
			out, err := json.MarshalIndent(jsonobject.JSONSchema(schema), "", "  ")
			if err != nil {
				return err
			}
			return writeOutput(cmd, "", append(out, '\n'), 0)
		},
	}

	sf.register(cmd)
	return cmd
}

func newJSONValidateCommand() *cobra.Command {
	var sf schemaFlags

	cmd := &cobra.Command{
		Use:   "validate [INPUT_FILE]",
		Short: "Report every schema violation in a document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := sf.resolve()
			if err != nil {
				return err
			}

			data, err := readInput(cmd, firstArg(args))
			if err != nil {
				return err
			}
			violations, err := jsonobject.Validate(data, schema)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(violations) == 0 {
				fmt.Fprintln(out, "valid")
				return nil
			}
			for _, v := range violations {
				fmt.Fprintln(out, v.String())
			}
			return fmt.Errorf("%w: %d violation(s)", ErrInvalidDocument, len(violations))
		},
	}

	sf.register(cmd)
	return cmd
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
