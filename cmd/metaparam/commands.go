package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/rgonek/editorjs-metaparam/dom"
	"github.com/rgonek/editorjs-metaparam/editor"
	"github.com/rgonek/editorjs-metaparam/markdown"
	"github.com/rgonek/editorjs-metaparam/metaparam"
	"github.com/spf13/cobra"
)

func newRenderCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "render <document.json>",
		Short: "Render an Editor.js document into editor markup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read document: %w", err)
			}
			doc, err := editor.ParseOutputData(input)
			if err != nil {
				return err
			}

			ed, err := opts.newEditor()
			if err != nil {
				return err
			}
			session, err := ed.Load(doc)
			if err != nil {
				return err
			}
			opts.logWarnings(session.Warnings())

			holder, err := session.Render()
			if err != nil {
				return err
			}
			markup, err := dom.Render(holder)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), markup)
			return nil
		},
	}
}

func newSaveCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "save <editor.html>",
		Short: "Save edited editor markup back into an Editor.js document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read markup: %w", err)
			}
			root, err := dom.Make("body", nil, dom.Props{InitialContent: string(input)})
			if err != nil {
				return fmt.Errorf("parse markup: %w", err)
			}

			ed, err := opts.newEditor()
			if err != nil {
				return err
			}
			session, err := ed.Restore(root)
			if err != nil {
				return err
			}

			doc, err := session.Save(root)
			if err != nil {
				return err
			}
			opts.logWarnings(session.Warnings())

			return writeJSON(cmd.OutOrStdout(), doc)
		},
	}
}

func newImportCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "import <page.md>",
		Short: "Create an Editor.js document with a Metaparam block from Markdown front matter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read markdown: %w", err)
			}
			data, err := markdown.Import(input)
			if err != nil {
				return err
			}

			ed, err := opts.newEditor()
			if err != nil {
				return err
			}
			session, err := ed.Load(editor.OutputData{})
			if err != nil {
				return err
			}
			if err := session.Append(metaparam.Name, data.Map()); err != nil {
				return err
			}

			holder, err := session.Render()
			if err != nil {
				return err
			}
			doc, err := session.Save(holder)
			if err != nil {
				return err
			}
			opts.logWarnings(session.Warnings())

			return writeJSON(cmd.OutOrStdout(), doc)
		},
	}
}

func newExportCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "export <document.json>",
		Short: "Print the first Metaparam block of a document as Markdown front matter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read document: %w", err)
			}
			doc, err := editor.ParseOutputData(input)
			if err != nil {
				return err
			}

			block, ok := doc.FirstBlock(metaparam.Name)
			if !ok {
				return fmt.Errorf("document has no %s block", metaparam.Name)
			}
			opts.logger.WithField("block", block.ID).Debug("exporting block")

			out, err := markdown.Export(metaparam.DataFromMap(block.Data))
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}

func newToolsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List registered block tools",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := newRegistry()
			for _, name := range registry.Names() {
				class, _ := registry.Lookup(name)

				fields := make([]string, 0)
				for field := range class.Sanitize() {
					fields = append(fields, field)
				}
				sort.Strings(fields)

				fmt.Fprintf(cmd.OutOrStdout(), "%s\ttitle=%q\tlineBreaks=%t\tsanitize=%s\n",
					name, class.Toolbox().Title, class.EnableLineBreaks(), strings.Join(fields, ","))
			}
			opts.logger.WithField("count", len(registry.Names())).Debug("listed tools")
			return nil
		},
	}
}
