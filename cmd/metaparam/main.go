package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rgonek/editorjs-metaparam/editor"
	"github.com/rgonek/editorjs-metaparam/metaparam"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type options struct {
	configPath string
	preset     string
	strict     bool
	verbose    bool

	logger *logrus.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{logger: logrus.New()}

	cmd := &cobra.Command{
		Use:   "metaparam",
		Short: "Render and save Metaparam blocks of Editor.js documents",
		Long: `metaparam renders Editor.js documents into editor markup, saves edited
markup back into documents, and moves page metadata between documents and
Markdown front matter.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.logger.SetOutput(cmd.ErrOrStderr())
			opts.logger.SetLevel(logrus.InfoLevel)
			if opts.verbose {
				opts.logger.SetLevel(logrus.DebugLevel)
			}
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "YAML editor config file")
	flags.StringVar(&opts.preset, "preset", presetBalanced, "Preset: balanced|strict|trusted|lossy")
	flags.BoolVar(&opts.strict, "strict", false, "Fail on blocks without a registered tool")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(
		newRenderCmd(opts),
		newSaveCmd(opts),
		newImportCmd(opts),
		newExportCmd(opts),
		newToolsCmd(opts),
	)
	return cmd
}

func newRegistry() *editor.Registry {
	return editor.NewRegistry(metaparam.Class{})
}

func (o *options) newEditor() (*editor.Editor, error) {
	file, err := loadConfigFile(o.configPath)
	if err != nil {
		return nil, err
	}

	cfg, err := resolveConfig(o.preset, file, o.strict)
	if err != nil {
		return nil, fmt.Errorf("invalid preset: %w", err)
	}
	cfg.Logger = o.logger

	ed, err := editor.New(cfg, newRegistry())
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return ed, nil
}

func (o *options) logWarnings(warnings []editor.Warning) {
	for _, w := range warnings {
		o.logger.WithFields(logrus.Fields{
			"type":      w.Type,
			"block":     w.BlockID,
			"blockType": w.BlockType,
		}).Warn(w.Message)
	}
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(v)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
