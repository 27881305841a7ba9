/*
Copyright 2025.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/redhat-data-and-ai/profilemanager/pkg/config"
	"github.com/redhat-data-and-ai/profilemanager/pkg/export"
	"github.com/redhat-data-and-ai/profilemanager/pkg/logger"
	"github.com/redhat-data-and-ai/profilemanager/pkg/serializer"
	"github.com/redhat-data-and-ai/profilemanager/pkg/store"
)

type rootOptions struct {
	configPath string
	dataFile   string
	logLevel   string
}

// NewRootCommand builds the profilemanager command tree
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "profilemanager",
		Short:         "Manage person profiles stored in a flat text file",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.runMenu(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "path to a YAML config file (default ./profilemanager.yaml when present)")
	flags.StringVarP(&opts.dataFile, "file", "f", "", "profile data file (overrides storage.data_file)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (overrides log.level)")

	root.AddCommand(
		newMenuCommand(opts),
		newListCommand(opts),
		newShowCommand(opts),
		newExportCommand(opts),
	)
	return root
}

func newMenuCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Start the interactive menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.runMenu(cmd)
		},
	}
}

func newListCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the profiles in the data file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.loadStore(commandContext(cmd))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if s.Size() == 0 {
				fmt.Fprintln(out, "No profiles yet.")
				return nil
			}
			fmt.Fprintf(out, "Profiles (%d):\n", s.Size())
			for _, id := range s.ListIDs() {
				p, _ := s.Find(id)
				fmt.Fprintf(out, "- [%d] %s\n", p.ID(), p.Name())
			}
			return nil
		},
	}
}

func newShowCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print one profile from the data file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid profile id %q: %w", args[0], err)
			}

			s, err := opts.loadStore(commandContext(cmd))
			if err != nil {
				return err
			}

			p, ok := s.Find(id)
			if !ok {
				return fmt.Errorf("no profile found with ID %d", id)
			}
			fmt.Fprint(cmd.OutOrStdout(), p.String())
			return nil
		},
	}
}

func newExportCommand(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the data file as YAML or JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.loadStore(commandContext(cmd))
			if err != nil {
				return err
			}
			return export.Write(cmd.OutOrStdout(), s, format)
		},
	}
	cmd.Flags().StringVar(&format, "format", export.FormatYAML, "export format: yaml or json")
	return cmd
}

// setup loads configuration, applies flag overrides and configures logging
// Commands read the result back through config.GetConfig.
func (o *rootOptions) setup() error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if o.dataFile != "" {
		cfg.Storage.DataFile = o.dataFile
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}

	return logger.Init(cfg.Log.Level, cfg.Log.Format)
}

func (o *rootOptions) runMenu(cmd *cobra.Command) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	log := logger.Logger(ctx).WithField("path", cfg.Storage.DataFile)
	s := store.New()

	if cfg.Storage.AutoLoad {
		_, err := serializer.Load(ctx, s, cfg.Storage.DataFile)
		switch {
		case err == nil:
			fmt.Fprintf(cmd.OutOrStdout(), "Loaded from %s\n", cfg.Storage.DataFile)
		case errors.Is(err, fs.ErrNotExist):
			log.Info("data file does not exist yet, starting empty")
		default:
			log.WithError(err).Warn("could not auto-load data file, starting empty")
			fmt.Fprintf(cmd.OutOrStdout(), "Failed to load from %s (missing file or invalid format)\n", cfg.Storage.DataFile)
		}
	}

	menu := NewMenu(s, cmd.InOrStdin(), cmd.OutOrStdout(),
		WithDefaultPath(cfg.Storage.DataFile),
		WithAutoSave(cfg.Storage.AutoSave),
	)
	return menu.Run(ctx)
}

// loadStore reads the configured data file into a fresh store
func (o *rootOptions) loadStore(ctx context.Context) (*store.Store, error) {
	cfg, err := config.GetConfig()
	if err != nil {
		return nil, err
	}

	s := store.New()
	if _, err := serializer.Load(ctx, s, cfg.Storage.DataFile); err != nil {
		return nil, err
	}
	return s, nil
}

// commandContext returns the command context tagged with a session id
func commandContext(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if logger.SessionID(ctx) != "" {
		return ctx
	}
	return logger.WithSession(ctx)
}
