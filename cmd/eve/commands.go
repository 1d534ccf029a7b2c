// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"

	"github.com/spf13/cobra"

	"cogentcore.org/eve/base/errors"
	"cogentcore.org/eve/base/logx"
	"cogentcore.org/eve/config"
	"cogentcore.org/eve/dialog"
	"cogentcore.org/eve/highlighting"
	"cogentcore.org/eve/math32"
	"cogentcore.org/eve/store"
	"cogentcore.org/eve/symbol"
	"cogentcore.org/eve/values"
)

// nameColor is the color of view names in placement listings.
const nameColor = "#00af87"

// app holds the flags and settings shared by the commands.
type app struct {
	configPath string
	storePath  string

	width, height float32

	vv, v, q bool

	settings *config.Settings
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:               "eve",
		Short:             "Lay out and run dialogs from layout and sheet declarations",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "settings file in TOML")
	pf.StringVar(&a.storePath, "store", "", "database of dialog results, overriding the settings")
	pf.BoolVar(&a.vv, "vv", false, "show debug messages")
	pf.BoolVarP(&a.v, "verbose", "v", false, "show info messages")
	pf.BoolVarP(&a.q, "quiet", "q", false, "only show errors")
	root.AddCommand(a.layoutCmd(), a.printCmd(), a.runCmd(), a.watchCmd(), a.historyCmd())
	return root
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	s, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.settings = s
	logx.UserLevel.Set(levelFromFlags(s.Level(), a.vv, a.v, a.q))
	slog.SetDefault(slog.New(logx.NewHandler(cmd.ErrOrStderr())))
	return nil
}

// levelFromFlags returns the level selected by the verbosity flags,
// evaluated in order, or def when none is set.
func levelFromFlags(def slog.Level, vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	}
	return def
}

func (a *app) sizeFlags(cmd *cobra.Command) {
	cmd.Flags().Float32Var(&a.width, "width", 0, "width of the dialog; 0 uses its natural width")
	cmd.Flags().Float32Var(&a.height, "height", 0, "height of the dialog; 0 uses its natural height")
}

// openStore opens the store named by the flags or settings.
// It returns nil when there is none.
func (a *app) openStore(tab *symbol.Table) (*store.Store, error) {
	p := a.storePath
	if p == "" {
		p = a.settings.StorePath
	}
	if p == "" {
		return nil, nil
	}
	return store.Open(p, tab)
}

// open makes a dialog from the given files and sizes it per the flags.
func (a *app) open(evePath, adamPath string, tab *symbol.Table, st *store.Store, handler dialog.Handler) (*dialog.Dialog, error) {
	opts := []dialog.Option{dialog.WithSettings(a.settings), dialog.WithTable(tab)}
	if st != nil {
		opts = append(opts, dialog.WithStore(st))
	}
	d, err := dialog.MakeFromFiles(evePath, adamPath, handler, opts...)
	if err != nil {
		return nil, err
	}
	if a.width > 0 || a.height > 0 {
		d.Resize(math32.Vec2(a.width, a.height))
	}
	return d, nil
}

func optionalArg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

func (a *app) layoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layout file.eve [file.adm]",
		Short: "Print the placements of the views of a dialog",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.open(args[0], optionalArg(args, 1), symbol.NewTable(), nil, nil)
			if err != nil {
				return err
			}
			defer d.Close()
			printPlacements(cmd.OutOrStdout(), d)
			return nil
		},
	}
	a.sizeFlags(cmd)
	return cmd
}

// printPlacements prints one line per visible view, indented by depth.
func printPlacements(w io.Writer, d *dialog.Dialog) {
	out := logx.Output(w)
	for _, p := range d.Placements() {
		depth := strings.Count(p.Path, "/") - 1
		fmt.Fprintf(w, "%s%s %v\n", strings.Repeat("    ", depth), logx.Color(out, nameColor, path.Base(p.Path)), p.Placement)
	}
}

func (a *app) printCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "print file.eve [file.adm]",
		Short: "Print the cells and views of a dialog as a layout declaration",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.open(args[0], optionalArg(args, 1), symbol.NewTable(), nil, nil)
			if err != nil {
				return err
			}
			defer d.Close()
			var buf strings.Builder
			if err := d.Builder.Print(&buf); err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			return highlighting.Write(w, logx.Output(w).Profile, buf.String(), a.settings.Highlighting)
		},
	}
}

func (a *app) runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run file.eve file.adm [event...]",
		Short: "Apply events to a dialog until it closes and print its result",
		Long: `Apply events to a dialog until it closes and print its result as YAML.
Events are written as click:path, enter:path=value or set:cell=value,
where paths are relative to the root view, such as row4/button1.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tab := symbol.NewTable()
			var events []dialog.Event
			for _, s := range args[2:] {
				e, err := dialog.ParseEvent(s, tab)
				if err != nil {
					return err
				}
				events = append(events, e)
			}
			st, err := a.openStore(tab)
			if err != nil {
				return err
			}
			if st != nil {
				defer st.Close()
			}
			d, err := a.open(args[0], args[1], tab, st, dialog.CloseAlways)
			if err != nil {
				return err
			}
			defer d.Close()
			res, err := d.Run(events)
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), tab, res)
		},
	}
	a.sizeFlags(cmd)
	return cmd
}

func printResult(w io.Writer, tab *symbol.Table, res dialog.Result) error {
	d := values.NewDict().
		Set(tab.Intern("action"), values.MakeSymbol(res.Action)).
		Set(tab.Intern("results"), values.MakeDict(res.Results))
	b, err := values.MarshalYAML(values.MakeDict(d))
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

func (a *app) watchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch file.eve [file.adm]",
		Short: "Print the placements of a dialog again whenever its files change",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			evePath, adamPath := args[0], optionalArg(args, 1)
			w, err := dialog.Watch(evePath, adamPath)
			if err != nil {
				return err
			}
			defer w.Close()
			a.relayout(cmd.OutOrStdout(), evePath, adamPath)
			for {
				select {
				case <-cmd.Context().Done():
					return nil
				case name, ok := <-w.Changes:
					if !ok {
						return nil
					}
					slog.Info("eve: reloading", "file", name)
					a.relayout(cmd.OutOrStdout(), evePath, adamPath)
				case err, ok := <-w.Errors:
					if !ok {
						return nil
					}
					errors.Log(err)
				}
			}
		},
	}
	a.sizeFlags(cmd)
	return cmd
}

// relayout remakes the dialog and prints its placements. Errors in
// the declarations are logged so that watching continues.
func (a *app) relayout(w io.Writer, evePath, adamPath string) {
	d, err := a.open(evePath, adamPath, symbol.NewTable(), nil, nil)
	if errors.Log(err) != nil {
		return
	}
	defer d.Close()
	fmt.Fprintln(w)
	printPlacements(w, d)
}

func (a *app) historyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history [dialog]",
		Short: "List the stored dialogs, or the closes of one dialog",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tab := symbol.NewTable()
			st, err := a.openStore(tab)
			if err != nil {
				return err
			}
			if st == nil {
				return errors.New("no store: use --store or set StorePath in the settings")
			}
			defer st.Close()
			w := cmd.OutOrStdout()
			if len(args) == 0 {
				names, err := st.Dialogs()
				if err != nil {
					return err
				}
				for _, n := range names {
					fmt.Fprintln(w, n)
				}
				return nil
			}
			entries, err := st.History(args[0])
			if err != nil {
				return err
			}
			for _, e := range entries {
				fmt.Fprintf(w, "%d %s %v\n", e.Seq, e.Action.Name(), e.Results)
			}
			return nil
		},
	}
}
