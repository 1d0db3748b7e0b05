// Command luckydock manages LuckyDock skin instances from the terminal:
// the entries on each dock, the dock's appearance, and the Rainmeter
// engine state that displays them.
//
// Usage:
//
//	luckydock list
//	luckydock add Notepad --app "C:\Windows\notepad.exe"
//	luckydock move Notepad up
//	luckydock style set --orientation horizontal --icon-size 64
//	luckydock instances create
//	luckydock refresh --all
//
// Every entry command accepts --instance/-i to pick the dock to operate
// on, by number ("2") or full name ("LuckyDock 2"). Without it the
// lowest numbered instance is used.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/7eventy7/luckydock/internal/buildinfo"
	"github.com/7eventy7/luckydock/internal/config"
	"github.com/7eventy7/luckydock/internal/dock"
	"github.com/7eventy7/luckydock/internal/editor"
	"github.com/7eventy7/luckydock/internal/engine"
	"github.com/7eventy7/luckydock/internal/filesys"
	"github.com/7eventy7/luckydock/internal/instances"
	"github.com/7eventy7/luckydock/internal/skin"
)

// app carries the wiring shared by every command: config, filesystem,
// skin store, and the instance manager. The engine client is built per
// command so each run picks up the freshest executable location.
type app struct {
	cfg      *config.Config
	fs       filesys.FileOps
	store    *skin.FileStore
	mgr      *instances.Manager
	selector string
}

// engine builds a client for the Rainmeter executable. Locate falls
// back to the bare binary name when nothing is installed; the failure
// then surfaces on the first bang instead of here.
func (a *app) engine() *engine.Client {
	exe, _ := engine.Locate(a.fs, a.cfg.Engine.Path)
	return engine.New(exe, a.cfg.Skins.Group, a.cfg.Engine.Timeout, a.cfg.Engine.RetryDelay)
}

func (a *app) resolve() (instances.Instance, error) {
	return a.mgr.Resolve(a.selector)
}

// editor opens the selected instance's skin file for editing.
func (a *app) editor() (*editor.Editor, error) {
	inst, err := a.resolve()
	if err != nil {
		return nil, err
	}
	return editor.New(a.store, a.engine(), inst)
}

// reportReload prints a warning when an edit was saved but the engine
// did not pick it up. The edit itself succeeded, so this never turns
// into a command error.
func (a *app) reportReload(res editor.Result) {
	if res.ReloadErr == nil {
		return
	}
	color.New(color.FgYellow).Printf("saved, but the dock was not reloaded: %v\n", res.ReloadErr)
}

func confirm() bool {
	color.New(color.FgHiWhite).Print("Are you sure? (y/yes/n/no): ")
	var response string
	fmt.Scanln(&response)
	switch strings.ToLower(strings.TrimSpace(response)) {
	case "y", "yes":
		return true
	}
	return false
}

func success(verb, subject string) {
	color.New(color.FgGreen, color.Bold).Printf("✓ %s: ", verb)
	color.New(color.FgHiWhite, color.Bold).Println(subject)
}

func headerColors(n int) []tablewriter.Colors {
	colors := make([]tablewriter.Colors, n)
	for i := range colors {
		colors[i] = tablewriter.Colors{tablewriter.Bold, tablewriter.FgHiCyanColor}
	}
	return colors
}

// parseRGB is the strict flag-input counterpart of dock.ParseRGB: a
// typo on the command line should be an error, not a silent fallback.
func parseRGB(s string) (dock.RGB, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return dock.RGB{}, fmt.Errorf("invalid color %q (want R,G,B)", s)
	}
	var vals [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 || n > 255 {
			return dock.RGB{}, fmt.Errorf("invalid color %q (want three values between 0 and 255)", s)
		}
		vals[i] = n
	}
	return dock.RGB{R: vals[0], G: vals[1], B: vals[2]}, nil
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func (a *app) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the entries on the dock",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ed, err := a.editor()
			if err != nil {
				return err
			}
			entries := ed.Entries()
			if len(entries) == 0 {
				color.New(color.FgYellow).Printf("%s has no entries. Add one with 'luckydock add'.\n", ed.Instance().Name)
				return nil
			}

			fmt.Println()
			color.New(color.Bold).Printf("ENTRIES IN %s:\n", strings.ToUpper(ed.Instance().Name))
			fmt.Println()

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"#", "Name", "Type", "Application", "Icon"})
			table.SetHeaderColor(headerColors(5)...)
			table.SetBorder(false)
			table.SetColumnColor(
				tablewriter.Colors{tablewriter.FgHiWhiteColor},
				tablewriter.Colors{tablewriter.FgHiYellowColor},
				tablewriter.Colors{},
				tablewriter.Colors{},
				tablewriter.Colors{},
			)
			for i, e := range entries {
				kind := "app"
				if e.Separator {
					kind = "separator"
				}
				table.Append([]string{strconv.Itoa(i + 1), e.Name, kind, e.AppPath, e.IconPath})
			}
			table.Render()
			return nil
		},
	}
}

func (a *app) newAddCmd() *cobra.Command {
	var appPath, iconPath string
	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add an entry to the dock",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ed, err := a.editor()
			if err != nil {
				return err
			}
			var name string
			if len(args) == 1 {
				name = args[0]
			}
			res, err := ed.Add(cmd.Context(), name, appPath, iconPath)
			if err != nil {
				return err
			}
			success("Added", res.Entry.Name)
			a.reportReload(res)
			return nil
		},
	}
	cmd.Flags().StringVar(&appPath, "app", "", "path or command the entry launches")
	cmd.Flags().StringVar(&iconPath, "icon", "", "path to the entry's icon image")
	return cmd
}

func (a *app) newAddSepCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add-sep",
		Short: "Add a separator line to the dock",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ed, err := a.editor()
			if err != nil {
				return err
			}
			res, err := ed.AddSeparator(cmd.Context())
			if err != nil {
				return err
			}
			success("Added", res.Entry.Name)
			a.reportReload(res)
			return nil
		},
	}
}

func (a *app) newSetCmd() *cobra.Command {
	var name, appPath, iconPath string
	cmd := &cobra.Command{
		Use:   "set <entry>",
		Short: "Change an entry's name, command, or icon",
		Long: `Change an entry's name, command, or icon. The entry is picked by its
position on the dock ("2") or by name. Only the fields you pass change;
everything else is left alone.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ed, err := a.editor()
			if err != nil {
				return err
			}
			var upd editor.Update
			if cmd.Flags().Changed("name") {
				upd.Name = &name
			}
			if cmd.Flags().Changed("app") {
				upd.AppPath = &appPath
			}
			if cmd.Flags().Changed("icon") {
				upd.IconPath = &iconPath
			}
			if upd.Name == nil && upd.AppPath == nil && upd.IconPath == nil {
				return fmt.Errorf("nothing to change: pass at least one of --name, --app, --icon")
			}
			res, err := ed.UpdateEntry(cmd.Context(), args[0], upd)
			if err != nil {
				return err
			}
			success("Updated", res.Entry.Name)
			a.reportReload(res)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "new display name")
	cmd.Flags().StringVar(&appPath, "app", "", "new path or command to launch")
	cmd.Flags().StringVar(&iconPath, "icon", "", "new icon image path")
	return cmd
}

func (a *app) newRmCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "rm <entry>",
		Short: "Remove an entry from the dock",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ed, err := a.editor()
			if err != nil {
				return err
			}
			idx, err := ed.Find(args[0])
			if err != nil {
				return err
			}
			target := ed.Entries()[idx]

			if !yes {
				fmt.Println()
				color.New(color.FgHiRed, color.Bold).Print("WARNING: ")
				color.New(color.FgYellow).Print("This removes ")
				color.New(color.FgHiYellow, color.Bold).Print(target.Name)
				color.New(color.FgYellow).Printf(" from %s.\n", ed.Instance().Name)
				fmt.Println()
				if !confirm() {
					return fmt.Errorf("operation aborted")
				}
			}

			res, err := ed.Remove(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			success("Removed", res.Entry.Name)
			a.reportReload(res)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

func (a *app) newMoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move <entry> <up|down>",
		Short: "Move an entry one position up or down",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := editor.ParseDirection(args[1])
			if err != nil {
				return err
			}
			ed, err := a.editor()
			if err != nil {
				return err
			}
			res, err := ed.Move(cmd.Context(), args[0], dir)
			if err != nil {
				return err
			}
			if !res.Moved {
				color.New(color.FgYellow).Printf("%s is already at the edge of the dock\n", res.Entry.Name)
				return nil
			}
			success("Moved", fmt.Sprintf("%s (now position %d)", res.Entry.Name, res.Index+1))
			a.reportReload(res)
			return nil
		},
	}
}

func (a *app) newStyleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "style",
		Short: "Show or change the dock's appearance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ed, err := a.editor()
			if err != nil {
				return err
			}
			st := ed.Settings()

			fmt.Println()
			color.New(color.Bold).Printf("STYLE OF %s:\n", strings.ToUpper(ed.Instance().Name))
			fmt.Println()

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"Setting", "Value"})
			table.SetHeaderColor(headerColors(2)...)
			table.SetBorder(false)
			table.SetColumnColor(
				tablewriter.Colors{tablewriter.FgHiYellowColor},
				tablewriter.Colors{tablewriter.FgHiWhiteColor},
			)
			rows := [][]string{
				{"icon-size", strconv.Itoa(st.IconSize)},
				{"corner-radius", strconv.Itoa(st.CornerRadius)},
				{"bg-color", st.BgColor.String()},
				{"bg-alpha", strconv.Itoa(st.BgAlpha)},
				{"orientation", strings.ToLower(string(st.Orientation))},
				{"double-click", onOff(st.DoubleClick)},
				{"tooltips", onOff(st.ToolTipOn)},
				{"tooltip-font", st.ToolTipFont},
				{"tooltip-size", strconv.Itoa(st.ToolTipSize)},
				{"tooltip-delay", strconv.Itoa(st.ToolTipDelay)},
			}
			for _, row := range rows {
				table.Append(row)
			}
			table.Render()
			return nil
		},
	}
	cmd.AddCommand(a.newStyleSetCmd())
	return cmd
}

func (a *app) newStyleSetCmd() *cobra.Command {
	var (
		iconSize, cornerRadius, bgAlpha   int
		tooltipSize, tooltipDelay         int
		bgColor, orientation, tooltipFont string
		doubleClick, tooltips             bool
	)
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change appearance settings",
		Long: `Change appearance settings. Only the flags you pass change; numeric
values outside their allowed range are clamped to it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ed, err := a.editor()
			if err != nil {
				return err
			}
			st := ed.Settings()
			changed := false
			ch := func(name string) bool {
				if cmd.Flags().Changed(name) {
					changed = true
					return true
				}
				return false
			}
			if ch("icon-size") {
				st.IconSize = iconSize
			}
			if ch("corner-radius") {
				st.CornerRadius = cornerRadius
			}
			if ch("bg-color") {
				rgb, err := parseRGB(bgColor)
				if err != nil {
					return err
				}
				st.BgColor = rgb
			}
			if ch("bg-alpha") {
				st.BgAlpha = bgAlpha
			}
			if ch("orientation") {
				switch strings.ToLower(orientation) {
				case "vertical":
					st.Orientation = dock.Vertical
				case "horizontal":
					st.Orientation = dock.Horizontal
				default:
					return fmt.Errorf("invalid orientation %q (want vertical or horizontal)", orientation)
				}
			}
			if ch("double-click") {
				st.DoubleClick = doubleClick
			}
			if ch("tooltips") {
				st.ToolTipOn = tooltips
			}
			if ch("tooltip-font") {
				st.ToolTipFont = tooltipFont
			}
			if ch("tooltip-size") {
				st.ToolTipSize = tooltipSize
			}
			if ch("tooltip-delay") {
				st.ToolTipDelay = tooltipDelay
			}
			if !changed {
				return fmt.Errorf("nothing to change: pass at least one style flag")
			}
			res, err := ed.UpdateSettings(cmd.Context(), st)
			if err != nil {
				return err
			}
			success("Updated", "dock style")
			a.reportReload(res)
			return nil
		},
	}
	cmd.Flags().IntVar(&iconSize, "icon-size", 0, "icon size in pixels")
	cmd.Flags().IntVar(&cornerRadius, "corner-radius", 0, "background corner radius in pixels")
	cmd.Flags().StringVar(&bgColor, "bg-color", "", "background color as R,G,B")
	cmd.Flags().IntVar(&bgAlpha, "bg-alpha", 0, "background opacity, 0 to 255")
	cmd.Flags().StringVar(&orientation, "orientation", "", "dock direction: vertical or horizontal")
	cmd.Flags().BoolVar(&doubleClick, "double-click", false, "require a double click to launch entries")
	cmd.Flags().BoolVar(&tooltips, "tooltips", false, "show tooltips when hovering entries")
	cmd.Flags().StringVar(&tooltipFont, "tooltip-font", "", "tooltip font face")
	cmd.Flags().IntVar(&tooltipSize, "tooltip-size", 0, "tooltip font size")
	cmd.Flags().IntVar(&tooltipDelay, "tooltip-delay", 0, "tooltip delay in milliseconds")
	return cmd
}

func (a *app) newInstancesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "instances",
		Aliases: []string{"instance"},
		Short:   "Manage dock instances",
	}
	cmd.AddCommand(a.newInstancesListCmd(), a.newInstancesCreateCmd(), a.newInstancesRmCmd())
	return cmd
}

func (a *app) newInstancesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the dock instances in the skin group",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := a.mgr.List()
			if err != nil {
				return err
			}
			if len(list) == 0 {
				color.New(color.FgYellow).Printf("No instances under %s. Create one with 'luckydock instances create'.\n", a.mgr.GroupDir())
				return nil
			}

			fmt.Println()
			color.New(color.Bold).Println("DOCK INSTANCES:")
			fmt.Println()

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"#", "Name", "Entries", "Folder"})
			table.SetHeaderColor(headerColors(4)...)
			table.SetBorder(false)
			table.SetColumnColor(
				tablewriter.Colors{tablewriter.FgHiWhiteColor},
				tablewriter.Colors{tablewriter.FgHiYellowColor},
				tablewriter.Colors{},
				tablewriter.Colors{},
			)
			for _, inst := range list {
				entries := "?"
				if doc, err := a.store.Load(inst.File); err == nil {
					entries = strconv.Itoa(len(doc.Entries))
				}
				table.Append([]string{strconv.Itoa(inst.Number), inst.Name, entries, inst.Dir})
			}
			table.Render()
			return nil
		},
	}
}

func (a *app) newInstancesCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create [number]",
		Short: "Create a new dock instance",
		Long: `Create a new dock instance with default style and no entries. Without
a number the lowest free one is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			number := 0
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil || n < 1 {
					return fmt.Errorf("invalid instance number %q (want a positive number)", args[0])
				}
				number = n
			}
			inst, err := a.mgr.Create(number)
			if err != nil {
				return err
			}
			success("Created", inst.Name)
			fmt.Printf("Load it with 'luckydock activate -i %d'\n", inst.Number)
			return nil
		},
	}
}

func (a *app) newInstancesRmCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "rm <instance>",
		Short: "Delete a dock instance and its files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inst, err := a.mgr.Resolve(args[0])
			if err != nil {
				return err
			}

			if !yes {
				fmt.Println()
				color.New(color.FgHiRed, color.Bold).Print("WARNING: ")
				color.New(color.FgYellow).Print("This permanently deletes ")
				color.New(color.FgHiYellow, color.Bold).Print(inst.Name)
				color.New(color.FgYellow).Println(" and every icon it owns.")
				fmt.Println()
				if !confirm() {
					return fmt.Errorf("operation aborted")
				}
			}

			// Unload first so the engine is not holding the files we
			// are about to delete. A stopped engine makes this fail,
			// which is fine.
			if err := a.engine().Unload(cmd.Context(), inst.Name); err != nil {
				color.New(color.FgYellow).Printf("could not unload %s first: %v\n", inst.Name, err)
			}
			time.Sleep(a.cfg.Engine.SettleDelay)

			if err := a.mgr.Delete(inst); err != nil {
				return err
			}
			success("Removed", inst.Name)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

func (a *app) newActivateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "activate",
		Short: "Load the selected instance in the engine",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inst, err := a.resolve()
			if err != nil {
				return err
			}
			if err := a.engine().Activate(cmd.Context(), inst.Name, filepath.Base(inst.File)); err != nil {
				return err
			}
			success("Activated", inst.Name)
			return nil
		},
	}
}

func (a *app) newRefreshCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Make the engine re-read the selected instance",
		RunE: func(cmd *cobra.Command, args []string) error {
			eng := a.engine()
			if all {
				list, err := a.mgr.List()
				if err != nil {
					return err
				}
				if len(list) == 0 {
					color.New(color.FgYellow).Println("No instances to refresh.")
					return nil
				}
				names := make([]string, len(list))
				for i, inst := range list {
					names[i] = inst.Name
				}
				if err := eng.RefreshAll(cmd.Context(), names, filepath.Base(list[0].File)); err != nil {
					return err
				}
				success("Refreshed", fmt.Sprintf("%d instances", len(names)))
				return nil
			}

			inst, err := a.resolve()
			if err != nil {
				return err
			}
			if err := eng.Reload(cmd.Context(), inst.Name, filepath.Base(inst.File)); err != nil {
				return err
			}
			success("Refreshed", inst.Name)
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "refresh every instance in the group")
	return cmd
}

func (a *app) newUnloadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unload",
		Short: "Unload the selected instance from the engine",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inst, err := a.resolve()
			if err != nil {
				return err
			}
			if err := a.engine().Unload(cmd.Context(), inst.Name); err != nil {
				return err
			}
			success("Unloaded", inst.Name)
			return nil
		},
	}
}

func (a *app) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show engine and instance status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println()
			color.New(color.Bold).Println("LUCKYDOCK STATUS:")
			fmt.Println()

			row := func(k string) {
				color.New(color.FgHiCyan).Printf("  %-12s", k)
			}

			row("engine")
			exe, err := engine.Locate(a.fs, a.cfg.Engine.Path)
			if err != nil {
				color.New(color.FgHiRed).Printf("not found (%v)\n", err)
			} else {
				color.New(color.FgHiWhite).Println(exe)
			}

			row("running")
			if a.engine().Running() {
				color.New(color.FgGreen, color.Bold).Println("yes")
			} else {
				color.New(color.FgHiRed).Println("no")
			}

			row("skins")
			color.New(color.FgHiWhite).Println(a.mgr.GroupDir())

			row("instances")
			list, err := a.mgr.List()
			if err != nil {
				color.New(color.FgHiRed).Printf("unreadable (%v)\n", err)
				return nil
			}
			color.New(color.FgHiWhite).Println(strconv.Itoa(len(list)))

			row("selected")
			inst, err := a.resolve()
			if err != nil {
				color.New(color.FgYellow).Println(err.Error())
				return nil
			}
			if doc, err := a.store.Load(inst.File); err != nil {
				color.New(color.FgYellow).Printf("%s (unreadable: %v)\n", inst.Name, err)
			} else {
				color.New(color.FgHiWhite).Printf("%s (%d entries)\n", inst.Name, len(doc.Entries))
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			color.New(color.FgHiCyan, color.Bold).Print("luckydock ")
			color.New(color.FgHiWhite).Println(buildinfo.Version)
			color.New(color.FgHiBlack).Printf("commit %s\n", buildinfo.Commit)
		},
	}
}

func main() {
	cfg, err := config.New().Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	a := &app{cfg: cfg, fs: filesys.OS()}
	a.store = skin.NewStore(a.fs, cfg.Backups.Keep)
	a.mgr = instances.NewManager(a.fs, cfg.SkinsRoot(), cfg.Skins.Group)

	root := &cobra.Command{
		Use:   "luckydock",
		Short: "Manage LuckyDock skins from the terminal",
		Long: `luckydock edits LuckyDock skin instances: the entries on each dock,
the dock's appearance, and the Rainmeter engine state that shows them.

Docks are stored as plain skin files, so everything here works whether
or not the engine is running; reloads are attempted and reported but
never block an edit.`,
	}
	root.PersistentFlags().StringVarP(&a.selector, "instance", "i", "",
		"instance to operate on, by number or name (default: lowest numbered)")

	root.AddCommand(
		a.newListCmd(),
		a.newAddCmd(),
		a.newAddSepCmd(),
		a.newSetCmd(),
		a.newRmCmd(),
		a.newMoveCmd(),
		a.newStyleCmd(),
		a.newInstancesCmd(),
		a.newActivateCmd(),
		a.newRefreshCmd(),
		a.newUnloadCmd(),
		a.newStatusCmd(),
		newVersionCmd(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
