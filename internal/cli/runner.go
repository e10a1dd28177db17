package cli

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Makepad-fr/inventar/internal/inventory"
	"github.com/Makepad-fr/inventar/internal/model"
	"github.com/Makepad-fr/inventar/internal/prompt"
	"github.com/Makepad-fr/inventar/internal/ui"
	"github.com/Makepad-fr/inventar/internal/view"
)

// App bundles what the subcommands work on.
type App struct {
	Inv    *inventory.Inventory
	Prompt prompt.Prompter
	Out    io.Writer
	Err    io.Writer
	// Interactive runs the full-screen UI; tui.Run in production.
	Interactive func(*inventory.Inventory) error
}

// IsInteractive reports whether args start the full-screen UI.
func IsInteractive(args []string) bool {
	return len(args) == 0 || args[0] == "tui" || args[0] == "ui"
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, app *App) int {
	if IsInteractive(args) {
		return doInteractive(app)
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(app.Out)
		return 0

	case "lists", "ls":
		return doLists(app)

	case "show":
		if len(a) != 1 {
			return usage(app, "inventar show <list>")
		}
		return doShow(app, a[0])

	case "new":
		return doNew(app, strings.Join(a, " "))

	case "rename":
		if len(a) == 0 {
			return usage(app, "inventar rename <list> [name...]")
		}
		return doRename(app, a[0], strings.Join(a[1:], " "))

	case "rm":
		fs := flag.NewFlagSet("rm", flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		yes := fs.Bool("y", false, "delete without asking")
		if err := fs.Parse(a); err != nil || fs.NArg() != 1 {
			return usage(app, "inventar rm [-y] <list>")
		}
		return doRemove(app, fs.Arg(0), *yes)

	case "add":
		if len(a) < 3 {
			return usage(app, "inventar add <list> <count> <name...>")
		}
		return doAdd(app, a[0], a[1], strings.Join(a[2:], " "))

	case "take":
		if len(a) != 2 {
			return usage(app, "inventar take <list> <item>")
		}
		return doTake(app, a[0], a[1])

	case "set":
		if len(a) != 3 {
			return usage(app, "inventar set <list> <item> <count>")
		}
		return doSet(app, a[0], a[1], a[2])
	}

	ui.Fail(app.Err, "unknown subcommand: "+cmd)
	fmt.Fprintln(app.Err)
	PrintHelp(app.Err)
	return 2
}

func PrintHelp(w io.Writer) {
	fmt.Fprintf(w, `inventar - count what you have, room by room

Usage:
  inventar [flags] <subcommand> [args]

Subcommands:
  tui                          Interactive overview (default)
  lists                        Show every list with counts
  show <list>                  Show the items of a list
  new [name...]                Create a list (asks for a name if none given)
  rename <list> [name...]      Rename a list (asks if no name given)
  rm [-y] <list>               Delete a list and its items
  add <list> <count> <name...> Add an item (count of at least 1)
  take <list> <item>           Take one piece; the item goes away at zero
  set <list> <item> <count>    Set a count directly; zero keeps the item

Lists and items are addressed by 1-based index, id or name.

Examples:
  inventar new Garage
  inventar add Garage 40 Schrauben
  inventar take Garage Schrauben
  inventar set Küche 2 0
`)
}

func usage(app *App, msg string) int {
	ui.Fail(app.Err, "usage: "+msg)
	return 2
}

// -------------- subcommand impls ----------------

func doInteractive(app *App) int {
	if app.Interactive == nil {
		ui.Fail(app.Err, "interactive mode is not available")
		return 1
	}
	if err := app.Interactive(app.Inv); err != nil {
		ui.Fail(app.Err, "tui: "+err.Error())
		return 1
	}
	return 0
}

func doLists(app *App) int {
	ui.Panel(app.Out, ui.OverviewLines(view.Overview(app.Inv.Lists())))
	return 0
}

func doShow(app *App, ref string) int {
	l, code := findList(app, ref)
	if code != 0 {
		return code
	}
	ui.Panel(app.Out, ui.DetailLines(view.Detail(l)))
	return 0
}

func doNew(app *App, name string) int {
	if strings.TrimSpace(name) == "" {
		answer, ok := app.Prompt.Ask(view.NewListPrompt, "")
		if !ok {
			return 0
		}
		name = answer
	}
	l, ok := app.Inv.CreateList(name)
	if !ok {
		// a blank name simply creates nothing
		return 0
	}
	ui.OK(app.Out, fmt.Sprintf("created %q (%s)", l.Name, l.ID))
	return 0
}

func doRename(app *App, ref, name string) int {
	l, code := findList(app, ref)
	if code != 0 {
		return code
	}
	if strings.TrimSpace(name) == "" {
		answer, ok := app.Prompt.Ask(view.RenamePrompt, l.Name)
		if !ok {
			return 0
		}
		name = answer
	}
	app.Inv.RenameList(l.ID, name)
	if renamed, _ := app.Inv.List(l.ID); renamed.Name != l.Name {
		ui.OK(app.Out, "renamed to "+strconv.Quote(renamed.Name))
	}
	return 0
}

func doRemove(app *App, ref string, yes bool) int {
	l, code := findList(app, ref)
	if code != 0 {
		return code
	}
	if !yes && !app.Prompt.Confirm(view.DeletePrompt(l.Name)) {
		return 0
	}
	app.Inv.DeleteList(l.ID)
	ui.OK(app.Out, "removed "+strconv.Quote(l.Name))
	return 0
}

func doAdd(app *App, ref, rawCount, name string) int {
	l, code := findList(app, ref)
	if code != 0 {
		return code
	}
	it, ok := app.Inv.AddItem(l.ID, name, model.ParseCount(rawCount))
	if !ok {
		return 0
	}
	ui.OK(app.Out, fmt.Sprintf("added %q × %d", it.Name, it.Count))
	return 0
}

func doTake(app *App, listRef, itemRef string) int {
	l, it, code := findItem(app, listRef, itemRef)
	if code != 0 {
		return code
	}
	app.Inv.DecrementItem(l.ID, it.ID)
	after, _ := app.Inv.List(l.ID)
	if i := after.FindItem(it.ID); i >= 0 {
		ui.OK(app.Out, fmt.Sprintf("%s: %d", it.Name, after.Items[i].Count))
	} else {
		ui.OK(app.Out, fmt.Sprintf("%s: used up, removed", it.Name))
	}
	return 0
}

func doSet(app *App, listRef, itemRef, raw string) int {
	l, it, code := findItem(app, listRef, itemRef)
	if code != 0 {
		return code
	}
	app.Inv.SetItemCount(l.ID, it.ID, model.ParseCount(raw), false)
	after, _ := app.Inv.List(l.ID)
	ui.OK(app.Out, fmt.Sprintf("%s: %d", it.Name, after.Items[after.FindItem(it.ID)].Count))
	return 0
}

// -------------- lookup helpers --------------

func findList(app *App, ref string) (model.List, int) {
	lists := app.Inv.Lists()
	if i, ok := resolve(ref, len(lists), func(i int) (string, string) { return lists[i].ID, lists[i].Name }); ok {
		return lists[i], 0
	}
	ui.Fail(app.Err, fmt.Sprintf("no such list: %s (have %d)", ref, len(lists)))
	fmt.Fprintln(app.Err, ui.Current().Muted.Render("Hint: run `inventar lists` to see valid lists"))
	return model.List{}, 2
}

func findItem(app *App, listRef, itemRef string) (model.List, model.Item, int) {
	l, code := findList(app, listRef)
	if code != 0 {
		return l, model.Item{}, code
	}
	if i, ok := resolve(itemRef, len(l.Items), func(i int) (string, string) { return l.Items[i].ID, l.Items[i].Name }); ok {
		return l, l.Items[i], 0
	}
	ui.Fail(app.Err, fmt.Sprintf("no such item in %s: %s", l.Name, itemRef))
	fmt.Fprintln(app.Err, ui.Current().Muted.Render("Hint: run `inventar show "+listRef+"` to see valid items"))
	return l, model.Item{}, 2
}

// resolve matches ref against a 1-based index first, then an id, then a
// case-insensitive name.
func resolve(ref string, n int, at func(int) (id, name string)) (int, bool) {
	if idx, err := strconv.Atoi(ref); err == nil && idx >= 1 && idx <= n {
		return idx - 1, true
	}
	for i := 0; i < n; i++ {
		if id, _ := at(i); id == ref {
			return i, true
		}
	}
	for i := 0; i < n; i++ {
		if _, name := at(i); strings.EqualFold(name, strings.TrimSpace(ref)) {
			return i, true
		}
	}
	return -1, false
}
