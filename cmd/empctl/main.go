package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/pterm/pterm"
	flag "github.com/spf13/pflag"

	"staffdesk/internal/client"
	"staffdesk/internal/domain/employees"
	"staffdesk/internal/view"
)

const usage = `empctl manages employees through the staffdesk API.

Usage:
  empctl [--api URL] <command> [flags]

Commands:
  list              list employees (--search, --sort, --desc)
  show <id>         show one employee
  add               create an employee from field flags
  edit <id>         update an employee; unset flags keep their value
  delete <id>       delete an employee (--yes skips the prompt)
`

type ptermNotifier struct{}

func (ptermNotifier) Success(message string) { pterm.Success.Println(message) }
func (ptermNotifier) Error(message string)   { pterm.Error.Println(message) }

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		if !errors.Is(err, errReported) {
			pterm.Error.Println(err)
		}
		os.Exit(1)
	}
}

// errReported marks failures the dashboard already showed to the user.
var errReported = errors.New("reported")

func run(ctx context.Context, args []string) error {
	global := flag.NewFlagSet("empctl", flag.ContinueOnError)
	global.SetInterspersed(false)
	apiURL := global.String("api", envOr("EMPCTL_API_URL", "http://localhost:5000"), "base URL of the staffdesk API")
	global.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	if err := global.Parse(args); err != nil {
		return err
	}
	if global.NArg() == 0 {
		global.Usage()
		return errors.New("missing command")
	}

	dash := client.NewDashboard(client.New(*apiURL), ptermNotifier{})
	command, rest := global.Arg(0), global.Args()[1:]
	switch command {
	case "list":
		return runList(ctx, dash, rest)
	case "show":
		return runShow(ctx, dash, rest)
	case "add":
		return runAdd(ctx, dash, rest)
	case "edit":
		return runEdit(ctx, dash, rest)
	case "delete":
		return runDelete(ctx, dash, rest)
	case "help":
		global.Usage()
		return nil
	default:
		global.Usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func runList(ctx context.Context, dash *client.Dashboard, args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	search := fs.StringP("search", "s", "", "filter by name, email, job or id")
	sortKey := fs.String("sort", view.KeyFirstName, "column to sort by, e.g. SALARY")
	desc := fs.Bool("desc", false, "sort descending")
	if err := fs.Parse(args); err != nil {
		return err
	}
	key := strings.ToUpper(*sortKey)
	if !view.IsSortKey(key) {
		return fmt.Errorf("cannot sort by %q", *sortKey)
	}

	if err := dash.Refresh(ctx); err != nil {
		return errReported
	}
	state := dash.State()
	state.SetSearch(*search)
	state.SetSort(view.SortConfig{Key: key, Desc: *desc})

	visible := state.Visible()
	if len(visible) == 0 {
		pterm.Info.Println("No employees found")
		return nil
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableRows(visible)).Render(); err != nil {
		return err
	}
	pterm.Info.Printfln("%d of %d employees, sorted by %s %s", len(visible), state.Len(), key, state.SortConfig().Direction())
	return nil
}

func runShow(ctx context.Context, dash *client.Dashboard, args []string) error {
	id, err := parseIDArg(args)
	if err != nil {
		return err
	}
	if err := dash.Refresh(ctx); err != nil {
		return errReported
	}
	emp, ok := dash.State().Find(id)
	if !ok {
		return fmt.Errorf("employee %s not found", id)
	}

	pterm.DefaultSection.Println(emp.DisplayName())
	return pterm.DefaultTable.WithData(detailRows(emp)).Render()
}

func runAdd(ctx context.Context, dash *client.Dashboard, args []string) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	form := bindForm(fs, true)
	if err := fs.Parse(args); err != nil {
		return err
	}
	emp, err := form.employee(fs, employees.Employee{})
	if err != nil {
		return err
	}
	if _, err := dash.Add(ctx, emp); err != nil {
		return errReported
	}
	return nil
}

func runEdit(ctx context.Context, dash *client.Dashboard, args []string) error {
	fs := flag.NewFlagSet("edit", flag.ContinueOnError)
	form := bindForm(fs, false)
	if err := fs.Parse(args); err != nil {
		return err
	}
	id, err := parseIDArg(fs.Args())
	if err != nil {
		return err
	}

	if err := dash.Refresh(ctx); err != nil {
		return errReported
	}
	current, ok := dash.State().Find(id)
	if !ok {
		return fmt.Errorf("employee %s not found", id)
	}
	emp, err := form.employee(fs, current)
	if err != nil {
		return err
	}
	if err := dash.Edit(ctx, id, emp); err != nil {
		return errReported
	}
	return nil
}

func runDelete(ctx context.Context, dash *client.Dashboard, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ContinueOnError)
	yes := fs.BoolP("yes", "y", false, "delete without asking")
	if err := fs.Parse(args); err != nil {
		return err
	}
	id, err := parseIDArg(fs.Args())
	if err != nil {
		return err
	}

	if !*yes {
		confirmed, err := pterm.DefaultInteractiveConfirm.
			WithDefaultText(fmt.Sprintf("Are you sure you want to delete employee %s?", id)).
			Show()
		if err != nil {
			return err
		}
		if !confirmed {
			pterm.Info.Println("Delete cancelled")
			return nil
		}
	}
	if err := dash.Remove(ctx, id); err != nil {
		return errReported
	}
	return nil
}

func parseIDArg(args []string) (employees.ID, error) {
	if len(args) != 1 {
		return 0, errors.New("expected exactly one employee id")
	}
	id, err := parseID(args[0])
	if err != nil {
		return 0, err
	}
	return id, nil
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
