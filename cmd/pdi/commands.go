package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/meupdi/pdi"
	"github.com/meupdi/pdi/auth"
	"github.com/meupdi/pdi/plan"
)

var errUsage = errors.New("usage")

// env is what every command runs against.
type env struct {
	app *pdi.App
	in  *bufio.Reader
	out io.Writer
}

type command struct {
	name  string
	args  string
	about string
	run   func(ctx context.Context, e *env, args []string) error
}

var commands = []command{
	{"login", "[-email E] [-password P]", "sign in and store the session", runLogin},
	{"register", "[-nickname N] [-email E] [-password P]", "create an account", runRegister},
	{"logout", "", "end the session", runLogout},
	{"status", "", "show who is signed in", runStatus},
	{"refresh", "", "renew the session now", runRefresh},
	{"plans", "", "list your plans", runPlans},
	{"new", "[-status S] <name>", "create a plan", runNew},
	{"show", "[-json] <id>", "print a plan as an outline", runShow},
	{"rename", "<id> <name>", "rename a plan", runRename},
	{"delete", "<id>", "delete a plan", runDelete},
	{"chat", "<id> <message>", "send a message to the plan assistant", runChat},
	{"history", "<id>", "show a plan's conversation", runHistory},
	{"mindmap", "<id>", "draw a plan's mind map", runMindMap},
	{"doctor", "", "check the API and credential store", runDoctor},
}

func lookup(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

func usage(w io.Writer) {
	fmt.Fprintln(w, titleStyle.Render("pdi")+" - personal development plans from the terminal")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "usage: pdi <command> [arguments]")
	fmt.Fprintln(w)
	for _, c := range commands {
		fmt.Fprintf(w, "  %-9s %-38s %s\n", c.name, c.args, mutedStyle.Render(c.about))
	}
}

func newFlags(name string, out io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	return fs
}

// prompt returns value, or reads a line from the terminal when value is empty.
func (e *env) prompt(label, value string) (string, error) {
	if value != "" {
		return value, nil
	}
	fmt.Fprintf(e.out, "%s: ", label)
	line, err := e.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func planID(args []string, n int) (uuid.UUID, error) {
	if len(args) < n {
		return uuid.Nil, errUsage
	}
	id, err := uuid.Parse(args[0])
	if err != nil {
		return uuid.Nil, plan.ErrInvalidID
	}
	return id, nil
}

func runLogin(ctx context.Context, e *env, args []string) error {
	fs := newFlags("login", e.out)
	email := fs.String("email", os.Getenv("PDI_EMAIL"), "account email")
	password := fs.String("password", os.Getenv("PDI_PASSWORD"), "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var creds auth.Credentials
	var err error
	if creds.Email, err = e.prompt("email", *email); err != nil {
		return err
	}
	if creds.Password, err = e.prompt("password", *password); err != nil {
		return err
	}

	if _, err := e.app.Auth().Login(ctx, creds); err != nil {
		return err
	}
	fmt.Fprintln(e.out, okStyle.Render("signed in"))
	return nil
}

func runRegister(ctx context.Context, e *env, args []string) error {
	fs := newFlags("register", e.out)
	nickname := fs.String("nickname", "", "display name")
	email := fs.String("email", os.Getenv("PDI_EMAIL"), "account email")
	password := fs.String("password", os.Getenv("PDI_PASSWORD"), "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var in auth.RegisterInput
	var err error
	if in.Nickname, err = e.prompt("nickname", *nickname); err != nil {
		return err
	}
	if in.Email, err = e.prompt("email", *email); err != nil {
		return err
	}
	if in.Password, err = e.prompt("password", *password); err != nil {
		return err
	}

	res, err := e.app.Auth().Register(ctx, in)
	if err != nil {
		return err
	}
	if res.Token != "" {
		fmt.Fprintln(e.out, okStyle.Render("account created, you are signed in"))
		return nil
	}
	fmt.Fprintln(e.out, okStyle.Render("account created, sign in with: pdi login"))
	return nil
}

func runLogout(ctx context.Context, e *env, _ []string) error {
	if err := e.app.Auth().Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(e.out, "signed out")
	return nil
}

func runStatus(ctx context.Context, e *env, _ []string) error {
	if !e.app.Client().UsesToken() {
		if e.app.Auth().Check(ctx) {
			fmt.Fprintln(e.out, okStyle.Render("signed in"))
			return nil
		}
		fmt.Fprintln(e.out, warnStyle.Render("not signed in"))
		return nil
	}

	if !e.app.Sessions().IsAuthenticated(ctx) {
		fmt.Fprintln(e.out, warnStyle.Render("not signed in"))
		return nil
	}
	user, err := e.app.Auth().Me(ctx)
	if err != nil {
		fmt.Fprintln(e.out, okStyle.Render("signed in"))
		return nil
	}
	fmt.Fprintf(e.out, "%s as %s %s\n", okStyle.Render("signed in"), user.Nickname, mutedStyle.Render("<"+user.Email+">"))
	return nil
}

func runRefresh(ctx context.Context, e *env, _ []string) error {
	if err := e.app.Auth().Refresh(ctx); err != nil {
		return err
	}
	fmt.Fprintln(e.out, okStyle.Render("session renewed"))
	return nil
}

func runPlans(ctx context.Context, e *env, _ []string) error {
	plans, err := e.app.Plans().List(ctx)
	if err != nil {
		return err
	}
	renderPlans(e.out, plans)
	return nil
}

func runNew(ctx context.Context, e *env, args []string) error {
	fs := newFlags("new", e.out)
	status := fs.String("status", string(plan.StatusDraft), "initial status")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return errUsage
	}

	p, err := e.app.Plans().Create(ctx, strings.Join(fs.Args(), " "), plan.Status(strings.ToUpper(*status)))
	if err != nil {
		return err
	}
	fmt.Fprintf(e.out, "%s %s\n", okStyle.Render("created"), p.ID)
	return nil
}

func runShow(ctx context.Context, e *env, args []string) error {
	fs := newFlags("show", e.out)
	asJSON := fs.Bool("json", false, "print the raw plan")
	if err := fs.Parse(args); err != nil {
		return err
	}
	id, err := planID(fs.Args(), 1)
	if err != nil {
		return err
	}

	p, err := e.app.Plans().Get(ctx, id)
	if err != nil {
		return err
	}
	if *asJSON {
		enc := json.NewEncoder(e.out)
		enc.SetIndent("", "  ")
		return enc.Encode(p)
	}

	content, err := p.Content()
	if err != nil {
		return err
	}
	return plan.Outline(e.out, p.Name, content)
}

func runRename(ctx context.Context, e *env, args []string) error {
	id, err := planID(args, 2)
	if err != nil {
		return err
	}
	p, err := e.app.Plans().Rename(ctx, id, strings.Join(args[1:], " "))
	if err != nil {
		return err
	}
	fmt.Fprintf(e.out, "%s %s\n", okStyle.Render("renamed to"), p.Name)
	return nil
}

func runDelete(ctx context.Context, e *env, args []string) error {
	id, err := planID(args, 1)
	if err != nil {
		return err
	}
	if err := e.app.Plans().Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(e.out, "deleted")
	return nil
}

func runChat(ctx context.Context, e *env, args []string) error {
	id, err := planID(args, 2)
	if err != nil {
		return err
	}
	ex, err := e.app.Chat().Send(ctx, id, strings.Join(args[1:], " "))
	if err != nil {
		return err
	}
	renderMessage(e.out, ex.Assistant)
	return nil
}

func runHistory(ctx context.Context, e *env, args []string) error {
	id, err := planID(args, 1)
	if err != nil {
		return err
	}
	conv, err := e.app.Chat().Load(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintln(e.out, titleStyle.Render(conv.Plan.Name))
	fmt.Fprintln(e.out)
	renderMessages(e.out, conv.Messages)
	return nil
}

func runMindMap(ctx context.Context, e *env, args []string) error {
	id, err := planID(args, 1)
	if err != nil {
		return err
	}
	p, err := e.app.Plans().Get(ctx, id)
	if err != nil {
		return err
	}
	content, err := p.Content()
	if err != nil {
		return err
	}
	fmt.Fprintln(e.out, mindMapTree(plan.MindMap(p.Name, content)))
	return nil
}

func runDoctor(ctx context.Context, e *env, _ []string) error {
	report := e.app.Doctor(ctx)
	renderReport(e.out, report)
	if !report.Ready() {
		return errNotReady
	}
	return nil
}

var errNotReady = errors.New("some checks failed")
