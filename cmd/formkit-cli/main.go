package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	formkit "github.com/goliatone/go-formkit"
	"github.com/goliatone/go-formkit/pkg/config"
	"github.com/goliatone/go-formkit/pkg/focus"
	"github.com/goliatone/go-formkit/pkg/logging"
	"github.com/goliatone/go-formkit/pkg/markup"
	"github.com/goliatone/go-formkit/pkg/tui"
)

const usage = `usage: formkit-cli [-env file] <command> [flags] [args]

commands:
  format <text>                       trim and capitalise text
  email <address>                     check email syntax
  id [-length n]                      random alphanumeric id
  tab -key K -index i -total n        next tab index
  call <operation> [yaml args list]   invoke an operation by name
  ops                                 list operations
  focus-html -in f -errors f          autofocus the first invalid control
  inert-html -in f -id X [-open]      toggle inert on an element
  tabs <label>...                     navigate tabs with arrow keys
  prompt-email [-confirm]             ask for a valid email address
`

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatalf("formkit-cli: %v", err)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	global := flag.NewFlagSet("formkit-cli", flag.ContinueOnError)
	global.SetOutput(stderr)
	envFile := global.String("env", "", "path to .env file")
	global.Usage = func() { fmt.Fprint(stderr, usage) }
	if err := global.Parse(args); err != nil {
		return err
	}

	conf, err := config.Load(config.DefaultPrefix, *envFile)
	if err != nil {
		return err
	}

	opts := []formkit.Option{formkit.WithLogger(logging.New(conf.Log, stderr))}
	if conf.NormalizePaths {
		opts = append(opts, formkit.WithPathNormalization())
	}
	kit := formkit.New(opts...)

	rest := global.Args()
	if len(rest) == 0 {
		global.Usage()
		return errors.New("command is required")
	}

	cmd, cmdArgs := rest[0], rest[1:]
	switch cmd {
	case "format":
		return runFormat(kit, cmdArgs, stdout)
	case "email":
		return runEmail(kit, cmdArgs, stdout)
	case "id":
		return runID(kit, conf, cmdArgs, stdout, stderr)
	case "tab":
		return runTab(kit, cmdArgs, stdout, stderr)
	case "call":
		return runCall(kit, cmdArgs, stdout)
	case "ops":
		for _, op := range kit.Operations() {
			fmt.Fprintf(stdout, "%-16s (%s) %s\n", op.Name, strings.Join(op.Params, ", "), op.Description)
		}
		return nil
	case "focus-html":
		return runFocusHTML(kit, cmdArgs, stdout, stderr)
	case "inert-html":
		return runInertHTML(kit, cmdArgs, stdout, stderr)
	case "tabs":
		return runTabs(ctx, kit, cmdArgs, stdout)
	case "prompt-email":
		return runPromptEmail(ctx, kit, cmdArgs, stdout, stderr)
	default:
		global.Usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func runFormat(kit *formkit.Kit, args []string, stdout io.Writer) error {
	out, err := kit.FormatString(strings.Join(args, " "))
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, out)
	return nil
}

func runEmail(kit *formkit.Kit, args []string, stdout io.Writer) error {
	if len(args) != 1 {
		return errors.New("email: exactly one address is required")
	}
	fmt.Fprintln(stdout, kit.ValidateEmail(args[0]))
	return nil
}

func runID(kit *formkit.Kit, conf *config.Config, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("id", flag.ContinueOnError)
	fs.SetOutput(stderr)
	length := fs.Int("length", conf.IDLength, "id length")
	if err := fs.Parse(args); err != nil {
		return err
	}
	id, err := kit.GenerateID(*length)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, id)
	return nil
}

func runTab(kit *formkit.Kit, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("tab", flag.ContinueOnError)
	fs.SetOutput(stderr)
	key := fs.String("key", "", "key name (ArrowRight, ArrowLeft, Home, End)")
	index := fs.Int("index", 0, "current tab index")
	total := fs.Int("total", 0, "number of tabs")
	if err := fs.Parse(args); err != nil {
		return err
	}
	next, err := kit.CalcNewTabIndex(*key, *index, *total)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, next)
	return nil
}

// runCall decodes the argument list as YAML (JSON is accepted too).
func runCall(kit *formkit.Kit, args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return errors.New("call: operation name is required")
	}
	var callArgs []any
	if len(args) > 1 {
		if err := yaml.Unmarshal([]byte(strings.Join(args[1:], " ")), &callArgs); err != nil {
			return fmt.Errorf("call: decode arguments: %w", err)
		}
	}
	result, err := kit.Invoke(args[0], callArgs...)
	if err != nil {
		return err
	}
	if result != nil {
		fmt.Fprintln(stdout, result)
	}
	return nil
}

func runFocusHTML(kit *formkit.Kit, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("focus-html", flag.ContinueOnError)
	fs.SetOutput(stderr)
	in := fs.String("in", "", "HTML fragment file (stdin if empty)")
	errorsPath := fs.String("errors", "", "YAML/JSON field errors file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *errorsPath == "" {
		return errors.New("focus-html: -errors is required")
	}

	doc, err := readDocument(*in)
	if err != nil {
		return err
	}
	raw, err := os.ReadFile(*errorsPath)
	if err != nil {
		return fmt.Errorf("focus-html: read errors: %w", err)
	}
	fieldErrors, err := focus.ParseFieldErrors(raw)
	if err != nil {
		return err
	}
	if err := kit.FocusFirstError(fieldErrors, doc.Refs()); err != nil {
		return err
	}
	return doc.Render(stdout)
}

func runInertHTML(kit *formkit.Kit, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("inert-html", flag.ContinueOnError)
	fs.SetOutput(stderr)
	in := fs.String("in", "", "HTML fragment file (stdin if empty)")
	id := fs.String("id", "", "element id")
	open := fs.Bool("open", true, "true makes the element inert, false restores it")
	if err := fs.Parse(args); err != nil {
		return err
	}

	doc, err := readDocument(*in)
	if err != nil {
		return err
	}
	if err := kit.ToggleInert(doc.ElementByID(*id), *open); err != nil {
		return err
	}
	return doc.Render(stdout)
}

func runTabs(ctx context.Context, kit *formkit.Kit, labels []string, stdout io.Writer) error {
	if len(labels) == 0 {
		return errors.New("tabs: at least one label is required")
	}
	keys, err := tui.OpenTerminalKeys()
	if err != nil {
		return err
	}
	defer keys.Close()

	bar := tui.NewTabBar(stdout, labels...)
	idx, err := tui.NewNavigator(bar, keys, tui.WithFocusManager(kit.Focus())).Run(ctx)
	fmt.Fprintln(stdout)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "selected %d (%s)\n", idx, labels[idx])
	return nil
}

func runPromptEmail(ctx context.Context, kit *formkit.Kit, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("prompt-email", flag.ContinueOnError)
	fs.SetOutput(stderr)
	confirm := fs.Bool("confirm", false, "ask to confirm the address")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var opts []tui.EmailOption
	if *confirm {
		opts = append(opts, tui.WithConfirmation())
	}
	email, err := tui.PromptEmail(ctx, tui.NewSurveyDriver(stdout), "Email", kit.ValidateEmail, opts...)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, email)
	return nil
}

func readDocument(path string) (*markup.Document, error) {
	if path == "" {
		return markup.Parse(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	defer f.Close()
	return markup.Parse(f)
}
