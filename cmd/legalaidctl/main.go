// legalaidctl is the operator tool of the legal aid service. It migrates the database
// and creates admin accounts, which have no public signup.
//
//	legalaidctl migrate
//	legalaidctl create-admin --email ops@example.com --name "Ops"
//
// It reads the same environment as the server.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/legalaid-ng/legalaid-api/api/actions"
	"github.com/legalaid-ng/legalaid-api/api/handlers"
	"github.com/legalaid-ng/legalaid-api/config"
	"github.com/legalaid-ng/legalaid-api/logging"
	"github.com/legalaid-ng/legalaid-api/models"
)

const usage = `usage: legalaidctl <command> [flags]

commands:
  migrate        apply database migrations or create indexes
  create-admin   create an admin account
`

// readPassword is replaced in tests to avoid touching the terminal
var readPassword = term.ReadPassword

var errUsage = errors.New("invalid usage")

type adminCreator interface {
	CreateAdmin(ctx context.Context, email, name, password string) models.ActionResult
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	command, rest := args[0], args[1:]

	flagSet := pflag.NewFlagSet("legalaidctl "+command, pflag.ContinueOnError)
	verbose := flagSet.BoolP("verbose", "v", false, "log at debug level")
	var email, name string
	if command == "create-admin" {
		flagSet.StringVar(&email, "email", "", "admin email address")
		flagSet.StringVar(&name, "name", "", "admin display name")
	}
	if err := flagSet.Parse(rest); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	switch command {
	case "migrate", "create-admin":
	default:
		return errUsage
	}

	logger := logging.New(*verbose)
	defer logger.Sync()

	conf, err := config.New()
	if err != nil {
		return err
	}
	a := handlers.App{Config: *conf}
	store, err := a.Connect(ctx)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer a.Close(ctx)
	logger.Debugw("connected to database", "driver", conf.DatabaseDriver)

	switch command {
	case "migrate":
		fmt.Fprintf(stdout, "%s database is up to date\n", conf.DatabaseDriver)
		return nil
	default:
		return createAdmin(ctx, actions.New(store, nil, nil, conf.BaseURL), email, name, stdin, stdout)
	}
}

func createAdmin(ctx context.Context, creator adminCreator, email, name string, stdin io.Reader, stdout io.Writer) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("%w: --email is required", errUsage)
	}
	password, err := promptPassword(stdin, stdout)
	if err != nil {
		return err
	}

	res := creator.CreateAdmin(ctx, email, name, password)
	if !res.Success {
		return errors.New(res.Message)
	}
	fmt.Fprintf(stdout, "admin %s created\n", strings.ToLower(strings.TrimSpace(email)))
	return nil
}

// promptPassword reads the password without echo from a terminal, asking twice.
// Piped input is read as a single line.
func promptPassword(stdin io.Reader, stdout io.Writer) (string, error) {
	f, ok := stdin.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		line, err := bufio.NewReader(stdin).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read password: %w", err)
		}
		return strings.TrimRight(line, "\r\n"), nil
	}

	fmt.Fprint(stdout, "Password: ")
	first, err := readPassword(int(f.Fd()))
	fmt.Fprintln(stdout)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	fmt.Fprint(stdout, "Confirm password: ")
	second, err := readPassword(int(f.Fd()))
	fmt.Fprintln(stdout)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	if string(first) != string(second) {
		return "", errors.New("passwords do not match")
	}
	return string(first), nil
}
