// Package cli implements zpersona's command-line subcommands.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/zarlcorp/zpersona/internal/config"
	"github.com/zarlcorp/zpersona/internal/fairy"
	"github.com/zarlcorp/zpersona/internal/locale"
	"github.com/zarlcorp/zpersona/internal/person"
	"github.com/zarlcorp/zpersona/internal/store"
	"golang.org/x/term"
)

const maxCount = 1000

// ErrUsage is returned for malformed command lines.
var ErrUsage = errors.New("usage")

// ReadPassword prompts for a password on w and reads it without echo.
func ReadPassword(prompt string, w io.Writer) (string, error) {
	fmt.Fprint(w, prompt)
	b, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(w)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(b), nil
}

// ReadNewPassword prompts for a new password with confirmation.
func ReadNewPassword(w io.Writer) (string, error) {
	pass, err := ReadPassword("create master password: ", w)
	if err != nil {
		return "", err
	}
	confirm, err := ReadPassword("confirm password: ", w)
	if err != nil {
		return "", err
	}
	if pass != confirm {
		return "", fmt.Errorf("passwords do not match")
	}
	return pass, nil
}

// OpenStore prompts for the master password and opens the store in dir.
func OpenStore(dir string) (*store.Store, error) {
	var pass string
	var err error
	if store.IsFirstRun(dir) {
		pass, err = ReadNewPassword(os.Stderr)
	} else {
		pass, err = ReadPassword("master password: ", os.Stderr)
	}
	if err != nil {
		return nil, err
	}
	return store.OpenDir(dir, pass)
}

// Runner executes subcommands. Out receives results, Err receives prompts
// and confirmations.
type Runner struct {
	Config config.Config
	Logger *slog.Logger
	Out    io.Writer
	Err    io.Writer

	// Unlock opens the store; defaults to OpenStore.
	Unlock func(dir string) (*store.Store, error)
	// Now stamps saved records and drives ages; defaults to time.Now.
	Now func() time.Time
}

// New returns a runner writing to stdout and stderr.
func New(cfg config.Config, logger *slog.Logger) *Runner {
	return &Runner{
		Config: cfg,
		Logger: logger,
		Out:    os.Stdout,
		Err:    os.Stderr,
		Unlock: OpenStore,
		Now:    time.Now,
	}
}

// Run dispatches cmd.
func (r *Runner) Run(cmd string, args []string) error {
	switch cmd {
	case "person":
		return r.Person(args)
	case "email":
		return r.Email(args)
	case "list":
		return r.List(args)
	case "show":
		return r.Show(args)
	case "forget":
		return r.Forget(args)
	case "locales":
		return r.Locales()
	}
	return fmt.Errorf("unknown command %q", cmd)
}

// Person generates persons from flags and key=value directives:
//
//	person [--json] [--save] [--locale=pl] [--seed=N] [--count=N] [key=value ...]
func (r *Runner) Person(args []string) error {
	flags, directives, err := parseArgs(args, "--json", "--save", "--locale", "--seed", "--count")
	if err != nil {
		return err
	}

	count := 1
	if v, ok := flags["--count"]; ok {
		count, err = strconv.Atoi(v)
		if err != nil || count < 1 || count > maxCount {
			return fmt.Errorf("%w: --count must be between 1 and %d", ErrUsage, maxCount)
		}
	}

	props, err := person.ParseProperties(directives)
	if err != nil {
		return err
	}

	f, err := r.fairy(flags)
	if err != nil {
		return err
	}

	ps, err := f.Persons(count, props...)
	if err != nil {
		return err
	}
	r.logger().Debug("generated", "count", len(ps), "locale", f.Locale(), "seed", f.Seed())

	if _, ok := flags["--json"]; ok {
		if count == 1 {
			err = r.printJSON(ps[0])
		} else {
			err = r.printJSON(ps)
		}
		if err != nil {
			return err
		}
	} else {
		for i, p := range ps {
			if i > 0 {
				fmt.Fprintln(r.Out)
			}
			r.printPerson(p)
		}
	}

	if _, ok := flags["--save"]; !ok {
		return nil
	}

	s, err := r.Unlock(r.Config.DataDir)
	if err != nil {
		return err
	}
	defer s.Close()

	for _, p := range ps {
		rec := store.NewRecord(f.Locale(), p, r.Now())
		if err := s.Save(rec); err != nil {
			return err
		}
		fmt.Fprintf(r.Err, "saved %s\n", rec.ShortID())
	}
	return nil
}

// Email prints a single personal email address.
func (r *Runner) Email(args []string) error {
	flags, rest, err := parseArgs(args, "--locale", "--seed")
	if err != nil {
		return err
	}
	if len(rest) > 0 {
		return fmt.Errorf("%w: email [--locale=TAG] [--seed=N]", ErrUsage)
	}

	f, err := r.fairy(flags)
	if err != nil {
		return err
	}
	addr, err := f.Email()
	if err != nil {
		return err
	}
	fmt.Fprintln(r.Out, addr)
	return nil
}

// List prints saved records, newest first.
func (r *Runner) List(args []string) error {
	flags, _, err := parseArgs(args, "--json")
	if err != nil {
		return err
	}

	s, err := r.Unlock(r.Config.DataDir)
	if err != nil {
		return err
	}
	defer s.Close()

	rs, err := s.List()
	if err != nil {
		return err
	}

	if _, ok := flags["--json"]; ok {
		return r.printJSON(rs)
	}

	if len(rs) == 0 {
		fmt.Fprintln(r.Out, "no saved persons")
		return nil
	}

	for _, rec := range rs {
		fmt.Fprintf(r.Out, "  %-8s %-4s %-28s %-32s %s\n",
			rec.ShortID(),
			rec.Locale,
			rec.Person.FullName(),
			rec.Person.Email,
			rec.CreatedAt.Format(time.DateOnly),
		)
	}
	return nil
}

// Show prints one saved record.
func (r *Runner) Show(args []string) error {
	flags, rest, err := parseArgs(args, "--json")
	if err != nil {
		return err
	}
	if len(rest) != 1 {
		return fmt.Errorf("%w: show <id> [--json]", ErrUsage)
	}

	s, err := r.Unlock(r.Config.DataDir)
	if err != nil {
		return err
	}
	defer s.Close()

	rec, err := s.Find(rest[0])
	if err != nil {
		return err
	}

	if _, ok := flags["--json"]; ok {
		return r.printJSON(rec)
	}
	fmt.Fprintf(r.Out, "  %-11s %s\n", "id:", rec.ID)
	fmt.Fprintf(r.Out, "  %-11s %s\n", "locale:", rec.Locale)
	r.printPerson(rec.Person)
	return nil
}

// Forget deletes a saved record.
func (r *Runner) Forget(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: forget <id>", ErrUsage)
	}

	s, err := r.Unlock(r.Config.DataDir)
	if err != nil {
		return err
	}
	defer s.Close()

	rec, err := s.Delete(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(r.Out, "deleted %s\n", rec.ShortID())
	return nil
}

// Locales prints the supported locale tags, marking the configured one.
func (r *Runner) Locales() error {
	for _, tag := range locale.Supported() {
		mark := " "
		if tag == r.Config.Locale {
			mark = "*"
		}
		fmt.Fprintf(r.Out, "%s %s\n", mark, tag)
	}
	return nil
}

// fairy builds a generator from config, with flags taking precedence.
func (r *Runner) fairy(flags map[string]string) (*fairy.Fairy, error) {
	opts := []fairy.Option{
		fairy.WithLocale(r.Config.Locale),
		fairy.WithLogger(r.logger()),
	}
	if r.Now != nil {
		opts = append(opts, fairy.WithClock(r.Now))
	}
	if r.Config.Seed != nil {
		opts = append(opts, fairy.WithSeed(*r.Config.Seed))
	}

	if v, ok := flags["--locale"]; ok {
		opts = append(opts, fairy.WithLocale(strings.ToLower(v)))
	}
	if v, ok := flags["--seed"]; ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: --seed must be an unsigned integer", ErrUsage)
		}
		opts = append(opts, fairy.WithSeed(seed))
	}

	return fairy.New(opts...)
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return r.Logger
}

func (r *Runner) printPerson(p person.Person) {
	for _, f := range p.Fields() {
		if f.Value == "" {
			continue
		}
		fmt.Fprintf(r.Out, "  %-11s %s\n", f.Label+":", f.Value)
	}
}

func (r *Runner) printJSON(v any) error {
	enc := json.NewEncoder(r.Out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// parseArgs splits args into known flags and positional arguments. Flags
// take values as --name=value; bare flags map to "".
func parseArgs(args []string, known ...string) (map[string]string, []string, error) {
	flags := make(map[string]string)
	var rest []string
	for _, a := range args {
		if !strings.HasPrefix(a, "--") {
			rest = append(rest, a)
			continue
		}
		name, value, _ := strings.Cut(a, "=")
		name = strings.ToLower(name)
		if !slices.Contains(known, name) {
			return nil, nil, fmt.Errorf("%w: unknown flag %s", ErrUsage, name)
		}
		flags[name] = value
	}
	return flags, rest, nil
}
