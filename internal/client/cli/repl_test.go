package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool
	calls    []string
}

func (f *fakeExec) record(name string) error {
	f.calls = append(f.calls, name)
	return nil
}

func (f *fakeExec) isLoggedIn() bool                    { return f.loggedIn }
func (f *fakeExec) Login(ctx context.Context) error     { return f.record("login") }
func (f *fakeExec) Register(ctx context.Context) error  { return f.record("register") }
func (f *fakeExec) Logout(ctx context.Context) error    { return f.record("logout") }
func (f *fakeExec) Dashboard(ctx context.Context) error { return f.record("dashboard") }
func (f *fakeExec) Refresh(ctx context.Context) error   { return f.record("refresh") }
func (f *fakeExec) Plan(ctx context.Context) error      { return f.record("plan") }
func (f *fakeExec) Brief(ctx context.Context) error     { return f.record("brief") }
func (f *fakeExec) Retry(ctx context.Context) error     { return f.record("retry") }
func (f *fakeExec) Status(ctx context.Context) error    { return f.record("status") }

// captureOutput redirects printlnFn into a slice for the duration of the test.
func captureOutput(t *testing.T) *[]string {
	t.Helper()
	lines := &[]string{}
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		*lines = append(*lines, strings.TrimRight(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return lines
}

func runLines(f *fakeExec, input string) {
	scanner := bufio.NewScanner(strings.NewReader(input))
	runREPL(context.Background(), f, func() string { return "" }, scanner)
}

func TestREPL_DispatchesCommands(t *testing.T) {
	captureOutput(t)
	f := &fakeExec{loggedIn: true}

	runLines(f, "dashboard\nrefresh\nplan\nbrief\nretry\nstatus\nlogout\nexit\n")

	assert.Equal(t, []string{"dashboard", "refresh", "plan", "brief", "retry", "status", "logout"}, f.calls)
}

func TestREPL_ShortAliases(t *testing.T) {
	captureOutput(t)
	f := &fakeExec{loggedIn: true}

	runLines(f, "d\nb\nquit\n")

	assert.Equal(t, []string{"dashboard", "brief"}, f.calls)
}

func TestREPL_AuthCommands(t *testing.T) {
	captureOutput(t)
	f := &fakeExec{}

	runLines(f, "login\nregister\nexit\n")

	assert.Equal(t, []string{"login", "register"}, f.calls)
}

func TestREPL_HelpDependsOnLoginState(t *testing.T) {
	lines := captureOutput(t)

	runLines(&fakeExec{}, "help\n")
	loggedOut := strings.Join(*lines, "\n")
	assert.Contains(t, loggedOut, "login, register")
	assert.NotContains(t, loggedOut, "dashboard")

	*lines = nil
	runLines(&fakeExec{loggedIn: true}, "help\n")
	loggedIn := strings.Join(*lines, "\n")
	assert.Contains(t, loggedIn, "dashboard")
	assert.Contains(t, loggedIn, "logout")
}

func TestREPL_UnknownCommand(t *testing.T) {
	lines := captureOutput(t)
	f := &fakeExec{}

	runLines(f, "frobnicate\nexit\n")

	assert.Empty(t, f.calls)
	assert.Contains(t, strings.Join(*lines, "\n"), "Unknown command: frobnicate")
}

func TestREPL_BlankLinesAreIgnored(t *testing.T) {
	captureOutput(t)
	f := &fakeExec{}

	runLines(f, "\n   \nexit\n")

	assert.Empty(t, f.calls)
}

func TestREPL_StopsOnEOF(t *testing.T) {
	captureOutput(t)
	f := &fakeExec{}

	runLines(f, "status\n")

	assert.Equal(t, []string{"status"}, f.calls)
}
