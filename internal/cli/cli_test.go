package cli

import (
	"bytes"
	"os"
	"reflect"
	"strings"
	"testing"

	"github.com/EduardoAlcebiades/curso-design-patterns--creational/internal/buildinfo"
)

func runCLI(t *testing.T, args ...string) string {
	t.Helper()

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(normalizeArgs(args, demoArguments()))

	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return out.String()
}

// --- normalizeArgs ---

func TestNormalizeArgs(t *testing.T) {
	flags := []string{"builder", "factory-method"}
	cases := []struct {
		in   []string
		want []string
	}{
		{[]string{"--builder", "suv"}, []string{"--builder", "suv"}},
		{[]string{"--builder"}, []string{"--builder="}},
		{[]string{"--builder", "--factory-method", "web"}, []string{"--builder=", "--factory-method", "web"}},
		{[]string{"--builder=sport"}, []string{"--builder=sport"}},
		{[]string{"--debug", "--builder"}, []string{"--debug", "--builder="}},
		{[]string{"--", "--builder"}, []string{"--", "--builder"}},
		{[]string{}, []string{}},
		{[]string{"--builder", "sport", "--builder", "suv"}, []string{"--builder", "sport"}},
		{[]string{"--builder=sport", "--builder", "suv", "--factory-method", "web"}, []string{"--builder=sport", "--factory-method", "web"}},
		{[]string{"--builder", "--builder", "suv"}, []string{"--builder="}},
		{[]string{"--builder", "suv", "--builder", "--factory-method", "web"}, []string{"--builder", "suv", "--factory-method", "web"}},
	}
	for _, c := range cases {
		if got := normalizeArgs(c.in, flags); !reflect.DeepEqual(got, c.want) {
			t.Errorf("normalizeArgs(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

// --- command structure ---

func TestRootCmd_RegistersVersion(t *testing.T) {
	cmd := newRootCmd()
	found := false
	for _, sub := range cmd.Commands() {
		if sub.Use == "version" {
			found = true
		}
	}
	if !found {
		t.Error("expected 'version' subcommand")
	}
}

func TestRootCmd_Flags(t *testing.T) {
	cmd := newRootCmd()
	for _, flag := range []string{"factory-method", "abstract-factory", "builder"} {
		f := cmd.Flags().Lookup(flag)
		if f == nil {
			t.Errorf("expected --%s flag on root command", flag)
			continue
		}
		if !strings.Contains(f.Usage, "|") {
			t.Errorf("expected options in usage of --%s, got %q", flag, f.Usage)
		}
	}
	for _, flag := range []string{"debug", "log-file"} {
		if cmd.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("expected --%s persistent flag", flag)
		}
	}
}

func TestDemoArguments_Order(t *testing.T) {
	want := []string{"factory-method", "abstract-factory", "builder"}
	if got := demoArguments(); !reflect.DeepEqual(got, want) {
		t.Fatalf("demoArguments() = %v, want %v", got, want)
	}
}

// --- end to end ---

func TestRun_Builder(t *testing.T) {
	out := runCLI(t, "--builder", "sport")

	for _, want := range []string{"--builder", "seats: 2\n", "cylinders: 2.6", "power: 12", "2 seat(s)"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output, got:\n%s", want, out)
		}
	}
}

func TestRun_MultipleDemosInTableOrder(t *testing.T) {
	out := runCLI(t, "--abstract-factory", "mac", "--factory-method", "web")

	fm := strings.Index(out, "HTML button rendered!")
	af := strings.Index(out, "Mac Button was rendered!")
	if fm < 0 || af < 0 {
		t.Fatalf("expected both demos to run, got:\n%s", out)
	}
	if fm > af {
		t.Errorf("expected factory-method before abstract-factory, got:\n%s", out)
	}
	if !strings.Contains(out, "Mac Checkbox was rendered!") {
		t.Errorf("expected checkbox output, got:\n%s", out)
	}
}

func TestRun_MissingValueListsOptions(t *testing.T) {
	out := runCLI(t, "--builder")

	for _, want := range []string{"Invalid value '' for argument '--builder'", "Available options:", "- sport", "- suv"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output, got:\n%s", want, out)
		}
	}
}

func TestRun_InvalidValueDoesNotStopOthers(t *testing.T) {
	out := runCLI(t, "--factory-method", "mobile", "--abstract-factory", "windows")

	if !strings.Contains(out, "Invalid value 'mobile' for argument '--factory-method'") {
		t.Errorf("expected factory-method error, got:\n%s", out)
	}
	if !strings.Contains(out, "Windows Button was rendered!") {
		t.Errorf("expected abstract-factory demo to run, got:\n%s", out)
	}
}

func TestRun_FlagFollowedByFlag(t *testing.T) {
	out := runCLI(t, "--abstract-factory", "--builder", "suv")

	if !strings.Contains(out, "Invalid value '' for argument '--abstract-factory'") {
		t.Errorf("expected abstract-factory error, got:\n%s", out)
	}
	if !strings.Contains(out, "seats: 5\n") {
		t.Errorf("expected builder demo to run, got:\n%s", out)
	}
}

func TestRun_UnknownFlagIgnored(t *testing.T) {
	out := runCLI(t, "--colour", "--factory-method", "windows")

	if !strings.Contains(out, "Windows button rendered!") {
		t.Errorf("expected demo output, got:\n%s", out)
	}
}

func TestRun_NoFlagsShowsHelp(t *testing.T) {
	out := runCLI(t)

	if !strings.Contains(out, "Usage:") {
		t.Errorf("expected help output, got:\n%s", out)
	}
}

func TestVersionCmd(t *testing.T) {
	out := runCLI(t, "version")
	if strings.TrimSpace(out) != buildinfo.String() {
		t.Errorf("expected %q, got %q", buildinfo.String(), out)
	}
}

func TestRun_RepeatedFlagFirstWins(t *testing.T) {
	out := runCLI(t, "--builder", "sport", "--builder", "suv")

	if !strings.Contains(out, "seats: 2\n") {
		t.Errorf("expected the sport recipe, got:\n%s", out)
	}
	if strings.Contains(out, "seats: 5\n") {
		t.Errorf("expected the repeated flag to be ignored, got:\n%s", out)
	}
}

// --- execute ---

func TestExecute_ParseErrorPrintedToStdout(t *testing.T) {
	var out, errOut bytes.Buffer

	// Returning normally is the contract: nothing calls os.Exit.
	execute([]string{"--debug=maybe", "--builder", "suv"}, &out, &errOut)

	if !strings.Contains(out.String(), `invalid argument "maybe" for "--debug" flag`) {
		t.Errorf("expected parse error on stdout, got:\n%s", out.String())
	}
	if strings.Contains(errOut.String(), "invalid argument") {
		t.Errorf("expected nothing on stderr, got:\n%s", errOut.String())
	}
	if strings.Contains(out.String(), "seats: 5") {
		t.Errorf("expected no demo output after a parse error, got:\n%s", out.String())
	}
}

func TestExecute_RunsDemos(t *testing.T) {
	var out bytes.Buffer
	execute([]string{"--factory-method", "web"}, &out, &bytes.Buffer{})

	if !strings.Contains(out.String(), "HTML button rendered!") {
		t.Errorf("expected demo output, got:\n%s", out.String())
	}
}

func TestExecute_LogFileReceivesRecords(t *testing.T) {
	path := t.TempDir() + string(os.PathSeparator) + "run.log"

	var out bytes.Buffer
	execute([]string{"--log-file", path, "--debug", "--builder", "sport"}, &out, &bytes.Buffer{})

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	for _, want := range []string{"demo.done", "run.finished", path} {
		if !strings.Contains(string(b), want) {
			t.Errorf("expected %q in log, got:\n%s", want, b)
		}
	}
}
