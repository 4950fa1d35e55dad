package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/harshit-2705/Voice-Command-Shopping-Assistant/internal/clipboard/mockboard"
	"github.com/harshit-2705/Voice-Command-Shopping-Assistant/internal/config"
	"github.com/harshit-2705/Voice-Command-Shopping-Assistant/internal/parser"
	"github.com/harshit-2705/Voice-Command-Shopping-Assistant/internal/store/memstore"
	"github.com/harshit-2705/Voice-Command-Shopping-Assistant/internal/translator"
)

type fixture struct {
	cli   *CLI
	store *memstore.MemoryStore
	clip  *mockboard.MockClipboard
	out   *bytes.Buffer
}

func newFixture() *fixture {
	s := memstore.New()
	clip := mockboard.New()
	out := &bytes.Buffer{}
	local := parser.NewLocal(translator.NewHindi())
	return &fixture{
		cli:   New(s, local, nil, clip, config.DefaultConfig(), out),
		store: s,
		clip:  clip,
		out:   out,
	}
}

func (f *fixture) say(t *testing.T, words ...string) {
	t.Helper()
	if err := f.cli.Execute(&Args{Say: &SayCmd{Words: words}}); err != nil {
		t.Fatalf("say %v: %v", words, err)
	}
}

func TestSayAddsItem(t *testing.T) {
	f := newFixture()

	f.say(t, "add", "2", "bottles", "of", "milk")

	output := f.out.String()
	if !strings.Contains(output, "Added Milk") {
		t.Errorf("missing confirmation in %q", output)
	}
	if !strings.Contains(output, "Shopping List (1 items)") {
		t.Errorf("missing rendered list in %q", output)
	}

	list, _ := f.store.LoadList()
	if len(list) != 1 || list[0].Name != "Milk" || list[0].Quantity != 2 {
		t.Errorf("list not persisted: %+v", list)
	}
}

func TestSayHindi(t *testing.T) {
	f := newFixture()

	f.say(t, "जोड़ो", "दूध")

	list, _ := f.store.LoadList()
	if len(list) != 1 || list[0].Name != "Milk" {
		t.Errorf("Hindi instruction not applied: %+v", list)
	}
}

func TestSayUnparseable(t *testing.T) {
	f := newFixture()

	f.say(t, "hello", "there")

	if !strings.Contains(f.out.String(), "Could not understand the instruction") {
		t.Errorf("missing parse failure message: %q", f.out.String())
	}
	list, _ := f.store.LoadList()
	if len(list) != 0 {
		t.Errorf("list must stay empty, got %+v", list)
	}
}

func TestSaySQLPathPrintsQuery(t *testing.T) {
	f := newFixture()

	err := f.cli.Execute(&Args{Say: &SayCmd{Words: []string{"add", "2", "milk"}, SQL: true}})
	if err != nil {
		t.Fatalf("say --sql: %v", err)
	}

	output := f.out.String()
	if !strings.Contains(output, "INSERT INTO shopping_list (name, quantity) VALUES ('milk', 2);") {
		t.Errorf("compiled query not printed: %q", output)
	}
	if !strings.Contains(output, "Added Milk") {
		t.Errorf("missing confirmation: %q", output)
	}

	list, _ := f.store.LoadList()
	if len(list) != 1 || list[0].Quantity != 2 {
		t.Errorf("query path did not apply: %+v", list)
	}
}

func TestSaySQLSearchLeavesListUntouched(t *testing.T) {
	f := newFixture()
	f.say(t, "add", "milk")
	f.out.Reset()

	err := f.cli.Execute(&Args{Say: &SayCmd{Words: []string{"find", "apple"}, SQL: true}})
	if err != nil {
		t.Fatalf("say --sql find: %v", err)
	}

	output := f.out.String()
	if !strings.Contains(output, "SELECT * FROM products WHERE name LIKE '%apple%';") {
		t.Errorf("select query not printed: %q", output)
	}
	if !strings.Contains(output, "Apple is available for ₹120") {
		t.Errorf("missing price lookup result: %q", output)
	}

	list, _ := f.store.LoadList()
	if len(list) != 1 || list[0].Name != "Milk" {
		t.Errorf("search mutated the list: %+v", list)
	}
}

func TestSayRemoteWithoutEndpoint(t *testing.T) {
	f := newFixture()

	err := f.cli.Execute(&Args{Say: &SayCmd{Words: []string{"add", "milk"}, Remote: true}})
	if err == nil || !strings.Contains(err.Error(), "no remote parser configured") {
		t.Errorf("expected remote-not-configured error, got %v", err)
	}
}

func TestShow(t *testing.T) {
	f := newFixture()
	f.say(t, "add", "milk")
	f.out.Reset()

	if err := f.cli.Execute(&Args{Show: &ShowCmd{}}); err != nil {
		t.Fatalf("show: %v", err)
	}
	if !strings.Contains(f.out.String(), "Milk") {
		t.Errorf("list not shown: %q", f.out.String())
	}
}

func TestShowCopy(t *testing.T) {
	f := newFixture()
	f.say(t, "add", "2", "milk")
	f.out.Reset()

	if err := f.cli.Execute(&Args{Show: &ShowCmd{Copy: true}}); err != nil {
		t.Fatalf("show --copy: %v", err)
	}

	if !strings.Contains(f.out.String(), "Copied list to clipboard") {
		t.Errorf("missing copy confirmation: %q", f.out.String())
	}
	if got := string(f.clip.GetData()); !strings.Contains(got, "[ ] 2 Milk") {
		t.Errorf("unexpected clipboard contents: %q", got)
	}
}

func TestSuggest(t *testing.T) {
	f := newFixture()

	if err := f.cli.Execute(&Args{Suggest: &SuggestCmd{}}); err != nil {
		t.Fatalf("suggest: %v", err)
	}
	// Seasonal suggestions exist even with no history.
	if !strings.Contains(f.out.String(), "seasonal") {
		t.Errorf("expected seasonal suggestions: %q", f.out.String())
	}
}

func TestSuggestHonorsLimit(t *testing.T) {
	f := newFixture()
	f.cli.cfg.SuggestionLimit = 1

	if err := f.cli.Execute(&Args{Suggest: &SuggestCmd{}}); err != nil {
		t.Fatalf("suggest: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(f.out.String()), "\n")
	if len(lines) != 1 {
		t.Errorf("expected 1 suggestion line, got %d: %q", len(lines), f.out.String())
	}
}

func TestClear(t *testing.T) {
	f := newFixture()
	f.say(t, "add", "milk")
	f.out.Reset()

	if err := f.cli.Execute(&Args{Clear: &ClearCmd{}}); err != nil {
		t.Fatalf("clear: %v", err)
	}

	if !strings.Contains(f.out.String(), "Cleared list") {
		t.Errorf("missing confirmation: %q", f.out.String())
	}
	list, _ := f.store.LoadList()
	if len(list) != 0 {
		t.Errorf("list not cleared: %+v", list)
	}
}

func TestCompletePurchaseFlowFeedsHistory(t *testing.T) {
	f := newFixture()
	f.say(t, "add", "milk")
	f.say(t, "milk", "purchased")

	history, _ := f.store.History()
	if len(history) != 1 || history[0].Name != "Milk" {
		t.Errorf("completed item not recorded: %+v", history)
	}
}

func TestConfigRequiresSubcommand(t *testing.T) {
	f := newFixture()

	err := f.cli.Execute(&Args{Config: &ConfigCmd{}})
	if err == nil || !strings.Contains(err.Error(), "config requires a subcommand") {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestNoCommand(t *testing.T) {
	f := newFixture()

	if err := f.cli.Execute(&Args{}); err == nil {
		t.Error("expected error when no subcommand given")
	}
}
