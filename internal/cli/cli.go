// Package cli wires the parsing/execution pipeline to the go-arg
// command surface. One instruction is parsed and applied at a time; the
// list travels store → executor → store as a whole value, so every
// mutation is all-or-nothing.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/harshit-2705/Voice-Command-Shopping-Assistant/internal/clipboard"
	"github.com/harshit-2705/Voice-Command-Shopping-Assistant/internal/clipboard/sysboard"
	"github.com/harshit-2705/Voice-Command-Shopping-Assistant/internal/command"
	"github.com/harshit-2705/Voice-Command-Shopping-Assistant/internal/config"
	"github.com/harshit-2705/Voice-Command-Shopping-Assistant/internal/parser"
	"github.com/harshit-2705/Voice-Command-Shopping-Assistant/internal/query"
	"github.com/harshit-2705/Voice-Command-Shopping-Assistant/internal/shopping"
	"github.com/harshit-2705/Voice-Command-Shopping-Assistant/internal/store"
	"github.com/harshit-2705/Voice-Command-Shopping-Assistant/internal/store/dbstore"
	"github.com/harshit-2705/Voice-Command-Shopping-Assistant/internal/suggest"
	"github.com/harshit-2705/Voice-Command-Shopping-Assistant/internal/translator"
)

// CLI handles the command-line interface
type CLI struct {
	store     store.Store
	local     parser.Parser
	remote    parser.Parser // nil when no remote endpoint is configured
	clip      clipboard.Clipboard
	cfg       *config.Config
	cfgMgr    *config.Manager
	out       io.Writer
	parseWait time.Duration
}

// New creates a CLI with explicit collaborators. Tests use this with a
// memory store and mock clipboard.
func New(s store.Store, local, remote parser.Parser, clip clipboard.Clipboard, cfg *config.Config, out io.Writer) *CLI {
	return &CLI{
		store:     s,
		local:     local,
		remote:    remote,
		clip:      clip,
		cfg:       cfg,
		out:       out,
		parseWait: time.Duration(cfg.ParserTimeoutSeconds) * time.Second,
	}
}

// NewFromArgs creates a fully wired CLI: yaml config, sqlite store,
// language-selected normalizer, and optional remote parser.
func NewFromArgs(args *Args) (*CLI, error) {
	cfgMgr, err := config.NewManager()
	if err != nil {
		return nil, err
	}
	cfg, err := cfgMgr.Load()
	if err != nil {
		return nil, err
	}

	// Database path precedence: flag > config > default.
	var dbPath string
	switch {
	case args != nil && args.DBPath != nil:
		dbPath = *args.DBPath
	case cfg.DBLocation != "":
		dbPath = cfg.DBLocation
	default:
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		dbPath = filepath.Join(homeDir, ".config", "shopassist", "shopassist.db")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	sqliteStore, err := dbstore.NewSQLiteStore(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database store: %w", err)
	}

	var normalizer translator.Normalizer
	if cfg.Language == "en" {
		normalizer = translator.Passthrough{}
	} else {
		normalizer = translator.NewHindi()
	}

	local := parser.NewLocal(normalizer)
	var remote parser.Parser
	if cfg.ParserURL != "" {
		remote = parser.NewRemote(cfg.ParserURL, time.Duration(cfg.ParserTimeoutSeconds)*time.Second, local)
	}

	c := New(sqliteStore, local, remote, sysboard.New(), cfg, os.Stdout)
	c.cfgMgr = cfgMgr
	return c, nil
}

// Close releases the store.
func (c *CLI) Close() error {
	return c.store.Close()
}

// Store exposes the wired store for the TUI entry point.
func (c *CLI) Store() store.Store {
	return c.store
}

// Parser returns the parser the TUI should use: remote when configured,
// local otherwise.
func (c *CLI) Parser() parser.Parser {
	if c.remote != nil {
		return c.remote
	}
	return c.local
}

// Execute runs the CLI command based on parsed arguments
func (c *CLI) Execute(args *Args) error {
	if err := args.Validate(); err != nil {
		return err
	}

	switch {
	case args.Say != nil:
		return c.executeSay(args.Say)
	case args.Show != nil:
		return c.executeShow(args.Show)
	case args.Suggest != nil:
		return c.executeSuggest()
	case args.Clear != nil:
		return c.executeClear()
	case args.Config != nil:
		return c.executeConfig(args.Config)
	}
	return fmt.Errorf("no command specified")
}

// executeSay parses one instruction and applies it to the list.
func (c *CLI) executeSay(cmd *SayCmd) error {
	instruction := strings.Join(cmd.Words, " ")

	p := c.local
	if cmd.Remote {
		if c.remote == nil {
			return fmt.Errorf("no remote parser configured (set parser-url)")
		}
		p = c.remote
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.parseWait)
	defer cancel()

	parsed, err := p.Parse(ctx, instruction)
	if err != nil {
		fmt.Fprintln(c.out, "Could not understand the instruction")
		return nil
	}

	list, err := c.store.LoadList()
	if err != nil {
		return fmt.Errorf("failed to load list: %w", err)
	}

	var newList []shopping.Item
	var message string
	if cmd.SQL {
		newList, message = c.applyViaQuery(parsed, list)
	} else {
		newList, message = command.Apply(parsed, list)
	}

	if err := c.store.SaveList(newList); err != nil {
		return fmt.Errorf("failed to save list: %w", err)
	}

	if message != "" {
		fmt.Fprintln(c.out, message)
	}
	fmt.Fprintln(c.out, shopping.Render(newList))
	return nil
}

// applyViaQuery routes the command through the textual query
// representation: compile, print, parse back, execute. Actions without
// a query form (price) fall back to direct execution.
func (c *CLI) applyViaQuery(parsed *command.Command, list []shopping.Item) ([]shopping.Item, string) {
	op, ok := query.Compile(parsed)
	if !ok {
		return command.Apply(parsed, list)
	}
	text := op.String()
	fmt.Fprintln(c.out, text)

	newList, message := query.ExecuteText(text, list)
	if op.Kind == query.KindSelect {
		// The query layer leaves catalog search to the command executor.
		_, message = command.Apply(parsed, list)
	}
	return newList, message
}

func (c *CLI) executeShow(cmd *ShowCmd) error {
	list, err := c.store.LoadList()
	if err != nil {
		return fmt.Errorf("failed to load list: %w", err)
	}
	fmt.Fprintln(c.out, shopping.Render(list))

	if cmd.Copy {
		if !c.clip.IsSupported() {
			return fmt.Errorf("clipboard not supported on this system")
		}
		if err := c.clip.Write(strings.NewReader(shopping.RenderPlain(list))); err != nil {
			return fmt.Errorf("failed to copy list: %w", err)
		}
		fmt.Fprintln(c.out, "Copied list to clipboard")
	}
	return nil
}

func (c *CLI) executeSuggest() error {
	list, err := c.store.LoadList()
	if err != nil {
		return fmt.Errorf("failed to load list: %w", err)
	}
	history, err := c.store.History()
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	suggestions := suggest.Generate(list, history, time.Now())
	if len(suggestions) > c.cfg.SuggestionLimit {
		suggestions = suggestions[:c.cfg.SuggestionLimit]
	}
	if len(suggestions) == 0 {
		fmt.Fprintln(c.out, "No suggestions yet")
		return nil
	}
	for _, s := range suggestions {
		fmt.Fprintf(c.out, "%s (%s, %.1f)\n", shopping.TitleCase(s.Name), s.Source, s.Confidence)
	}
	return nil
}

func (c *CLI) executeClear() error {
	list, err := c.store.LoadList()
	if err != nil {
		return fmt.Errorf("failed to load list: %w", err)
	}
	newList, message := command.Apply(&command.Command{Action: command.ActionClear}, list)
	if err := c.store.SaveList(newList); err != nil {
		return fmt.Errorf("failed to save list: %w", err)
	}
	fmt.Fprintln(c.out, message)
	return nil
}

func (c *CLI) executeConfig(cmd *ConfigCmd) error {
	if c.cfgMgr == nil {
		return fmt.Errorf("configuration is not available")
	}
	switch {
	case cmd.Get != nil:
		value, err := c.cfgMgr.Get(cmd.Get.Key)
		if err != nil {
			return err
		}
		fmt.Fprintln(c.out, value)
	case cmd.Set != nil:
		if err := c.cfgMgr.Update(cmd.Set.Key, cmd.Set.Value); err != nil {
			return err
		}
		fmt.Fprintf(c.out, "Set %s = %s\n", cmd.Set.Key, cmd.Set.Value)
	case cmd.List != nil:
		values, err := c.cfgMgr.List()
		if err != nil {
			return err
		}
		for _, key := range []string{"db-location", "parser-url", "parser-timeout", "suggestion-limit", "language"} {
			fmt.Fprintf(c.out, "%s: %s\n", key, values[key])
		}
	}
	return nil
}
