package cli

import "fmt"

// Args represents the top-level command structure
type Args struct {
	Say     *SayCmd     `arg:"subcommand:say" help:"Apply a spoken or typed instruction to the list"`
	Show    *ShowCmd    `arg:"subcommand:show" help:"Print the current shopping list"`
	Suggest *SuggestCmd `arg:"subcommand:suggest" help:"Print item suggestions"`
	Clear   *ClearCmd   `arg:"subcommand:clear" help:"Clear the shopping list"`
	Config  *ConfigCmd  `arg:"subcommand:config" help:"Manage configuration"`

	DBPath *string `arg:"--db" help:"Override database path"`
}

// SayCmd applies a natural-language instruction to the shopping list.
type SayCmd struct {
	Words  []string `arg:"positional,required" help:"The instruction, e.g. 'add 2 bottles of milk'"`
	SQL    bool     `arg:"--sql" help:"Route through the textual query path and print the compiled query"`
	Remote bool     `arg:"--remote" help:"Use the remote parser (falls back to local on failure)"`
}

// ShowCmd prints the current list.
type ShowCmd struct {
	Copy bool `arg:"-c,--copy" help:"Also copy the list to the clipboard"`
}

// SuggestCmd prints suggestions from history, season, and substitutes.
type SuggestCmd struct{}

// ClearCmd empties the shopping list.
type ClearCmd struct{}

// ConfigCmd manages persisted configuration.
type ConfigCmd struct {
	Get  *ConfigGetCmd  `arg:"subcommand:get" help:"Print a configuration value"`
	Set  *ConfigSetCmd  `arg:"subcommand:set" help:"Set a configuration value"`
	List *ConfigListCmd `arg:"subcommand:list" help:"List all configuration values"`
}

// ConfigGetCmd prints one configuration value.
type ConfigGetCmd struct {
	Key string `arg:"positional,required" help:"Configuration key"`
}

// ConfigSetCmd sets one configuration value.
type ConfigSetCmd struct {
	Key   string `arg:"positional,required" help:"Configuration key"`
	Value string `arg:"positional,required" help:"New value"`
}

// ConfigListCmd lists all configuration values.
type ConfigListCmd struct{}

// Description returns the program description
func (Args) Description() string {
	return "shopassist - voice-command shopping list assistant"
}

// Version returns the program version
func (Args) Version() string {
	return "shopassist 0.1.0"
}

// Epilogue returns additional help text
func (Args) Epilogue() string {
	return `Examples:
  shopassist say "add 2 bottles of milk"   # Add an item
  shopassist say "हटाओ सेब"                 # Hindi works too
  shopassist say --sql "remove milk"       # Show and run the compiled query
  shopassist show -c                       # Print list and copy to clipboard
  shopassist suggest                       # Suggestions from history and season
  shopassist config set language en        # Disable Hindi normalization

Run without a subcommand to open the interactive assistant.`
}

// Validate performs validation on the parsed arguments
func (args *Args) Validate() error {
	if args.Config != nil && args.Config.Get == nil && args.Config.Set == nil && args.Config.List == nil {
		return fmt.Errorf("config requires a subcommand: get, set, or list")
	}
	return nil
}
