// Package query compiles commands into single list operations and
// executes them. The operation is a typed value (one kind, typed fields)
// rather than a raw string, so item names can never break the structure.
// A textual SQL-like form is kept as an audit trail: Op.String and Parse
// round-trip exactly, with literals quoted and escaped.
package query

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/harshit-2705/Voice-Command-Shopping-Assistant/internal/command"
)

// Kind tags the operation an Op performs.
type Kind int

const (
	KindInsert Kind = iota + 1
	KindDeleteAll
	KindDelete
	KindUpdateQuantity
	KindUpdateCompleted
	KindSelect
)

// Op is a single compiled list operation. Name is lowercase; Quantity is
// meaningful for insert and update-quantity only.
type Op struct {
	Kind     Kind
	Name     string
	Quantity float64
}

// Compile converts a command into its list operation. Actions with no
// query equivalent (price) report ok=false.
func Compile(cmd *command.Command) (Op, bool) {
	if cmd == nil {
		return Op{}, false
	}
	name := strings.ToLower(strings.TrimSpace(cmd.Item))
	qty := 1.0
	if cmd.Quantity != nil {
		qty = *cmd.Quantity
	}

	switch cmd.Action {
	case command.ActionAdd:
		return Op{Kind: KindInsert, Name: name, Quantity: qty}, true
	case command.ActionRemove:
		return Op{Kind: KindDelete, Name: name}, true
	case command.ActionModify:
		return Op{Kind: KindUpdateQuantity, Name: name, Quantity: qty}, true
	case command.ActionSearch:
		return Op{Kind: KindSelect, Name: name}, true
	case command.ActionClear:
		return Op{Kind: KindDeleteAll}, true
	case command.ActionComplete:
		return Op{Kind: KindUpdateCompleted, Name: name}, true
	}
	return Op{}, false
}

// String renders the SQL-like textual form of the operation.
func (op Op) String() string {
	switch op.Kind {
	case KindInsert:
		return fmt.Sprintf("INSERT INTO shopping_list (name, quantity) VALUES (%s, %s);",
			quote(op.Name), formatNumber(op.Quantity))
	case KindDeleteAll:
		return "DELETE FROM shopping_list;"
	case KindDelete:
		return fmt.Sprintf("DELETE FROM shopping_list WHERE name = %s;", quote(op.Name))
	case KindUpdateQuantity:
		return fmt.Sprintf("UPDATE shopping_list SET quantity = %s WHERE name = %s;",
			formatNumber(op.Quantity), quote(op.Name))
	case KindUpdateCompleted:
		return fmt.Sprintf("UPDATE shopping_list SET completed = 1 WHERE name = %s;", quote(op.Name))
	case KindSelect:
		return fmt.Sprintf("SELECT * FROM products WHERE name LIKE %s;", quote("%"+op.Name+"%"))
	}
	return ""
}

// quote wraps a literal in single quotes, doubling embedded quotes.
func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
