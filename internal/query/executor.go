package query

import (
	"strconv"
	"strings"

	"github.com/harshit-2705/Voice-Command-Shopping-Assistant/internal/command"
	"github.com/harshit-2705/Voice-Command-Shopping-Assistant/internal/shopping"
)

// Execute applies an operation to the list by delegating to the
// canonical command executor, keeping both execution paths on one
// semantic set. The input list is never mutated.
func Execute(op Op, list []shopping.Item) ([]shopping.Item, string) {
	switch op.Kind {
	case KindInsert:
		out, msg := command.Apply(&command.Command{
			Action:   command.ActionAdd,
			Item:     op.Name,
			Quantity: command.Qty(op.Quantity),
		}, list)
		return out, msg
	case KindDeleteAll:
		out, msg := command.Apply(&command.Command{Action: command.ActionClear}, list)
		return out, msg
	case KindDelete:
		out, msg := command.Apply(&command.Command{
			Action: command.ActionRemove,
			Item:   op.Name,
		}, list)
		return out, msg
	case KindUpdateQuantity:
		out, msg := command.Apply(&command.Command{
			Action:   command.ActionModify,
			Item:     op.Name,
			Quantity: command.Qty(op.Quantity),
		}, list)
		return out, msg
	case KindUpdateCompleted:
		out, msg := command.Apply(&command.Command{
			Action: command.ActionComplete,
			Item:   op.Name,
		}, list)
		return out, msg
	case KindSelect:
		// Catalog search lives outside this layer; the list is untouched.
		return list, ""
	}
	return list, ""
}

// ExecuteText parses a textual query and executes it. Text that fails to
// parse leaves the list unchanged rather than raising.
func ExecuteText(text string, list []shopping.Item) ([]shopping.Item, string) {
	op, ok := Parse(text)
	if !ok {
		return list, ""
	}
	return Execute(op, list)
}

// Parse reads the textual form back into an Op. Leading keywords are
// matched case-insensitively; quoted literals honor doubled-quote
// escapes. Returns ok=false for anything outside the five-op grammar.
func Parse(text string) (Op, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Op{}, false
	}
	upper := strings.ToUpper(text)

	switch {
	case strings.HasPrefix(upper, "INSERT INTO SHOPPING_LIST"):
		return parseInsert(text, upper)
	case strings.HasPrefix(upper, "DELETE FROM SHOPPING_LIST"):
		if strings.Contains(upper, "WHERE") {
			name, ok := literalAfter(text, upper, "WHERE")
			if !ok {
				return Op{}, false
			}
			return Op{Kind: KindDelete, Name: strings.ToLower(name)}, true
		}
		return Op{Kind: KindDeleteAll}, true
	case strings.HasPrefix(upper, "UPDATE SHOPPING_LIST SET QUANTITY"):
		return parseUpdateQuantity(text, upper)
	case strings.HasPrefix(upper, "UPDATE SHOPPING_LIST SET COMPLETED"):
		name, ok := literalAfter(text, upper, "WHERE")
		if !ok {
			return Op{}, false
		}
		return Op{Kind: KindUpdateCompleted, Name: strings.ToLower(name)}, true
	case strings.HasPrefix(upper, "SELECT"):
		pattern, ok := literalAfter(text, upper, "LIKE")
		if !ok {
			return Op{}, false
		}
		pattern = strings.TrimSuffix(strings.TrimPrefix(pattern, "%"), "%")
		return Op{Kind: KindSelect, Name: strings.ToLower(pattern)}, true
	}
	return Op{}, false
}

func parseInsert(text, upper string) (Op, bool) {
	at := strings.Index(upper, "VALUES")
	if at < 0 {
		return Op{}, false
	}
	name, rest, ok := scanQuoted(text[at:])
	if !ok {
		return Op{}, false
	}
	qty, ok := scanNumber(rest)
	if !ok {
		return Op{}, false
	}
	return Op{Kind: KindInsert, Name: strings.ToLower(name), Quantity: qty}, true
}

func parseUpdateQuantity(text, upper string) (Op, bool) {
	eq := strings.Index(upper, "=")
	if eq < 0 {
		return Op{}, false
	}
	qty, ok := scanNumber(text[eq+1:])
	if !ok {
		return Op{}, false
	}
	name, ok := literalAfter(text, upper, "WHERE")
	if !ok {
		return Op{}, false
	}
	return Op{Kind: KindUpdateQuantity, Name: strings.ToLower(name), Quantity: qty}, true
}

// literalAfter extracts the first quoted literal following a keyword.
func literalAfter(text, upper, keyword string) (string, bool) {
	at := strings.Index(upper, keyword)
	if at < 0 {
		return "", false
	}
	name, _, ok := scanQuoted(text[at:])
	return name, ok
}

// scanQuoted extracts the first single-quoted literal, treating '' as an
// escaped quote. Returns the literal and the remainder of the input.
func scanQuoted(s string) (literal, rest string, ok bool) {
	start := strings.IndexByte(s, '\'')
	if start < 0 {
		return "", "", false
	}
	var b strings.Builder
	i := start + 1
	for i < len(s) {
		if s[i] != '\'' {
			b.WriteByte(s[i])
			i++
			continue
		}
		if i+1 < len(s) && s[i+1] == '\'' {
			b.WriteByte('\'')
			i += 2
			continue
		}
		return b.String(), s[i+1:], true
	}
	return "", "", false // unterminated literal
}

// scanNumber extracts the first decimal number in s.
func scanNumber(s string) (float64, bool) {
	start := -1
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= '0' && c <= '9' {
			start = i
			break
		}
	}
	if start < 0 {
		return 0, false
	}
	end := start
	seenDot := false
	for end < len(s) {
		c := s[end]
		if c == '.' && !seenDot {
			seenDot = true
			end++
			continue
		}
		if c < '0' || c > '9' {
			break
		}
		end++
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(s[start:end], "."), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
