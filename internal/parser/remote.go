package parser

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/harshit-2705/Voice-Command-Shopping-Assistant/internal/command"
)

// Remote submits instructions to a text-completion proxy that returns a
// JSON command. Any failure — network, timeout, invalid JSON, unknown
// action — falls back to the wrapped parser, so Parse never surfaces a
// remote error to the caller.
type Remote struct {
	url      string
	client   *http.Client
	fallback Parser
}

// NewRemote creates a remote parser with a bounded request timeout.
// fallback must not be nil.
func NewRemote(url string, timeout time.Duration, fallback Parser) *Remote {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Remote{
		url:      url,
		client:   &http.Client{Timeout: timeout},
		fallback: fallback,
	}
}

// Parse attempts the remote service first, then the local fallback.
func (r *Remote) Parse(ctx context.Context, text string) (*command.Command, error) {
	cmd, err := r.parseRemote(ctx, text)
	if err != nil {
		return r.fallback.Parse(ctx, text)
	}
	return cmd, nil
}

// parseRequest is the wire request body.
type parseRequest struct {
	Instruction string `json:"instruction"`
}

// parsePayload is the JSON command contract shared with the service:
// {"action":"ADD"|"REMOVE"|"UPDATE"|"SEARCH"|"CLEAR"|"COMPLETE",
//  "item":string|null, "quantity":number|null, "metadata":{}}.
type parsePayload struct {
	Action   string             `json:"action"`
	Item     *string            `json:"item"`
	Quantity *float64           `json:"quantity"`
	Metadata map[string]float64 `json:"metadata"`
}

// parseEnvelope is the optional {"ok":true,"result":{...}} wrapper.
type parseEnvelope struct {
	Result json.RawMessage `json:"result"`
}

func (r *Remote) parseRemote(ctx context.Context, text string) (*command.Command, error) {
	body, err := json.Marshal(parseRequest{Instruction: text})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("parser service returned %d", resp.StatusCode)
	}

	payload, err := decodePayload(raw)
	if err != nil {
		return nil, err
	}
	return payloadToCommand(payload)
}

// decodePayload locates the first brace-delimited JSON object in the
// response text and unwraps the {ok, result} envelope when present.
func decodePayload(raw []byte) (*parsePayload, error) {
	span, err := extractJSON(string(raw))
	if err != nil {
		return nil, err
	}

	var envelope parseEnvelope
	if err := json.Unmarshal([]byte(span), &envelope); err == nil && len(envelope.Result) > 0 {
		span = string(envelope.Result)
	}

	var payload parsePayload
	if err := json.Unmarshal([]byte(span), &payload); err != nil {
		return nil, fmt.Errorf("invalid parser response: %w", err)
	}
	return &payload, nil
}

// extractJSON returns the first '{' through last '}' span of text.
func extractJSON(text string) (string, error) {
	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start < 0 || end <= start {
		return "", fmt.Errorf("no JSON object in response")
	}
	return text[start : end+1], nil
}

// payloadToCommand maps the wire payload onto the closed action set and
// validates required slots, mirroring the local parser's contract.
func payloadToCommand(p *parsePayload) (*command.Command, error) {
	var action command.Action
	switch strings.ToUpper(strings.TrimSpace(p.Action)) {
	case "ADD":
		action = command.ActionAdd
	case "REMOVE":
		action = command.ActionRemove
	case "UPDATE", "MODIFY":
		action = command.ActionModify
	case "SEARCH", "FIND":
		action = command.ActionSearch
	case "CLEAR":
		action = command.ActionClear
	case "COMPLETE":
		action = command.ActionComplete
	case "PRICE":
		action = command.ActionPrice
	default:
		return nil, fmt.Errorf("unknown action %q", p.Action)
	}

	item := ""
	if p.Item != nil {
		item = strings.ToLower(strings.TrimSpace(*p.Item))
	}
	if item == "" && requiresItem(action) {
		return nil, ErrNoCommand
	}

	cmd := &command.Command{
		Action:  action,
		Item:    item,
		Filters: map[string]float64{},
	}
	for k, v := range p.Metadata {
		cmd.Filters[k] = v
	}
	if p.Quantity != nil {
		cmd.Quantity = command.Qty(*p.Quantity)
	} else if action == command.ActionAdd {
		cmd.Quantity = command.Qty(1)
	}
	return cmd, nil
}
