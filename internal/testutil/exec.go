package testutil

import (
	"context"
	"fmt"
	"strings"

	"github.com/Pavinberg/monat/internal/cmdexec"
)

// Call is one command invocation seen by FakeCommander.
type Call struct {
	Dir  string
	Name string
	Args []string
}

// String renders the call as "name arg1 arg2".
func (c Call) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

type response struct {
	output []byte
	err    error
}

// FakeCommander is a scripted cmdexec.Commander. A registered key matches a
// call whose "name args..." form equals it or starts with it; the longest
// matching key wins.
type FakeCommander struct {
	// Calls records every invocation in order.
	Calls []Call

	responses map[string]response
	missing   map[string]bool
}

var _ cmdexec.Commander = (*FakeCommander)(nil)

// NewFakeCommander creates a FakeCommander with nothing registered.
func NewFakeCommander() *FakeCommander {
	return &FakeCommander{
		responses: make(map[string]response),
		missing:   make(map[string]bool),
	}
}

// Register scripts the output and error for calls matching key.
func (c *FakeCommander) Register(key string, output string, err error) {
	c.responses[key] = response{output: []byte(output), err: err}
}

// Missing makes name behave like a binary absent from PATH.
func (c *FakeCommander) Missing(name string) {
	c.missing[name] = true
}

// Run records the call and returns the scripted response.
func (c *FakeCommander) Run(_ context.Context, dir, name string, args ...string) ([]byte, error) {
	call := Call{Dir: dir, Name: name, Args: args}
	c.Calls = append(c.Calls, call)

	if c.missing[name] {
		return nil, fmt.Errorf("cmdexec.Run: %q: %w", name, cmdexec.ErrCommandNotFound)
	}

	full := call.String()
	bestKey, found := "", false
	for key := range c.responses {
		if strings.HasPrefix(full, key) && (!found || len(key) > len(bestKey)) {
			bestKey, found = key, true
		}
	}
	if !found {
		return nil, fmt.Errorf("FakeCommander: no response registered for %q", full)
	}
	resp := c.responses[bestKey]
	return resp.output, resp.err
}

// Commands returns each recorded call in "name args..." form.
func (c *FakeCommander) Commands() []string {
	out := make([]string, len(c.Calls))
	for i, call := range c.Calls {
		out[i] = call.String()
	}
	return out
}

// Dirs returns the working directory of each recorded call.
func (c *FakeCommander) Dirs() []string {
	out := make([]string, len(c.Calls))
	for i, call := range c.Calls {
		out[i] = call.Dir
	}
	return out
}
