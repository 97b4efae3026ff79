package exec

// Helpers for working with exec in tests.

import (
	"context"
	"sync"
)

// CommandCollector records every Command passed to its Run method. Safe for
// use in multiple goroutines as long as the delegate is.
//
//	mock := exec.CommandCollector{}
//	ctx := exec.NewContext(context.Background(), mock.Run)
//	err := exec.Run(ctx, &exec.Command{Name: "touch", Args: []string{"/tmp/file"}})
//	require.Equal(t, "touch /tmp/file", exec.DebugString(mock.Commands()[0]))
type CommandCollector struct {
	mutex       sync.RWMutex
	commands    []*Command
	delegateRun RunFn
}

// Commands returns a copy of the commands that have been run up to this point.
func (c *CommandCollector) Commands() []*Command {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return append([]*Command(nil), c.commands...)
}

// SetDelegateRun sets the func called after a command is recorded. Without a
// delegate, Run records the command and returns nil.
func (c *CommandCollector) SetDelegateRun(delegateRun RunFn) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.delegateRun = delegateRun
}

// Run records command and calls the delegate, if any.
func (c *CommandCollector) Run(ctx context.Context, command *Command) error {
	c.mutex.Lock()
	c.commands = append(c.commands, command)
	delegateRun := c.delegateRun
	c.mutex.Unlock()
	if delegateRun == nil {
		return nil
	}
	return delegateRun(ctx, command)
}
