package app

import (
	"fmt"
	"os"
)

// Context holds application-wide output preferences shared by the commands
// and the extraction services.
type Context struct {
	// Output preferences
	OutputFormat string
	Verbose      bool
	Quiet        bool
}

// NewContext creates a new application context with table output
func NewContext() *Context {
	return &Context{
		OutputFormat: "table",
	}
}

// Log outputs a progress message when verbose output is enabled
func (c *Context) Log(message string) {
	if c != nil && !c.Quiet && c.Verbose {
		fmt.Println(message)
	}
}

// Logf outputs a formatted progress message when verbose output is enabled
func (c *Context) Logf(format string, args ...interface{}) {
	if c != nil && !c.Quiet && c.Verbose {
		fmt.Printf(format+"\n", args...)
	}
}

// Error outputs an error message unless quiet
func (c *Context) Error(message string) {
	if c == nil || !c.Quiet {
		fmt.Fprintln(os.Stderr, "Error:", message)
	}
}
