// Package chain holds the chain data helpers shared by the query adapter,
// the providers and the binding layers: status codes, completion handler
// shapes, owned payload copies and script inspection.
package chain

import (
	"context"
	"errors"
	"strconv"
)

// Code is a provider status code. Zero is success; any other value is a
// provider-defined failure and is passed through unchanged.
type Code int

const (
	Success         Code = 0
	ServiceStopped  Code = 1
	OperationFailed Code = 2
	NotFound        Code = 3
	Duplicate       Code = 4
	UnspentOutput   Code = 5
	ChannelTimeout  Code = 13
	ChannelStopped  Code = 15
)

var codeNames = map[Code]string{
	Success:         "success",
	ServiceStopped:  "service stopped",
	OperationFailed: "operation failed",
	NotFound:        "object does not exist",
	Duplicate:       "matching previous object found",
	UnspentOutput:   "unspent output",
	ChannelTimeout:  "channel timed out",
	ChannelStopped:  "channel stopped",
}

func (c Code) Error() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "chain code " + strconv.Itoa(int(c))
}

// Err returns nil for Success and the code itself otherwise.
func (c Code) Err() error {
	if c == Success {
		return nil
	}
	return c
}

// Label renders the code for metric labels.
func (c Code) Label() string {
	return strconv.Itoa(int(c))
}

// CodeOf flattens an error into a status code.
func CodeOf(err error) Code {
	if err == nil {
		return Success
	}
	var code Code
	if errors.As(err, &code) {
		return code
	}
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return ChannelTimeout
	case errors.Is(err, context.Canceled):
		return ChannelStopped
	}
	return OperationFailed
}
