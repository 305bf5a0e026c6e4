package chartpath

import (
	"errors"
	"fmt"
)

// ErrorCode represents specific error conditions while building a tree
type ErrorCode int

const (
	// No error occurred
	ErrCodeNone ErrorCode = iota
	// Node name was not found in the tree
	ErrCodeNodeNotFound
	// Node name is already used in the tree
	ErrCodeDuplicateNode
	// Node name is empty
	ErrCodeEmptyName
	// Pseudo target was given children
	ErrCodeInvalidChild
	// Tree or definition is invalid
	ErrCodeInvalidConfiguration
)

var (
	// ErrNodeNotFound is returned when a referenced node is not in the tree
	ErrNodeNotFound = errors.New("node not found")

	// ErrDuplicateNode is returned when two nodes share a name
	ErrDuplicateNode = errors.New("duplicate node")

	// ErrInvalidDefinition is returned when a tree definition cannot be used
	ErrInvalidDefinition = errors.New("invalid definition")
)

// NodeError represents node-related errors
type NodeError struct {
	Code    ErrorCode
	Node    string
	Message string
	Err     error
}

func (e *NodeError) Error() string {
	return fmt.Sprintf("node error [%s]: %s", e.Node, e.Message)
}

func (e *NodeError) Unwrap() error {
	return e.Err
}

// NewNodeNotFoundError creates a new node not found error
func NewNodeNotFoundError(name string) *NodeError {
	return &NodeError{
		Code:    ErrCodeNodeNotFound,
		Node:    name,
		Message: fmt.Sprintf("node '%s' not found", name),
		Err:     ErrNodeNotFound,
	}
}

// NewDuplicateNodeError creates a new duplicate node error
func NewDuplicateNodeError(name string) *NodeError {
	return &NodeError{
		Code:    ErrCodeDuplicateNode,
		Node:    name,
		Message: fmt.Sprintf("node '%s' is declared more than once", name),
		Err:     ErrDuplicateNode,
	}
}

// NewNodeError creates a new node error with custom values
func NewNodeError(code ErrorCode, name string, message string) *NodeError {
	return &NodeError{
		Code:    code,
		Node:    name,
		Message: message,
	}
}

// ConfigurationError represents tree or definition configuration issues
type ConfigurationError struct {
	Component string
	Issue     string
	Err       error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("configuration error in %s: %s: %v", e.Component, e.Issue, e.Err)
	}
	return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Issue)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// NewConfigurationError creates a new configuration error
func NewConfigurationError(component, issue string) *ConfigurationError {
	return &ConfigurationError{
		Component: component,
		Issue:     issue,
	}
}

// IsNodeError checks if an error is or wraps a NodeError
func IsNodeError(err error) bool {
	var e *NodeError
	return errors.As(err, &e)
}

// IsConfigurationError checks if an error is or wraps a ConfigurationError
func IsConfigurationError(err error) bool {
	var e *ConfigurationError
	return errors.As(err, &e)
}

// GetErrorCode returns the error code for known error types
func GetErrorCode(err error) ErrorCode {
	var nodeErr *NodeError
	if errors.As(err, &nodeErr) {
		return nodeErr.Code
	}
	var cfgErr *ConfigurationError
	if errors.As(err, &cfgErr) {
		return ErrCodeInvalidConfiguration
	}
	return ErrCodeNone
}
