package chartpath

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrors_ErrorCode(t *testing.T) {
	testCases := []ErrorCode{
		ErrCodeNone,
		ErrCodeNodeNotFound,
		ErrCodeDuplicateNode,
		ErrCodeEmptyName,
		ErrCodeInvalidChild,
		ErrCodeInvalidConfiguration,
	}

	for i, code := range testCases {
		if int(code) != i {
			t.Errorf("Expected error code %d to have value %d", i, int(code))
		}
	}
}

func TestNodeError_Creation(t *testing.T) {
	err := NewNodeNotFoundError("test_node")

	if err.Code != ErrCodeNodeNotFound {
		t.Errorf("Expected error code %v, got %v", ErrCodeNodeNotFound, err.Code)
	}

	if err.Node != "test_node" {
		t.Errorf("Expected node 'test_node', got '%s'", err.Node)
	}

	if !strings.Contains(err.Error(), "test_node") {
		t.Error("Expected error string to contain node name")
	}

	if !errors.Is(err, ErrNodeNotFound) {
		t.Error("Expected error to wrap ErrNodeNotFound")
	}
}

func TestNodeError_CustomError(t *testing.T) {
	err := NewNodeError(ErrCodeInvalidChild, "custom_node", "custom message")

	if err.Code != ErrCodeInvalidChild {
		t.Error("Expected custom error code")
	}

	if err.Error() != "node error [custom_node]: custom message" {
		t.Errorf("Unexpected error string: %s", err.Error())
	}

	if err.Unwrap() != nil {
		t.Error("Expected custom error to wrap nothing")
	}
}

func TestConfigurationError(t *testing.T) {
	err := NewConfigurationError("Tree", "no nodes declared")

	if err.Error() != "configuration error in Tree: no nodes declared" {
		t.Errorf("Unexpected error string: %s", err.Error())
	}

	wrapped := &ConfigurationError{Component: "Definition", Issue: "decode yaml", Err: errors.New("bad indent")}
	if !strings.HasSuffix(wrapped.Error(), ": bad indent") {
		t.Errorf("Expected cause in error string, got %s", wrapped.Error())
	}
}

func TestErrors_TypeChecks(t *testing.T) {
	nodeErr := fmt.Errorf("lookup: %w", NewDuplicateNodeError("x"))
	cfgErr := fmt.Errorf("load: %w", NewConfigurationError("Definition", "no states"))
	plain := errors.New("plain")

	if !IsNodeError(nodeErr) || IsNodeError(cfgErr) || IsNodeError(plain) {
		t.Error("IsNodeError misclassified an error")
	}
	if !IsConfigurationError(cfgErr) || IsConfigurationError(nodeErr) || IsConfigurationError(plain) {
		t.Error("IsConfigurationError misclassified an error")
	}

	if GetErrorCode(nodeErr) != ErrCodeDuplicateNode {
		t.Errorf("Expected duplicate code, got %v", GetErrorCode(nodeErr))
	}
	if GetErrorCode(cfgErr) != ErrCodeInvalidConfiguration {
		t.Errorf("Expected configuration code, got %v", GetErrorCode(cfgErr))
	}
	if GetErrorCode(plain) != ErrCodeNone {
		t.Errorf("Expected no code, got %v", GetErrorCode(plain))
	}
}
