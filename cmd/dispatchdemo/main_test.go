package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zircuit-labs/zkr-go-delegates/runner"
	"github.com/zircuit-labs/zkr-go-delegates/showcase"
)

func TestDispatchDemo(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := runner.Execute("dispatchdemo", settings, nil, &stdout, &stderr, showcase.DispatchProgram)
	assert.Equal(t, 0, code, stderr.String())
	assert.Equal(t, "3\n-1\n", stdout.String())
}
