package jsonlog

import (
	"CourtsideApi/internal/assert"
	"bytes"
	"errors"
	"testing"
)

func TestPrintInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, LevelInfo)

	logger.PrintInfo("server started", map[string]string{"addr": ":8008"})

	assert.StringContains(t, buf.String(), `"level":"info"`)
	assert.StringContains(t, buf.String(), `"message":"server started"`)
	assert.StringContains(t, buf.String(), `"addr":":8008"`)
}

func TestPrintErrorIncludesTrace(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, LevelInfo)

	logger.PrintError(errors.New("boom"), nil)

	assert.StringContains(t, buf.String(), `"level":"error"`)
	assert.StringContains(t, buf.String(), `"trace"`)
}

func TestMinLevelSuppressesInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, LevelError)

	logger.PrintInfo("quiet", nil)

	assert.Equal(t, buf.Len(), 0)
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, LevelError)

	n, err := logger.Write([]byte("http: server error"))

	assert.NilError(t, err)
	assert.Equal(t, n, len("http: server error"))
	assert.StringContains(t, buf.String(), "http: server error")
}
