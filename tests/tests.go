// Package tests gives each test a context that carries its identity and
// sends amp-lookup logs to the test's own output.
//
//	func TestLookup(t *testing.T) {
//	    ctx := tests.GetUniqueContext(t)
//	    svc.Binary(ctx, products, 4) // debug logs show up under -v, tagged with the test id
//	}
package tests

import (
	"context"
	"testing"

	"github.com/amp-labs/amp-lookup/envutil"
	"github.com/amp-labs/amp-lookup/logger"
	"github.com/google/uuid"
	"github.com/neilotoole/slogt"
)

type contextKey string

const (
	// testIdKey holds "test-" followed by a random UUID.
	testIdKey contextKey = "testId"

	// testNameKey holds t.Name(), including any subtest path.
	testNameKey contextKey = "testName"
)

// TestInfo identifies the test a context belongs to.
type TestInfo struct {
	Id   string
	Name string
}

// GetUniqueContext derives a context from t.Context() that carries a unique
// test id and the test name, and whose amp-lookup loggers write through
// t.Log with both attached. The context is cancelled when the test ends.
func GetUniqueContext(t *testing.T) context.Context {
	t.Helper()

	id := "test-" + uuid.New().String()

	ctx := context.WithValue(t.Context(), testIdKey, id)
	ctx = context.WithValue(ctx, testNameKey, t.Name())
	ctx = logger.WithLogger(ctx, slogt.New(t))

	return logger.With(ctx, "test_id", id, "test_name", t.Name())
}

// GetTestInfo returns the identity stored by GetUniqueContext.
func GetTestInfo(ctx context.Context) (TestInfo, bool) {
	id, idOK := ctx.Value(testIdKey).(string)
	name, nameOK := ctx.Value(testNameKey).(string)

	if !idOK || !nameOK {
		return TestInfo{}, false
	}

	return TestInfo{Id: id, Name: name}, true
}

// CheckSkipped skips t when the boolean environment variable envKey is true
// (or defaultValue, when it is unset).
func CheckSkipped(t *testing.T, envKey string, defaultValue bool) {
	t.Helper()

	if envutil.Bool(envKey, envutil.Default(defaultValue)).ValueOrElse(defaultValue) {
		t.Skipf("Skipping test because of environment variable: %s", envKey)
	}
}
