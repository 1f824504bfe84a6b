// Package hostmetrics emits counters through the Tarmac host metrics capability.
package hostmetrics

import (
	"errors"
	"regexp"

	proto "github.com/tarmac-project/protobuf-go/sdk/metrics"
)

const (
	capabilityName = "metrics"
	fnCounter      = "counter"
)

var (
	// ErrInvalidMetricName indicates a metric name that does not match the supported format.
	ErrInvalidMetricName = errors.New("metric name is invalid")

	isMetricNameValid = regexp.MustCompile(`^[a-zA-Z0-9_:]+$`)
)

// HostCall defines the waPC host function signature used by metrics operations.
type HostCall func(string, string, string, []byte) ([]byte, error)

// Counter is a named host counter.
type Counter struct {
	name      string
	namespace string
	hostCall  HostCall
}

// NewCounter validates name and returns a Counter bound to namespace.
func NewCounter(namespace, name string, hostCall HostCall) (*Counter, error) {
	if !isMetricNameValid.MatchString(name) {
		return nil, ErrInvalidMetricName
	}
	return &Counter{name: name, namespace: namespace, hostCall: hostCall}, nil
}

// Inc increments the counter by one. Failures are dropped.
func (c *Counter) Inc() {
	payload, err := (&proto.MetricsCounter{Name: c.name}).MarshalVT()
	if err != nil {
		return
	}
	_, _ = c.hostCall(c.namespace, capabilityName, fnCounter, payload)
}
