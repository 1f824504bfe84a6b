/*
Package hostmock provides a pretend Tarmac host for waPC calls.

It lets hostlog tests check exactly what a logger sends to the host without a
real host running: the namespace, capability and function of every call, and
the raw message payload.

Quick start

	m, _ := hostmock.New(hostmock.Config{
	  ExpectedNamespace:  "tarmac",
	  ExpectedCapability: "logging",
	})

	l, _ := hostlog.New(hostlog.Config{HostCall: m.HostCall})
	simplelogger.Info(l, "hello")

	calls := m.Calls() // one call, Function "Info", Payload "hello"

Behavior

  - If Fail is true and Error is set, HostCall returns that error.
  - If Fail is true and Error is nil, HostCall returns ErrOperationFailed.
  - Otherwise, HostCall enforces whichever of ExpectedNamespace, Capability and
    Function are set, then runs PayloadValidator when provided.
  - Calls that pass validation are recorded and returned by Calls.
*/
package hostmock
