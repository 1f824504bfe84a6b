/*
Package simplelogger defines a minimal leveled logging contract for library
authors who want to emit diagnostics without choosing a logging backend for
their users.

A Logger owns its threshold and decides what happens to each record. This
package never filters, formats, or writes anything itself. Library code takes
a Logger from its caller, passes it through Normalize once, and then logs
unconditionally:

	func Resolve(name string, l simplelogger.Logger) {
		log := simplelogger.Normalize(l)
		simplelogger.Debug(log, "resolving "+name)
	}

Passing nil selects the shared null logger, which discards everything and
reports itself inactive so callers can skip building expensive messages.

Ready-made implementations live in sub-packages: hostlog forwards records to
the Tarmac host runtime, zerologger and logruslogger adapt popular logging
libraries, and loggertest records entries for assertions in tests.
*/
package simplelogger
