/*
Package hostlog implements simplelogger.Logger on top of the Tarmac host
logging capability.

Records that pass the logger's threshold are sent to the host as waPC calls on
the "logging" capability, using the function named after the level (Info,
Debug or Trace) and the raw message as payload. Emission is best-effort and
never returns errors, in line with the other Tarmac capability clients.
*/
package hostlog
