// Package schema provides the principal schematics for all other packages. It
// defines the attribute target, the error taxonomy shared by every layer and
// provides implementations for handling the (Unix-based) operating system
// extended attribute syscalls. The package serves as a foundational layer for
// attribute interactions throughout the codebase.
package schema
