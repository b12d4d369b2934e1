// Package app holds application-wide constants.
package app

// Name is the application name used for config and data directories
const Name = "shiftbook"
