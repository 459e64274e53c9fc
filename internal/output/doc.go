// Package output turns parsed records into Quadlet unit text or a podman
// command line.
//
// Pairs formats every record into (key, value) lines. In config mode the key
// is the option name and pair params stay on one line. In command mode the
// key is the podman flag and a pair param is split into one line per entry.
// Quadlet and Command then assemble the lines into the final text.
//
// Values are not shell escaped in command mode.
package output
