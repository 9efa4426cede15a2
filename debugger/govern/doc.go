// Package govern defines the type that describes the current condition of
// the PCB loop: its run State.
package govern
