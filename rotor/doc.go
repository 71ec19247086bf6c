// Package rotor implements a single substitution wheel of an Enigma-style
// rotor machine.
//
// A rotor carries a forward substitution cipher over a closed alphabet of
// `base` symbols, its derived inverse, a set of notched positions, and a
// rotation offset. Advancing a rotor across one or more notches invokes its
// turnover callback with the aggregate crossing count; a machine uses the
// callback to link each rotor to the next one in the assembly.
package rotor
