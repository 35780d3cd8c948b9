// SPDX-License-Identifier: Unlicense OR MIT

/*
Package key implements the keyboard modifier state carried by
pointer events.

The toolstrip engines only need to know which modifiers were held
while a pointer event happened: holding ModAlt while dragging a popup
border moves the popup instead of resizing it.
*/
package key

import "strings"

// Modifiers is a set of keyboard modifiers.
type Modifiers uint32

// Name is the identifier for a modifier key.
type Name string

const (
	// ModCtrl is the ctrl modifier key.
	ModCtrl Modifiers = 1 << iota
	// ModCommand is the command modifier key
	// found on Apple keyboards.
	ModCommand
	// ModShift is the shift modifier key.
	ModShift
	// ModAlt is the alt modifier key, or the option
	// key on Apple keyboards.
	ModAlt
	// ModSuper is the "logo" modifier key, often
	// represented by a Windows logo.
	ModSuper
)

const (
	NameCtrl    Name = "Ctrl"
	NameShift   Name = "Shift"
	NameAlt     Name = "Alt"
	NameSuper   Name = "Super"
	NameCommand Name = "⌘"
)

// Contain reports whether m contains all modifiers
// in m2.
func (m Modifiers) Contain(m2 Modifiers) bool {
	return m&m2 == m2
}

func (m Modifiers) String() string {
	var strs []string
	if m.Contain(ModCtrl) {
		strs = append(strs, string(NameCtrl))
	}
	if m.Contain(ModCommand) {
		strs = append(strs, string(NameCommand))
	}
	if m.Contain(ModShift) {
		strs = append(strs, string(NameShift))
	}
	if m.Contain(ModAlt) {
		strs = append(strs, string(NameAlt))
	}
	if m.Contain(ModSuper) {
		strs = append(strs, string(NameSuper))
	}
	return strings.Join(strs, "-")
}
