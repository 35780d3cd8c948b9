// SPDX-License-Identifier: Unlicense OR MIT

/*
Package input implements the routing of pointer events from a host to
the widget.Box trees of a user interface.

A host feeds every pointer event, in screen coordinates, to
Router.Queue. The router finds the topmost visible box under the pointer
across its roots, synthesizes Enter and Leave events when that box
changes, grabs the pointer for the pressed box until release, and
delivers the event with Position relative to the receiving box.

Scroll events travel from the box under the pointer to its ancestors.
A box takes the part of the distance within its ScrollRange and passes
the rest on, so nested scrolling boxes scroll the outer one once the
inner one reaches its end.
*/
package input
