// Package registry is the single source of truth for which opcodes exist
// and what they do.
//
// The Registry maps opcode strings to operator definitions, each tagged
// with the name of the group that loaded it. Groups are the unit of bulk
// lifecycle: a whole group can be loaded in one call and evicted in one
// call, while dispatch always goes through the flat opcode mapping.
//
// The standard set is installed under the "std" tag when the registry is
// constructed and can never be evicted. Later groups may shadow any
// existing opcode, including a standard one — last loaded wins, so users
// can override the built-ins from a plugin.
package registry
