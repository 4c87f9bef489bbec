// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

// Namespace is the global slot the bridge table is published under.
const Namespace = "tiramisu"

// Injected Function Identifiers - the globals the host defines before the bridge preload runs.
const (
	InvokeFn   = "__TIRAMISU_INTERNAL_invoke"
	ReadFileFn = "__TIRAMISU_FILESYSTEM_readFile"
	ReadDirFn  = "__TIRAMISU_FILESYSTEM_readDir"
	ExistsFn   = "__TIRAMISU_INTERNAL_exists"
	NotifyFn   = "__TIRAMISU_NOTIFICATIONS_notify"
)

// ScriptExtension is the file extension of guest scripts.
const ScriptExtension = ".lua"
