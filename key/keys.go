// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Bridge - these keys select the namespace shape published to guest scripts.
const (
	BridgeVariant = "bridge.variant"
)

// Script Runtime - these keys configure the embedded Lua virtual machine.
const (
	RuntimeDebug         = "runtime.debug"
	RuntimeLibs          = "runtime.libs"
	RuntimeBytecodeCache = "runtime.bytecode_cache"
)

// Notifications - these keys govern how guest notifications are delivered.
const (
	NotificationsBackend = "notifications.backend"
	NotificationsIcon    = "notifications.icon"
	NotificationsTitle   = "notifications.title"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)

// History - these keys control the list of recently run scripts.
const (
	HistoryRemember = "history.remember"
)
