// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

// ScriptTemplate is a Go text/template for scaffolding new guest scripts.
const ScriptTemplate = `{{ $divider := repeat "-" (plus (max (len .Name) (len .Author) 3) 12) }}{{ $divider }}
-- @name    {{ .Name }}
-- @author  {{ .Author }}
-- @bridge  {{ .Variant }}
{{ $divider }}


---@class promise
---@field await fun(self: promise): any
---@field result fun(self: promise): any, string|nil
---@field done fun(self: promise): boolean


----- MAIN -----

local entries = {{ .Namespace }}.fs.readDir("."):await()
for _, name in ipairs(entries) do
	print(name)
end
{{ if .Full }}
if {{ .Namespace }}.fs.exists("README.md"):await() then
	{{ .Namespace }}.notifications.notify("README.md found"):await()
end
{{ end }}
--- END MAIN ---

-- ex: ts=4 sw=4 et filetype=lua
`
