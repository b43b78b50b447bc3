package constant

// ExportFn is the global function every custom Lua exporter must define.
const ExportFn = "Export"

// ExporterTemplate is a Go text/template for scaffolding new Lua exporters.
const ExporterTemplate = `{{ $divider := repeat "-" (plus (max (len .Name) (len .Author) 3) 12) }}{{ $divider }}
-- @name    {{ .Name }}
-- @author  {{ .Author }}
-- @license MIT
{{ $divider }}


---@alias shade { shade: number, value: string, hex: string, r: number, g: number, b: number }
---@alias document { name: string, input: string, value: string|nil, shades: shade[]|nil }


--- Renders a generated palette.
-- @param doc document Palette to render. Either shades or value is set.
-- @return string Rendered output
function {{ .ExportFn }}(doc)
	if doc.value ~= nil then
		return doc.name .. " = " .. doc.value .. "\n"
	end

	local out = ""
	for _, s in ipairs(doc.shades) do
		out = out .. doc.name .. "-" .. s.shade .. " = " .. s.value .. "\n"
	end
	return out
end

-- ex: ts=4 sw=4 et filetype=lua
`
