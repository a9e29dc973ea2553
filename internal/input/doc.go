// Package input provides interactive terminal input.
//
// The generator only prompts when --interactive is set; flags and
// positional arguments always win over a prompt:
//
//	if attribution == "" && interactive {
//	    attribution = input.Prompt("GitHub username", extension.DefaultAttribution)
//	}
//
// Prompts are rendered with lipgloss: the message in cyan and bold, the
// default hint in gray.
package input
