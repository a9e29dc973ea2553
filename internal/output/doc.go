// Package output provides styled terminal output for the generator.
//
// # Usage
//
//	output.Info("Creating extension: my_tool")
//	output.Created("tts_webui_extension.my_tool/README.md")
//	output.Warning("Could not read template .github/workflows/build_wheel.yml")
//	output.Error("Directory tts_webui_extension.my_tool already exists")
//
// Success, Info, Step and Verbose go to the standard writer (stdout by
// default). Error and Warning go to the error writer (stderr by default).
// Tests redirect both with SetWriters.
//
// # Styling
//
//   - Success: 🎉 green bold
//   - Done, Created: ✓ green
//   - Error: ❌ red bold
//   - Warning: ⚠️ yellow
//   - Info: cyan
//   - Step: indented gray
//   - Verbose: 🔍 gray (when enabled)
package output
