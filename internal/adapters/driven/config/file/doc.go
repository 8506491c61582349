// Package file provides file-based implementations of driven port interfaces.
// These adapters persist data under the user's ~/.titan directory.
//
// Adapters:
//   - ConfigStore: TOML-based configuration storage
//   - PromptStore: user-editable generator prompts with embedded defaults
//   - Watcher: fsnotify-based change notification for the config file
package file
