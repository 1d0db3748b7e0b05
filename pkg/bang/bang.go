// Package bang builds the command-line vocabulary of the Rainmeter
// engine: the bang commands the editor issues to load, refresh and
// unload dock instances, and the mouse-action strings written into skin
// files. It is a pure string layer, so other skin tooling can reuse it;
// no process is started here.
package bang

import (
	"regexp"
	"strings"
)

// Command is one engine invocation in argv form.
type Command struct {
	// Name is the bang itself, e.g. "!Refresh".
	Name string
	// Args are the bang's arguments, unquoted. os/exec passes argv
	// directly, so shell quoting never enters the picture.
	Args []string
}

// Argv returns the argument vector to pass to the engine executable.
func (c Command) Argv() []string {
	return append([]string{c.Name}, c.Args...)
}

// String renders the command the way it would look typed into a shell,
// for logs and status messages.
func (c Command) String() string {
	parts := []string{c.Name}
	for _, a := range c.Args {
		parts = append(parts, `"`+a+`"`)
	}
	return strings.Join(parts, " ")
}

// ConfigName joins a skin group and instance into the engine's
// "<group>\<instance>" config name. The engine expects a backslash on
// every platform: this is its config namespace, not a file path.
func ConfigName(group, instance string) string {
	return group + `\` + instance
}

// ActivateConfig builds the bang that loads a named config file and
// starts rendering it. Issued against a stopped engine it also starts
// the engine.
func ActivateConfig(group, instance, file string) Command {
	return Command{Name: "!ActivateConfig", Args: []string{ConfigName(group, instance), file}}
}

// Refresh builds the bang that reloads an already-active config from disk.
func Refresh(group, instance string) Command {
	return Command{Name: "!Refresh", Args: []string{ConfigName(group, instance)}}
}

// UnloadSkin builds the bang that unloads a config from the engine.
func UnloadSkin(group, instance string) Command {
	return Command{Name: "!UnloadSkin", Args: []string{ConfigName(group, instance)}}
}

// actionRe matches the first bracketed group that holds a command
// rather than a bang: either a double-quoted command token with optional
// trailing arguments, ["C:\app.exe" args], or a bare unquoted command,
// [C:\app.exe]. Bracketed bangs ([!SetOption ...]) never match because
// they open with '!'.
var actionRe = regexp.MustCompile(`\[\s*("[^"]*"[^\[\]]*|[^!\s\[\]][^\[\]]*)\]`)

// ExecuteAction wraps a command string into the activation action stored
// on a dock entry.
func ExecuteAction(appPath string) string {
	return "[" + appPath + "]"
}

// AppFromAction extracts the command string from an activation action.
// The bracket content is kept verbatim: a quoted command keeps its
// surrounding quotes and trailing arguments, a hand-written bare command
// comes back exactly as written. ok is false when the action holds only
// bangs, or nothing at all.
func AppFromAction(action string) (appPath string, ok bool) {
	m := actionRe.FindStringSubmatch(action)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

// HoverInAction dims the hovered entry so the dock gives pointer feedback
// without any engine-side scripting.
func HoverInAction() string {
	return "[!SetOption #CURRENTSECTION# ImageAlpha 150][!UpdateMeter #CURRENTSECTION#][!Redraw]"
}

// HoverOutAction restores the entry when the pointer leaves.
func HoverOutAction() string {
	return "[!SetOption #CURRENTSECTION# ImageAlpha 255][!UpdateMeter #CURRENTSECTION#][!Redraw]"
}
