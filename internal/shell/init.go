package shell

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrUnsupportedShell is returned by WriteInit for unknown shells.
var ErrUnsupportedShell = errors.New("unsupported shell")

const bashInit = `# daila shell integration
__daila_prompt_hook() {
  eval "$(command daila status --env 2>/dev/null)"
}

daila_prompt_info() {
  printf '%s %s/%s %s%s' "$DAILA_ICON" "$DAILA_DONE" "$DAILA_TOTAL" "$DAILA_STREAK" "$DAILA_STREAK_ICON"
}

if [[ -z "$PROMPT_COMMAND" ]]; then
  PROMPT_COMMAND="__daila_prompt_hook"
else
  PROMPT_COMMAND="__daila_prompt_hook;${PROMPT_COMMAND}"
fi

eval "$(command daila completion bash 2>/dev/null)"
`

const zshInit = `# daila shell integration
__daila_prompt_hook() {
  eval "$(command daila status --env 2>/dev/null)"
}

daila_prompt_info() {
  printf '%s %s/%s %s%s' "$DAILA_ICON" "$DAILA_DONE" "$DAILA_TOTAL" "$DAILA_STREAK" "$DAILA_STREAK_ICON"
}

autoload -Uz add-zsh-hook
add-zsh-hook precmd __daila_prompt_hook

eval "$(command daila completion zsh 2>/dev/null)"
`

var scripts = map[string]string{
	"bash": bashInit,
	"zsh":  zshInit,
}

// Supported returns the shells WriteInit knows, in a stable order.
func Supported() []string {
	return []string{"bash", "zsh"}
}

// WriteInit writes the integration script for shellName to w.
func WriteInit(w io.Writer, shellName string) error {
	script, ok := scripts[shellName]
	if !ok {
		return fmt.Errorf("%w %q (supported: %s)", ErrUnsupportedShell, shellName, strings.Join(Supported(), ", "))
	}
	_, err := io.WriteString(w, script)
	return err
}
