package main

import (
	"fmt"
)

const complete = `#! /bin/bash

_morphpipe_autocomplete() {
    local cur opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"

    # the app lists the commands and flags valid after the typed words
    opts=$( "${COMP_WORDS[@]:0:$COMP_CWORD}" --generate-bash-completion 2>/dev/null )

    COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
    return 0
}

complete -o default -F _morphpipe_autocomplete morphpipe
`

func bashCommand(ui UI) error {
	_, err := fmt.Fprint(ui.Out, complete)
	return err
}
