package bootstrap

import "fmt"

type Action uint8

const (
	// ActionRoute hands the argument vector to the command router.
	ActionRoute Action = iota
	// ActionExit ends the process with Decision.Code.
	ActionExit
	// ActionInit runs the init command with Decision.Args.
	ActionInit
)

// Decision is where an invocation ends up. Exactly one is produced per run.
type Decision struct {
	Action Action
	Code   int
	Args   []string
}

func Route() Decision {
	return Decision{Action: ActionRoute}
}

func Exit(code int) Decision {
	return Decision{Action: ActionExit, Code: code}
}

func Init(args ...string) Decision {
	return Decision{Action: ActionInit, Args: args}
}

func (d Decision) String() string {
	switch d.Action {
	case ActionRoute:
		return "route"
	case ActionExit:
		return fmt.Sprintf("exit(%d)", d.Code)
	case ActionInit:
		return fmt.Sprintf("init%q", d.Args)
	default:
		return "invalid"
	}
}
