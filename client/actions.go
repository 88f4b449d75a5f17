package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/ffoerster/ee-ark/client/internal/api"
	"github.com/ffoerster/ee-ark/client/internal/types"
)

// Action enumerates the operations the registry client can perform.
type Action int

const (
	ActionQuery Action = iota
	ActionUpdate
	ActionMint
	ActionQueryCSV
	ActionUpdateCSV
	ActionMintCSV
	ActionStatus
)

// handler runs one action. credential is empty unless the table entry is
// marked authenticated.
type handler func(ctx context.Context, t types.Transport, credential string, req types.ActionRequest) (types.Response, error)

type actionSpec struct {
	name          string
	authenticated bool
	run           handler
}

// actionTable is the dispatch table, indexed by Action.
var actionTable = [...]actionSpec{
	ActionQuery: {"query", false, func(ctx context.Context, t types.Transport, _ string, req types.ActionRequest) (types.Response, error) {
		return api.Query(ctx, t, req)
	}},
	ActionUpdate: {"update", true, api.Update},
	ActionMint:   {"mint", true, api.Mint},
	ActionQueryCSV: {"query_csv", false, func(ctx context.Context, t types.Transport, _ string, req types.ActionRequest) (types.Response, error) {
		return api.QueryCSV(ctx, t, req)
	}},
	ActionUpdateCSV: {"update_csv", true, api.UpdateCSV},
	ActionMintCSV:   {"mint_csv", true, api.MintCSV},
	ActionStatus: {"status", false, func(ctx context.Context, t types.Transport, _ string, req types.ActionRequest) (types.Response, error) {
		return api.Status(ctx, t, req)
	}},
}

// credentialFor returns the credential to hand to a's handler.
func (c *Client) credentialFor(a Action) string {
	if !actionTable[a].authenticated {
		return ""
	}
	return c.credential
}

func (a Action) valid() bool { return a >= 0 && int(a) < len(actionTable) }

// String returns the action's command name, e.g. "mint_csv".
func (a Action) String() string {
	if !a.valid() {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionTable[a].name
}

// Authenticated reports whether the action sends the credential.
func (a Action) Authenticated() bool {
	return a.valid() && actionTable[a].authenticated
}

// ActionNames lists the command names of all actions in declaration order.
func ActionNames() []string {
	names := make([]string, len(actionTable))
	for i, s := range actionTable {
		names[i] = s.name
	}
	return names
}

// ParseAction maps a command name to its Action.
func ParseAction(name string) (Action, error) {
	for i, s := range actionTable {
		if s.name == name {
			return Action(i), nil
		}
	}
	return 0, fmt.Errorf("unknown action %q (choose from %s)", name, strings.Join(ActionNames(), ", "))
}
