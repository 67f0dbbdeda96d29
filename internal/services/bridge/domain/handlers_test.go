package domain

import (
	"context"
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"github.com/louisbranch/wyvernbridge/internal/errors"
	"github.com/louisbranch/wyvernbridge/internal/services/bridge/conn"
	"github.com/louisbranch/wyvernbridge/internal/services/bridge/events"
	"github.com/louisbranch/wyvernbridge/internal/services/bridge/wire"
)

// fakeCaller records what handlers send without touching a socket.
type fakeCaller struct {
	calls       int
	lastAction  string
	lastParams  any
	result      json.RawMessage
	err         error
	connectUser string
	connectTok  string
	closed      bool
	status      conn.Status
}

func (f *fakeCaller) Connect(_ context.Context, username, token string) (json.RawMessage, error) {
	f.calls++
	f.connectUser = username
	f.connectTok = token
	return f.result, f.err
}

func (f *fakeCaller) Call(_ context.Context, action string, params any) (json.RawMessage, error) {
	f.calls++
	f.lastAction = action
	f.lastParams = params
	return f.result, f.err
}

func (f *fakeCaller) Close() error {
	f.closed = true
	return nil
}

func (f *fakeCaller) Status() conn.Status {
	return f.status
}

func newTestDeps(caller *fakeCaller) Deps {
	return Deps{Conn: caller, Events: events.NewBuffer(events.DefaultCapacity)}
}

func TestValidationRejectsBeforeNetwork(t *testing.T) {
	tests := []struct {
		name   string
		invoke func(ctx context.Context, deps Deps) error
		code   errors.Code
	}{
		{
			name: "connect invalid username",
			invoke: func(ctx context.Context, deps Deps) error {
				_, _, err := ConnectHandler(deps)(ctx, nil, ConnectInput{Username: "Bad Name"})
				return err
			},
			code: errors.CodeUsernameInvalid,
		},
		{
			name: "attack missing target",
			invoke: func(ctx context.Context, deps Deps) error {
				_, _, err := AttackHandler(deps)(ctx, nil, AttackInput{})
				return err
			},
			code: errors.CodeFieldRequired,
		},
		{
			name: "channel unknown name",
			invoke: func(ctx context.Context, deps Deps) error {
				_, _, err := ChannelHandler(deps)(ctx, nil, ChannelInput{Name: "global", Text: "hi"})
				return err
			},
			code: errors.CodeChannelUnknown,
		},
		{
			name: "guild deposit zero amount",
			invoke: func(ctx context.Context, deps Deps) error {
				_, _, err := GuildDepositHandler(deps)(ctx, nil, GuildDepositInput{Amount: 0})
				return err
			},
			code: errors.CodeAmountNotPositive,
		},
		{
			name: "dialogue select negative option",
			invoke: func(ctx context.Context, deps Deps) error {
				_, _, err := DialogueSelectHandler(deps)(ctx, nil, DialogueSelectInput{Option: -1})
				return err
			},
			code: errors.CodeOptionNegative,
		},
		{
			name: "tell missing text",
			invoke: func(ctx context.Context, deps Deps) error {
				_, _, err := TellHandler(deps)(ctx, nil, TellInput{Target: "frodo"})
				return err
			},
			code: errors.CodeFieldRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			caller := &fakeCaller{}
			err := tt.invoke(context.Background(), newTestDeps(caller))
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("code = %s, want %s", got, tt.code)
			}
			if caller.calls != 0 {
				t.Errorf("caller saw %d calls, want 0", caller.calls)
			}
		})
	}
}

func TestHandlerParamMapping(t *testing.T) {
	tests := []struct {
		name       string
		invoke     func(ctx context.Context, deps Deps) error
		wantAction string
		wantParams map[string]any
	}{
		{
			name: "move_direction maps to move",
			invoke: func(ctx context.Context, deps Deps) error {
				_, _, err := MoveDirectionHandler(deps)(ctx, nil, MoveInput{Direction: "north"})
				return err
			},
			wantAction: "move",
			wantParams: map[string]any{"direction": "north"},
		},
		{
			name: "get_item maps to get with item key",
			invoke: func(ctx context.Context, deps Deps) error {
				_, _, err := GetItemHandler(deps)(ctx, nil, GetItemInput{Name: "rusty sword"})
				return err
			},
			wantAction: "get",
			wantParams: map[string]any{"item": "rusty sword"},
		},
		{
			name: "attack omits empty weapon",
			invoke: func(ctx context.Context, deps Deps) error {
				_, _, err := AttackHandler(deps)(ctx, nil, AttackInput{Target: "goblin"})
				return err
			},
			wantAction: "attack",
			wantParams: map[string]any{"target": "goblin"},
		},
		{
			name: "attack carries weapon when given",
			invoke: func(ctx context.Context, deps Deps) error {
				_, _, err := AttackHandler(deps)(ctx, nil, AttackInput{Target: "goblin", Weapon: "dagger"})
				return err
			},
			wantAction: "attack",
			wantParams: map[string]any{"target": "goblin", "weapon": "dagger"},
		},
		{
			name: "use_ability maps name to ability",
			invoke: func(ctx context.Context, deps Deps) error {
				_, _, err := UseAbilityHandler(deps)(ctx, nil, UseAbilityInput{Name: "fireball", Target: "troll"})
				return err
			},
			wantAction: "use_ability",
			wantParams: map[string]any{"ability": "fireball", "target": "troll"},
		},
		{
			name: "tell maps target to player",
			invoke: func(ctx context.Context, deps Deps) error {
				_, _, err := TellHandler(deps)(ctx, nil, TellInput{Target: "frodo", Text: "run"})
				return err
			},
			wantAction: "tell",
			wantParams: map[string]any{"player": "frodo", "message": "run"},
		},
		{
			name: "accept_quest maps id to quest_id",
			invoke: func(ctx context.Context, deps Deps) error {
				_, _, err := AcceptQuestHandler(deps)(ctx, nil, AcceptQuestInput{ID: "rats-in-cellar"})
				return err
			},
			wantAction: "accept_quest",
			wantParams: map[string]any{"quest_id": "rats-in-cellar"},
		},
		{
			name: "leaderboard defaults board to level",
			invoke: func(ctx context.Context, deps Deps) error {
				_, _, err := LeaderboardHandler(deps)(ctx, nil, LeaderboardInput{})
				return err
			},
			wantAction: "leaderboard",
			wantParams: map[string]any{"board_type": "level"},
		},
		{
			name: "guild_deposit carries amount",
			invoke: func(ctx context.Context, deps Deps) error {
				_, _, err := GuildDepositHandler(deps)(ctx, nil, GuildDepositInput{Amount: 250})
				return err
			},
			wantAction: "guild_deposit",
			wantParams: map[string]any{"amount": int64(250)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			caller := &fakeCaller{result: json.RawMessage(`{"status":"ok"}`)}
			if err := tt.invoke(context.Background(), newTestDeps(caller)); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if caller.lastAction != tt.wantAction {
				t.Errorf("action = %q, want %q", caller.lastAction, tt.wantAction)
			}
			got, ok := caller.lastParams.(map[string]any)
			if !ok {
				t.Fatalf("params type = %T, want map[string]any", caller.lastParams)
			}
			if !reflect.DeepEqual(got, tt.wantParams) {
				t.Errorf("params = %v, want %v", got, tt.wantParams)
			}
		})
	}
}

func TestParameterlessActionsSendNilParams(t *testing.T) {
	caller := &fakeCaller{result: json.RawMessage(`{}`)}
	deps := newTestDeps(caller)

	if _, _, err := InventoryHandler(deps)(context.Background(), nil, InventoryInput{}); err != nil {
		t.Fatalf("inventory error: %v", err)
	}
	if caller.lastAction != "inventory" {
		t.Errorf("action = %q, want inventory", caller.lastAction)
	}
	if caller.lastParams != nil {
		t.Errorf("params = %v, want nil", caller.lastParams)
	}
}

func TestResultEnvelopeCarriesDrainedEvents(t *testing.T) {
	caller := &fakeCaller{result: json.RawMessage(`{"room":"tavern"}`)}
	deps := newTestDeps(caller)

	deps.Events.Push(wire.PushEvent{Kind: "chat", Seq: 1, Data: json.RawMessage(`{"from":"bard","text":"hello"}`)})
	deps.Events.Push(wire.PushEvent{Kind: "presence", Seq: 2, Data: json.RawMessage(`{"player":"frodo"}`)})

	_, result, err := LookHandler(deps)(context.Background(), nil, LookInput{})
	if err != nil {
		t.Fatalf("look error: %v", err)
	}
	if result.Result["room"] != "tavern" {
		t.Errorf("result payload = %v, want room tavern", result.Result)
	}
	if len(result.Events) != 2 {
		t.Fatalf("events = %d, want 2", len(result.Events))
	}
	if result.Events[0].Kind != "chat" || result.Events[0].Seq != 1 {
		t.Errorf("first event = %+v, want chat seq 1", result.Events[0])
	}
	if result.Events[1].Data["player"] != "frodo" {
		t.Errorf("second event data = %v, want player frodo", result.Events[1].Data)
	}

	// A second call sees an empty buffer: drain is exactly-once.
	_, result, err = LookHandler(deps)(context.Background(), nil, LookInput{})
	if err != nil {
		t.Fatalf("second look error: %v", err)
	}
	if len(result.Events) != 0 {
		t.Errorf("second drain events = %d, want 0", len(result.Events))
	}
}

func TestResultEnvelopeReportsLostEvents(t *testing.T) {
	caller := &fakeCaller{result: json.RawMessage(`{}`)}
	deps := Deps{Conn: caller, Events: events.NewBuffer(2)}

	for seq := int64(1); seq <= 5; seq++ {
		deps.Events.Push(wire.PushEvent{Kind: "world", Seq: seq})
	}

	_, result, err := StatusHandler(deps)(context.Background(), nil, StatusInput{})
	if err != nil {
		t.Fatalf("status error: %v", err)
	}
	if len(result.Events) != 2 {
		t.Fatalf("events = %d, want 2", len(result.Events))
	}
	if result.Events[0].Seq != 4 || result.Events[1].Seq != 5 {
		t.Errorf("surviving seqs = %d, %d, want 4, 5", result.Events[0].Seq, result.Events[1].Seq)
	}
	if result.EventsLost != 3 {
		t.Errorf("events_lost = %d, want 3", result.EventsLost)
	}
}

func TestNonObjectPayloadKeptUnderValue(t *testing.T) {
	caller := &fakeCaller{result: json.RawMessage(`"you feel rested"`)}
	deps := newTestDeps(caller)

	_, result, err := StatusHandler(deps)(context.Background(), nil, StatusInput{})
	if err != nil {
		t.Fatalf("status error: %v", err)
	}
	if result.Result["value"] != "you feel rested" {
		t.Errorf("result = %v, want value key with string payload", result.Result)
	}
}

func TestGameErrorPassesThrough(t *testing.T) {
	caller := &fakeCaller{err: errors.New(errors.Code("INSUFFICIENT_FUNDS"), "not enough gold")}
	deps := newTestDeps(caller)

	_, _, err := BuyHandler(deps)(context.Background(), nil, BuyInput{Item: "greatsword"})
	if err == nil {
		t.Fatal("expected game error, got nil")
	}
	if got := errors.GetCode(err); got != errors.Code("INSUFFICIENT_FUNDS") {
		t.Errorf("code = %s, want INSUFFICIENT_FUNDS", got)
	}
	if kind := errors.GetKind(err); kind != errors.KindGame {
		t.Errorf("kind = %s, want %s", kind, errors.KindGame)
	}
}

func TestConnectForwardsCredentials(t *testing.T) {
	caller := &fakeCaller{result: json.RawMessage(`{"token":"tok-0001","new_account":true}`)}
	deps := newTestDeps(caller)

	_, result, err := ConnectHandler(deps)(context.Background(), nil, ConnectInput{Username: "frodo", Token: ""})
	if err != nil {
		t.Fatalf("connect error: %v", err)
	}
	if caller.connectUser != "frodo" || caller.connectTok != "" {
		t.Errorf("forwarded credentials = %q/%q, want frodo with empty token", caller.connectUser, caller.connectTok)
	}
	if result.Result["token"] != "tok-0001" {
		t.Errorf("result = %v, want generated token surfaced", result.Result)
	}
}

func TestDisconnectClosesAndDrains(t *testing.T) {
	caller := &fakeCaller{}
	deps := newTestDeps(caller)
	deps.Events.Push(wire.PushEvent{Kind: "chat", Seq: 9})

	_, result, err := DisconnectHandler(deps)(context.Background(), nil, DisconnectInput{})
	if err != nil {
		t.Fatalf("disconnect error: %v", err)
	}
	if !caller.closed {
		t.Error("caller was not closed")
	}
	if caller.calls != 0 {
		t.Errorf("caller saw %d network calls, want 0", caller.calls)
	}
	if len(result.Events) != 1 || result.Events[0].Seq != 9 {
		t.Errorf("events = %+v, want the one buffered event", result.Events)
	}
}

func TestBridgeStatusIsLocal(t *testing.T) {
	lastContact := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	caller := &fakeCaller{status: conn.Status{
		State:       conn.StateActive,
		Username:    "frodo",
		LastContact: lastContact,
		Pending:     2,
	}}
	deps := newTestDeps(caller)
	deps.Events.Push(wire.PushEvent{Kind: "chat", Seq: 1})

	_, result, err := BridgeStatusHandler(deps)(context.Background(), nil, BridgeStatusInput{})
	if err != nil {
		t.Fatalf("bridge_status error: %v", err)
	}
	if caller.calls != 0 {
		t.Errorf("caller saw %d network calls, want 0", caller.calls)
	}
	if result.State != "active" || result.Username != "frodo" || result.PendingCall != 2 {
		t.Errorf("status = %+v, want active/frodo/2", result)
	}
	if result.LastContact != lastContact.Format(time.RFC3339) {
		t.Errorf("last_contact = %q, want %q", result.LastContact, lastContact.Format(time.RFC3339))
	}

	// Status must not consume buffered events.
	if drained := deps.Events.Drain(); len(drained) != 1 {
		t.Errorf("drained %d events after status, want 1 still buffered", len(drained))
	}
}
