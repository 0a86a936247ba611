package bot

import (
	"strings"
	"testing"

	"github.com/eliseohh/topobot/internal/stats"
	tele "gopkg.in/telebot.v3"
)

// MockContext definition for internal use
type MockContext struct {
	tele.Context
	PayloadVal string
	SenderVal  *tele.User
	SentMsg    interface{}
}

func (m *MockContext) Message() *tele.Message {
	return &tele.Message{Payload: m.PayloadVal}
}
func (m *MockContext) Sender() *tele.User {
	return m.SenderVal
}
func (m *MockContext) Send(what interface{}, opts ...interface{}) error {
	m.SentMsg = what
	return nil
}

func TestBotHandlers(t *testing.T) {
	db, err := stats.Open()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	b := &Bot{db: db}

	t.Run("Hello", func(t *testing.T) {
		ctx := &MockContext{SenderVal: &tele.User{FirstName: "Emmy"}}
		if err := b.handleHello(ctx); err != nil {
			t.Fatal(err)
		}
		msg := ctx.SentMsg.(string)
		if !strings.Contains(msg, "Hi Emmy") {
			t.Errorf("Expected greeting, got: %s", msg)
		}
	})

	t.Run("Simplicial Hollow Triangle", func(t *testing.T) {
		ctx := &MockContext{PayloadVal: "a-b, b-c, c-a"}
		if err := b.handleSimplicial(ctx); err != nil {
			t.Fatal(err)
		}
		msg := ctx.SentMsg.(string)
		if !strings.Contains(msg, "β₀ (components): 1") {
			t.Errorf("Expected β₀ = 1, got: %s", msg)
		}
		if !strings.Contains(msg, "β₁ (1-dimensional holes): 1") {
			t.Errorf("Expected β₁ = 1, got: %s", msg)
		}
		if !strings.Contains(msg, "χ = 0") {
			t.Errorf("Expected χ = 0, got: %s", msg)
		}
	})

	t.Run("Simplicial Malformed", func(t *testing.T) {
		ctx := &MockContext{PayloadVal: "a--b"}
		if err := b.handleSimplicial(ctx); err != nil {
			t.Fatal(err)
		}
		msg := ctx.SentMsg.(string)
		if !strings.Contains(msg, "couldn't parse") {
			t.Errorf("Expected parse error, got: %s", msg)
		}
	})

	t.Run("Simplicial Empty Payload", func(t *testing.T) {
		ctx := &MockContext{PayloadVal: ""}
		b.handleSimplicial(ctx)
		msg := ctx.SentMsg.(string)
		if !strings.Contains(msg, "Usage:") {
			t.Errorf("Expected usage hint, got: %s", msg)
		}
	})

	t.Run("Complex Filled Triangle", func(t *testing.T) {
		ctx := &MockContext{PayloadVal: "a-b-c"}
		if err := b.handleComplex(ctx); err != nil {
			t.Fatal(err)
		}
		msg := ctx.SentMsg.(string)
		if !strings.Contains(msg, "dim 2: 1") {
			t.Errorf("Expected one 2-face, got: %s", msg)
		}
		if !strings.Contains(msg, "χ = 1") {
			t.Errorf("Expected χ = 1, got: %s", msg)
		}
	})

	t.Run("Betti Valid", func(t *testing.T) {
		ctx := &MockContext{PayloadVal: "1 a-b, b-c, c-a"}
		if err := b.handleBetti(ctx); err != nil {
			t.Fatal(err)
		}
		msg := ctx.SentMsg.(string)
		if !strings.Contains(msg, "dimension 1 = 1") {
			t.Errorf("Expected β₁ = 1, got: %s", msg)
		}
	})

	t.Run("Betti Above Cap", func(t *testing.T) {
		ctx := &MockContext{PayloadVal: "5 a-b"}
		if err := b.handleBetti(ctx); err != nil {
			t.Fatal(err)
		}
		msg := ctx.SentMsg.(string)
		if !strings.Contains(msg, "not computed") {
			t.Errorf("Expected informational cap message, got: %s", msg)
		}
	})

	t.Run("Betti Bad Dimension", func(t *testing.T) {
		ctx := &MockContext{PayloadVal: "x a-b"}
		b.handleBetti(ctx)
		msg := ctx.SentMsg.(string)
		if !strings.Contains(msg, "not a valid dimension") {
			t.Errorf("Expected dimension error, got: %s", msg)
		}
	})

	t.Run("Euler", func(t *testing.T) {
		ctx := &MockContext{PayloadVal: "a-b-c, c-d"}
		if err := b.handleEuler(ctx); err != nil {
			t.Fatal(err)
		}
		msg := ctx.SentMsg.(string)
		if !strings.Contains(msg, "χ = 1") {
			t.Errorf("Expected χ = 1, got: %s", msg)
		}
	})

	t.Run("Status After Computations", func(t *testing.T) {
		ctx := &MockContext{}
		if err := b.handleStatus(ctx); err != nil {
			t.Fatal(err)
		}
		msg := ctx.SentMsg.(string)
		if !strings.Contains(msg, "/simplicial") {
			t.Errorf("Expected /simplicial in counts, got: %s", msg)
		}
	})

	t.Run("History", func(t *testing.T) {
		ctx := &MockContext{}
		if err := b.handleHistory(ctx); err != nil {
			t.Fatal(err)
		}
		msg := ctx.SentMsg.(string)
		if !strings.Contains(msg, "Recent computations") {
			t.Errorf("Expected history list, got: %s", msg)
		}
	})

	t.Run("Vibes", func(t *testing.T) {
		ctx := &MockContext{}
		if err := b.handleVibes(ctx); err != nil {
			t.Fatal(err)
		}
		msg := ctx.SentMsg.(string)
		if msg == "" {
			t.Error("Expected a vibe, got empty message")
		}
	})
}
